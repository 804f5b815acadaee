package valuestore

// Subscription identifies one registered listener. Cancel removes it;
// cancelling twice, or cancelling a subscription whose listener was never
// registered, is a no-op.
type Subscription struct {
	store       *Store
	componentID string
	token       int
}

// Listen registers a callback invoked with the new value whenever the given
// component's entry changes. Multiple listeners per component are allowed.
// Renderers must Cancel their subscription on unmount so stale callbacks do
// not leak into later interactions.
func (s *Store) Listen(componentID string, fn Listener) *Subscription {
	if fn == nil {
		return &Subscription{store: s, componentID: componentID, token: -1}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextToken++
	token := s.nextToken
	if s.listeners[componentID] == nil {
		s.listeners[componentID] = make(map[int]Listener)
	}
	s.listeners[componentID][token] = fn

	return &Subscription{store: s, componentID: componentID, token: token}
}

// Cancel deregisters the listener.
func (sub *Subscription) Cancel() {
	if sub == nil || sub.store == nil || sub.token <= 0 {
		return
	}
	sub.store.mu.Lock()
	defer sub.store.mu.Unlock()

	if fns, ok := sub.store.listeners[sub.componentID]; ok {
		delete(fns, sub.token)
		if len(fns) == 0 {
			delete(sub.store.listeners, sub.componentID)
		}
	}
	sub.token = 0
}
