package render

// Options carries per-request rendering instructions shared by every
// renderer. Mode branching lives here once: renderers consult DesignMode to
// decide editability instead of duplicating mode checks per control.
type Options struct {
	// DesignMode renders read-only controls that still reflect default
	// values, for authoring previews. Runtime sessions leave it false.
	DesignMode bool
	// Theme resolves presentation decisions that are theme-wide by
	// contract, such as where field descriptions sit. Nil falls back to
	// DefaultTheme.
	Theme *ThemeConfig
}

// EffectiveTheme returns the configured theme or the default.
func (o Options) EffectiveTheme() *ThemeConfig {
	if o.Theme != nil {
		return o.Theme
	}
	return DefaultTheme()
}
