package component

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ParseContent decodes a serialized form definition (the Form resource's
// content blob) into an ordered component list. Unknown component types are
// preserved so round-tripping a document authored by a newer tool does not
// drop data; renderers reject them later.
func ParseContent(data []byte) ([]Component, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var components []Component
	if err := json.Unmarshal(data, &components); err != nil {
		return nil, fmt.Errorf("component: parse content: %w", err)
	}
	return components, nil
}

// EncodeContent serializes a component list back into the content blob shape.
func EncodeContent(components []Component) ([]byte, error) {
	data, err := json.Marshal(components)
	if err != nil {
		return nil, fmt.Errorf("component: encode content: %w", err)
	}
	return data, nil
}
