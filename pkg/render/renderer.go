package render

import (
	"context"

	"github.com/goliatone/go-formflow/pkg/component"
	"github.com/goliatone/go-formflow/pkg/valuestore"
)

// Renderer converts a component tree plus its session value store into a
// byte representation (HTML, plain text, an interactive transcript).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, tree *component.Tree, store *valuestore.Store, options Options) ([]byte, error)
}
