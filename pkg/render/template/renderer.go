// Package template defines the renderer-agnostic templating seam HTML
// renderers build on, decoupling control markup from the concrete engine.
package template

import "io"

// TemplateRenderer is the contract shell renderers rely on: named templates
// from a bundle plus ad-hoc template strings.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
