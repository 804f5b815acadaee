package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	json "github.com/goccy/go-json"

	formflow "github.com/goliatone/go-formflow"
	"github.com/goliatone/go-formflow/pkg/formdef"
	"github.com/goliatone/go-formflow/pkg/notification"
	"github.com/goliatone/go-formflow/pkg/openapi"
	"github.com/goliatone/go-formflow/pkg/placeholder"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/renderers/tui"
)

func main() {
	formPath := flag.String("form", "", "form definition path (JSON or YAML)")
	importSpec := flag.String("import", "", "OpenAPI document to import instead of -form")
	operation := flag.String("operation", "", "operation ID when importing from OpenAPI")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "preview"
	}

	form, err := loadForm(*formPath, *importSpec, *operation)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	ctx := context.Background()

	var result []byte
	switch command {
	case "preview":
		result, err = runPreview(ctx, form)
	case "fill":
		result, err = runFill(ctx, form)
	case "tokens":
		result, err = runTokens(form)
	default:
		log.Fatalf("unknown command %q (want preview, fill, or tokens)", command)
	}
	if err != nil {
		log.Fatalf("Failed to run %s: %v", command, err)
	}

	if *output != "" {
		if !confirmOverwrite(*output) {
			log.Fatalf("Aborted: %s already exists", *output)
		}
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(result))
	}
}

// confirmOverwrite asks before clobbering an existing output file.
func confirmOverwrite(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}
	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s exists, overwrite?", path),
		Default: false,
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false
	}
	return overwrite
}

func loadForm(path, importSpec, operation string) (*formdef.Form, error) {
	if path != "" {
		if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
			return formdef.FromURL(context.Background(), nil, path)
		}
		return formdef.FromFile(path)
	}
	if importSpec != "" {
		data, err := os.ReadFile(importSpec)
		if err != nil {
			return nil, err
		}
		var opts []openapi.Option
		if operation != "" {
			opts = append(opts, openapi.WithOperationID(operation))
		}
		comps, err := openapi.Import(context.Background(), data, opts...)
		if err != nil {
			return nil, err
		}
		return &formdef.Form{Name: importSpec, Content: comps}, nil
	}
	return nil, fmt.Errorf("either -form or -import is required")
}

func runPreview(ctx context.Context, form *formdef.Form) ([]byte, error) {
	session, err := formflow.NewSession(form, formflow.ModeDesign)
	if err != nil {
		return nil, err
	}
	return session.RenderHTML(ctx)
}

func runFill(ctx context.Context, form *formdef.Form) ([]byte, error) {
	session, err := formflow.NewSession(form, formflow.ModeRuntime)
	if err != nil {
		return nil, err
	}

	renderer, err := tui.New()
	if err != nil {
		return nil, err
	}
	values, err := renderer.Render(ctx, session.Tree, session.Values, render.Options{})
	if err != nil {
		return nil, err
	}

	previews := session.PreviewNotifications(notification.TriggerSubmit, systemSampleData())
	if len(previews) == 0 {
		return values, nil
	}

	return json.MarshalIndent(map[string]any{
		"values":        json.RawMessage(values),
		"notifications": previews,
	}, "", "  ")
}

func runTokens(form *formdef.Form) ([]byte, error) {
	session, err := formflow.NewSession(form, formflow.ModeDesign)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := placeholder.ExportText(&buf, session.Placeholders()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func systemSampleData() map[string]string {
	return map[string]string{
		"{submission_id}":     "SUB-0001",
		"{submission_date}":   "2024-01-15",
		"{submission_time}":   "09:30",
		"{submitter_name}":    "Zhang San",
		"{submitter_email}":   "zhang@example.com",
		"{submitter_ip}":      "203.0.113.7",
		"{submitter_company}": "Acme Ltd",
		"{site_title}":        "Formflow",
		"{site_url}":          "https://example.com",
	}
}
