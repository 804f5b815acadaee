package formdef

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromBytes parses a form document from JSON or YAML.
func FromBytes(data []byte) (*Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("formdef: document is empty")
	}

	var form Form
	if err := json.Unmarshal(data, &form); err == nil {
		return &form, nil
	}

	// YAML documents round-trip through JSON so both formats share the
	// same field names.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("formdef: parse document: invalid JSON or YAML")
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("formdef: convert document: %w", err)
	}
	if err := json.Unmarshal(payload, &form); err != nil {
		return nil, fmt.Errorf("formdef: parse document: %w", err)
	}
	return &form, nil
}

// FromFile loads a form document from disk.
func FromFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formdef: read %s: %w", path, err)
	}
	form, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("formdef: file %s: %w", path, err)
	}
	return form, nil
}

// FromURL fetches a form document over HTTP. A nil client falls back to
// http.DefaultClient.
func FromURL(ctx context.Context, client *http.Client, url string) (*Form, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("formdef: request %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("formdef: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("formdef: fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("formdef: read %s: %w", url, err)
	}

	form, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("formdef: document %s: %w", url, err)
	}
	return form, nil
}

// FromFS loads a form document from the provided filesystem.
func FromFS(fsys fs.FS, path string) (*Form, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formdef: read %s: %w", path, err)
	}
	form, err := FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("formdef: file %s: %w", path, err)
	}
	return form, nil
}
