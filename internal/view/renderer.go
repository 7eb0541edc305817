package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed templates
var templatesFS embed.FS

// View names.
const (
	TaskIndex    = "tasks/index"
	TaskCreate   = "tasks/create"
	TaskEdit     = "tasks/edit"
	TaskDelete   = "tasks/delete"
	FolderCreate = "folders/create"
	Login        = "auth/login"
	Register     = "auth/register"
	Error        = "errors/error"
)

// Renderer writes a named view with the given status code.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// TemplateRenderer renders html/template pages wrapped in the shared layout.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

var _ Renderer = (*TemplateRenderer)(nil)

// NewTemplateRenderer parses every embedded page. Each page is parsed onto its
// own clone of the layout so page blocks never leak into each other.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	layout, err := template.ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == "templates/layout.html" || !strings.HasSuffix(path, ".html") {
			return nil
		}

		page, err := layout.Clone()
		if err != nil {
			return err
		}
		if _, err := page.ParseFS(templatesFS, path); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TemplateRenderer{pages: pages}, nil
}

// Render implements Renderer. The page is rendered into a buffer first so a
// template failure never produces a half written response.
func (r *TemplateRenderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("failed to render view %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
