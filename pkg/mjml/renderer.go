// Package mjml renders MJML email templates to HTML.
//
// Templates are Go html/template sources that produce MJML markup. Executing a
// template yields MJML which is then compiled to email-client safe HTML by gomjml.
package mjml

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/preslavrachev/gomjml/mjml"
)

const templateExt = ".mjml"

// Renderer handles MJML template loading and rendering
type Renderer struct {
	templates map[string]*template.Template
	funcs     template.FuncMap
	mu        sync.RWMutex
	options   *RenderOptions
}

// RenderOptions configures the MJML renderer behavior
type RenderOptions struct {
	EnableDebug bool // Add debug attributes to HTML
}

// RendererOption configures the renderer
type RendererOption func(*RenderOptions)

// WithDebug adds debug attributes to generated HTML
func WithDebug(enabled bool) RendererOption {
	return func(opts *RenderOptions) {
		opts.EnableDebug = enabled
	}
}

// NewRenderer creates a new MJML renderer with the specified options
func NewRenderer(opts ...RendererOption) *Renderer {
	options := &RenderOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &Renderer{
		templates: make(map[string]*template.Template),
		funcs:     template.FuncMap{},
		options:   options,
	}
}

// Funcs registers template functions. It must be called before templates are loaded.
func (r *Renderer) Funcs(funcs template.FuncMap) *Renderer {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range funcs {
		r.funcs[k] = v
	}
	return r
}

// LoadTemplate loads a single MJML template with the given name
func (r *Renderer) LoadTemplate(name, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmpl, err := template.New(name).Funcs(r.funcs).Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	r.templates[name] = tmpl
	return nil
}

// LoadTemplatesFromFS loads every .mjml file in fsys, keyed by base name
// without extension.
func (r *Renderer) LoadTemplatesFromFS(fsys fs.FS) error {
	parsed, err := r.parseFS(fsys)
	if err != nil {
		return err
	}

	r.mu.Lock()
	for name, tmpl := range parsed {
		r.templates[name] = tmpl
	}
	r.mu.Unlock()
	return nil
}

// ReplaceTemplatesFromDir loads a directory of templates over the current set.
// Nothing changes when any file fails to parse.
func (r *Renderer) ReplaceTemplatesFromDir(dir string) error {
	return r.LoadTemplatesFromFS(os.DirFS(dir))
}

func (r *Renderer) parseFS(fsys fs.FS) (map[string]*template.Template, error) {
	r.mu.RLock()
	funcs := r.funcs
	r.mu.RUnlock()

	parsed := make(map[string]*template.Template)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(p, templateExt) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}

		name := strings.TrimSuffix(path.Base(p), templateExt)
		tmpl, err := template.New(name).Funcs(funcs).Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		parsed[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

// RenderTemplate renders a template with the given data to HTML
func (r *Renderer) RenderTemplate(name string, data any) (string, error) {
	r.mu.RLock()
	tmpl, exists := r.templates[name]
	r.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}

	source, err := r.ExecuteTemplate(name, tmpl, data)
	if err != nil {
		return "", err
	}

	html, err := r.RenderString(source)
	if err != nil {
		return "", fmt.Errorf("failed to render MJML for template %s: %w", name, err)
	}
	return html, nil
}

// ExecuteTemplate runs tmpl and returns the MJML source before compilation.
func (r *Renderer) ExecuteTemplate(name string, tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderString renders MJML content directly to HTML
func (r *Renderer) RenderString(mjmlContent string) (string, error) {
	var mjmlOpts []mjml.RenderOption
	if r.options.EnableDebug {
		mjmlOpts = append(mjmlOpts, mjml.WithDebugTags(true))
	}

	html, err := mjml.Render(mjmlContent, mjmlOpts...)
	if err != nil {
		return "", fmt.Errorf("gomjml render failed: %w", err)
	}
	return html, nil
}

// ListTemplates returns the loaded template names, sorted.
func (r *Renderer) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTemplate checks if a template is loaded
func (r *Renderer) HasTemplate(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.templates[name]
	return exists
}
