package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer turns markdown templates with YAML frontmatter into HTML and
// plain text bodies. Parsed templates and layouts are cached; rendered
// output never is.
type Renderer struct {
	fsys        fs.FS
	md          goldmark.Markdown
	templateDir string
	layoutDir   string
	templates   sync.Map // name -> *compiledTemplate
	layouts     sync.Map // name -> *template.Template
}

type compiledTemplate struct {
	metadata map[string]any
	body     *texttemplate.Template
}

// RendererConfig configures where templates and layouts live in the FS.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a renderer with default directories.
func NewRenderer(fsys fs.FS) *Renderer {
	return NewRendererWithConfig(fsys, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directories.
func NewRendererWithConfig(fsys fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}
	return &Renderer{
		fsys:        fsys,
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Templates are trusted, inline HTML is allowed.
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
	}
}

// RenderResult holds rendered bodies and the template's frontmatter.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	// Text is the executed markdown before HTML conversion.
	Text string
}

// Render executes templateName with data, converts it to HTML and wraps it
// in layout. An empty layout returns the bare HTML fragment.
// Layouts receive .Content (the HTML fragment) and .Metadata.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	tmpl, err := r.template(templateName)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := tmpl.body.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, templateName, err)
	}

	var fragment bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &fragment); err != nil {
		return nil, fmt.Errorf("%w: convert %s: %v", ErrRenderFailed, templateName, err)
	}

	result := &RenderResult{
		Metadata: tmpl.metadata,
		HTML:     fragment.String(),
		Text:     markdown.String(),
	}
	if layout == "" {
		return result, nil
	}

	layoutTmpl, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer
	if err := layoutTmpl.Execute(&page, map[string]any{
		"Content":  template.HTML(fragment.String()),
		"Metadata": tmpl.metadata,
	}); err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}
	result.HTML = page.String()

	return result, nil
}

func (r *Renderer) template(name string) (*compiledTemplate, error) {
	if cached, ok := r.templates.Load(name); ok {
		return cached.(*compiledTemplate), nil
	}

	content, err := fs.ReadFile(r.fsys, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}

	body, err := texttemplate.New(name).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	compiled, _ := r.templates.LoadOrStore(name, &compiledTemplate{metadata: parsed.Metadata, body: body})
	return compiled.(*compiledTemplate), nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	if cached, ok := r.layouts.Load(name); ok {
		return cached.(*template.Template), nil
	}

	content, err := fs.ReadFile(r.fsys, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}

	stored, _ := r.layouts.LoadOrStore(name, tmpl)
	return stored.(*template.Template), nil
}
