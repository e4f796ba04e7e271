// Package scaffold renders the service templates and writes them into the
// resolved destination.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/adrg/frontmatter"
	"github.com/jakoblorz/go-ngscaffold/internal/naming"
)

//go:embed templates/*
var templatesFS embed.FS

// ServiceTemplates is the template set for an Angular service and its test.
const ServiceTemplates = "templates/service"

const templateExt = ".tmpl"

// Data is passed to every template.
type Data struct {
	Name           string
	ClassifiedName string
	SlugifiedName  string
	// Suffix is the artifact kind as used in file names, e.g. "data-store".
	Suffix string
	// TypeSuffix is Suffix in type form, e.g. "DataStore".
	TypeSuffix string
}

// NewData builds template data from derived names.
func NewData(names naming.Forms, suffix string) Data {
	return Data{
		Name:           names.Canonical,
		ClassifiedName: names.Type,
		SlugifiedName:  names.Slug,
		Suffix:         suffix,
		TypeSuffix:     naming.DeriveOr(suffix, suffix).Type,
	}
}

// RenderedFile is a rendered template and the file name it targets.
type RenderedFile struct {
	Template string
	Target   string
	Content  []byte
}

// header is the YAML front matter every template starts with.
type header struct {
	Target string `yaml:"target"`
}

// Renderer renders the templates of one directory of a template FS.
type Renderer struct {
	fsys fs.FS
	dir  string
}

// NewRenderer renders the built-in templates under dir.
func NewRenderer(dir string) *Renderer {
	return NewRendererFS(templatesFS, dir)
}

// NewRendererFS renders templates under dir of fsys.
func NewRendererFS(fsys fs.FS, dir string) *Renderer {
	return &Renderer{fsys: fsys, dir: dir}
}

// RenderAll renders every *.tmpl file of the directory in name order.
func (r *Renderer) RenderAll(data Data) ([]RenderedFile, error) {
	entries, err := fs.ReadDir(r.fsys, r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates %s: %w", r.dir, err)
	}

	var files []RenderedFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
			continue
		}

		file, err := r.Render(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", r.dir)
	}

	return files, nil
}

// Render renders a single template. The front matter target is itself a
// template and must render to a plain file name.
func (r *Renderer) Render(name string, data Data) (RenderedFile, error) {
	raw, err := fs.ReadFile(r.fsys, path.Join(r.dir, name))
	if err != nil {
		return RenderedFile{}, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	var h header
	body, err := frontmatter.Parse(bytes.NewReader(raw), &h)
	if err != nil {
		return RenderedFile{}, fmt.Errorf("failed to parse front matter of %s: %w", name, err)
	}
	if strings.TrimSpace(h.Target) == "" {
		return RenderedFile{}, fmt.Errorf("template %s has no target in its front matter", name)
	}

	target, err := execute(name+":target", h.Target, data)
	if err != nil {
		return RenderedFile{}, err
	}
	target = strings.TrimSpace(target)
	if err := validateTarget(target); err != nil {
		return RenderedFile{}, fmt.Errorf("template %s: %w", name, err)
	}

	content, err := execute(name, string(bytes.TrimLeft(body, "\r\n")), data)
	if err != nil {
		return RenderedFile{}, err
	}

	return RenderedFile{
		Template: name,
		Target:   target,
		Content:  []byte(content),
	}, nil
}

func execute(name, text string, data Data) (string, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

func validateTarget(target string) error {
	if target == "" || target == "." || target == ".." {
		return fmt.Errorf("invalid target file name %q", target)
	}
	if strings.ContainsAny(target, `/\`) {
		return fmt.Errorf("target file name %q must not contain path separators", target)
	}
	return nil
}
