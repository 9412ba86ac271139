// Package view renderiza as páginas e fragmentos htmx do console.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Páginas completas
const (
	PageDashboard = "dashboard"
	PagePublisher = "publisher"
	PagePO        = "po"
	PageManage    = "manage"
	PageNotFound  = "notfound"
)

// Fragmentos trocados pelo htmx
const (
	PartialPublisherForm   = "publisher-form"
	PartialPOForm          = "po-form"
	PartialDashboardUpdate = "dashboard-content"
	PartialRFM             = "rfm-table"
	PartialManageRow       = "manage-row"
)

var ErrUnknownPage = errors.New("página desconhecida")

type Renderer struct {
	base  *template.Template
	pages map[string]*template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"money": func(n domain.Number) string {
			if !n.Valid {
				return ""
			}
			return utils.FormatVND(n.Value)
		},
		"hasOption": func(options []domain.Option, value string) bool {
			for _, o := range options {
				if o.Value == value {
					return true
				}
			}
			return false
		},
	}
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("console").Funcs(funcs()).
		ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar templates base")
	}

	r := &Renderer{base: base, pages: map[string]*template.Template{}}
	for _, page := range []string{PageDashboard, PagePublisher, PagePO, PageManage, PageNotFound} {
		clone, err := base.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao clonar templates para %s", page)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+page+".html"); err != nil {
			return nil, errors.Wrapf(err, "erro ao carregar template %s", page)
		}
		r.pages[page] = clone
	}

	return r, nil
}

// Page renderiza a página dentro do layout. O HTML só é escrito se a
// execução terminar sem erro.
func (r *Renderer) Page(w io.Writer, page string, data Layout) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return errors.Wrap(ErrUnknownPage, page)
	}

	data.Active = page
	return execute(w, tmpl, "layout", data)
}

// Partial renderiza um fragmento isolado.
func (r *Renderer) Partial(w io.Writer, name string, data any) error {
	return execute(w, r.base, name, data)
}

func execute(w io.Writer, tmpl *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, "erro ao renderizar %s", name)
	}

	_, err := io.Copy(w, &buf)
	return err
}

// Static devolve os arquivos estáticos embutidos (console.js e console.css).
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
