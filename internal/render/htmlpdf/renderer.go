// Package htmlpdf renders the declaration as HTML and hands it to a PDF engine.
package htmlpdf

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"irpfdecl/internal/assets"
	"irpfdecl/internal/domain"
	"irpfdecl/internal/format"
	"irpfdecl/internal/port"
	"irpfdecl/internal/render"
)

//go:embed templates/declaracao.html.tmpl
var templateFS embed.FS

var declarationTemplate = template.Must(
	template.New("declaracao.html.tmpl").ParseFS(templateFS, "templates/declaracao.html.tmpl"),
)

// view is the template model.
type view struct {
	*domain.DeclarationData
	Issuer         render.Issuer
	Statement      []render.Span
	Date           string
	LogoSrc        template.URL
	SignatureSrc   template.URL
	WatermarkStyle template.CSS
}

// Renderer builds the declaration HTML and converts it with a PDFEngine.
type Renderer struct {
	engine   port.PDFEngine
	assets   *assets.Assets
	issuer   render.Issuer
	options  port.PDFOptions
	location *time.Location
	now      func() time.Time
}

// NewRenderer creates a Renderer printing A4 pages with backgrounds and the
// given margin on every side.
func NewRenderer(engine port.PDFEngine, a *assets.Assets, marginMM float64, loc *time.Location) *Renderer {
	if a == nil {
		a = &assets.Assets{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{
		engine: engine,
		assets: a,
		issuer: render.DefaultIssuer,
		options: port.PDFOptions{
			PageSize:        "A4",
			PrintBackground: true,
			MarginTopMM:     marginMM,
			MarginRightMM:   marginMM,
			MarginBottomMM:  marginMM,
			MarginLeftMM:    marginMM,
		},
		location: loc,
		now:      time.Now,
	}
}

// Render implements port.DeclarationRenderer.
func (r *Renderer) Render(ctx context.Context, data *domain.DeclarationData) ([]byte, error) {
	html, err := r.HTML(data)
	if err != nil {
		return nil, err
	}
	pdf, err := r.engine.Render(ctx, html, r.options)
	if err != nil {
		return nil, fmt.Errorf("pdf engine: %w", err)
	}
	return pdf, nil
}

// HTML returns the complete, self-contained declaration document.
func (r *Renderer) HTML(data *domain.DeclarationData) (string, error) {
	v := view{
		DeclarationData: data,
		Issuer:          r.issuer,
		Statement:       render.StatementSpans(data, r.issuer),
		Date:            format.LongDate(r.now().In(r.location)),
		LogoSrc:         template.URL(r.assets.Logo.DataURI()),
		SignatureSrc:    template.URL(r.assets.Signature.DataURI()),
		WatermarkStyle:  watermarkStyle(r.assets.Watermark.DataURI()),
	}

	var buf bytes.Buffer
	if err := declarationTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("executing declaration template: %w", err)
	}
	return buf.String(), nil
}

func watermarkStyle(uri string) template.CSS {
	if uri == "" {
		return ""
	}
	return template.CSS(fmt.Sprintf(
		"background-image: url('%s'); background-repeat: no-repeat; background-position: center center; background-size: 55%%;",
		uri,
	))
}
