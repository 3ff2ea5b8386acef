// Package maroto lays the declaration out natively with maroto, for hosts
// where no Chrome binary is available.
package maroto

import (
	"bytes"
	"context"
	"fmt"
	stdimage "image"
	"log"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	mpdf "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"irpfdecl/internal/assets"
	"irpfdecl/internal/domain"
	"irpfdecl/internal/format"
	"irpfdecl/internal/render"
)

var (
	colorBrand = &props.Color{Red: 26, Green: 58, Blue: 92}
	colorGray  = &props.Color{Red: 90, Green: 90, Blue: 90}
	colorLight = &props.Color{Red: 235, Green: 240, Blue: 245}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Logo and signature are scaled down to fit these pixel bounds before embedding.
const (
	maxImageWidth  = 600
	maxImageHeight = 240
)

// Renderer implements port.DeclarationRenderer without a browser.
type Renderer struct {
	logo      []byte
	signature []byte
	issuer    render.Issuer
	marginMM  float64
	location  *time.Location
	now       func() time.Time
}

// NewRenderer converts the images once up front. An image that cannot be
// decoded is dropped and the layout falls back to text.
func NewRenderer(a *assets.Assets, marginMM float64, loc *time.Location) *Renderer {
	if a == nil {
		a = &assets.Assets{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{
		logo:      convertOrDrop("logo", a.Logo),
		signature: convertOrDrop("signature", a.Signature),
		issuer:    render.DefaultIssuer,
		marginMM:  marginMM,
		location:  loc,
		now:       time.Now,
	}
}

// Render implements port.DeclarationRenderer.
func (r *Renderer) Render(_ context.Context, data *domain.DeclarationData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(r.marginMM).WithRightMargin(r.marginMM).
		WithTopMargin(r.marginMM).WithBottomMargin(r.marginMM).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Declaração IRPF "+fmt.Sprint(data.Year), true).
		WithAuthor(r.issuer.LegalName, true).
		Build()

	m := mpdf.New(cfg)
	m.AddRows(r.headerRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorBrand, Thickness: 0.8}))
	m.AddRows(titleRows(data.Year)...)
	m.AddRows(holderRows(data)...)
	m.AddRows(tableRows(data)...)
	m.AddRows(statementRow(data, r.issuer))
	m.AddRows(r.signatureRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("maroto generate: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *Renderer) headerRow() core.Row {
	var logo core.Col
	if len(r.logo) > 0 {
		logo = image.NewFromBytesCol(5, r.logo, extension.Png, props.Rect{Percent: 90, Center: true})
	} else {
		logo = col.New(5).Add(text.New(r.issuer.BrandUpper, props.Text{
			Size: 16, Style: fontstyle.Bold, Color: colorBrand, Top: 8,
		}))
	}

	info := []string{
		"CNPJ: " + r.issuer.CNPJ,
		r.issuer.Street,
		r.issuer.District,
		"Telefone: " + r.issuer.Phone,
		r.issuer.Email,
	}
	right := col.New(7).Add(text.New(r.issuer.LegalName, props.Text{
		Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: colorBrand,
	}))
	for i, s := range info {
		right.Add(text.New(s, props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: float64(6 + 4*i),
		}))
	}
	return row.New(28).Add(logo, right)
}

func titleRows(year int) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(text.New(
			"Declaração de Pagamentos Efetuados a Pessoa Jurídica",
			props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Center, Top: 4},
		))),
		row.New(8).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Ano-Calendário %d · Para fins de dedução na Declaração do IRPF", year),
			props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 1},
		))),
	}
}

func holderRows(data *domain.DeclarationData) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(label, props.Text{Size: 9, Style: fontstyle.Bold, Color: colorBrand, Top: 1.5, Left: 2})),
			col.New(9).Add(text.New(value, props.Text{Size: 10, Top: 1.5})),
		).WithStyle(&props.Cell{BackgroundColor: colorLight})
	}
	return []core.Row{
		row.New(4),
		field("Contribuinte", data.HolderName),
		field("CPF", data.NationalID),
		row.New(4),
	}
}

func tableRows(data *domain.DeclarationData) []core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorWhite, Top: 1.5}
	rows := []core.Row{
		row.New(7).Add(
			col.New(2).Add(text.New("Parcela", withAlign(header, align.Center))),
			col.New(6).Add(text.New("Mês de Referência", withAlign(header, align.Left))),
			col.New(4).Add(text.New("Valor Pago", withAlign(header, align.Right))),
		).WithStyle(&props.Cell{BackgroundColor: colorBrand}),
	}

	cell := props.Text{Size: 9, Top: 1.5}
	for _, inst := range data.Table() {
		if inst.Empty() {
			continue
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(inst.Number, withAlign(cell, align.Center))),
			col.New(6).Add(text.New(fmt.Sprintf("%s/%d", inst.MonthLabel, data.Year), withAlign(cell, align.Left))),
			col.New(4).Add(text.New(inst.Amount, withAlign(cell, align.Right))),
		))
	}

	total := props.Text{Size: 10, Style: fontstyle.Bold, Color: colorBrand, Top: 1.5}
	rows = append(rows,
		line.NewRow(1, props.Line{Color: colorBrand, Thickness: 0.4}),
		row.New(8).Add(
			col.New(8).Add(text.New(fmt.Sprintf("Total pago no ano-calendário %d", data.Year), withAlign(total, align.Left))),
			col.New(4).Add(text.New(data.Total, withAlign(total, align.Right))),
		).WithStyle(&props.Cell{BackgroundColor: colorLight}),
	)
	return rows
}

func statementRow(data *domain.DeclarationData, issuer render.Issuer) core.Row {
	return row.New(34).Add(col.New(12).Add(text.New(
		render.Statement(data, issuer),
		props.Text{Size: 10, Align: align.Left, Top: 8},
	)))
}

func (r *Renderer) signatureRows() []core.Row {
	date := format.LongDate(r.now().In(r.location))
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(text.New(
			r.issuer.City+", "+date,
			props.Text{Size: 10, Align: align.Center, Top: 2},
		))),
	}
	if len(r.signature) > 0 {
		rows = append(rows, row.New(22).Add(
			col.New(4),
			image.NewFromBytesCol(4, r.signature, extension.Png, props.Rect{Percent: 100, Center: true}),
			col.New(4),
		))
	} else {
		rows = append(rows, row.New(22))
	}
	rows = append(rows,
		row.New(1).Add(col.New(3), line.NewCol(6, props.Line{Thickness: 0.3}), col.New(3)),
		row.New(6).Add(col.New(12).Add(text.New(r.issuer.LegalName, props.Text{
			Size: 10, Style: fontstyle.Bold, Align: align.Center, Top: 1,
		}))),
		row.New(5).Add(col.New(12).Add(text.New("CNPJ: "+r.issuer.CNPJ, props.Text{
			Size: 8, Align: align.Center, Color: colorGray,
		}))),
		row.New(5).Add(col.New(12).Add(text.New(r.issuer.Phone+"  |  "+r.issuer.Email, props.Text{
			Size: 8, Align: align.Center, Color: colorGray,
		}))),
	)
	return rows
}

func withAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}

func convertOrDrop(name string, img assets.Image) []byte {
	if !img.Present() {
		return nil
	}
	out, err := toPNG(img)
	if err != nil {
		log.Printf("[maroto] %s dropped: %v", name, err)
		return nil
	}
	return out
}

// toPNG decodes img (WebP or anything imaging understands), fits it inside
// the embed bounds and re-encodes it as PNG, the format maroto embeds best.
func toPNG(img assets.Image) ([]byte, error) {
	var (
		decoded stdimage.Image
		err     error
	)
	if img.MIME == "image/webp" {
		decoded, err = webp.Decode(bytes.NewReader(img.Data))
	} else {
		decoded, err = imaging.Decode(bytes.NewReader(img.Data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", img.MIME, err)
	}

	b := decoded.Bounds()
	if b.Dx() > maxImageWidth || b.Dy() > maxImageHeight {
		decoded = imaging.Fit(decoded, maxImageWidth, maxImageHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, decoded, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
