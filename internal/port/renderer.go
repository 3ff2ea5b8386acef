package port

import (
	"context"

	"irpfdecl/internal/domain"
)

// PDFOptions controls page setup for HTML to PDF conversion.
type PDFOptions struct {
	PageSize        string // "A4"
	PrintBackground bool
	MarginTopMM     float64
	MarginRightMM   float64
	MarginBottomMM  float64
	MarginLeftMM    float64
}

// PDFEngine converts a complete HTML document into PDF bytes.
type PDFEngine interface {
	Render(ctx context.Context, html string, opts PDFOptions) ([]byte, error)
}

// DeclarationRenderer produces the declaration PDF for prepared data.
type DeclarationRenderer interface {
	Render(ctx context.Context, data *domain.DeclarationData) ([]byte, error)
}
