package formatter

import (
	"fmt"

	"github.com/sparkquote/estimator-backend/internal/entity"
)

const baseTitle = "Quote Breakdown"

type Formatter interface {
	Format(quote *entity.Quote) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.DocumentFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func money(r entity.Range) string {
	if r.Min == r.Max {
		return fmt.Sprintf("£%.2f", r.Min)
	}
	return fmt.Sprintf("£%.2f - £%.2f", r.Min, r.Max)
}

func hours(r entity.Range) string {
	if r.Min == r.Max {
		return fmt.Sprintf("%.2f hours", r.Min)
	}
	return fmt.Sprintf("%.2f - %.2f hours", r.Min, r.Max)
}
