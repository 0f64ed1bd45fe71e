package formatter

import (
	"fmt"
	"strings"

	"github.com/sparkquote/estimator-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(quote *entity.Quote) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", baseTitle)
	fmt.Fprintf(&b, "%s\n\n", quote.Description)
	fmt.Fprintf(&b, "Hourly rate: £%.2f\n\n", quote.HourlyRate)

	for _, task := range quote.Tasks {
		fmt.Fprintf(&b, "## %s\n\n", task.Job)
		fmt.Fprintf(&b, "- Confidence: %s\n", task.Confidence)
		fmt.Fprintf(&b, "- Labour: %s (%s)\n", hours(task.TimeRange), money(task.CostRange.Labour))
		if len(task.Materials) > 0 {
			b.WriteString("- Materials:\n")
			for _, m := range task.Materials {
				if m.PriceRange != nil {
					fmt.Fprintf(&b, "  - %s (%s)\n", m.Name, money(*m.PriceRange))
				} else {
					fmt.Fprintf(&b, "  - %s\n", m.Name)
				}
			}
		}
		fmt.Fprintf(&b, "- Total: %s\n\n", money(task.CostRange.Total))
	}

	if quote.Totals != nil {
		b.WriteString("## Totals\n\n")
		fmt.Fprintf(&b, "- Time: %s\n", hours(quote.Totals.Hours))
		fmt.Fprintf(&b, "- Labour: %s\n", money(quote.Totals.Labour))
		fmt.Fprintf(&b, "- Materials: %s\n", money(quote.Totals.Materials))
		fmt.Fprintf(&b, "- Grand total: %s\n", money(quote.Totals.Total))
	}

	return []byte(b.String()), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
