package formatter

import (
	"bytes"
	"fmt"

	"github.com/sparkquote/estimator-backend/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (mf *DOCXFormatter) Format(quote *entity.Quote) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(baseTitle)

	doc.AddParagraph().AddRun().AddText(quote.Description)
	doc.AddParagraph().AddRun().AddText(fmt.Sprintf("Hourly rate: £%.2f", quote.HourlyRate))

	for _, task := range quote.Tasks {
		jobPar := doc.AddParagraph()
		jobPar.SetStyle("Heading2")
		jobPar.AddRun().AddText(task.Job)

		doc.AddParagraph().AddRun().AddText(fmt.Sprintf("Labour: %s (%s), confidence %s",
			hours(task.TimeRange), money(task.CostRange.Labour), task.Confidence))

		for _, m := range task.Materials {
			line := "- " + m.Name
			if m.PriceRange != nil {
				line += " (" + money(*m.PriceRange) + ")"
			}
			doc.AddParagraph().AddRun().AddText(line)
		}

		doc.AddParagraph().AddRun().AddText("Total: " + money(task.CostRange.Total))
	}

	if quote.Totals != nil {
		totalsPar := doc.AddParagraph()
		totalsPar.SetStyle("Heading2")
		totalsPar.AddRun().AddText("Totals")

		doc.AddParagraph().AddRun().AddText("Time: " + hours(quote.Totals.Hours))
		doc.AddParagraph().AddRun().AddText("Labour: " + money(quote.Totals.Labour))
		doc.AddParagraph().AddRun().AddText("Materials: " + money(quote.Totals.Materials))
		doc.AddParagraph().AddRun().AddText("Grand total: " + money(quote.Totals.Total))
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (mf *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
