// Package render turns structured documents into PDF bytes for preview and
// court submission.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/andeslegal/cobranza/pkg/models"
)

const (
	pageMargin = 20.0
	bodySize   = 11.0
	titleSize  = 14.0
)

// newDoc creates a letter-format page with the house style.
func newDoc() (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	return pdf, tr
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.MultiCell(0, 8, tr(strings.ToUpper(title)), "", "C", false)
	pdf.Ln(4)
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, heading, body string) {
	if heading != "" {
		pdf.SetFont("Helvetica", "B", bodySize)
		pdf.MultiCell(0, 6, tr(heading), "", "L", false)
	}
	pdf.SetFont("Helvetica", "", bodySize)
	pdf.MultiCell(0, 6, tr(body), "", "J", false)
	pdf.Ln(3)
}

// Document renders a generated demand text or preliminary measure.
func Document(structure *models.DocumentStructure) ([]byte, error) {
	if structure == nil || structure.Title == "" {
		return nil, fmt.Errorf("document structure is empty")
	}

	pdf, tr := newDoc()
	writeTitle(pdf, tr, structure.Title)

	if structure.Preamble != "" {
		writeSection(pdf, tr, "", structure.Preamble)
	}
	for _, sec := range structure.Sections {
		writeSection(pdf, tr, sec.Heading, sec.Body)
	}
	if structure.Prayer != "" {
		writeSection(pdf, tr, "POR TANTO,", structure.Prayer)
	}

	return output(pdf)
}

// Suggestion renders a candidate response document by its type tag.
// Content whose variant does not match the tag yields ErrUnsupportedShape
// so callers can fall back to a "preview unavailable" state.
func Suggestion(name string, content *models.DocumentContent) ([]byte, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: no content", models.ErrUnsupportedShape)
	}

	pdf, tr := newDoc()
	writeTitle(pdf, tr, name)

	switch content.Type {
	case models.SuggestionResponse:
		if content.Response == nil {
			return nil, shapeMismatch(content.Type)
		}
		renderResponse(pdf, tr, content.Response)

	case models.SuggestionExceptionsResponse:
		if content.ExceptionsResponse == nil {
			return nil, shapeMismatch(content.Type)
		}
		renderExceptions(pdf, tr, content.ExceptionsResponse)

	case models.SuggestionCompromise:
		if content.Compromise == nil {
			return nil, shapeMismatch(content.Type)
		}
		renderCompromise(pdf, tr, content.Compromise)

	case models.SuggestionDemandCorrection:
		if content.DemandCorrection == nil {
			return nil, shapeMismatch(content.Type)
		}
		renderCorrection(pdf, tr, content.DemandCorrection)

	default:
		return nil, shapeMismatch(content.Type)
	}

	return output(pdf)
}

func shapeMismatch(t models.SuggestionType) error {
	return fmt.Errorf("%w: no %q variant present", models.ErrUnsupportedShape, t)
}

func renderResponse(pdf *fpdf.Fpdf, tr func(string) string, doc *models.ResponseContent) {
	if doc.Heading != "" {
		writeSection(pdf, tr, "", doc.Heading)
	}
	for i, arg := range doc.Arguments {
		writeSection(pdf, tr, fmt.Sprintf("%d.", i+1), arg)
	}
	if doc.Prayer != "" {
		writeSection(pdf, tr, "POR TANTO,", doc.Prayer)
	}
}

func renderExceptions(pdf *fpdf.Fpdf, tr func(string) string, doc *models.ExceptionsResponseContent) {
	for _, exc := range doc.Exceptions {
		writeSection(pdf, tr, exc.Title, exc.Argument)
	}
	if doc.Prayer != "" {
		writeSection(pdf, tr, "POR TANTO,", doc.Prayer)
	}
}

func renderCompromise(pdf *fpdf.Fpdf, tr func(string) string, doc *models.CompromiseContent) {
	for i, term := range doc.Terms {
		writeSection(pdf, tr, fmt.Sprintf("Cláusula %d", i+1), term)
	}
	if len(doc.Installments) > 0 {
		pdf.SetFont("Helvetica", "B", bodySize)
		pdf.MultiCell(0, 6, tr("Calendario de pagos"), "", "L", false)
		pdf.SetFont("Helvetica", "", bodySize)
		for _, inst := range doc.Installments {
			line := fmt.Sprintf("%s: $%d", inst.DueDate.Format("02-01-2006"), inst.Amount)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
	}
}

func renderCorrection(pdf *fpdf.Fpdf, tr func(string) string, doc *models.DemandCorrectionContent) {
	for _, corr := range doc.Corrections {
		writeSection(pdf, tr, corr.Reference,
			fmt.Sprintf("Donde dice: %q debe decir: %q", corr.Original, corr.Corrected))
	}
}

// FilingName builds the object-storage friendly filename for a rendered
// document.
func FilingName(kind models.DocKind, rol string) string {
	base := "demanda"
	if kind == models.DocKindPreliminary {
		base = "medida_prejudicial"
	}
	return fmt.Sprintf("%s_%s_%s.pdf", base, strings.ReplaceAll(rol, "/", "-"),
		time.Now().Format("20060102"))
}
