package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeslegal/cobranza/pkg/models"
)

func TestDocument(t *testing.T) {
	structure := &models.DocumentStructure{
		Kind:     models.DocKindDemand,
		Title:    "Demanda ejecutiva de cobro de pesos",
		Preamble: "En lo principal: demanda ejecutiva; primer otrosí: acompaña documentos.",
		Sections: []models.Section{
			{Heading: "I. Antecedentes", Body: "El deudor suscribió tres pagarés a la vista."},
			{Heading: "II. El derecho", Body: "Conforme al artículo 434 del Código de Procedimiento Civil."},
		},
		Prayer: "Ruego a US. tener por interpuesta la demanda.",
	}

	pdf, err := Document(structure)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 500, "rendered pdf should have real content")
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestDocument_Empty(t *testing.T) {
	_, err := Document(nil)
	assert.Error(t, err)

	_, err = Document(&models.DocumentStructure{})
	assert.Error(t, err)
}

func TestSuggestion_AllTypes(t *testing.T) {
	cases := []struct {
		name    string
		content *models.DocumentContent
	}{
		{
			name: "response",
			content: &models.DocumentContent{
				Type: models.SuggestionResponse,
				Response: &models.ResponseContent{
					Heading:   "Contesta demanda",
					Arguments: []string{"La deuda se encuentra pagada.", "Los pagarés están prescritos."},
					Prayer:    "Rechazar la demanda en todas sus partes.",
				},
			},
		},
		{
			name: "exceptions_response",
			content: &models.DocumentContent{
				Type: models.SuggestionExceptionsResponse,
				ExceptionsResponse: &models.ExceptionsResponseContent{
					Exceptions: []models.Exception{
						{Title: "Excepción de pago", Argument: "Consta de los comprobantes acompañados."},
					},
					Prayer: "Acoger las excepciones opuestas.",
				},
			},
		},
		{
			name: "compromise",
			content: &models.DocumentContent{
				Type: models.SuggestionCompromise,
				Compromise: &models.CompromiseContent{
					Terms: []string{"El deudor pagará en seis cuotas mensuales."},
					Installments: []models.Installment{
						{DueDate: time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), Amount: 250_000},
					},
				},
			},
		},
		{
			name: "demand_text_correction",
			content: &models.DocumentContent{
				Type: models.SuggestionDemandCorrection,
				DemandCorrection: &models.DemandCorrectionContent{
					Corrections: []models.Correction{
						{Reference: "Punto II", Original: "1.500.000", Corrected: "2.500.000"},
					},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pdf, err := Suggestion("Escrito sugerido", tc.content)
			require.NoError(t, err)
			assert.Equal(t, "%PDF", string(pdf[:4]))
		})
	}
}

func TestSuggestion_ShapeMismatchFallsBack(t *testing.T) {
	// Declared response, but carries a compromise variant.
	bad := &models.DocumentContent{
		Type:       models.SuggestionResponse,
		Compromise: &models.CompromiseContent{Terms: []string{"x"}},
	}
	_, err := Suggestion("Escrito", bad)
	assert.ErrorIs(t, err, models.ErrUnsupportedShape)

	_, err = Suggestion("Escrito", nil)
	assert.ErrorIs(t, err, models.ErrUnsupportedShape)

	_, err = Suggestion("Escrito", &models.DocumentContent{Type: models.SuggestionOther})
	assert.ErrorIs(t, err, models.ErrUnsupportedShape)
}

func TestDecodeDocumentContent_Boundary(t *testing.T) {
	raw := json.RawMessage(`{"heading":"Contesta","arguments":["pagada"],"prayer":"rechazar"}`)

	content, err := models.DecodeDocumentContent(models.SuggestionResponse, raw)
	require.NoError(t, err)
	require.NotNil(t, content.Response)
	assert.Equal(t, "Contesta", content.Response.Heading)

	// Same payload under the wrong tag fails validation once, at the boundary.
	_, err = models.DecodeDocumentContent(models.SuggestionCompromise, raw)
	assert.ErrorIs(t, err, models.ErrUnsupportedShape)

	_, err = models.DecodeDocumentContent(models.SuggestionOther, raw)
	assert.ErrorIs(t, err, models.ErrUnsupportedShape)

	_, err = models.DecodeDocumentContent("bogus", raw)
	assert.ErrorIs(t, err, models.ErrUnsupportedShape)

	_, err = models.DecodeDocumentContent(models.SuggestionResponse, nil)
	assert.ErrorIs(t, err, models.ErrUnsupportedShape)
}

func TestFilingName(t *testing.T) {
	name := FilingName(models.DocKindDemand, "C-1234-2026")
	assert.Contains(t, name, "demanda_C-1234-2026")
	assert.Contains(t, FilingName(models.DocKindPreliminary, "C-1/2026"), "medida_prejudicial_C-1-2026")
}
