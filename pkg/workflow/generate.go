package workflow

import (
	"fmt"
	"strings"

	"github.com/andeslegal/cobranza/pkg/models"
)

// ordinals for the otrosí headings of a Chilean filing.
var otrosiOrdinals = []string{
	"PRIMER", "SEGUNDO", "TERCER", "CUARTO", "QUINTO",
	"SEXTO", "SÉPTIMO", "OCTAVO", "NOVENO", "DÉCIMO",
}

// BuildStructure deterministically assembles the document structure from
// the structured input. Identical input always yields an identical
// structure; all variability lives in the input itself.
func BuildStructure(kind models.DocKind, input *models.DemandInput) *models.DocumentStructure {
	structure := &models.DocumentStructure{
		Kind:     kind,
		Title:    title(kind),
		Preamble: preamble(input),
	}

	if sec := partiesSection(input); sec != nil {
		structure.Sections = append(structure.Sections, *sec)
	}
	if sec := debtsSection(input); sec != nil {
		structure.Sections = append(structure.Sections, *sec)
	}
	if input.ContextText != "" {
		structure.Sections = append(structure.Sections, models.Section{
			Heading: "Antecedentes adicionales",
			Body:    input.ContextText,
		})
	}
	for i, req := range input.ExtraRequests {
		ordinal := "OTROSÍ"
		if i < len(otrosiOrdinals) {
			ordinal = otrosiOrdinals[i] + " OTROSÍ"
		}
		structure.Sections = append(structure.Sections, models.Section{
			Heading: ordinal + ":",
			Body:    req,
		})
	}

	structure.Prayer = prayer(kind, input)
	return structure
}

func title(kind models.DocKind) string {
	if kind == models.DocKindPreliminary {
		return "Medida prejudicial precautoria"
	}
	return "Demanda ejecutiva de cobro de pesos"
}

func preamble(input *models.DemandInput) string {
	var b strings.Builder
	b.WriteString("EN LO PRINCIPAL: ")
	b.WriteString("demanda que indica; EN EL OTROSÍ: acompaña documentos.\n")
	if input.Court != "" {
		b.WriteString("S.J.L. en lo Civil de " + input.Court + ".")
	}
	return b.String()
}

func partiesSection(input *models.DemandInput) *models.Section {
	if len(input.Parties) == 0 {
		return nil
	}
	lines := make([]string, 0, len(input.Parties))
	for _, p := range input.Parties {
		lines = append(lines, fmt.Sprintf("%s (%s), RUT %s", p.Name, roleLabel(p.Role), p.RUT))
	}
	return &models.Section{
		Heading: "I. De las partes",
		Body:    strings.Join(lines, "\n"),
	}
}

func debtsSection(input *models.DemandInput) *models.Section {
	if len(input.Debts) == 0 {
		return nil
	}
	lines := make([]string, 0, len(input.Debts))
	for i, d := range input.Debts {
		line := fmt.Sprintf("%d. %s por $%d %s", i+1, d.Instrument, d.Amount, d.Currency)
		if d.DueDate != nil {
			line += ", con vencimiento al " + d.DueDate.Format("02-01-2006")
		}
		lines = append(lines, line)
	}
	return &models.Section{
		Heading: "II. De los títulos y la deuda",
		Body:    strings.Join(lines, "\n"),
	}
}

func prayer(kind models.DocKind, input *models.DemandInput) string {
	var total int64
	for _, d := range input.Debts {
		total += d.Amount
	}
	if kind == models.DocKindPreliminary {
		return "RUEGO A US. decretar la medida prejudicial precautoria solicitada, con costas."
	}
	return fmt.Sprintf(
		"RUEGO A US. tener por interpuesta demanda ejecutiva, despachar mandamiento de ejecución y embargo por $%d, y ordenar seguir la ejecución adelante hasta el entero y cumplido pago, con costas.",
		total)
}

func roleLabel(role models.PartyRole) string {
	switch role {
	case models.RolePlaintiff:
		return "demandante"
	case models.RoleSponsoringAttorney:
		return "abogado patrocinante"
	case models.RoleDefendant:
		return "demandado"
	case models.RoleRepresentative:
		return "representante legal"
	default:
		return string(role)
	}
}
