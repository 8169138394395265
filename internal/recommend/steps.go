package recommend

import (
	"strings"

	"medrights-backend/internal/complaints"
	"medrights-backend/internal/directory"
	"medrights-backend/internal/legal"
)

// buildSteps assembles the ordered action plan: gather documents, an
// optional registration check, one step per routed agency (primary first,
// then each secondary, then the escalation track), and a closing
// follow-up step. Order is assigned sequentially after assembly.
func buildSteps(c complaints.MedicationComplaint, analysis legal.Analysis, primary directory.Agency, secondaries []directory.Agency, escalation Escalation) []Step {
	steps := make([]Step, 0, len(secondaries)+4)

	steps = append(steps, Step{
		Title:       "Reunir a documentação",
		Description: "Separe os documentos abaixo antes de registrar a reclamação; protocolos sem documentação completa costumam ser arquivados.",
		AgencyLabel: "Você",
		Documents:   mergeDocuments(analysis.RequiredDocuments, issueDocuments(c.IssueType)),
	})

	if c.IssueType == complaints.IssueQuality || c.IssueType == complaints.IssueAdverseReaction {
		steps = append(steps, Step{
			Title:       "Verificar o registro do medicamento",
			Description: "Consulte no portal da ANVISA se o medicamento possui registro ativo e se o lote consta de alguma interdição ou recolhimento.",
			AgencyLabel: "ANVISA",
			Links: []directory.ServiceLink{{
				Name:        "Consulta de medicamentos registrados",
				URL:         "https://consultas.anvisa.gov.br/#/medicamentos/",
				Description: "Verificação de registro e situação regulatória",
			}},
		})
	}

	steps = append(steps, agencyStep(primary, analysis.RecommendedProcedure))
	for _, agency := range secondaries {
		steps = append(steps, agencyStep(agency, ""))
	}
	if escalation.Recommended && escalation.Agency != nil {
		steps = append(steps, Step{
			Title:       "Acionar a " + escalation.Agency.Name,
			Description: escalation.Reason,
			AgencyLabel: escalation.Agency.Acronym,
			Documents:   escalation.Agency.RequiredDocuments,
			Links:       escalation.Agency.OnlineServices,
		})
	}

	steps = append(steps, Step{
		Title:       "Acompanhar o andamento",
		Description: "Guarde todos os números de protocolo e acompanhe cada órgão acionado; a ausência de resposta no prazo informado pode ser cobrada na ouvidoria.",
		AgencyLabel: "Você",
	})

	for i := range steps {
		steps[i].Order = i + 1
	}
	return steps
}

func agencyStep(agency directory.Agency, procedure string) Step {
	description := procedure
	if description == "" {
		description = "Registre a reclamação também neste órgão. " + agency.Description
	}
	return Step{
		Title:         "Registrar a reclamação: " + agency.Acronym,
		Description:   description,
		AgencyLabel:   agency.Acronym,
		Documents:     agency.RequiredDocuments,
		Links:         agency.OnlineServices,
		EstimatedTime: agency.ProcessingTimeEstimate,
	}
}

// issueDocuments lists extra documents worth gathering for specific issue
// types, merged into the first step on top of the legal analysis list.
func issueDocuments(issue complaints.IssueType) []string {
	switch issue {
	case complaints.IssueShortage:
		return []string{"Lista das unidades de saúde ou farmácias consultadas, com datas"}
	case complaints.IssueQuality:
		return []string{"Fotos do produto, da embalagem e do lote"}
	case complaints.IssueAdverseReaction:
		return []string{"Registro das datas de uso e dos sintomas apresentados"}
	case complaints.IssuePrice:
		return []string{"Orçamentos de pelo menos duas farmácias para comparação"}
	case complaints.IssueImport:
		return []string{"Comprovante de rastreamento e declaração de importação"}
	default:
		return nil
	}
}

// mergeDocuments unions the two lists preserving first-insertion order.
func mergeDocuments(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, doc := range append(append([]string(nil), base...), extra...) {
		trimmed := strings.TrimSpace(doc)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
