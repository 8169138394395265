package recommend

import (
	"fmt"
	"strings"

	"medrights-backend/internal/complaints"
	"medrights-backend/internal/directory"
	"medrights-backend/internal/legal"
)

// Build composes the full recommendation for one complaint. Deterministic:
// identical inputs yield structurally identical output. Any dangling agency
// reference fails the whole call with directory.ErrConfiguration.
func Build(c complaints.MedicationComplaint, analysis legal.Analysis, dir *directory.Directory) (Recommendation, error) {
	primary, err := dir.Get(analysis.CompetentAgencyID)
	if err != nil {
		return Recommendation{}, fmt.Errorf("resolve primary agency: %w", err)
	}

	secondaries, err := secondaryAgencies(c, primary, dir)
	if err != nil {
		return Recommendation{}, err
	}

	escalation, err := evaluateEscalation(c, analysis, dir)
	if err != nil {
		return Recommendation{}, err
	}

	return Recommendation{
		PrimaryAgency:     primary,
		SecondaryAgencies: secondaries,
		Steps:             buildSteps(c, analysis, primary, secondaries, escalation),
		EstimatedTime:     estimatedTime(c.Urgency, primary),
		UrgencyLevel:      c.Urgency,
		AdditionalInfo:    additionalInfo(c, analysis),
		LegalAnalysis:     analysis,
		Escalation:        escalation,
	}, nil
}

// secondaryAgencies evaluates the fixed rule set independently and unions
// the results, de-duplicated by id in first-insertion order. The primary
// agency is never included.
func secondaryAgencies(c complaints.MedicationComplaint, primary directory.Agency, dir *directory.Directory) ([]directory.Agency, error) {
	var candidateIDs []string

	switch c.IssueType {
	case complaints.IssuePrice, complaints.IssueQuality, complaints.IssueAccessibility:
		candidateIDs = append(candidateIDs, directory.AgencyPROCON)
	}
	switch c.IssueType {
	case complaints.IssueShortage, complaints.IssueAccessibility:
		candidateIDs = append(candidateIDs, directory.AgencyHealthMinistry)
	}
	if c.Urgency.Critical() {
		candidateIDs = append(candidateIDs, directory.AgencyProsecutor)
	}

	seen := map[string]bool{primary.ID: true}
	out := make([]directory.Agency, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if seen[id] {
			continue
		}
		agency, err := dir.Get(id)
		if err != nil {
			return nil, fmt.Errorf("resolve secondary agency: %w", err)
		}
		seen[id] = true
		out = append(out, agency)
	}
	return out, nil
}

// evaluateEscalation decides the parallel referral to the public defender.
// The reason is chosen by fixed priority: confirmed right, then emergency,
// then vulnerable patient, then the generic fallback. Multiple conditions
// can hold at once; the first match wins.
func evaluateEscalation(c complaints.MedicationComplaint, analysis legal.Analysis, dir *directory.Directory) (Escalation, error) {
	vulnerable := (c.IssueType == complaints.IssueAccessibility && c.Patient.HasChronicCondition) ||
		(c.IssueType == complaints.IssueShortage && c.Patient.IsPregnant)
	recommended := analysis.HasRight ||
		c.Urgency.Critical() ||
		vulnerable ||
		c.IssueType == complaints.IssueShortage ||
		c.IssueType == complaints.IssueAccessibility

	if !recommended {
		return Escalation{}, nil
	}

	agency, err := dir.Get(directory.AgencyPublicDefender)
	if err != nil {
		return Escalation{}, fmt.Errorf("resolve escalation agency: %w", err)
	}

	var reason string
	switch {
	case analysis.HasRight:
		reason = "Seus direitos foram confirmados na análise legal; a Defensoria Pública pode exigir judicialmente o cumprimento, em paralelo à via administrativa."
	case c.Urgency == complaints.UrgencyEmergency:
		reason = "A situação de emergência justifica acionar imediatamente a Defensoria Pública para pedido de liminar, sem aguardar a resposta dos órgãos administrativos."
	case vulnerable:
		reason = "Pacientes em situação de vulnerabilidade (condição crônica ou gestação) têm atendimento prioritário na Defensoria Pública."
	default:
		reason = "A Defensoria Pública oferece orientação jurídica gratuita e pode acompanhar o caso desde o início."
	}

	return Escalation{Recommended: true, Reason: reason, Agency: &agency}, nil
}

// estimatedTime resolves the overall estimate by urgency: critical levels
// override the primary agency's stated processing time.
func estimatedTime(u complaints.Urgency, primary directory.Agency) string {
	switch u {
	case complaints.UrgencyEmergency:
		return "24 a 72 horas (tramitação emergencial)"
	case complaints.UrgencyHigh:
		return "5 a 10 dias úteis (tramitação prioritária)"
	default:
		return primary.ProcessingTimeEstimate
	}
}

// additionalInfo concatenates independent clauses in a fixed order. Each
// clause is fully present or fully absent.
func additionalInfo(c complaints.MedicationComplaint, analysis legal.Analysis) string {
	var clauses []string

	if analysis.HasRight {
		clauses = append(clauses, "Seu direito ao medicamento tem respaldo na legislação vigente.")
	} else {
		clauses = append(clauses, "Não foi identificado direito subjetivo claro, mas existem caminhos alternativos de atendimento.")
	}
	if c.Patient.HasChronicCondition {
		clauses = append(clauses, "Por se tratar de condição crônica, o fornecimento contínuo não pode ser interrompido.")
	}
	if c.Patient.IsPregnant {
		clauses = append(clauses, "Gestantes têm prioridade legal de atendimento em toda a rede de saúde.")
	}
	if c.Urgency == complaints.UrgencyEmergency {
		clauses = append(clauses, "Em caso de emergência, procure também a Defensoria Pública para medida judicial imediata.")
	}
	if !c.Patient.IsCitizen {
		clauses = append(clauses, "Estrangeiros não residentes podem buscar atendimento humanitário com apoio do consulado.")
	}
	if len(analysis.LegalBasis) > 0 {
		clauses = append(clauses, "Base legal principal: "+analysis.LegalBasis[0]+".")
	}

	return strings.Join(clauses, " ")
}
