package legal

import (
	"fmt"

	"medrights-backend/internal/complaints"
	"medrights-backend/internal/directory"
)

// Analysis is the outcome of the legal evaluation of one complaint.
// Immutable once computed.
type Analysis struct {
	HasRight             bool     `json:"hasRight"`
	LegalBasis           []string `json:"legalBasis"`
	Reasoning            string   `json:"reasoning"`
	RequiredDocuments    []string `json:"requiredDocuments"`
	CompetentAgencyID    string   `json:"competentAgencyId"`
	RecommendedProcedure string   `json:"recommendedProcedure"`
	UrgencyJustification string   `json:"urgencyJustification,omitempty"`
}

// Analyze decides whether the complaint is backed by a legal right, which
// statutes support it and which agency has primary jurisdiction. Pure: no
// I/O, no randomness, no clock reads.
func Analyze(c complaints.MedicationComplaint) (Analysis, error) {
	if err := c.Validate(); err != nil {
		return Analysis{}, err
	}

	var out Analysis
	switch c.IssueType {
	case complaints.IssueShortage:
		out = analyzeShortage(c)
	case complaints.IssueQuality:
		out = analyzeQuality()
	case complaints.IssueAdverseReaction:
		out = analyzeAdverseReaction()
	case complaints.IssueRegistration:
		out = analyzeRegistration()
	case complaints.IssuePrice:
		out = analyzePrice()
	case complaints.IssueAccessibility:
		out = analyzeAccessibility()
	case complaints.IssueImport:
		out = analyzeImport()
	case complaints.IssueOther:
		out = analyzeOther()
	default:
		return Analysis{}, fmt.Errorf("%w: no handler for issue type %q", complaints.ErrInvalid, c.IssueType)
	}

	out.UrgencyJustification = urgencyJustification(c.Urgency)
	return out, nil
}

// urgencyJustification is a function of the urgency level, not a boolean:
// high and emergency must yield distinguishable text, and lower levels none.
func urgencyJustification(u complaints.Urgency) string {
	switch u {
	case complaints.UrgencyEmergency:
		return "Situação de emergência: o risco imediato à saúde exige resposta em até 72 horas e autoriza pedido de tutela de urgência (liminar) perante o Judiciário."
	case complaints.UrgencyHigh:
		return "Urgência alta: a demora no fornecimento pode agravar o quadro clínico, o que justifica tramitação prioritária nos órgãos competentes."
	default:
		return ""
	}
}

func analyzeShortage(c complaints.MedicationComplaint) Analysis {
	if !c.Patient.IsCitizen {
		return Analysis{
			HasRight: false,
			Reasoning: "O direito subjetivo ao fornecimento pelo SUS pressupõe vínculo de cidadania ou residência. " +
				"Estrangeiros não residentes podem, contudo, buscar atendimento humanitário com base em tratados internacionais " +
				"de direitos humanos ratificados pelo Brasil e em acordos bilaterais de saúde.",
			RequiredDocuments: []string{
				"Passaporte ou documento de viagem",
				"Receita médica válida",
				"Comprovante da tentativa de obtenção do medicamento",
			},
			CompetentAgencyID:    directory.AgencyHealthMinistry,
			RecommendedProcedure: "Procurar a ouvidoria do SUS e o consulado do país de origem para orientação sobre atendimento humanitário.",
		}
	}
	return Analysis{
		HasRight: true,
		LegalBasis: []string{
			"Constituição Federal, art. 196 — a saúde é direito de todos e dever do Estado",
			"Lei 8.080/1990 (Lei Orgânica do SUS), art. 6º, I, d — assistência terapêutica integral, inclusive farmacêutica",
			"Decreto 7.508/2011 — acesso universal e igualitário à assistência farmacêutica (RENAME)",
		},
		Reasoning: "O desabastecimento de medicamento essencial não afasta o dever estatal de fornecimento. " +
			"Havendo prescrição médica, o cidadão pode exigir o medicamento da rede pública ou substituto terapêutico equivalente.",
		RequiredDocuments: []string{
			"Receita médica válida",
			"Negativa de fornecimento por escrito (declaração de indisponibilidade)",
			"Documento de identidade e CPF",
			"Comprovante de residência",
		},
		CompetentAgencyID:    directory.AgencyHealthMinistry,
		RecommendedProcedure: "Registrar a falta na ouvidoria do SUS (136) e na secretaria de saúde do município, exigindo protocolo.",
	}
}

func analyzeQuality() Analysis {
	return Analysis{
		HasRight: true,
		LegalBasis: []string{
			"Lei 6.360/1976 — vigilância sanitária de medicamentos e padrões de qualidade",
			"Código de Defesa do Consumidor (Lei 8.078/1990), art. 18 — responsabilidade por vício do produto",
			"Lei 9.782/1999 — competência fiscalizatória da ANVISA",
		},
		Reasoning: "Desvio de qualidade (alteração de cor, odor, corpo estranho, embalagem violada) configura queixa técnica " +
			"de notificação obrigatória e vício do produto na relação de consumo.",
		RequiredDocuments: []string{
			"Nome comercial, lote e validade do medicamento",
			"Nota fiscal ou comprovante de compra",
			"Fotos do produto e da embalagem",
			"Produto ou embalagem preservados para perícia, se disponíveis",
		},
		CompetentAgencyID:    directory.AgencyANVISA,
		RecommendedProcedure: "Notificar a queixa técnica no Notivisa e guardar o produto sem descartá-lo.",
	}
}

func analyzeAdverseReaction() Analysis {
	return Analysis{
		HasRight: true,
		LegalBasis: []string{
			"Lei 9.782/1999 — farmacovigilância sob competência da ANVISA",
			"RDC 4/2009 — normas de farmacovigilância para detentores de registro",
			"Constituição Federal, art. 196 — proteção à saúde",
		},
		Reasoning: "Evento adverso a medicamento deve ser notificado à autoridade sanitária para avaliação de risco, " +
			"e o paciente tem direito a acompanhamento e informação sobre o produto.",
		RequiredDocuments: []string{
			"Laudo ou relatório médico descrevendo a reação",
			"Nome comercial, lote e validade do medicamento",
			"Bula e embalagem, se disponíveis",
		},
		CompetentAgencyID:    directory.AgencyANVISA,
		RecommendedProcedure: "Notificar o evento adverso no Notivisa e procurar o serviço de saúde para registro clínico.",
	}
}

func analyzeRegistration() Analysis {
	return Analysis{
		HasRight: true,
		LegalBasis: []string{
			"Lei 6.360/1976, art. 12 — obrigatoriedade de registro de medicamentos",
			"Lei 9.782/1999 — competência da ANVISA para registro e regularização",
		},
		Reasoning: "Questões de registro (produto sem registro, registro cancelado ou suspenso) são de competência exclusiva " +
			"da autoridade sanitária federal e podem ser verificadas e denunciadas por qualquer cidadão.",
		RequiredDocuments: []string{
			"Nome comercial e fabricante do medicamento",
			"Número de registro informado na embalagem, se houver",
			"Local e forma de aquisição do produto",
		},
		CompetentAgencyID:    directory.AgencyANVISA,
		RecommendedProcedure: "Consultar a situação do registro no portal da ANVISA e protocolar denúncia na ouvidoria.",
	}
}

func analyzePrice() Analysis {
	return Analysis{
		HasRight: true,
		LegalBasis: []string{
			"Código de Defesa do Consumidor (Lei 8.078/1990), art. 39, V — vedação à vantagem manifestamente excessiva",
			"Lei 10.742/2003 — regulação de preços de medicamentos pela CMED",
			"Lei 10.858/2004 — Programa Farmácia Popular do Brasil",
		},
		Reasoning: "Medicamentos têm preço máximo regulado pela CMED. Cobrança acima da tabela ou elevação abusiva " +
			"configura infração à ordem econômica e à relação de consumo; programas subsidiados podem reduzir o custo.",
		RequiredDocuments: []string{
			"Nota fiscal ou orçamento com o preço cobrado",
			"Dados do estabelecimento",
			"Receita médica, quando exigida para a compra",
		},
		CompetentAgencyID:    directory.AgencyCMED,
		RecommendedProcedure: "Comparar o preço com a tabela da CMED, denunciar a cobrança acima do teto e verificar a disponibilidade na Farmácia Popular.",
	}
}

func analyzeAccessibility() Analysis {
	return Analysis{
		HasRight: true,
		LegalBasis: []string{
			"Constituição Federal, art. 196 — acesso universal e igualitário às ações e serviços de saúde",
			"Lei 8.080/1990, art. 7º — universalidade e integralidade da assistência",
			"Decreto 7.508/2011 — organização do acesso à assistência farmacêutica",
		},
		Reasoning: "Barreiras de acesso (distância, fila, exigência indevida de documentos, recusa de atendimento) violam a " +
			"universalidade do SUS e devem ser corrigidas pelo gestor de saúde competente.",
		RequiredDocuments: []string{
			"Receita médica válida",
			"Cartão Nacional de Saúde (CNS)",
			"Relato da barreira de acesso com data e local",
		},
		CompetentAgencyID:    directory.AgencyHealthMinistry,
		RecommendedProcedure: "Registrar manifestação na Ouvidoria-Geral do SUS detalhando a barreira enfrentada.",
	}
}

func analyzeImport() Analysis {
	return Analysis{
		HasRight: true,
		LegalBasis: []string{
			"RDC 81/2008 — regulamento de importação de bens e produtos para a saúde",
			"Lei 9.782/1999 — anuência da ANVISA em importações sujeitas a vigilância sanitária",
		},
		Reasoning: "A importação de medicamento para uso próprio é admitida mediante prescrição e anuência sanitária; " +
			"retenções e exigências podem ser questionadas administrativamente.",
		RequiredDocuments: []string{
			"Receita médica com justificativa clínica",
			"Documentação da importação (invoice, rastreamento)",
			"Termo de responsabilidade de uso próprio",
		},
		CompetentAgencyID:    directory.AgencyANVISA,
		RecommendedProcedure: "Protocolar petição de liberação junto à ANVISA com a documentação da importação.",
	}
}

func analyzeOther() Analysis {
	return Analysis{
		HasRight: true,
		LegalBasis: []string{
			"Constituição Federal, art. 196 — proteção geral do direito à saúde",
			"Lei 9.782/1999 — competência residual da vigilância sanitária federal",
		},
		Reasoning: "O relato não se enquadra nas categorias específicas e exige triagem caso a caso; a via sanitária federal " +
			"é o ponto de entrada adequado para encaminhamento ao órgão competente.",
		RequiredDocuments: []string{
			"Relato detalhado do problema",
			"Documentos relacionados ao medicamento (receita, nota fiscal, embalagem)",
		},
		CompetentAgencyID:    directory.AgencyANVISA,
		RecommendedProcedure: "Registrar o relato na ouvidoria da ANVISA para triagem e redirecionamento.",
	}
}
