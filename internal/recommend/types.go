package recommend

import (
	"medrights-backend/internal/complaints"
	"medrights-backend/internal/directory"
	"medrights-backend/internal/legal"
)

// Step is one ordered action in the citizen's plan. Order is strictly
// increasing from 1 with no gaps.
type Step struct {
	Order         int                     `json:"order"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	AgencyLabel   string                  `json:"agencyLabel"`
	Documents     []string                `json:"documents,omitempty"`
	Links         []directory.ServiceLink `json:"links,omitempty"`
	EstimatedTime string                  `json:"estimatedTime,omitempty"`
}

// Escalation is the parallel-track referral to the public defender,
// reported separately from the ordinary secondary agencies.
type Escalation struct {
	Recommended bool              `json:"recommended"`
	Reason      string            `json:"reason,omitempty"`
	Agency      *directory.Agency `json:"agency,omitempty"`
}

// Recommendation is the final output of the pipeline: either every field
// is populated or the call fails, never a partial result.
type Recommendation struct {
	PrimaryAgency     directory.Agency   `json:"primaryAgency"`
	SecondaryAgencies []directory.Agency `json:"secondaryAgencies"`
	Steps             []Step             `json:"steps"`
	EstimatedTime     string             `json:"estimatedTime"`
	UrgencyLevel      complaints.Urgency `json:"urgencyLevel"`
	AdditionalInfo    string             `json:"additionalInfo"`
	LegalAnalysis     legal.Analysis     `json:"legalAnalysis"`
	Escalation        Escalation         `json:"escalationRecommendation"`
}
