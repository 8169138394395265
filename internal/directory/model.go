package directory

import "medrights-backend/internal/complaints"

// Well-known agency ids. The engines reference these directly, so the
// directory refuses to load unless all of them are present.
const (
	AgencyANVISA         = "anvisa"
	AgencyCMED           = "cmed"
	AgencyPROCON         = "procon"
	AgencyHealthMinistry = "ministerio-da-saude"
	AgencyProsecutor     = "ministerio-publico"
	AgencyPublicDefender = "defensoria-publica"
)

// Contact holds how a citizen can reach an agency.
type Contact struct {
	Website string `json:"website" yaml:"website"`
	Phone   string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

// ServiceLink is an online service offered by an agency.
type ServiceLink struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	IsPrimary   bool   `json:"isPrimary" yaml:"isPrimary"`
}

// Agency is one oversight body in the directory. Read-only after load.
type Agency struct {
	ID                     string                 `json:"id" yaml:"id"`
	Name                   string                 `json:"name" yaml:"name"`
	Acronym                string                 `json:"acronym" yaml:"acronym"`
	Description            string                 `json:"description" yaml:"description"`
	Responsibilities       []string               `json:"responsibilities" yaml:"responsibilities"`
	JurisdictionTags       []complaints.IssueType `json:"jurisdictionTags" yaml:"jurisdictionTags"`
	RequiredDocuments      []string               `json:"requiredDocuments" yaml:"requiredDocuments"`
	ProcessingTimeEstimate string                 `json:"processingTimeEstimate" yaml:"processingTimeEstimate"`
	Contact                Contact                `json:"contact" yaml:"contact"`
	OnlineServices         []ServiceLink          `json:"onlineServices" yaml:"onlineServices"`
}

// CoversIssue reports whether the agency can receive complaints of the
// given issue type.
func (a Agency) CoversIssue(issue complaints.IssueType) bool {
	for _, tag := range a.JurisdictionTags {
		if tag == issue {
			return true
		}
	}
	return false
}
