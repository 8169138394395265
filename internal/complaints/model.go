package complaints

import (
	"fmt"
	"strings"
)

// IssueType classifies the medication-access problem being reported.
// The enumeration is closed: values outside it are rejected, never defaulted.
type IssueType string

const (
	IssueShortage        IssueType = "shortage"
	IssueQuality         IssueType = "quality"
	IssueAdverseReaction IssueType = "adverse_reaction"
	IssueRegistration    IssueType = "registration"
	IssuePrice           IssueType = "price"
	IssueAccessibility   IssueType = "accessibility"
	IssueImport          IssueType = "import"
	IssueOther           IssueType = "other"
)

// IssueTypes returns every valid issue type in a fixed order.
func IssueTypes() []IssueType {
	return []IssueType{
		IssueShortage,
		IssueQuality,
		IssueAdverseReaction,
		IssueRegistration,
		IssuePrice,
		IssueAccessibility,
		IssueImport,
		IssueOther,
	}
}

// ParseIssueType converts raw user input into an IssueType.
func ParseIssueType(raw string) (IssueType, error) {
	candidate := IssueType(strings.ToLower(strings.TrimSpace(raw)))
	for _, it := range IssueTypes() {
		if candidate == it {
			return it, nil
		}
	}
	return "", fmt.Errorf("%w: unknown issue type %q", ErrInvalid, raw)
}

// Valid reports whether the issue type is part of the closed enumeration.
func (it IssueType) Valid() bool {
	for _, known := range IssueTypes() {
		if it == known {
			return true
		}
	}
	return false
}

// Urgency is the severity level of a complaint, ordered low to emergency.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

// Urgencies returns every valid urgency level ordered by severity.
func Urgencies() []Urgency {
	return []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency}
}

// ParseUrgency converts raw user input into an Urgency.
func ParseUrgency(raw string) (Urgency, error) {
	candidate := Urgency(strings.ToLower(strings.TrimSpace(raw)))
	for _, u := range Urgencies() {
		if candidate == u {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: unknown urgency %q", ErrInvalid, raw)
}

// Valid reports whether the urgency is part of the closed enumeration.
func (u Urgency) Valid() bool {
	for _, known := range Urgencies() {
		if u == known {
			return true
		}
	}
	return false
}

// Rank maps urgency to its position in the severity order, starting at 1.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyEmergency:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	default:
		return 1
	}
}

// Critical reports whether the urgency justifies expedited handling.
func (u Urgency) Critical() bool {
	return u == UrgencyHigh || u == UrgencyEmergency
}

// PatientAttributes carries the patient flags the engines branch on.
type PatientAttributes struct {
	HasChronicCondition bool `json:"hasChronicCondition"`
	IsPregnant          bool `json:"isPregnant"`
	IsCitizen           bool `json:"isCitizen"`
}

// DefaultPatientAttributes returns the attribute set assumed when the
// caller supplies none: a citizen with no flagged conditions.
func DefaultPatientAttributes() PatientAttributes {
	return PatientAttributes{IsCitizen: true}
}

// Location is carried through for presentation and directory lookups;
// the engines do not branch on it.
type Location struct {
	State string `json:"state"`
	City  string `json:"city"`
}

// MedicationComplaint is the immutable input to the analysis pipeline.
type MedicationComplaint struct {
	MedicationName string            `json:"medicationName"`
	IssueType      IssueType         `json:"issueType"`
	Urgency        Urgency           `json:"urgency"`
	Description    string            `json:"description"`
	Patient        PatientAttributes `json:"patientAttributes"`
	Location       Location          `json:"location"`
}

// Validate checks the complaint against the closed enumerations and
// required fields. All violations are ErrInvalid.
func (c MedicationComplaint) Validate() error {
	if strings.TrimSpace(c.MedicationName) == "" {
		return fmt.Errorf("%w: medicationName is required", ErrInvalid)
	}
	if !c.IssueType.Valid() {
		return fmt.Errorf("%w: unknown issue type %q", ErrInvalid, c.IssueType)
	}
	if !c.Urgency.Valid() {
		return fmt.Errorf("%w: unknown urgency %q", ErrInvalid, c.Urgency)
	}
	return nil
}
