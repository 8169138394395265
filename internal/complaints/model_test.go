package complaints

import (
	"errors"
	"testing"
)

func TestParseIssueType(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    IssueType
		wantErr bool
	}{
		{name: "exact", raw: "shortage", want: IssueShortage},
		{name: "mixed_case", raw: " Adverse_Reaction ", want: IssueAdverseReaction},
		{name: "unknown", raw: "billing", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIssueType(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.raw)
				}
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseUrgencyRejectsUnknown(t *testing.T) {
	if _, err := ParseUrgency("critical"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestUrgencyRankOrdering(t *testing.T) {
	levels := Urgencies()
	for i := 1; i < len(levels); i++ {
		if levels[i].Rank() <= levels[i-1].Rank() {
			t.Fatalf("expected %q to rank above %q", levels[i], levels[i-1])
		}
	}
}

func TestUrgencyCritical(t *testing.T) {
	if UrgencyLow.Critical() || UrgencyMedium.Critical() {
		t.Fatalf("low and medium must not be critical")
	}
	if !UrgencyHigh.Critical() || !UrgencyEmergency.Critical() {
		t.Fatalf("high and emergency must be critical")
	}
}

func TestDefaultPatientAttributes(t *testing.T) {
	defaults := DefaultPatientAttributes()
	if !defaults.IsCitizen {
		t.Fatalf("expected isCitizen to default to true")
	}
	if defaults.HasChronicCondition || defaults.IsPregnant {
		t.Fatalf("expected condition flags to default to false")
	}
}

func TestValidate(t *testing.T) {
	valid := MedicationComplaint{
		MedicationName: "Insulina NPH",
		IssueType:      IssueShortage,
		Urgency:        UrgencyMedium,
		Patient:        DefaultPatientAttributes(),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid complaint, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*MedicationComplaint)
	}{
		{name: "blank_medication", mutate: func(c *MedicationComplaint) { c.MedicationName = "  " }},
		{name: "unknown_issue_type", mutate: func(c *MedicationComplaint) { c.IssueType = "billing" }},
		{name: "unknown_urgency", mutate: func(c *MedicationComplaint) { c.Urgency = "critical" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
