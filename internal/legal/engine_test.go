package legal

import (
	"errors"
	"testing"

	"medrights-backend/internal/complaints"
	"medrights-backend/internal/directory"
)

func baseComplaint(issue complaints.IssueType, urgency complaints.Urgency) complaints.MedicationComplaint {
	return complaints.MedicationComplaint{
		MedicationName: "Losartana 50mg",
		IssueType:      issue,
		Urgency:        urgency,
		Patient:        complaints.DefaultPatientAttributes(),
	}
}

func TestAnalyzeCoversEveryIssueType(t *testing.T) {
	dir, err := directory.LoadDefault()
	if err != nil {
		t.Fatalf("load directory: %v", err)
	}

	for _, issue := range complaints.IssueTypes() {
		t.Run(string(issue), func(t *testing.T) {
			analysis, err := Analyze(baseComplaint(issue, complaints.UrgencyMedium))
			if err != nil {
				t.Fatalf("analyze: %v", err)
			}
			if _, err := dir.Get(analysis.CompetentAgencyID); err != nil {
				t.Fatalf("competent agency %q does not resolve: %v", analysis.CompetentAgencyID, err)
			}
			if analysis.HasRight && len(analysis.LegalBasis) == 0 {
				t.Fatalf("hasRight without legal basis for %q", issue)
			}
			if analysis.Reasoning == "" || analysis.RecommendedProcedure == "" {
				t.Fatalf("incomplete analysis for %q", issue)
			}
			if len(analysis.RequiredDocuments) == 0 {
				t.Fatalf("no required documents for %q", issue)
			}
		})
	}
}

func TestAnalyzeShortageDependsOnCitizenship(t *testing.T) {
	citizen := baseComplaint(complaints.IssueShortage, complaints.UrgencyMedium)
	analysis, err := Analyze(citizen)
	if err != nil {
		t.Fatalf("analyze citizen: %v", err)
	}
	if !analysis.HasRight {
		t.Fatalf("expected hasRight=true for citizen shortage")
	}
	if len(analysis.LegalBasis) == 0 {
		t.Fatalf("expected legal basis for citizen shortage")
	}

	foreigner := citizen
	foreigner.Patient.IsCitizen = false
	analysis, err = Analyze(foreigner)
	if err != nil {
		t.Fatalf("analyze non-citizen: %v", err)
	}
	if analysis.HasRight {
		t.Fatalf("expected hasRight=false for non-citizen shortage")
	}
	if analysis.Reasoning == "" {
		t.Fatalf("expected alternative reasoning for non-citizen shortage")
	}
	if analysis.CompetentAgencyID != directory.AgencyHealthMinistry {
		t.Fatalf("expected health ministry routing, got %q", analysis.CompetentAgencyID)
	}
}

func TestAnalyzeRoutesByIssueType(t *testing.T) {
	cases := []struct {
		issue  complaints.IssueType
		agency string
	}{
		{complaints.IssueShortage, directory.AgencyHealthMinistry},
		{complaints.IssueQuality, directory.AgencyANVISA},
		{complaints.IssueAdverseReaction, directory.AgencyANVISA},
		{complaints.IssueRegistration, directory.AgencyANVISA},
		{complaints.IssuePrice, directory.AgencyCMED},
		{complaints.IssueAccessibility, directory.AgencyHealthMinistry},
		{complaints.IssueImport, directory.AgencyANVISA},
		{complaints.IssueOther, directory.AgencyANVISA},
	}
	for _, tc := range cases {
		t.Run(string(tc.issue), func(t *testing.T) {
			analysis, err := Analyze(baseComplaint(tc.issue, complaints.UrgencyLow))
			if err != nil {
				t.Fatalf("analyze: %v", err)
			}
			if analysis.CompetentAgencyID != tc.agency {
				t.Fatalf("expected agency %q, got %q", tc.agency, analysis.CompetentAgencyID)
			}
		})
	}
}

func TestUrgencyJustificationByLevel(t *testing.T) {
	var byLevel = map[complaints.Urgency]string{}
	for _, urgency := range complaints.Urgencies() {
		analysis, err := Analyze(baseComplaint(complaints.IssueQuality, urgency))
		if err != nil {
			t.Fatalf("analyze %q: %v", urgency, err)
		}
		byLevel[urgency] = analysis.UrgencyJustification
	}

	if byLevel[complaints.UrgencyLow] != "" || byLevel[complaints.UrgencyMedium] != "" {
		t.Fatalf("expected no justification for low/medium")
	}
	if byLevel[complaints.UrgencyHigh] == "" || byLevel[complaints.UrgencyEmergency] == "" {
		t.Fatalf("expected justification for high and emergency")
	}
	if byLevel[complaints.UrgencyHigh] == byLevel[complaints.UrgencyEmergency] {
		t.Fatalf("high and emergency justifications must be distinguishable")
	}
}

func TestAnalyzeRejectsInvalidComplaints(t *testing.T) {
	invalid := baseComplaint("billing", complaints.UrgencyLow)
	if _, err := Analyze(invalid); !errors.Is(err, complaints.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown issue type, got %v", err)
	}

	blank := baseComplaint(complaints.IssueQuality, complaints.UrgencyLow)
	blank.MedicationName = ""
	if _, err := Analyze(blank); !errors.Is(err, complaints.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for blank medication name, got %v", err)
	}
}
