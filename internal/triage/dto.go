package triage

import (
	"strings"

	"medrights-backend/internal/complaints"
)

type patientAttributesRequest struct {
	HasChronicCondition *bool `json:"hasChronicCondition"`
	IsPregnant          *bool `json:"isPregnant"`
	IsCitizen           *bool `json:"isCitizen"`
}

type locationRequest struct {
	State string `json:"state"`
	City  string `json:"city"`
}

type complaintRequest struct {
	MedicationName    string                    `json:"medicationName"`
	IssueType         string                    `json:"issueType"`
	Urgency           string                    `json:"urgency"`
	Description       string                    `json:"description"`
	PatientAttributes *patientAttributesRequest `json:"patientAttributes"`
	Location          *locationRequest          `json:"location"`
}

// toComplaint converts the wire request into the core model, applying the
// documented defaults for absent patient attributes (isCitizen true).
func (r complaintRequest) toComplaint() (complaints.MedicationComplaint, error) {
	issue, err := complaints.ParseIssueType(r.IssueType)
	if err != nil {
		return complaints.MedicationComplaint{}, err
	}
	urgency, err := complaints.ParseUrgency(r.Urgency)
	if err != nil {
		return complaints.MedicationComplaint{}, err
	}

	patient := complaints.DefaultPatientAttributes()
	if r.PatientAttributes != nil {
		if r.PatientAttributes.HasChronicCondition != nil {
			patient.HasChronicCondition = *r.PatientAttributes.HasChronicCondition
		}
		if r.PatientAttributes.IsPregnant != nil {
			patient.IsPregnant = *r.PatientAttributes.IsPregnant
		}
		if r.PatientAttributes.IsCitizen != nil {
			patient.IsCitizen = *r.PatientAttributes.IsCitizen
		}
	}

	var location complaints.Location
	if r.Location != nil {
		location = complaints.Location{
			State: strings.TrimSpace(r.Location.State),
			City:  strings.TrimSpace(r.Location.City),
		}
	}

	complaint := complaints.MedicationComplaint{
		MedicationName: strings.TrimSpace(r.MedicationName),
		IssueType:      issue,
		Urgency:        urgency,
		Description:    strings.TrimSpace(r.Description),
		Patient:        patient,
		Location:       location,
	}
	if err := complaint.Validate(); err != nil {
		return complaints.MedicationComplaint{}, err
	}
	return complaint, nil
}
