package triage

import (
	"medrights-backend/internal/complaints"
	"medrights-backend/internal/directory"
	"medrights-backend/internal/legal"
	"medrights-backend/internal/recommend"
)

// Service runs the analysis pipeline over the shared read-only directory.
// Stateless and safe for concurrent use.
type Service struct {
	Directory *directory.Directory
}

// NewService constructs a Service.
func NewService(dir *directory.Directory) *Service {
	return &Service{Directory: dir}
}

// Analyze runs only the legal analysis stage.
func (s *Service) Analyze(c complaints.MedicationComplaint) (legal.Analysis, error) {
	return legal.Analyze(c)
}

// Recommend runs the full pipeline: legal analysis, then routing and the
// action plan.
func (s *Service) Recommend(c complaints.MedicationComplaint) (recommend.Recommendation, error) {
	analysis, err := legal.Analyze(c)
	if err != nil {
		return recommend.Recommendation{}, err
	}
	return recommend.Build(c, analysis, s.Directory)
}
