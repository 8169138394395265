package health

// Service encapsulates health-related checks.
type Service struct {
	agencyCount int
}

// NewService constructs a new health service.
func NewService(agencyCount int) *Service {
	return &Service{agencyCount: agencyCount}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{"ok": true, "agencies": s.agencyCount}
}
