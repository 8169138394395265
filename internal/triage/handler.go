package triage

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medrights-backend/internal/complaints"
	"medrights-backend/internal/directory"
	"medrights-backend/internal/shared/metrics"
	"medrights-backend/internal/shared/server/middleware"
	"medrights-backend/internal/shared/server/respond"
	"medrights-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches complaint routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/complaints/analysis", h.analyze)
	rg.POST("/complaints/recommendation", h.recommend)
}

func (h *Handler) analyze(c *gin.Context) {
	complaint, ok := h.bindComplaint(c)
	if !ok {
		return
	}

	analysis, err := h.Svc.Analyze(complaint)
	if err != nil {
		h.respondError(c, err)
		return
	}
	metrics.IncComplaintAnalyzed()

	respond.JSON(c, http.StatusOK, analysis)
}

func (h *Handler) recommend(c *gin.Context) {
	complaint, ok := h.bindComplaint(c)
	if !ok {
		return
	}

	start := time.Now()
	recommendation, err := h.Svc.Recommend(complaint)
	if err != nil {
		h.respondError(c, err)
		return
	}
	metrics.IncComplaintRecommended()
	metrics.ObserveRecommendationDurationMs(float64(time.Since(start)) / float64(time.Millisecond))

	telemetry.Info("complaint.recommended", map[string]any{
		"request_id":     middleware.RequestIDFromContext(c),
		"issue_type":     string(complaint.IssueType),
		"urgency":        string(complaint.Urgency),
		"primary_agency": recommendation.PrimaryAgency.ID,
		"escalation":     recommendation.Escalation.Recommended,
	})

	respond.JSON(c, http.StatusOK, recommendation)
}

func (h *Handler) bindComplaint(c *gin.Context) (complaints.MedicationComplaint, bool) {
	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncComplaintRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return complaints.MedicationComplaint{}, false
	}
	complaint, err := req.toComplaint()
	if err != nil {
		metrics.IncComplaintRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return complaints.MedicationComplaint{}, false
	}
	return complaint, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, complaints.ErrInvalid):
		metrics.IncComplaintRejected()
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, directory.ErrConfiguration):
		respond.Error(c, http.StatusInternalServerError, "configuration_error", "agency directory is misconfigured", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process complaint", nil)
	}
}
