package agencies

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medrights-backend/internal/complaints"
	"medrights-backend/internal/directory"
	"medrights-backend/internal/shared/server/respond"
)

// Handler exposes read-only directory lookups for presentation clients.
type Handler struct {
	Directory *directory.Directory
}

// NewHandler constructs a Handler.
func NewHandler(dir *directory.Directory) *Handler {
	return &Handler{Directory: dir}
}

// RegisterRoutes attaches agency routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/agencies", h.list)
	rg.GET("/agencies/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	raw := c.Query("issueType")
	if raw == "" {
		respond.JSON(c, http.StatusOK, h.Directory.Agencies())
		return
	}

	issue, err := complaints.ParseIssueType(raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusOK, h.Directory.FindByJurisdiction(issue))
}

func (h *Handler) get(c *gin.Context) {
	agency, err := h.Directory.Get(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "agency not found", nil)
		return
	}
	respond.JSON(c, http.StatusOK, agency)
}
