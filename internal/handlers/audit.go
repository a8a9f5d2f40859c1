package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
)

type AuditHandler struct {
	log          *logger.Logger
	auditService services.AuditService
}

func NewAuditHandler(log *logger.Logger, auditService services.AuditService) *AuditHandler {
	return &AuditHandler{
		log:          log.With("handler", "AuditHandler"),
		auditService: auditService,
	}
}

func (h *AuditHandler) ListRecent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = parsed
	}
	logs, err := h.auditService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		RespondServiceError(c, "load_audit_logs_failed", err)
		return
	}
	RespondOK(c, gin.H{"audit_logs": logs})
}

func (h *AuditHandler) ListByEntity(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("entity_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	logs, err := h.auditService.ListByEntity(c.Request.Context(), c.Param("entity_type"), entityID)
	if err != nil {
		RespondServiceError(c, "load_audit_logs_failed", err)
		return
	}
	RespondOK(c, gin.H{"audit_logs": logs})
}
