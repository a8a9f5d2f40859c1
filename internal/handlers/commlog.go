package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
)

type CommLogHandler struct {
	log            *logger.Logger
	commLogService services.CommLogService
}

func NewCommLogHandler(log *logger.Logger, commLogService services.CommLogService) *CommLogHandler {
	return &CommLogHandler{
		log:            log.With("handler", "CommLogHandler"),
		commLogService: commLogService,
	}
}

// ListByEntity serves GET /api/comm-logs/:entity_type/:entity_id, the
// per-record communication history panel.
func (h *CommLogHandler) ListByEntity(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("entity_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	logs, err := h.commLogService.ListByEntity(c.Request.Context(), c.Param("entity_type"), entityID)
	if err != nil {
		RespondServiceError(c, "load_comm_logs_failed", err)
		return
	}
	RespondOK(c, gin.H{"comm_logs": logs})
}

func (h *CommLogHandler) Create(c *gin.Context) {
	var input types.CommunicationLog
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.commLogService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		RespondServiceError(c, "create_comm_log_failed", err)
		return
	}
	RespondOK(c, gin.H{"comm_log": created})
}

func (h *CommLogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var input types.CommunicationLog
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.commLogService.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.log.Error("Update failed", "error", err, "comm_log_id", id)
		RespondServiceError(c, "update_comm_log_failed", err)
		return
	}
	RespondOK(c, gin.H{"comm_log": updated})
}

func (h *CommLogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.commLogService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Delete failed", "error", err, "comm_log_id", id)
		RespondServiceError(c, "delete_comm_log_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
