package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
)

type PreLiveHandler struct {
	log            *logger.Logger
	preLiveService services.PreLiveService
}

func NewPreLiveHandler(log *logger.Logger, preLiveService services.PreLiveService) *PreLiveHandler {
	return &PreLiveHandler{
		log:            log.With("handler", "PreLiveHandler"),
		preLiveService: preLiveService,
	}
}

func (h *PreLiveHandler) List(c *gin.Context) {
	records, err := h.preLiveService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "load_prelive_failed", err)
		return
	}
	RespondOK(c, gin.H{"prelive_records": records})
}

func (h *PreLiveHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	record, err := h.preLiveService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, "load_prelive_failed", err)
		return
	}
	RespondOK(c, gin.H{"prelive_record": record})
}

func (h *PreLiveHandler) Create(c *gin.Context) {
	var input types.PreLiveRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.preLiveService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		RespondServiceError(c, "create_prelive_failed", err)
		return
	}
	RespondOK(c, gin.H{"prelive_record": created})
}

func (h *PreLiveHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var input types.PreLiveRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.preLiveService.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.log.Error("Update failed", "error", err, "prelive_id", id)
		RespondServiceError(c, "update_prelive_failed", err)
		return
	}
	RespondOK(c, gin.H{"prelive_record": updated})
}

func (h *PreLiveHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.preLiveService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Delete failed", "error", err, "prelive_id", id)
		RespondServiceError(c, "delete_prelive_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
