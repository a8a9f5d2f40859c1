package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
)

type ProviderHandler struct {
	log             *logger.Logger
	providerService services.ProviderService
}

func NewProviderHandler(log *logger.Logger, providerService services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		log:             log.With("handler", "ProviderHandler"),
		providerService: providerService,
	}
}

func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.providerService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "load_providers_failed", err)
		return
	}
	RespondOK(c, gin.H{"providers": providers})
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	provider, err := h.providerService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, "load_provider_failed", err)
		return
	}
	RespondOK(c, gin.H{"provider": provider})
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var input types.Provider
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.providerService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		RespondServiceError(c, "create_provider_failed", err)
		return
	}
	RespondOK(c, gin.H{"provider": created})
}

func (h *ProviderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var input types.Provider
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.providerService.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.log.Error("Update failed", "error", err, "provider_id", id)
		RespondServiceError(c, "update_provider_failed", err)
		return
	}
	RespondOK(c, gin.H{"provider": updated})
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.providerService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Delete failed", "error", err, "provider_id", id)
		RespondServiceError(c, "delete_provider_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
