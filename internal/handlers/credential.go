package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
)

type CredentialHandler struct {
	log               *logger.Logger
	credentialService services.CredentialService
}

func NewCredentialHandler(log *logger.Logger, credentialService services.CredentialService) *CredentialHandler {
	return &CredentialHandler{
		log:               log.With("handler", "CredentialHandler"),
		credentialService: credentialService,
	}
}

func (h *CredentialHandler) List(c *gin.Context) {
	credentials, err := h.credentialService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "load_credentials_failed", err)
		return
	}
	RespondOK(c, gin.H{"credentials": credentials})
}

func (h *CredentialHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	credential, err := h.credentialService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, "load_credential_failed", err)
		return
	}
	RespondOK(c, gin.H{"credential": credential})
}

func (h *CredentialHandler) Create(c *gin.Context) {
	var input types.Credential
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.credentialService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		RespondServiceError(c, "create_credential_failed", err)
		return
	}
	RespondOK(c, gin.H{"credential": created})
}

func (h *CredentialHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var input types.Credential
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.credentialService.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.log.Error("Update failed", "error", err, "credential_id", id)
		RespondServiceError(c, "update_credential_failed", err)
		return
	}
	RespondOK(c, gin.H{"credential": updated})
}

func (h *CredentialHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.credentialService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Delete failed", "error", err, "credential_id", id)
		RespondServiceError(c, "delete_credential_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
