package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
)

type ContactHandler struct {
	log            *logger.Logger
	contactService services.ContactService
}

func NewContactHandler(log *logger.Logger, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:            log.With("handler", "ContactHandler"),
		contactService: contactService,
	}
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "load_contacts_failed", err)
		return
	}
	RespondOK(c, gin.H{"contacts": contacts})
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	contact, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, "load_contact_failed", err)
		return
	}
	RespondOK(c, gin.H{"contact": contact})
}

func (h *ContactHandler) Create(c *gin.Context) {
	var input types.Contact
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.contactService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		RespondServiceError(c, "create_contact_failed", err)
		return
	}
	RespondOK(c, gin.H{"contact": created})
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var input types.Contact
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.contactService.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.log.Error("Update failed", "error", err, "contact_id", id)
		RespondServiceError(c, "update_contact_failed", err)
		return
	}
	RespondOK(c, gin.H{"contact": updated})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Delete failed", "error", err, "contact_id", id)
		RespondServiceError(c, "delete_contact_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
