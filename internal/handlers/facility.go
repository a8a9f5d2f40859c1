package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
)

type FacilityHandler struct {
	log             *logger.Logger
	facilityService services.FacilityService
	contactService  services.ContactService
}

func NewFacilityHandler(log *logger.Logger, facilityService services.FacilityService, contactService services.ContactService) *FacilityHandler {
	return &FacilityHandler{
		log:             log.With("handler", "FacilityHandler"),
		facilityService: facilityService,
		contactService:  contactService,
	}
}

func (h *FacilityHandler) List(c *gin.Context) {
	facilities, err := h.facilityService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "load_facilities_failed", err)
		return
	}
	RespondOK(c, gin.H{"facilities": facilities})
}

func (h *FacilityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	facility, err := h.facilityService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, "load_facility_failed", err)
		return
	}
	RespondOK(c, gin.H{"facility": facility})
}

func (h *FacilityHandler) ListContacts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	contacts, err := h.contactService.ListByFacility(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, "load_contacts_failed", err)
		return
	}
	RespondOK(c, gin.H{"contacts": contacts})
}

func (h *FacilityHandler) Create(c *gin.Context) {
	var input types.Facility
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.facilityService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		RespondServiceError(c, "create_facility_failed", err)
		return
	}
	RespondOK(c, gin.H{"facility": created})
}

func (h *FacilityHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var input types.Facility
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.facilityService.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.log.Error("Update failed", "error", err, "facility_id", id)
		RespondServiceError(c, "update_facility_failed", err)
		return
	}
	RespondOK(c, gin.H{"facility": updated})
}

func (h *FacilityHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.facilityService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Delete failed", "error", err, "facility_id", id)
		RespondServiceError(c, "delete_facility_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
