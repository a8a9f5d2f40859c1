package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
)

type LicenseHandler struct {
	log            *logger.Logger
	licenseService services.LicenseService
}

func NewLicenseHandler(log *logger.Logger, licenseService services.LicenseService) *LicenseHandler {
	return &LicenseHandler{
		log:            log.With("handler", "LicenseHandler"),
		licenseService: licenseService,
	}
}

func (h *LicenseHandler) List(c *gin.Context) {
	licenses, err := h.licenseService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "load_licenses_failed", err)
		return
	}
	RespondOK(c, gin.H{"licenses": licenses})
}

func (h *LicenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	license, err := h.licenseService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, "load_license_failed", err)
		return
	}
	RespondOK(c, gin.H{"license": license})
}

func (h *LicenseHandler) Create(c *gin.Context) {
	var input types.StateLicense
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.licenseService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		RespondServiceError(c, "create_license_failed", err)
		return
	}
	RespondOK(c, gin.H{"license": created})
}

func (h *LicenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var input types.StateLicense
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.licenseService.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.log.Error("Update failed", "error", err, "license_id", id)
		RespondServiceError(c, "update_license_failed", err)
		return
	}
	RespondOK(c, gin.H{"license": updated})
}

func (h *LicenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.licenseService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Delete failed", "error", err, "license_id", id)
		RespondServiceError(c, "delete_license_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
