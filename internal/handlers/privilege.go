package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
)

type PrivilegeHandler struct {
	log              *logger.Logger
	privilegeService services.PrivilegeService
}

func NewPrivilegeHandler(log *logger.Logger, privilegeService services.PrivilegeService) *PrivilegeHandler {
	return &PrivilegeHandler{
		log:              log.With("handler", "PrivilegeHandler"),
		privilegeService: privilegeService,
	}
}

func (h *PrivilegeHandler) List(c *gin.Context) {
	privileges, err := h.privilegeService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, "load_privileges_failed", err)
		return
	}
	RespondOK(c, gin.H{"privileges": privileges})
}

func (h *PrivilegeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	privilege, err := h.privilegeService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, "load_privilege_failed", err)
		return
	}
	RespondOK(c, gin.H{"privilege": privilege})
}

func (h *PrivilegeHandler) Create(c *gin.Context) {
	var input types.VestaPrivilege
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	created, err := h.privilegeService.Create(c.Request.Context(), &input)
	if err != nil {
		h.log.Error("Create failed", "error", err)
		RespondServiceError(c, "create_privilege_failed", err)
		return
	}
	RespondOK(c, gin.H{"privilege": created})
}

func (h *PrivilegeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var input types.VestaPrivilege
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.privilegeService.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.log.Error("Update failed", "error", err, "privilege_id", id)
		RespondServiceError(c, "update_privilege_failed", err)
		return
	}
	RespondOK(c, gin.H{"privilege": updated})
}

func (h *PrivilegeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := h.privilegeService.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("Delete failed", "error", err, "privilege_id", id)
		RespondServiceError(c, "delete_privilege_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
