package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/views"
)

type DashboardHandler struct {
	log              *logger.Logger
	dashboardService services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:              log.With("handler", "DashboardHandler"),
		dashboardService: dashboardService,
	}
}

var filterParams = []views.FilterKey{
	views.FilterPriority,
	views.FilterStatus,
	views.FilterFacilityType,
	views.FilterFacilityState,
	views.FilterLicensePath,
	views.FilterLicenseCycle,
	views.FilterPrivilegeTier,
	views.FilterAppRequired,
	views.FilterTempsPossible,
	views.FilterPayorEnrollment,
}

// stateFromQuery folds the query string into a dashboard state through
// the same reducers the in-memory pipeline uses, so URL-driven requests
// normalize identically to interactive ones.
func stateFromQuery(c *gin.Context, view views.View) views.State {
	s := views.DefaultState(view)
	for _, key := range filterParams {
		if raw, ok := c.GetQuery(string(key)); ok {
			s = s.SetFilter(key, raw)
		}
	}
	if field, ok := c.GetQuery("group_sort"); ok {
		dir := c.DefaultQuery("group_dir", string(s.GroupSortDir))
		s = s.SetGroupSort(views.GroupSortField(field), views.SortDir(dir))
	} else if dir, ok := c.GetQuery("group_dir"); ok {
		s = s.SetGroupSort(s.GroupSortField, views.SortDir(dir))
	}
	if q, ok := c.GetQuery("group_search"); ok {
		s = s.SetGroupSearch(q)
	}
	if q, ok := c.GetQuery("detail_search"); ok {
		s = s.SetDetailSearch(q)
	}
	if col, ok := c.GetQuery("detail_sort"); ok {
		s.DetailSortCol = col
		if dir := views.SortDir(c.DefaultQuery("detail_dir", string(views.SortAsc))); dir == views.SortDesc {
			s.DetailSortDir = views.SortDesc
		}
	}
	if key, ok := c.GetQuery("selected"); ok {
		s = s.SetSelectedKey(key)
	}
	return s
}

func (h *DashboardHandler) Render(c *gin.Context) {
	view := views.View(c.Param("view"))
	if !view.Valid() {
		RespondError(c, http.StatusBadRequest, "unknown_view", fmt.Errorf("unknown view %q", view))
		return
	}
	state := stateFromQuery(c, view)
	result, err := h.dashboardService.Render(c.Request.Context(), state)
	if err != nil {
		h.log.Error("Render failed", "error", err, "view", view)
		RespondServiceError(c, "render_failed", err)
		return
	}
	RespondOK(c, result)
}
