package views

import (
	"strings"
)

// FilterAll is the no-op value for every string filter.
const FilterAll = "all"

type TriState string

const (
	TriAll TriState = "all"
	TriYes TriState = "yes"
	TriNo  TriState = "no"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

type GroupSortField string

const (
	GroupSortName    GroupSortField = "name"
	GroupSortUpdated GroupSortField = "updated"
)

// FilterKey names one of the independently toggleable filters.
type FilterKey string

const (
	FilterPriority        FilterKey = "priority"
	FilterStatus          FilterKey = "status"
	FilterFacilityType    FilterKey = "facility_type"
	FilterFacilityState   FilterKey = "facility_state"
	FilterLicensePath     FilterKey = "license_path"
	FilterLicenseCycle    FilterKey = "license_cycle"
	FilterPrivilegeTier   FilterKey = "privilege_tier"
	FilterAppRequired     FilterKey = "app_required"
	FilterTempsPossible   FilterKey = "temps_possible"
	FilterPayorEnrollment FilterKey = "payor_enrollment"
)

// State is the whole filter/sort/search bag for the dashboard. It is a
// value type: reducers return a modified copy, never mutate in place.
// Filter values are global across views; selection, searches and the
// detail sort are per-view and reset on view switch.
type State struct {
	View View

	Priority      string
	Status        string
	FacilityType  string
	FacilityState string
	LicensePath   string
	LicenseCycle  string
	PrivilegeTier string

	AppRequired     TriState
	TempsPossible   TriState
	PayorEnrollment TriState

	GroupSortField GroupSortField
	GroupSortDir   SortDir
	GroupSearch    string

	DetailSearch  string
	DetailSortCol string
	DetailSortDir SortDir

	SelectedKey string
}

// DefaultState is the documented default tuple: every filter "all",
// group sort updated/desc, detail sort none/asc.
func DefaultState(view View) State {
	return State{
		View:            view,
		Priority:        FilterAll,
		Status:          FilterAll,
		FacilityType:    FilterAll,
		FacilityState:   FilterAll,
		LicensePath:     FilterAll,
		LicenseCycle:    FilterAll,
		PrivilegeTier:   FilterAll,
		AppRequired:     TriAll,
		TempsPossible:   TriAll,
		PayorEnrollment: TriAll,
		GroupSortField:  GroupSortUpdated,
		GroupSortDir:    SortDesc,
		DetailSortCol:   "",
		DetailSortDir:   SortAsc,
	}
}

func normFilterValue(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return FilterAll
	}
	return v
}

func normTriState(value string) TriState {
	switch TriState(strings.ToLower(strings.TrimSpace(value))) {
	case TriYes:
		return TriYes
	case TriNo:
		return TriNo
	}
	return TriAll
}

// SetFilter returns the state with one filter changed. Unknown keys
// leave the state untouched.
func (s State) SetFilter(key FilterKey, value string) State {
	switch key {
	case FilterPriority:
		s.Priority = normFilterValue(value)
	case FilterStatus:
		s.Status = normFilterValue(value)
	case FilterFacilityType:
		s.FacilityType = normFilterValue(value)
	case FilterFacilityState:
		s.FacilityState = normFilterValue(value)
	case FilterLicensePath:
		s.LicensePath = normFilterValue(value)
	case FilterLicenseCycle:
		s.LicenseCycle = normFilterValue(value)
	case FilterPrivilegeTier:
		s.PrivilegeTier = normFilterValue(value)
	case FilterAppRequired:
		s.AppRequired = normTriState(value)
	case FilterTempsPossible:
		s.TempsPossible = normTriState(value)
	case FilterPayorEnrollment:
		s.PayorEnrollment = normTriState(value)
	}
	return s
}

func (s State) SetGroupSort(field GroupSortField, dir SortDir) State {
	if field == GroupSortName || field == GroupSortUpdated {
		s.GroupSortField = field
	}
	if dir == SortAsc || dir == SortDesc {
		s.GroupSortDir = dir
	}
	return s
}

func (s State) SetGroupSearch(q string) State {
	s.GroupSearch = q
	return s
}

func (s State) SetDetailSearch(q string) State {
	s.DetailSearch = q
	return s
}

func (s State) SetSelectedKey(key string) State {
	s.SelectedKey = key
	return s
}

// ClickDetailColumn models a header click: clicking the sorted column
// flips the direction, clicking a different column resets to ascending.
func (s State) ClickDetailColumn(col string) State {
	if s.DetailSortCol == col {
		if s.DetailSortDir == SortAsc {
			s.DetailSortDir = SortDesc
		} else {
			s.DetailSortDir = SortAsc
		}
		return s
	}
	s.DetailSortCol = col
	s.DetailSortDir = SortAsc
	return s
}

// Reset restores every filter and both sorts to the defaults in one
// step. Searches and the selected group survive; selection is
// reconciled against the recomputed group list on the next Apply.
func (s State) Reset() State {
	def := DefaultState(s.View)
	def.GroupSearch = s.GroupSearch
	def.DetailSearch = s.DetailSearch
	def.SelectedKey = s.SelectedKey
	return def
}

// SwitchView is a hard reset of the per-view state: selection, both
// search boxes and the detail sort clear, while filter values persist
// across views.
func (s State) SwitchView(v View) State {
	if !v.Valid() {
		return s
	}
	s.View = v
	s.SelectedKey = ""
	s.GroupSearch = ""
	s.DetailSearch = ""
	s.DetailSortCol = ""
	s.DetailSortDir = SortAsc
	return s
}
