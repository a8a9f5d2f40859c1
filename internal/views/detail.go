package views

import (
	"sort"
	"strings"
	"time"
)

// compare returns -1/0/1; comparators per field kind as the detail
// table sorts them.
func compareString(a, b *string) int {
	return strings.Compare(strVal(a), strVal(b))
}

func compareDate(a, b *time.Time) int {
	ma, mb := epochMillis(a), epochMillis(b)
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	}
	return 0
}

// compareTriBool orders unknown before false before true.
func compareTriBool(a, b *bool) int {
	return triBoolRank(a) - triBoolRank(b)
}

func triBoolRank(v *bool) int {
	if v == nil {
		return -1
	}
	if *v {
		return 1
	}
	return 0
}

type compareFunc func(a, b Row) int

// detailColumns maps the sortable column names of each view to their
// comparators. The column names are the ones the dashboard table
// headers send back.
func detailColumns(v View) map[string]compareFunc {
	switch v {
	case ViewProviderCredentials:
		return map[string]compareFunc{
			"facility":         func(a, b Row) int { return compareString(a.FacilityName, b.FacilityName) },
			"status":           func(a, b Row) int { return compareString(a.Status, b.Status) },
			"priority":         func(a, b Row) int { return comparePriority(a.Priority, b.Priority) },
			"facility_type":    func(a, b Row) int { return compareString(a.FacilityType, b.FacilityType) },
			"facility_state":   func(a, b Row) int { return compareString(a.FacilityState, b.FacilityState) },
			"app_required":     func(a, b Row) int { return compareTriBool(a.AppRequired, b.AppRequired) },
			"temps_possible":   func(a, b Row) int { return compareTriBool(a.TempsPossible, b.TempsPossible) },
			"payor_enrollment": func(a, b Row) int { return compareTriBool(a.PayorEnrollmentRequired, b.PayorEnrollmentRequired) },
			"submitted":        func(a, b Row) int { return compareDate(a.SubmittedDate, b.SubmittedDate) },
			"approved":         func(a, b Row) int { return compareDate(a.ApprovedDate, b.ApprovedDate) },
		}
	case ViewFacilityCredentials:
		return map[string]compareFunc{
			"provider":         func(a, b Row) int { return compareString(a.ProviderName, b.ProviderName) },
			"degree":           func(a, b Row) int { return compareString(a.ProviderDegree, b.ProviderDegree) },
			"status":           func(a, b Row) int { return compareString(a.Status, b.Status) },
			"priority":         func(a, b Row) int { return comparePriority(a.Priority, b.Priority) },
			"app_required":     func(a, b Row) int { return compareTriBool(a.AppRequired, b.AppRequired) },
			"temps_possible":   func(a, b Row) int { return compareTriBool(a.TempsPossible, b.TempsPossible) },
			"payor_enrollment": func(a, b Row) int { return compareTriBool(a.PayorEnrollmentRequired, b.PayorEnrollmentRequired) },
			"submitted":        func(a, b Row) int { return compareDate(a.SubmittedDate, b.SubmittedDate) },
			"approved":         func(a, b Row) int { return compareDate(a.ApprovedDate, b.ApprovedDate) },
		}
	case ViewPreLive:
		return map[string]compareFunc{
			"facility":         func(a, b Row) int { return compareString(a.FacilityName, b.FacilityName) },
			"status":           func(a, b Row) int { return compareString(a.Status, b.Status) },
			"priority":         func(a, b Row) int { return comparePriority(a.Priority, b.Priority) },
			"facility_type":    func(a, b Row) int { return compareString(a.FacilityType, b.FacilityType) },
			"facility_state":   func(a, b Row) int { return compareString(a.FacilityState, b.FacilityState) },
			"payor_enrollment": func(a, b Row) int { return compareTriBool(a.PayorEnrollmentRequired, b.PayorEnrollmentRequired) },
			"target_live":      func(a, b Row) int { return compareDate(a.TargetLiveDate, b.TargetLiveDate) },
		}
	case ViewLicenses:
		return map[string]compareFunc{
			"state":          func(a, b Row) int { return compareString(a.LicenseState, b.LicenseState) },
			"path":           func(a, b Row) int { return compareString(a.LicensePath, b.LicensePath) },
			"cycle":          func(a, b Row) int { return compareString(a.LicenseCycle, b.LicenseCycle) },
			"status":         func(a, b Row) int { return compareString(a.Status, b.Status) },
			"priority":       func(a, b Row) int { return comparePriority(a.Priority, b.Priority) },
			"app_required":   func(a, b Row) int { return compareTriBool(a.AppRequired, b.AppRequired) },
			"license_number": func(a, b Row) int { return compareString(a.LicenseNumber, b.LicenseNumber) },
			"issued":         func(a, b Row) int { return compareDate(a.IssueDate, b.IssueDate) },
			"expires":        func(a, b Row) int { return compareDate(a.ExpiryDate, b.ExpiryDate) },
		}
	case ViewPrivileges:
		return map[string]compareFunc{
			"provider":  func(a, b Row) int { return compareString(a.ProviderName, b.ProviderName) },
			"degree":    func(a, b Row) int { return compareString(a.ProviderDegree, b.ProviderDegree) },
			"tier":      func(a, b Row) int { return compareString(a.Tier, b.Tier) },
			"status":    func(a, b Row) int { return compareString(a.Status, b.Status) },
			"priority":  func(a, b Row) int { return comparePriority(a.Priority, b.Priority) },
			"effective": func(a, b Row) int { return compareDate(a.EffectiveDate, b.EffectiveDate) },
		}
	}
	return nil
}

// searchText is the per-view concatenation of searchable fields for
// the detail free-text search.
func searchText(v View, r Row) string {
	var parts []string
	switch v {
	case ViewProviderCredentials:
		parts = []string{strVal(r.FacilityName), strVal(r.FacilityType), strVal(r.FacilityState), strVal(r.Status), strVal(r.Priority), strVal(r.Notes)}
	case ViewFacilityCredentials:
		parts = []string{strVal(r.ProviderName), strVal(r.ProviderDegree), strVal(r.Status), strVal(r.Priority), strVal(r.Notes)}
	case ViewPreLive:
		parts = []string{strVal(r.FacilityName), strVal(r.FacilityType), strVal(r.FacilityState), strVal(r.Status), strVal(r.Priority), strVal(r.Notes)}
	case ViewLicenses:
		parts = []string{strVal(r.ProviderName), strVal(r.LicenseState), strVal(r.LicensePath), strVal(r.LicenseCycle), strVal(r.Status), strVal(r.Priority), strVal(r.LicenseNumber), strVal(r.Notes)}
	case ViewPrivileges:
		parts = []string{strVal(r.ProviderName), strVal(r.ProviderDegree), strVal(r.Tier), strVal(r.Status), strVal(r.Priority), strVal(r.Notes)}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// SearchDetail narrows detail rows by case-insensitive substring
// match, keeping the current order.
func SearchDetail(rows []Row, v View, query string) []Row {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(searchText(v, r), q) {
			out = append(out, r)
		}
	}
	return out
}

// SortDetail stable-sorts detail rows by a named column. An empty or
// unknown column leaves the rows in their incoming order.
func SortDetail(rows []Row, v View, col string, dir SortDir) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	if col == "" {
		return out
	}
	cmp, ok := detailColumns(v)[col]
	if !ok {
		return out
	}
	desc := dir == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if c == 0 {
			return false
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}
