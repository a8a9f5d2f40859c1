package views

import (
	"strings"
)

func matchString(filter string, field *string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	if field == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*field), filter)
}

// matchTri: "yes" matches only true, "no" matches only false; a nil
// field matches neither, only "all".
func matchTri(filter TriState, field *bool) bool {
	switch filter {
	case TriYes:
		return field != nil && *field
	case TriNo:
		return field != nil && !*field
	}
	return true
}

// matches applies every filter scoped to the row's view, combined with
// logical AND. Priority and status apply everywhere; the rest only
// where the underlying record carries the field.
func (s State) matches(r Row) bool {
	if !matchString(s.Priority, r.Priority) {
		return false
	}
	if !matchString(s.Status, r.Status) {
		return false
	}
	switch s.View {
	case ViewProviderCredentials, ViewFacilityCredentials:
		return matchString(s.FacilityType, r.FacilityType) &&
			matchString(s.FacilityState, r.FacilityState) &&
			matchTri(s.AppRequired, r.AppRequired) &&
			matchTri(s.TempsPossible, r.TempsPossible) &&
			matchTri(s.PayorEnrollment, r.PayorEnrollmentRequired)
	case ViewPreLive:
		return matchString(s.FacilityType, r.FacilityType) &&
			matchString(s.FacilityState, r.FacilityState) &&
			matchTri(s.PayorEnrollment, r.PayorEnrollmentRequired)
	case ViewLicenses:
		return matchString(s.LicensePath, r.LicensePath) &&
			matchString(s.LicenseCycle, r.LicenseCycle) &&
			matchTri(s.AppRequired, r.AppRequired)
	case ViewPrivileges:
		return matchString(s.PrivilegeTier, r.Tier)
	}
	return true
}

// Filter returns the rows passing every active filter, in input order.
func Filter(rows []Row, s State) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if s.matches(r) {
			out = append(out, r)
		}
	}
	return out
}
