package views

import (
	"time"
)

// Row is the pipeline's row shape: the union of the fields the five
// record kinds expose to filtering, grouping and sorting. Adapters in
// adapt.go fill only the fields the source record carries; nil means
// "unknown", never "false" or "zero".
type Row struct {
	Key string

	// Grouping identity. GroupID is the foreign id when present;
	// GroupName is the denormalized display name that stands in for a
	// missing id.
	GroupID   string
	GroupName string
	Subtitle  string

	UpdatedAt *time.Time

	Status   *string
	Priority *string
	Notes    *string

	ProviderName   *string
	ProviderDegree *string

	FacilityName  *string
	FacilityType  *string
	FacilityState *string

	LicenseState  *string
	LicensePath   *string
	LicenseCycle  *string
	LicenseNumber *string

	Tier *string

	AppRequired             *bool
	TempsPossible           *bool
	PayorEnrollmentRequired *bool

	SubmittedDate  *time.Time
	ApprovedDate   *time.Time
	TargetLiveDate *time.Time
	IssueDate      *time.Time
	ExpiryDate     *time.Time
	EffectiveDate  *time.Time
}

// GroupKey is the left-panel partition key: foreign id when present,
// display name otherwise. Two unlinked records sharing a display name
// therefore collapse into one group.
func (r Row) GroupKey() string {
	if r.GroupID != "" {
		return r.GroupID
	}
	return r.GroupName
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// epochMillis sorts missing dates as the earliest possible value.
func epochMillis(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}
