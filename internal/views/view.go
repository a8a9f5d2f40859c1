package views

// View identifies one of the five dashboard views. The set is closed:
// every switch over View in this package handles all five.
type View string

const (
	ViewProviderCredentials View = "provider_credentials"
	ViewFacilityCredentials View = "facility_credentials"
	ViewPreLive             View = "prelive"
	ViewLicenses            View = "licenses"
	ViewPrivileges          View = "privileges"
)

func (v View) Valid() bool {
	switch v {
	case ViewProviderCredentials, ViewFacilityCredentials, ViewPreLive, ViewLicenses, ViewPrivileges:
		return true
	}
	return false
}

// Grouped reports whether the view has a left-panel group list. The
// privileges view shows every filtered row directly.
func (v View) Grouped() bool {
	return v != ViewPrivileges
}
