package views

import (
	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/types"
)

// Snapshot is one page load's worth of fetched rows: the four
// queryable relations. The credential relation backs both credential
// views; the pipeline treats the snapshot as immutable.
type Snapshot struct {
	Credentials []types.Credential     `json:"credentials"`
	PreLive     []types.PreLiveRecord  `json:"pre_live"`
	Licenses    []types.StateLicense   `json:"licenses"`
	Privileges  []types.VestaPrivilege `json:"privileges"`
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// Rows adapts the snapshot into pipeline rows for one view. The same
// credential record groups by provider in the provider view and by
// facility in the facility view.
func Rows(v View, snap Snapshot) []Row {
	switch v {
	case ViewProviderCredentials:
		out := make([]Row, 0, len(snap.Credentials))
		for i := range snap.Credentials {
			out = append(out, credentialRow(&snap.Credentials[i], true))
		}
		return out
	case ViewFacilityCredentials:
		out := make([]Row, 0, len(snap.Credentials))
		for i := range snap.Credentials {
			out = append(out, credentialRow(&snap.Credentials[i], false))
		}
		return out
	case ViewPreLive:
		out := make([]Row, 0, len(snap.PreLive))
		for i := range snap.PreLive {
			out = append(out, preLiveRow(&snap.PreLive[i]))
		}
		return out
	case ViewLicenses:
		out := make([]Row, 0, len(snap.Licenses))
		for i := range snap.Licenses {
			out = append(out, licenseRow(&snap.Licenses[i]))
		}
		return out
	case ViewPrivileges:
		out := make([]Row, 0, len(snap.Privileges))
		for i := range snap.Privileges {
			out = append(out, privilegeRow(&snap.Privileges[i]))
		}
		return out
	}
	return nil
}

func credentialRow(c *types.Credential, byProvider bool) Row {
	updatedAt := c.UpdatedAt
	r := Row{
		Key:                     c.ID.String(),
		UpdatedAt:               &updatedAt,
		Status:                  c.Status,
		Priority:                c.Priority,
		Notes:                   c.Notes,
		ProviderName:            c.ProviderName,
		ProviderDegree:          c.ProviderDegree,
		FacilityName:            c.FacilityName,
		FacilityType:            c.FacilityType,
		FacilityState:           c.FacilityState,
		AppRequired:             c.AppRequired,
		TempsPossible:           c.TempsPossible,
		PayorEnrollmentRequired: c.PayorEnrollmentRequired,
		SubmittedDate:           c.SubmittedDate,
		ApprovedDate:            c.ApprovedDate,
	}
	if byProvider {
		r.GroupID = idString(c.ProviderID)
		r.GroupName = strVal(c.ProviderName)
		r.Subtitle = strVal(c.ProviderDegree)
	} else {
		r.GroupID = idString(c.FacilityID)
		r.GroupName = strVal(c.FacilityName)
		r.Subtitle = strVal(c.FacilityState)
	}
	return r
}

func preLiveRow(p *types.PreLiveRecord) Row {
	updatedAt := p.UpdatedAt
	return Row{
		Key:                     p.ID.String(),
		GroupID:                 idString(p.FacilityID),
		GroupName:               strVal(p.FacilityName),
		Subtitle:                strVal(p.FacilityState),
		UpdatedAt:               &updatedAt,
		Status:                  p.Status,
		Priority:                p.Priority,
		Notes:                   p.Notes,
		FacilityName:            p.FacilityName,
		FacilityType:            p.FacilityType,
		FacilityState:           p.FacilityState,
		PayorEnrollmentRequired: p.PayorEnrollmentRequired,
		TargetLiveDate:          p.TargetLiveDate,
	}
}

func licenseRow(l *types.StateLicense) Row {
	updatedAt := l.UpdatedAt
	return Row{
		Key:            l.ID.String(),
		GroupID:        idString(l.ProviderID),
		GroupName:      strVal(l.ProviderName),
		Subtitle:       strVal(l.ProviderDegree),
		UpdatedAt:      &updatedAt,
		Status:         l.Status,
		Priority:       l.Priority,
		Notes:          l.Notes,
		ProviderName:   l.ProviderName,
		ProviderDegree: l.ProviderDegree,
		LicenseState:   l.State,
		LicensePath:    l.LicensePath,
		LicenseCycle:   l.LicenseCycle,
		LicenseNumber:  l.LicenseNumber,
		AppRequired:    l.AppRequired,
		IssueDate:      l.IssueDate,
		ExpiryDate:     l.ExpiryDate,
	}
}

func privilegeRow(p *types.VestaPrivilege) Row {
	updatedAt := p.UpdatedAt
	return Row{
		Key:            p.ID.String(),
		GroupID:        idString(p.ProviderID),
		GroupName:      strVal(p.ProviderName),
		Subtitle:       strVal(p.ProviderDegree),
		UpdatedAt:      &updatedAt,
		Status:         p.Status,
		Priority:       p.Priority,
		Notes:          p.Notes,
		ProviderName:   p.ProviderName,
		ProviderDegree: p.ProviderDegree,
		Tier:           p.Tier,
		EffectiveDate:  p.EffectiveDate,
	}
}
