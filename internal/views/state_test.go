package views

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResetRestoresDefaultTuple(t *testing.T) {
	s := DefaultState(ViewProviderCredentials)
	s = s.SetFilter(FilterPriority, "stat")
	s = s.SetFilter(FilterStatus, "approved")
	s = s.SetFilter(FilterAppRequired, "yes")
	s = s.SetGroupSort(GroupSortName, SortAsc)
	s = s.ClickDetailColumn("status")
	s = s.ClickDetailColumn("status")

	got := s.Reset()
	want := DefaultState(ViewProviderCredentials)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reset state mismatch (-want +got):\n%s", diff)
	}
}

func TestResetKeepsSearchesAndSelection(t *testing.T) {
	s := DefaultState(ViewLicenses)
	s = s.SetGroupSearch("smith")
	s = s.SetDetailSearch("ca")
	s = s.SetSelectedKey("abc")
	s = s.SetFilter(FilterLicensePath, "expedited")

	got := s.Reset()
	if got.LicensePath != FilterAll {
		t.Fatalf("expected license path filter reset, got %q", got.LicensePath)
	}
	if got.GroupSearch != "smith" || got.DetailSearch != "ca" || got.SelectedKey != "abc" {
		t.Fatalf("expected searches and selection to survive reset, got %+v", got)
	}
}

func TestClickDetailColumnFlipsAndResets(t *testing.T) {
	s := DefaultState(ViewProviderCredentials)

	s = s.ClickDetailColumn("status")
	if s.DetailSortCol != "status" || s.DetailSortDir != SortAsc {
		t.Fatalf("first click: got col=%q dir=%q", s.DetailSortCol, s.DetailSortDir)
	}

	s = s.ClickDetailColumn("status")
	if s.DetailSortCol != "status" || s.DetailSortDir != SortDesc {
		t.Fatalf("second click should flip to desc: got col=%q dir=%q", s.DetailSortCol, s.DetailSortDir)
	}

	s = s.ClickDetailColumn("priority")
	if s.DetailSortCol != "priority" || s.DetailSortDir != SortAsc {
		t.Fatalf("new column should reset to asc: got col=%q dir=%q", s.DetailSortCol, s.DetailSortDir)
	}
}

func TestSwitchViewClearsPerViewStateKeepsFilters(t *testing.T) {
	s := DefaultState(ViewProviderCredentials)
	s = s.SetFilter(FilterPriority, "Stat")
	s = s.SetFilter(FilterFacilityState, "TX")
	s = s.SetGroupSearch("mercy")
	s = s.SetDetailSearch("pending")
	s = s.SetSelectedKey("k1")
	s = s.ClickDetailColumn("status")

	s = s.SwitchView(ViewPreLive)
	if s.View != ViewPreLive {
		t.Fatalf("expected view prelive, got %q", s.View)
	}
	if s.SelectedKey != "" || s.GroupSearch != "" || s.DetailSearch != "" || s.DetailSortCol != "" {
		t.Fatalf("expected per-view state cleared, got %+v", s)
	}
	if s.Priority != "stat" || s.FacilityState != "tx" {
		t.Fatalf("expected filters to persist across views, got priority=%q state=%q", s.Priority, s.FacilityState)
	}
}

func TestSwitchViewRejectsUnknownView(t *testing.T) {
	s := DefaultState(ViewLicenses)
	got := s.SwitchView(View("bogus"))
	if got.View != ViewLicenses {
		t.Fatalf("unknown view should be ignored, got %q", got.View)
	}
}

func TestSetFilterNormalizesValues(t *testing.T) {
	s := DefaultState(ViewProviderCredentials)
	s = s.SetFilter(FilterStatus, "  Approved ")
	if s.Status != "approved" {
		t.Fatalf("expected normalized status filter, got %q", s.Status)
	}
	s = s.SetFilter(FilterStatus, "")
	if s.Status != FilterAll {
		t.Fatalf("expected empty value to mean all, got %q", s.Status)
	}
	s = s.SetFilter(FilterAppRequired, "maybe")
	if s.AppRequired != TriAll {
		t.Fatalf("unrecognized tri-state should fall back to all, got %q", s.AppRequired)
	}
}
