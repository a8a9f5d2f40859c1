package views

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/types"
)

func credential(provider, facility string, mutate func(*types.Credential)) types.Credential {
	c := types.Credential{
		ID:           uuid.New(),
		ProviderName: strPtr(provider),
		FacilityName: strPtr(facility),
		UpdatedAt:    time.Now(),
	}
	if mutate != nil {
		mutate(&c)
	}
	return c
}

func TestFilterIsIdempotent(t *testing.T) {
	s := DefaultState(ViewProviderCredentials).SetFilter(FilterStatus, "pending")
	rows := []Row{
		{Key: "1", Status: strPtr("pending")},
		{Key: "2", Status: strPtr("approved")},
		{Key: "3", Status: nil},
	}
	once := Filter(rows, s)
	twice := Filter(once, s)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d then %d rows", len(once), len(twice))
	}
	for i := range once {
		if once[i].Key != twice[i].Key {
			t.Fatalf("filter not idempotent at index %d", i)
		}
	}
	if len(once) != 1 || once[0].Key != "1" {
		t.Fatalf("expected only the pending row, got %d rows", len(once))
	}
}

func TestTriStateFilterExcludesNull(t *testing.T) {
	row := Row{Key: "1", AppRequired: nil}
	base := DefaultState(ViewProviderCredentials)

	if got := Filter([]Row{row}, base.SetFilter(FilterAppRequired, "yes")); len(got) != 0 {
		t.Fatalf("filter=yes should exclude null field")
	}
	if got := Filter([]Row{row}, base.SetFilter(FilterAppRequired, "no")); len(got) != 0 {
		t.Fatalf("filter=no should exclude null field")
	}
	if got := Filter([]Row{row}, base); len(got) != 1 {
		t.Fatalf("filter=all should include null field")
	}
}

func TestGroupingIsAPartition(t *testing.T) {
	id := uuid.New()
	rows := []Row{
		{Key: "1", GroupID: id.String(), GroupName: "Dr. Adams"},
		{Key: "2", GroupID: id.String(), GroupName: "Dr. Adams"},
		{Key: "3", GroupName: "Dr. Brown"},
		{Key: "4", GroupName: "Dr. Brown"},
		{Key: "5", GroupName: "Dr. Chen"},
	}
	groups := GroupRows(rows)
	total := 0
	seen := map[string]bool{}
	for _, g := range groups {
		total += len(g.Rows)
		for _, r := range g.Rows {
			if seen[r.Key] {
				t.Fatalf("row %s appears in more than one group", r.Key)
			}
			seen[r.Key] = true
		}
	}
	if total != len(rows) {
		t.Fatalf("partition lost rows: sum=%d want=%d", total, len(rows))
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
}

func TestMissingIDGroupsCollapseOnDisplayName(t *testing.T) {
	// Two distinct unnamed entities with the same display name share a
	// group. Known quirk of the id-or-name key; kept on purpose.
	rows := []Row{
		{Key: "1", GroupName: "Mercy General"},
		{Key: "2", GroupName: "Mercy General"},
	}
	groups := GroupRows(rows)
	if len(groups) != 1 {
		t.Fatalf("expected name-keyed rows to collapse into one group, got %d", len(groups))
	}
	if len(groups[0].Rows) != 2 {
		t.Fatalf("expected both rows in the collapsed group, got %d", len(groups[0].Rows))
	}
}

func TestGroupFirstSeenOrderAndLabels(t *testing.T) {
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{Key: "1", GroupName: "Zeta", Subtitle: "MD", UpdatedAt: timePtr(early)},
		{Key: "2", GroupName: "Alpha", Subtitle: "DO"},
		{Key: "3", GroupName: "Zeta", Subtitle: "NP"},
	}
	groups := GroupRows(rows)
	if groups[0].Label != "Zeta" || groups[1].Label != "Alpha" {
		t.Fatalf("expected first-seen order before sorting, got %q then %q", groups[0].Label, groups[1].Label)
	}
	if groups[0].Subtitle != "MD" {
		t.Fatalf("subtitle must come from the first-seen row, got %q", groups[0].Subtitle)
	}
}

func TestSortGroupsByNameAndUpdated(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	groups := []Group{
		{Key: "b", Label: "beta", Rows: []Row{{UpdatedAt: timePtr(t2)}}},
		{Key: "a", Label: "Alpha", Rows: []Row{{UpdatedAt: timePtr(t1)}}},
		{Key: "n", Label: "nodate", Rows: []Row{{}}},
	}

	byName := SortGroups(groups, GroupSortName, SortAsc)
	if byName[0].Key != "a" || byName[1].Key != "b" || byName[2].Key != "n" {
		t.Fatalf("name asc order wrong: %q %q %q", byName[0].Key, byName[1].Key, byName[2].Key)
	}

	byUpdated := SortGroups(groups, GroupSortUpdated, SortDesc)
	if byUpdated[0].Key != "b" || byUpdated[1].Key != "a" || byUpdated[2].Key != "n" {
		t.Fatalf("updated desc order wrong: %q %q %q", byUpdated[0].Key, byUpdated[1].Key, byUpdated[2].Key)
	}

	// Missing UpdatedAt sorts as epoch 0: first when ascending.
	byUpdatedAsc := SortGroups(groups, GroupSortUpdated, SortAsc)
	if byUpdatedAsc[0].Key != "n" {
		t.Fatalf("nil updated_at should sort first ascending, got %q", byUpdatedAsc[0].Key)
	}
}

func TestSortStability(t *testing.T) {
	rows := []Row{
		{Key: "1", Status: strPtr("pending")},
		{Key: "2", Status: strPtr("pending")},
		{Key: "3", Status: strPtr("approved")},
		{Key: "4", Status: strPtr("pending")},
	}
	sorted := SortDetail(rows, ViewProviderCredentials, "status", SortAsc)
	if sorted[0].Key != "3" {
		t.Fatalf("expected approved first, got %q", sorted[0].Key)
	}
	want := []string{"1", "2", "4"}
	for i, k := range want {
		if sorted[i+1].Key != k {
			t.Fatalf("equal keys must keep prior order: position %d got %q want %q", i+1, sorted[i+1].Key, k)
		}
	}
}

func TestSelectionFallsBackToFirstGroup(t *testing.T) {
	groups := []Group{{Key: "1", Label: "A"}, {Key: "2", Label: "B"}}
	if got := ReconcileSelection(groups, "2"); got != "2" {
		t.Fatalf("present selection must be kept, got %q", got)
	}
	// Filter removed B: selection becomes A.
	if got := ReconcileSelection(groups[:1], "2"); got != "1" {
		t.Fatalf("missing selection must fall back to first group, got %q", got)
	}
	if got := ReconcileSelection(nil, "2"); got != "" {
		t.Fatalf("empty list must clear selection, got %q", got)
	}
	if got := ReconcileSelection(groups, ""); got != "1" {
		t.Fatalf("no prior selection must pick first group, got %q", got)
	}
}

func TestNilDateSortsFirstAscending(t *testing.T) {
	d := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{Key: "dated", SubmittedDate: timePtr(d)},
		{Key: "nodate", SubmittedDate: nil},
	}
	sorted := SortDetail(rows, ViewProviderCredentials, "submitted", SortAsc)
	if sorted[0].Key != "nodate" {
		t.Fatalf("nil date must rank before any parseable date ascending, got %q first", sorted[0].Key)
	}
}

func TestTriBoolSortOrder(t *testing.T) {
	rows := []Row{
		{Key: "true", AppRequired: boolPtr(true)},
		{Key: "null", AppRequired: nil},
		{Key: "false", AppRequired: boolPtr(false)},
	}
	sorted := SortDetail(rows, ViewProviderCredentials, "app_required", SortAsc)
	got := []string{sorted[0].Key, sorted[1].Key, sorted[2].Key}
	want := []string{"null", "false", "true"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tri-bool order mismatch: got %v want %v", got, want)
		}
	}
}

func TestApplyEndToEnd(t *testing.T) {
	provA := uuid.New()
	provB := uuid.New()
	snap := Snapshot{
		Credentials: []types.Credential{
			credential("Dr. Adams", "Mercy General", func(c *types.Credential) {
				c.ProviderID = &provA
				c.Status = strPtr("pending")
				c.Priority = strPtr("stat")
			}),
			credential("Dr. Adams", "St. Luke's", func(c *types.Credential) {
				c.ProviderID = &provA
				c.Status = strPtr("approved")
			}),
			credential("Dr. Brown", "Mercy General", func(c *types.Credential) {
				c.ProviderID = &provB
				c.Status = strPtr("pending")
			}),
		},
	}

	s := DefaultState(ViewProviderCredentials)
	res := Apply(s, snap)
	if len(res.Groups) != 2 {
		t.Fatalf("expected 2 provider groups, got %d", len(res.Groups))
	}
	if res.SelectedKey != res.Groups[0].Key {
		t.Fatalf("default selection must be the first group")
	}
	if len(res.Detail) == 0 {
		t.Fatalf("expected detail rows for the selected group")
	}

	// Selecting Brown then filtering him out falls back to Adams.
	s = s.SetSelectedKey(provB.String())
	s = s.SetFilter(FilterStatus, "approved")
	res = Apply(s, snap)
	if len(res.Groups) != 1 {
		t.Fatalf("expected 1 group after status filter, got %d", len(res.Groups))
	}
	if res.SelectedKey != provA.String() {
		t.Fatalf("selection should reset to the surviving group, got %q", res.SelectedKey)
	}

	// No rows at all: explicit empty state, nothing throws.
	s = s.SetFilter(FilterStatus, "nonexistent")
	res = Apply(s, snap)
	if len(res.Groups) != 0 || res.SelectedKey != "" || len(res.Detail) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestApplyPrivilegesViewIsUngrouped(t *testing.T) {
	snap := Snapshot{
		Privileges: []types.VestaPrivilege{
			{ID: uuid.New(), ProviderName: strPtr("Dr. Adams"), Tier: strPtr("full"), UpdatedAt: time.Now()},
			{ID: uuid.New(), ProviderName: strPtr("Dr. Brown"), Tier: strPtr("provisional"), UpdatedAt: time.Now()},
		},
	}
	s := DefaultState(ViewPrivileges)
	res := Apply(s, snap)
	if len(res.Groups) != 0 {
		t.Fatalf("privileges view has no group list, got %d groups", len(res.Groups))
	}
	if len(res.Detail) != 2 {
		t.Fatalf("privileges view shows every filtered row, got %d", len(res.Detail))
	}

	s = s.SetFilter(FilterPrivilegeTier, "full")
	res = Apply(s, snap)
	if len(res.Detail) != 1 || strVal(res.Detail[0].Tier) != "full" {
		t.Fatalf("tier filter failed, got %d rows", len(res.Detail))
	}
}

func TestGroupSearchNarrowsWithoutReordering(t *testing.T) {
	groups := []Group{
		{Key: "1", Label: "Mercy General", Subtitle: "TX"},
		{Key: "2", Label: "St. Luke's", Subtitle: "CA"},
		{Key: "3", Label: "Mercy West", Subtitle: "CA"},
	}
	got := SearchGroups(groups, "mercy")
	if len(got) != 2 || got[0].Key != "1" || got[1].Key != "3" {
		t.Fatalf("label search wrong: %+v", got)
	}
	// Subtitle participates in the haystack.
	got = SearchGroups(groups, "ca")
	if len(got) != 2 || got[0].Key != "2" || got[1].Key != "3" {
		t.Fatalf("subtitle search wrong: %+v", got)
	}
}
