package views

// Result is everything one dashboard render needs: the visible group
// list, which group is selected, and the detail rows for it. Empty
// slices, never nil panics, for the no-records case.
type Result struct {
	Groups      []GroupSummary `json:"groups"`
	SelectedKey string         `json:"selected_key"`
	Detail      []Row          `json:"detail"`
}

// GroupSummary is the left-panel projection of a group; detail rows
// are only materialized for the selected group.
type GroupSummary struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
	Count    int    `json:"count"`
}

// Apply runs the full pipeline for the state's active view:
// filter → group → sort groups → left-panel search → reconcile
// selection → detail search → detail sort. Pure and synchronous; it
// never errors on data shape.
func Apply(s State, snap Snapshot) Result {
	rows := Rows(s.View, snap)
	filtered := Filter(rows, s)

	if !s.View.Grouped() {
		detail := SearchDetail(filtered, s.View, s.DetailSearch)
		detail = SortDetail(detail, s.View, s.DetailSortCol, s.DetailSortDir)
		return Result{Groups: []GroupSummary{}, Detail: detail}
	}

	groups := GroupRows(filtered)
	groups = SortGroups(groups, s.GroupSortField, s.GroupSortDir)
	visible := SearchGroups(groups, s.GroupSearch)
	selected := ReconcileSelection(visible, s.SelectedKey)

	detail := []Row{}
	if selected != "" {
		for _, g := range visible {
			if g.Key == selected {
				detail = SearchDetail(g.Rows, s.View, s.DetailSearch)
				detail = SortDetail(detail, s.View, s.DetailSortCol, s.DetailSortDir)
				break
			}
		}
	}

	summaries := make([]GroupSummary, 0, len(visible))
	for _, g := range visible {
		summaries = append(summaries, GroupSummary{
			Key:      g.Key,
			Label:    g.Label,
			Subtitle: g.Subtitle,
			Count:    len(g.Rows),
		})
	}
	return Result{Groups: summaries, SelectedKey: selected, Detail: detail}
}
