package views

import (
	"sort"
	"strings"
)

// Group is one left-panel entry: the rows sharing a grouping key, with
// the label and subtitle taken from the first-seen row.
type Group struct {
	Key      string
	Label    string
	Subtitle string
	Rows     []Row
}

// GroupRows partitions rows by their group key, preserving the order
// of first appearance. Every row lands in exactly one group.
func GroupRows(rows []Row) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, r := range rows {
		key := r.GroupKey()
		if i, ok := index[key]; ok {
			groups[i].Rows = append(groups[i].Rows, r)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{
			Key:      key,
			Label:    r.GroupName,
			Subtitle: r.Subtitle,
			Rows:     []Row{r},
		})
	}
	return groups
}

// SortGroups stable-sorts the group list. "name" compares the label
// case-insensitively; "updated" compares the first row's UpdatedAt,
// with missing timestamps treated as epoch 0.
func SortGroups(groups []Group, field GroupSortField, dir SortDir) []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	desc := dir == SortDesc
	sort.SliceStable(out, func(i, j int) bool {
		var less, equal bool
		switch field {
		case GroupSortName:
			a, b := strings.ToLower(out[i].Label), strings.ToLower(out[j].Label)
			less, equal = a < b, a == b
		default: // updated
			a, b := groupUpdated(out[i]), groupUpdated(out[j])
			less, equal = a < b, a == b
		}
		if equal {
			return false
		}
		if desc {
			return !less
		}
		return less
	})
	return out
}

func groupUpdated(g Group) int64 {
	if len(g.Rows) == 0 {
		return 0
	}
	return epochMillis(g.Rows[0].UpdatedAt)
}

// SearchGroups narrows the list to groups whose label or subtitle
// contains the query, case-insensitively, without changing the order.
func SearchGroups(groups []Group, query string) []Group {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return groups
	}
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		haystack := strings.ToLower(g.Label + " " + g.Subtitle)
		if strings.Contains(haystack, q) {
			out = append(out, g)
		}
	}
	return out
}

// ReconcileSelection keeps the previous selection when it is still in
// the active list, falls back to the first group otherwise, and clears
// when the list is empty. Re-run after every change to filters, search
// or sort.
func ReconcileSelection(groups []Group, previous string) string {
	if len(groups) == 0 {
		return ""
	}
	if previous != "" {
		for _, g := range groups {
			if g.Key == previous {
				return previous
			}
		}
	}
	return groups[0].Key
}
