package views

import (
	"testing"
)

func TestPriorityRankTotalOrder(t *testing.T) {
	ordered := []string{"superstat", "stat", "top", "high", "medium", "whatever"}
	for i := 0; i < len(ordered)-1; i++ {
		if PriorityRank(ordered[i]) >= PriorityRank(ordered[i+1]) {
			t.Fatalf("expected rank(%q) < rank(%q), got %d >= %d",
				ordered[i], ordered[i+1], PriorityRank(ordered[i]), PriorityRank(ordered[i+1]))
		}
	}
}

func TestPriorityRankNormalizes(t *testing.T) {
	if PriorityRank("STAT!") != PriorityRank("stat") {
		t.Fatalf("expected STAT! and stat to rank equal, got %d and %d",
			PriorityRank("STAT!"), PriorityRank("stat"))
	}
	if PriorityRank("Super-Stat") != PriorityRank("superstat") {
		t.Fatalf("expected Super-Stat to normalize to superstat")
	}
	if PriorityRank("") != priorityRankOther {
		t.Fatalf("expected empty priority to rank last, got %d", PriorityRank(""))
	}
}

func TestSortDetailByPriorityAscending(t *testing.T) {
	rows := []Row{
		{Key: "a", Priority: strPtr("High")},
		{Key: "b", Priority: strPtr("stat")},
		{Key: "c", Priority: strPtr("unknown")},
	}
	sorted := SortDetail(rows, ViewProviderCredentials, "priority", SortAsc)
	got := []string{strVal(sorted[0].Priority), strVal(sorted[1].Priority), strVal(sorted[2].Priority)}
	want := []string{"stat", "High", "unknown"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("priority ascending order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestNonCanonicalPrioritiesOrderByRawString(t *testing.T) {
	rows := []Row{
		{Key: "a", Priority: strPtr("zzz")},
		{Key: "b", Priority: strPtr("aaa")},
	}
	sorted := SortDetail(rows, ViewProviderCredentials, "priority", SortAsc)
	if strVal(sorted[0].Priority) != "aaa" || strVal(sorted[1].Priority) != "zzz" {
		t.Fatalf("expected raw-string order among non-canonical priorities, got %q then %q",
			strVal(sorted[0].Priority), strVal(sorted[1].Priority))
	}
}
