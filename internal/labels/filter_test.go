package labels

import (
	"strings"
	"testing"
)

func phoneEntries() []Entry {
	return Defaults()[KindPhone].Entries()
}

func labelsOf(entries []Entry) string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return strings.Join(out, ",")
}

func TestFilterEmptyQueryKeepsOrder(t *testing.T) {
	got := Filter(phoneEntries(), "  ")
	if labelsOf(got) != labelsOf(phoneEntries()) {
		t.Fatalf("order changed: %s", labelsOf(got))
	}
}

func TestFilterRanksPrefixFirst(t *testing.T) {
	got := Filter(phoneEntries(), "wo")
	if len(got) == 0 || got[0].Label != "Work" {
		t.Fatalf("first = %s, want Work first", labelsOf(got))
	}
	if !strings.Contains(labelsOf(got), "Work Fax") {
		t.Fatalf("expected Work Fax in %s", labelsOf(got))
	}
}

func TestFilterToleratesOneTypo(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"mpbile", "Mobile"},
		{"hpme", "Home"},
		{"wirk", "Work"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(phoneEntries(), tt.query)
			if !strings.Contains(labelsOf(got), tt.want) {
				t.Fatalf("Filter(%q) = %s, want %s included", tt.query, labelsOf(got), tt.want)
			}
		})
	}
}

func TestFilterShortQueriesAreStrict(t *testing.T) {
	if got := Filter(phoneEntries(), "zq"); len(got) != 0 {
		t.Fatalf("expected no matches, got %s", labelsOf(got))
	}
}

func TestNearDuplicates(t *testing.T) {
	s := MustSet(
		Entry{Key: "home", Label: "Home"},
		Entry{Key: "hoem", Label: "Hoe"},
		Entry{Key: "work", Label: "Work"},
	)
	pairs := NearDuplicates(s)
	if len(pairs) != 1 || pairs[0] != [2]string{"Home", "Hoe"} {
		t.Fatalf("pairs = %v", pairs)
	}
	if len(NearDuplicates(Defaults()[KindEmail])) != 0 {
		t.Fatal("defaults should have no near duplicates")
	}
}
