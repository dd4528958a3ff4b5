package labels

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// typoMinQuery is the shortest query that tolerates a single-edit typo.
const typoMinQuery = 3

type scoredEntry struct {
	entry Entry
	score int
	index int
}

// Filter returns entries matching query, best match first. Equal scores keep
// the input order. An empty query returns entries unchanged.
func Filter(entries []Entry, query string) []Entry {
	q := strings.TrimSpace(query)
	if q == "" {
		return append([]Entry(nil), entries...)
	}
	scored := make([]scoredEntry, 0, len(entries))
	for i, e := range entries {
		matched, score := matchScore(e.Label, q)
		if !matched {
			matched, score = matchScore(e.Key, q)
		}
		if !matched {
			continue
		}
		scored = append(scored, scoredEntry{entry: e, score: score, index: i})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	out := make([]Entry, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.entry)
	}
	return out
}

func matchScore(label, query string) (bool, int) {
	if ok, score := fuzzyMatchScore(label, query); ok {
		return true, score
	}
	if typoMatch(label, query) {
		return true, 1
	}
	return false, 0
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

// typoMatch accepts a query one edit away from the label or from the label's
// prefix of the same length.
func typoMatch(label, query string) bool {
	q := []rune(strings.ToLower(query))
	if len(q) < typoMinQuery {
		return false
	}
	l := []rune(strings.ToLower(label))
	if levenshtein.ComputeDistance(string(q), string(l)) <= 1 {
		return true
	}
	if len(l) > len(q) {
		return levenshtein.ComputeDistance(string(q), string(l[:len(q)])) <= 1
	}
	return false
}

// NearDuplicates lists pairs of display labels in s that differ by at most one
// edit ignoring case, which usually means a misspelled override.
func NearDuplicates(s *Set) [][2]string {
	entries := s.Entries()
	var out [][2]string
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a := strings.ToLower(entries[i].Label)
			b := strings.ToLower(entries[j].Label)
			if levenshtein.ComputeDistance(a, b) <= 1 {
				out = append(out, [2]string{entries[i].Label, entries[j].Label})
			}
		}
	}
	return out
}
