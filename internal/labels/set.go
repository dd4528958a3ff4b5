// Package labels holds the ordered label sets offered when tagging a contact
// detail, such as "Home" or "Work" for a phone number.
package labels

import (
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	ErrEmptyKey     = errors.New("label key is empty")
	ErrDuplicateKey = errors.New("duplicate label key")
)

// Entry is one selectable label: an internal key and its display text.
type Entry struct {
	Key   string `mapstructure:"key"`
	Label string `mapstructure:"label"`
}

// Set is an insertion-ordered mapping from key to display label. Keys are
// unique ignoring case.
type Set struct {
	entries *orderedmap.OrderedMap[string, Entry]
}

func NewSet(entries ...Entry) (*Set, error) {
	s := &Set{entries: orderedmap.New[string, Entry]()}
	for _, e := range entries {
		if err := s.Add(e.Key, e.Label); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustSet is NewSet for literal sets known to be valid.
func MustSet(entries ...Entry) *Set {
	s, err := NewSet(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Set) Add(key, label string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = key
	}
	norm := strings.ToLower(key)
	if _, exists := s.entries.Get(norm); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	s.entries.Set(norm, Entry{Key: key, Label: label})
	return nil
}

func (s *Set) Len() int {
	if s == nil || s.entries == nil {
		return 0
	}
	return s.entries.Len()
}

// Entries returns the set in insertion order.
func (s *Set) Entries() []Entry {
	if s.Len() == 0 {
		return nil
	}
	out := make([]Entry, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (s *Set) Get(key string) (Entry, bool) {
	if s.Len() == 0 {
		return Entry{}, false
	}
	return s.entries.Get(strings.ToLower(strings.TrimSpace(key)))
}

// IndexOf returns the position of the entry whose key or display label equals
// selected ignoring case, or -1.
func (s *Set) IndexOf(selected string) int {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return -1
	}
	for i, e := range s.Entries() {
		if Matches(e, selected) {
			return i
		}
	}
	return -1
}

// Matches reports whether selected names e by key or display label.
func Matches(e Entry, selected string) bool {
	selected = strings.TrimSpace(selected)
	return selected != "" && (strings.EqualFold(e.Key, selected) || strings.EqualFold(e.Label, selected))
}
