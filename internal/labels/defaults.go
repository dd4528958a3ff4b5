package labels

import (
	"fmt"
	"slices"
	"strings"
)

type Kind string

const (
	KindPhone Kind = "phone"
	KindEmail Kind = "email"
	KindSIP   Kind = "sip"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPhone, KindEmail, KindSIP:
		return k, nil
	default:
		return "", fmt.Errorf("unknown detail kind %q", s)
	}
}

func Defaults() map[Kind]*Set {
	return map[Kind]*Set{
		KindPhone: MustSet(
			Entry{Key: "mobile", Label: "Mobile"},
			Entry{Key: "home", Label: "Home"},
			Entry{Key: "work", Label: "Work"},
			Entry{Key: "main", Label: "Main"},
			Entry{Key: "home_fax", Label: "Home Fax"},
			Entry{Key: "work_fax", Label: "Work Fax"},
			Entry{Key: "pager", Label: "Pager"},
			Entry{Key: "other", Label: "Other"},
		),
		KindEmail: MustSet(
			Entry{Key: "home", Label: "Home"},
			Entry{Key: "work", Label: "Work"},
			Entry{Key: "other", Label: "Other"},
		),
		KindSIP: MustSet(
			Entry{Key: "home", Label: "Home"},
			Entry{Key: "work", Label: "Work"},
			Entry{Key: "other", Label: "Other"},
		),
	}
}

// Catalog maps each detail kind to its label set.
type Catalog struct {
	sets map[Kind]*Set
}

// NewCatalog starts from Defaults and replaces the set of every kind named in
// overrides. An override with no entries keeps the default.
func NewCatalog(overrides map[string][]Entry) (*Catalog, error) {
	c := &Catalog{sets: Defaults()}
	for name, entries := range overrides {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}
		set, err := NewSet(entries...)
		if err != nil {
			return nil, fmt.Errorf("labels.%s: %w", kind, err)
		}
		c.sets[kind] = set
	}
	return c, nil
}

// For returns the label set of kind, or an empty set.
func (c *Catalog) For(kind Kind) *Set {
	if c != nil {
		if s, ok := c.sets[kind]; ok {
			return s
		}
	}
	return MustSet()
}

func (c *Catalog) Kinds() []Kind {
	if c == nil {
		return nil
	}
	out := make([]Kind, 0, len(c.sets))
	for k := range c.sets {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
