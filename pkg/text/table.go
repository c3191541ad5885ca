package text

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ConflictKind names an ordering hazard between two rules
type ConflictKind int

const (
	// ConflictShadowed means an earlier key is contained in a later key, so
	// the later rule can no longer match once the earlier one has run.
	ConflictShadowed ConflictKind = iota
	// ConflictChained means a later key occurs in an earlier replacement, so
	// text produced by the earlier rule is rewritten again.
	ConflictChained
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictShadowed:
		return "shadowed"
	case ConflictChained:
		return "chained"
	default:
		return "unknown"
	}
}

// Conflict is an ordering hazard between rule Earlier and rule Later
// (indexes into Table.Rules, Earlier < Later).
type Conflict struct {
	Kind    ConflictKind
	Earlier int
	Later   int
}

// Len returns the number of rules
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rules)
}

// Validate checks that every key is present and unique
func (t *Table) Validate() error {
	if t == nil {
		return errors.New("table is nil")
	}

	seen := make(map[string]int, len(t.Rules))
	for i, rule := range t.Rules {
		if rule.Old == "" {
			return errors.Errorf("rule %d: old is required", i)
		}
		if prev, ok := seen[rule.Old]; ok {
			return errors.Errorf("rule %d: duplicate old %q (first declared as rule %d)", i, rule.Old, prev)
		}
		seen[rule.Old] = i
	}
	return nil
}

// Conflicts reports every pair of rules whose declared order matters.
// Behaviour is unaffected; the rules still apply in order.
func (t *Table) Conflicts() []Conflict {
	if t == nil {
		return nil
	}

	var out []Conflict
	for i, earlier := range t.Rules {
		for j := i + 1; j < len(t.Rules); j++ {
			later := t.Rules[j]
			if earlier.Old == "" || later.Old == "" {
				continue
			}
			if strings.Contains(later.Old, earlier.Old) {
				out = append(out, Conflict{Kind: ConflictShadowed, Earlier: i, Later: j})
			}
			if strings.Contains(earlier.New, later.Old) {
				out = append(out, Conflict{Kind: ConflictChained, Earlier: i, Later: j})
			}
		}
	}
	return out
}

// Describe renders a conflict using the rules of t
func (t *Table) Describe(c Conflict) string {
	earlier, later := t.Rules[c.Earlier], t.Rules[c.Later]
	switch c.Kind {
	case ConflictShadowed:
		return fmt.Sprintf("rule %d %q never matches: rule %d %q rewrites it first", c.Later, later.Old, c.Earlier, earlier.Old)
	case ConflictChained:
		return fmt.Sprintf("rule %d %q rewrites output of rule %d %q", c.Later, later.Old, c.Earlier, earlier.New)
	default:
		return c.Kind.String()
	}
}
