// Package catalog holds the static opportunity catalog and the regional
// reference tables. Both are read-only after initialization.
package catalog

import (
	"fmt"

	"github.com/magician360/opportunity-engine/internal/types"
)

// Catalog is the read-only set of opportunity entries. It is built once
// from the embedded entry tables and verified at construction time.
type Catalog struct {
	entries []types.Opportunity
}

// New builds a catalog from the given entries and verifies referential
// integrity. A broken catalog is a programming error, not a runtime
// condition, so callers normally use Default.
func New(entries []types.Opportunity) (*Catalog, error) {
	c := &Catalog{entries: entries}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built-in Texas opportunity catalog. It panics if
// the embedded data fails verification, since that can only happen when
// the static tables themselves are broken.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Verify checks the data-integrity invariants of the catalog: unique
// IDs, valid categories, a regional-reference entry for every region,
// and at least one required skill per entry so the skill-overlap match
// factor can be earned.
func (c *Catalog) Verify() error {
	seen := make(map[string]bool, len(c.entries))
	for i := range c.entries {
		entry := &c.entries[i]
		if entry.ID == "" {
			return fmt.Errorf("catalog entry %d has no ID", i)
		}
		if seen[entry.ID] {
			return fmt.Errorf("duplicate catalog ID %q", entry.ID)
		}
		seen[entry.ID] = true
		if !entry.Category.IsValid() {
			return fmt.Errorf("catalog entry %q has unknown category %q", entry.ID, entry.Category)
		}
		if _, ok := regionalData[entry.Region]; !ok {
			return fmt.Errorf("catalog entry %q references unknown region %q", entry.ID, entry.Region)
		}
		if len(entry.Skills) == 0 {
			return fmt.Errorf("catalog entry %q lists no required skills", entry.ID)
		}
	}
	return nil
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns a copy of every entry, preserving catalog order.
func (c *Catalog) All() []types.Opportunity {
	out := make([]types.Opportunity, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByCategory returns the entries in the given category, preserving
// catalog order. Unknown categories yield an empty slice; the matcher
// decides how to fall back.
func (c *Catalog) ByCategory(category types.Category) []types.Opportunity {
	var out []types.Opportunity
	for _, entry := range c.entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}
