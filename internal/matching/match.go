package matching

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/magician360/opportunity-engine/internal/catalog"
	"github.com/magician360/opportunity-engine/internal/types"
)

// ErrEmptyCatalog is returned when neither the requested category nor
// the full catalog has any entries to select from.
var ErrEmptyCatalog = errors.New("no opportunity data available")

// Matcher selects opportunities from a catalog for a user profile.
// The random source is injectable so tests can force determinism.
type Matcher struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewMatcher creates a matcher over the given catalog. A nil rng gets a
// time-seeded source.
func NewMatcher(c *catalog.Catalog, rng *rand.Rand) *Matcher {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Matcher{catalog: c, rng: rng}
}

// Match picks an opportunity for the category and scores it against the
// user's circumstances. An unrecognized category falls back to the full
// unfiltered catalog; only a completely empty catalog is an error. The
// user profile may be nil (anonymous matching) and is never mutated.
func (m *Matcher) Match(category types.Category, user *types.UserCircumstances) (types.MatchResult, error) {
	candidates := m.catalog.ByCategory(category)
	if len(candidates) == 0 {
		candidates = m.catalog.All()
	}
	if len(candidates) == 0 {
		return types.MatchResult{}, fmt.Errorf("no data for category %q: %w", category, ErrEmptyCatalog)
	}

	anonymous := user == nil
	if anonymous {
		user = &types.UserCircumstances{}
	}

	// Region bias: same-region entries sort first, but out-of-region
	// entries stay selectable. Stable sort keeps catalog order for ties.
	if !anonymous && user.Location.Region != "" {
		region := user.Location.Region
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Region == region && candidates[j].Region != region
		})
	}

	selected := candidates[m.rng.Intn(len(candidates))]

	return types.MatchResult{
		Opportunity:      selected,
		MatchProbability: MatchProbability(&selected, user),
		Resources:        deriveResources(&selected),
	}, nil
}

// deriveResources builds the resource list for a matched opportunity:
// the region's SBA office, its first workforce-solutions office, then
// every program the opportunity references, prefixed by program type.
func deriveResources(opp *types.Opportunity) []string {
	resources := make([]string, 0, 2+len(opp.Programs))

	if data, ok := catalog.RegionData(opp.Region); ok {
		resources = append(resources, "SBA Office: "+data.SBAOffice)
		if len(data.WorkforceSolutionsOffices) > 0 {
			resources = append(resources, "Workforce Solutions: "+data.WorkforceSolutionsOffices[0])
		}
	}

	for _, program := range opp.Programs {
		resources = append(resources, program.Type+" Program: "+program.Name)
	}

	return resources
}
