// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the fixed set of UX research methods the tool can
// recommend and document. The table is read-only; every accessor returns
// copies so callers cannot change it.
package catalog

import "github.com/pdiddy/research-design/pkg/types"

// Method IDs, in catalog order.
const (
	UserInterview = "user-interview"
	Survey        = "survey"
	UsabilityTest = "usability-test"
	FieldStudy    = "field-study"
	CardSorting   = "card-sorting"
	ABTest        = "ab-test"
	DiaryStudy    = "diary-study"
)

var methods = []types.ResearchMethod{
	{
		ID:           UserInterview,
		Name:         "In-depth User Interview",
		Description:  "Deep understanding of users through one-on-one conversation",
		BestFor:      []string{"Exploring user needs", "Understanding motivation and emotion", "Finding unmet needs"},
		NotGoodFor:   []string{"Quantitative validation", "Large-scale opinion gathering"},
		Timeframe:    "2-4 weeks",
		Participants: "5-12",
		Cost:         types.CostMedium,
		Skills:       []string{"Interviewing", "Qualitative analysis"},
		Deliverables: []string{"User journey map", "Personas", "Insight report"},
	},
	{
		ID:           Survey,
		Name:         "Quantitative Survey",
		Description:  "Large-scale data collection through structured questions",
		BestFor:      []string{"Hypothesis validation", "Preference measurement", "Market sizing"},
		NotGoodFor:   []string{"In-depth understanding", "New discoveries"},
		Timeframe:    "1-3 weeks",
		Participants: "100+",
		Cost:         types.CostLow,
		Skills:       []string{"Survey design", "Statistical analysis"},
		Deliverables: []string{"Statistical report", "Trend analysis", "Segmentation"},
	},
	{
		ID:           UsabilityTest,
		Name:         "Usability Test",
		Description:  "Finding problems by observing real use",
		BestFor:      []string{"Finding UI/UX problems", "Measuring task completion", "Identifying improvements"},
		NotGoodFor:   []string{"Concept validation", "Brand perception"},
		Timeframe:    "1-2 weeks",
		Participants: "5-8",
		Cost:         types.CostMedium,
		Skills:       []string{"Test design", "Behavioral observation"},
		Deliverables: []string{"Issue list", "Improvement recommendations", "Priorities"},
	},
	{
		ID:           FieldStudy,
		Name:         "Field Observation",
		Description:  "Observing user behavior in its natural environment",
		BestFor:      []string{"Real usage context", "Unconscious behavior", "Environmental factors"},
		NotGoodFor:   []string{"Fast results", "Controlled environments"},
		Timeframe:    "3-6 weeks",
		Participants: "8-15",
		Cost:         types.CostHigh,
		Skills:       []string{"Observation techniques", "Contextual analysis"},
		Deliverables: []string{"Context map", "Behavior patterns", "Environment analysis"},
	},
	{
		ID:           CardSorting,
		Name:         "Card Sorting",
		Description:  "Understanding how users classify information",
		BestFor:      []string{"Information architecture", "Menu structure", "Classification logic"},
		NotGoodFor:   []string{"Emotional response", "Usability problems"},
		Timeframe:    "1-2 weeks",
		Participants: "15-30",
		Cost:         types.CostLow,
		Skills:       []string{"Classification analysis", "IA design"},
		Deliverables: []string{"Information architecture diagram", "Taxonomy", "Navigation recommendations"},
	},
	{
		ID:           ABTest,
		Name:         "A/B Test",
		Description:  "Optimization by comparing the performance of two variants",
		BestFor:      []string{"Design validation", "Conversion improvement", "Quantitative comparison"},
		NotGoodFor:   []string{"Exploratory research", "Qualitative feedback"},
		Timeframe:    "2-8 weeks",
		Participants: "hundreds to thousands",
		Cost:         types.CostHigh,
		Skills:       []string{"Experiment design", "Statistical analysis"},
		Deliverables: []string{"Performance comparison", "Winning variant", "Improvement impact"},
	},
	{
		ID:           DiaryStudy,
		Name:         "Diary Study",
		Description:  "Tracking user experience over a long period",
		BestFor:      []string{"Long-term behavior patterns", "Change over time", "Everyday use"},
		NotGoodFor:   []string{"Immediate results", "Short projects"},
		Timeframe:    "4-12 weeks",
		Participants: "10-20",
		Cost:         types.CostMedium,
		Skills:       []string{"Longitudinal study design", "Pattern analysis"},
		Deliverables: []string{"Behavior change tracking", "Usage patterns", "Long-term insights"},
	},
}

// Catalog gives read access to the method table. The zero value is not
// usable; use Default.
type Catalog struct {
	methods []types.ResearchMethod
	index   map[string]int
}

var defaultCatalog = newCatalog(methods)

// Default returns the built-in seven-method catalog.
func Default() *Catalog {
	return defaultCatalog
}

func newCatalog(ms []types.ResearchMethod) *Catalog {
	c := &Catalog{methods: ms, index: make(map[string]int, len(ms))}
	for i, m := range ms {
		c.index[m.ID] = i
	}
	return c
}

// All returns every method in catalog order.
func (c *Catalog) All() []types.ResearchMethod {
	out := make([]types.ResearchMethod, len(c.methods))
	for i, m := range c.methods {
		out[i] = cloneMethod(m)
	}
	return out
}

// Find returns the method with the given ID. The second result is false when
// the ID is unknown.
func (c *Catalog) Find(id string) (types.ResearchMethod, bool) {
	i, ok := c.index[id]
	if !ok {
		return types.ResearchMethod{}, false
	}
	return cloneMethod(c.methods[i]), true
}

// Has reports whether id is a catalog key.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IDs returns the method IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.methods))
	for i, m := range c.methods {
		ids[i] = m.ID
	}
	return ids
}

func cloneMethod(m types.ResearchMethod) types.ResearchMethod {
	m.BestFor = append([]string(nil), m.BestFor...)
	m.NotGoodFor = append([]string(nil), m.NotGoodFor...)
	m.Skills = append([]string(nil), m.Skills...)
	m.Deliverables = append([]string(nil), m.Deliverables...)
	return m
}
