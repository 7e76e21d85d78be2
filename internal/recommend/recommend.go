// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recommend scores catalog methods against a research draft and
// returns an advisory shortlist. Scoring is pure: no I/O, no state kept
// between calls.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/research-design/pkg/types"
)

// ShortlistSize is the number of methods Recommend returns.
const ShortlistSize = 3

// Catalog enumerates the methods to score, in tie-break order.
type Catalog interface {
	All() []types.ResearchMethod
}

// MethodScore is one method's total with the rules that contributed to it.
type MethodScore struct {
	ID      string   `json:"id" yaml:"id"`
	Score   int      `json:"score" yaml:"score"`
	Reasons []string `json:"reasons,omitempty" yaml:"reasons,omitempty"`
}

// Score returns every catalog method ranked by descending score. Equal
// scores keep catalog order. Bonuses for IDs outside the catalog are ignored.
func Score(d *types.ResearchDraft, c Catalog, rules Rules) []MethodScore {
	if d == nil {
		d = types.NewDraft()
	}

	all := c.All()
	scores := make([]MethodScore, len(all))
	index := make(map[string]int, len(all))
	for i, m := range all {
		scores[i] = MethodScore{ID: m.ID}
		index[m.ID] = i
	}

	apply := func(source string, b Bonus) {
		for id, pts := range b {
			i, ok := index[id]
			if !ok || pts == 0 {
				continue
			}
			scores[i].Score += pts
			scores[i].Reasons = append(scores[i].Reasons, fmt.Sprintf("%s %+d", source, pts))
		}
	}

	purpose := strings.ToLower(d.ResearchPurpose)
	for _, kr := range rules.Keywords {
		if kr.Matches(purpose) {
			apply("keyword:"+kr.Name, kr.Bonus)
		}
	}
	if b, ok := rules.Phases[d.CurrentPhase]; ok {
		apply("phase:"+string(d.CurrentPhase), b)
	}
	if b, ok := rules.Timelines[d.Timeline]; ok {
		apply("timeline:"+string(d.Timeline), b)
	}
	if b, ok := rules.Budgets[d.Budget]; ok {
		apply("budget:"+string(d.Budget), b)
	}

	for i := range scores {
		sort.Strings(scores[i].Reasons)
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// Recommend returns the IDs of the top ShortlistSize methods, whatever their
// scores. The list is shorter only when the catalog is.
func Recommend(d *types.ResearchDraft, c Catalog, rules Rules) []string {
	scores := Score(d, c, rules)
	n := ShortlistSize
	if len(scores) < n {
		n = len(scores)
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = scores[i].ID
	}
	return ids
}

// Engine pairs a catalog with a rule set.
type Engine struct {
	catalog Catalog
	rules   Rules
}

// NewEngine returns an engine scoring c with rules.
func NewEngine(c Catalog, rules Rules) *Engine {
	return &Engine{catalog: c, rules: rules}
}

// Score ranks every method for d.
func (e *Engine) Score(d *types.ResearchDraft) []MethodScore {
	return Score(d, e.catalog, e.rules)
}

// Recommend returns the shortlist for d.
func (e *Engine) Recommend(d *types.ResearchDraft) []string {
	return Recommend(d, e.catalog, e.rules)
}
