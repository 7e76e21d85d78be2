// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-design/internal/catalog"
	"github.com/pdiddy/research-design/pkg/types"
)

// Bonus maps a method ID to the points a rule adds (or subtracts).
type Bonus map[string]int

// KeywordRule awards Bonus once when any of its keywords occurs in the
// research purpose. Matching is a case-insensitive substring test.
type KeywordRule struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Bonus    Bonus    `json:"bonus" yaml:"bonus"`
}

// Matches reports whether any keyword occurs in the lowercased purpose.
func (r KeywordRule) Matches(lowerPurpose string) bool {
	for _, kw := range r.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lowerPurpose, kw) {
			return true
		}
	}
	return false
}

// Rules is the full scoring rule set. Every table is additive.
type Rules struct {
	Keywords  []KeywordRule            `json:"keywords" yaml:"keywords"`
	Phases    map[types.Phase]Bonus    `json:"phases" yaml:"phases"`
	Timelines map[types.Timeline]Bonus `json:"timelines" yaml:"timelines"`
	Budgets   map[types.Budget]Bonus   `json:"budgets" yaml:"budgets"`
}

// Keyword groups of the built-in rule set.
var (
	NeedsKeywords = KeywordRule{
		Name:     "needs",
		Keywords: []string{"user needs", "motivation", "사용자 니즈", "동기"},
		Bonus:    Bonus{catalog.UserInterview: 3, catalog.DiaryStudy: 2},
	}
	UsabilityKeywords = KeywordRule{
		Name:     "usability",
		Keywords: []string{"usability", "problem points", "pain point", "사용성", "문제점"},
		Bonus:    Bonus{catalog.UsabilityTest: 3, catalog.FieldStudy: 2},
	}
	ValidationKeywords = KeywordRule{
		Name:     "validation",
		Keywords: []string{"validation", "measurement", "검증", "측정"},
		Bonus:    Bonus{catalog.Survey: 3, catalog.ABTest: 2},
	}
	StructureKeywords = KeywordRule{
		Name:     "structure",
		Keywords: []string{"information structure", "classification", "정보구조", "분류"},
		Bonus:    Bonus{catalog.CardSorting: 3},
	}
)

// PhaseBonuses rewards the methods that suit each project phase.
var PhaseBonuses = map[types.Phase]Bonus{
	types.PhaseConcept:    {catalog.UserInterview: 2, catalog.FieldStudy: 2},
	types.PhaseDesign:     {catalog.UsabilityTest: 2, catalog.CardSorting: 2},
	types.PhaseValidation: {catalog.ABTest: 2, catalog.Survey: 1},
}

// TimelineAdjustments penalize slow methods under time pressure.
var TimelineAdjustments = map[types.Timeline]Bonus{
	types.TimelineUrgent: {
		catalog.Survey:        1,
		catalog.UsabilityTest: 1,
		catalog.FieldStudy:    -2,
		catalog.DiaryStudy:    -3,
	},
}

// BudgetAdjustments penalize costly methods under a tight budget.
var BudgetAdjustments = map[types.Budget]Bonus{
	types.BudgetLimited: {
		catalog.Survey:      1,
		catalog.CardSorting: 1,
		catalog.FieldStudy:  -2,
	},
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		Keywords:  []KeywordRule{NeedsKeywords, UsabilityKeywords, ValidationKeywords, StructureKeywords},
		Phases:    PhaseBonuses,
		Timelines: TimelineAdjustments,
		Budgets:   BudgetAdjustments,
	}
}

// Validate checks that every keyword group can match something.
func (r Rules) Validate() error {
	for i, kr := range r.Keywords {
		ok := false
		for _, kw := range kr.Keywords {
			if strings.TrimSpace(kw) != "" {
				ok = true
				break
			}
		}
		if !ok {
			name := kr.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return fmt.Errorf("keyword group %s has no keywords", name)
		}
	}
	return nil
}

// LoadRules reads a YAML rule table. The file replaces the built-in rules
// entirely; tables it omits contribute nothing.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules: %w", err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parsing rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules %s: %w", path, err)
	}
	return r, nil
}
