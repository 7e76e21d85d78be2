// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-design/internal/catalog"
	"github.com/pdiddy/research-design/pkg/types"
)

func draftWith(purpose string, phase types.Phase, timeline types.Timeline, budget types.Budget) *types.ResearchDraft {
	d := types.NewDraft()
	d.ResearchPurpose = purpose
	d.CurrentPhase = phase
	d.Timeline = timeline
	d.Budget = budget
	return d
}

func scoreOf(t *testing.T, scores []MethodScore, id string) int {
	t.Helper()
	for _, s := range scores {
		if s.ID == id {
			return s.Score
		}
	}
	t.Fatalf("method %s not scored", id)
	return 0
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name  string
		draft *types.ResearchDraft
		want  []string
	}{
		{
			name:  "empty draft falls back to catalog order",
			draft: types.NewDraft(),
			want:  []string{catalog.UserInterview, catalog.Survey, catalog.UsabilityTest},
		},
		{
			name:  "checkout motivation under urgent design phase",
			draft: draftWith("understand user motivation and pain points in checkout", types.PhaseDesign, types.TimelineUrgent, ""),
			want:  []string{catalog.UsabilityTest, catalog.UserInterview, catalog.CardSorting},
		},
		{
			name:  "concept phase ties broken by catalog order",
			draft: draftWith("", types.PhaseConcept, "", ""),
			want:  []string{catalog.UserInterview, catalog.FieldStudy, catalog.Survey},
		},
		{
			name:  "validation phase with limited budget",
			draft: draftWith("", types.PhaseValidation, "", types.BudgetLimited),
			want:  []string{catalog.Survey, catalog.ABTest, catalog.CardSorting},
		},
		{
			name:  "urgent and limited penalties",
			draft: draftWith("", "", types.TimelineUrgent, types.BudgetLimited),
			want:  []string{catalog.Survey, catalog.UsabilityTest, catalog.CardSorting},
		},
		{
			name:  "korean needs keyword",
			draft: draftWith("사용자 니즈 파악", "", "", ""),
			want:  []string{catalog.UserInterview, catalog.DiaryStudy, catalog.Survey},
		},
		{
			name:  "keyword match ignores case",
			draft: draftWith("Find USABILITY issues", "", "", ""),
			want:  []string{catalog.UsabilityTest, catalog.FieldStudy, catalog.UserInterview},
		},
		{
			name:  "unscored phase contributes nothing",
			draft: draftWith("", types.PhaseDevelopment, "", ""),
			want:  []string{catalog.UserInterview, catalog.Survey, catalog.UsabilityTest},
		},
		{
			name:  "information structure",
			draft: draftWith("rework the information structure of settings", "", "", ""),
			want:  []string{catalog.CardSorting, catalog.UserInterview, catalog.Survey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.draft, catalog.Default(), DefaultRules())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommendUrgentDesignCheckoutExcludesDiaryStudy(t *testing.T) {
	d := draftWith("understand user motivation and pain points in checkout", types.PhaseDesign, types.TimelineUrgent, "")
	got := Recommend(d, catalog.Default(), DefaultRules())

	assert.Contains(t, got, catalog.UserInterview)
	assert.Contains(t, got, catalog.UsabilityTest)
	assert.NotContains(t, got, catalog.DiaryStudy)

	scores := Score(d, catalog.Default(), DefaultRules())
	diary := scoreOf(t, scores, catalog.DiaryStudy)
	assert.Less(t, diary, scoreOf(t, scores, catalog.Survey))
	assert.Less(t, diary, scoreOf(t, scores, catalog.CardSorting))
}

func TestRecommendShortlistProperties(t *testing.T) {
	purposes := []string{"", "user needs", "usability and validation", "classification measurement motivation", "???"}
	ids := map[string]bool{}
	for _, id := range catalog.Default().IDs() {
		ids[id] = true
	}

	for _, p := range purposes {
		for _, phase := range append(types.Phases, "") {
			for _, tl := range append(types.Timelines, "") {
				for _, b := range append(types.Budgets, "") {
					d := draftWith(p, phase, tl, b)
					got := Recommend(d, catalog.Default(), DefaultRules())
					require.Len(t, got, ShortlistSize)

					seen := map[string]bool{}
					for _, id := range got {
						assert.True(t, ids[id], "unknown id %s", id)
						assert.False(t, seen[id], "duplicate id %s", id)
						seen[id] = true
					}
					assert.Equal(t, got, Recommend(d, catalog.Default(), DefaultRules()), "not deterministic")
				}
			}
		}
	}
}

func TestKeywordGroupsStack(t *testing.T) {
	both := Score(draftWith("learn user needs and usability gaps", "", "", ""), catalog.Default(), DefaultRules())
	neither := Score(draftWith("general exploration", "", "", ""), catalog.Default(), DefaultRules())

	assert.Greater(t, scoreOf(t, both, catalog.UserInterview), scoreOf(t, neither, catalog.UserInterview))
	assert.Equal(t, 3, scoreOf(t, both, catalog.UserInterview))
	assert.Equal(t, 3, scoreOf(t, both, catalog.UsabilityTest))
	assert.Equal(t, 2, scoreOf(t, both, catalog.FieldStudy))
	assert.Equal(t, 2, scoreOf(t, both, catalog.DiaryStudy))
}

func TestKeywordGroupFiresOnce(t *testing.T) {
	scores := Score(draftWith("user needs, motivation, more user needs", "", "", ""), catalog.Default(), DefaultRules())
	assert.Equal(t, 3, scoreOf(t, scores, catalog.UserInterview))
}

func TestScoreNegativeScoresStayRanked(t *testing.T) {
	scores := Score(draftWith("", "", types.TimelineUrgent, types.BudgetLimited), catalog.Default(), DefaultRules())
	require.Len(t, scores, 7)
	assert.Equal(t, -4, scoreOf(t, scores, catalog.FieldStudy))
	assert.Equal(t, -3, scoreOf(t, scores, catalog.DiaryStudy))
	assert.Equal(t, catalog.FieldStudy, scores[len(scores)-1].ID)
}

func TestScoreReasons(t *testing.T) {
	d := draftWith("understand user motivation and pain points in checkout", types.PhaseDesign, types.TimelineUrgent, "")
	scores := Score(d, catalog.Default(), DefaultRules())

	require.Equal(t, catalog.UsabilityTest, scores[0].ID)
	assert.Equal(t, 6, scores[0].Score)
	assert.Equal(t, []string{"keyword:usability +3", "phase:design +2", "timeline:urgent +1"}, scores[0].Reasons)
}

func TestScoreNilDraft(t *testing.T) {
	got := Recommend(nil, catalog.Default(), DefaultRules())
	assert.Equal(t, []string{catalog.UserInterview, catalog.Survey, catalog.UsabilityTest}, got)
}

type smallCatalog []types.ResearchMethod

func (c smallCatalog) All() []types.ResearchMethod { return c }

func TestRecommendSmallCatalog(t *testing.T) {
	c := smallCatalog{{ID: catalog.Survey}, {ID: "focus-group"}}
	got := Recommend(draftWith("validation", "", "", ""), c, DefaultRules())
	assert.Equal(t, []string{catalog.Survey, "focus-group"}, got)
}

func TestEngine(t *testing.T) {
	e := NewEngine(catalog.Default(), DefaultRules())
	d := draftWith("measurement of conversion", types.PhaseValidation, "", "")

	assert.Equal(t, []string{catalog.Survey, catalog.ABTest, catalog.UserInterview}, e.Recommend(d))
	assert.Equal(t, 4, scoreOf(t, e.Score(d), catalog.Survey))
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`keywords:
  - name: speed
    keywords: ["quick"]
    bonus:
      survey: 5
phases:
  design:
    ab-test: 4
`), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules.Keywords, 1)
	assert.Equal(t, "speed", rules.Keywords[0].Name)

	got := Recommend(draftWith("a quick check", types.PhaseDesign, types.TimelineUrgent, ""), catalog.Default(), rules)
	assert.Equal(t, []string{catalog.Survey, catalog.ABTest, catalog.UserInterview}, got)
}

func TestLoadRulesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"invalid yaml", "keywords: [", "parsing rules"},
		{"empty keyword group", "keywords:\n  - name: blank\n    keywords: [\"  \"]\n", "keyword group blank has no keywords"},
		{"unnamed keyword group", "keywords:\n  - keywords: []\n", "keyword group #1 has no keywords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := LoadRules(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading rules")
}

func TestKeywordRuleMatches(t *testing.T) {
	r := KeywordRule{Keywords: []string{"Pain Point", ""}}
	assert.True(t, r.Matches("list the pain points"))
	assert.False(t, r.Matches("nothing here"))
	assert.False(t, KeywordRule{}.Matches("anything"))
}
