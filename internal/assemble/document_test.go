// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-design/internal/catalog"
	"github.com/pdiddy/research-design/pkg/types"
)

var fixedTime = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newTestAssembler() *Assembler {
	return New(catalog.Default(), types.DocumentConfig{})
}

func TestRenderEmptyDraftHasEverySection(t *testing.T) {
	out := newTestAssembler().RenderAt(types.NewDraft(), fixedTime)

	require.True(t, strings.HasPrefix(out, "# "+Title+"\n"))
	last := -1
	for _, h := range Sections {
		marker := "\n## " + h + "\n"
		assert.Equal(t, 1, strings.Count(out, marker), "heading %q", h)
		idx := strings.Index(out, marker)
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
	assert.Contains(t, out, "**Document version**: 1.0")
	assert.Contains(t, out, "**Author**: UX Research Design Tool")
	assert.Contains(t, out, "**Last updated**: March 14, 2026")
}

func TestRenderNilDraft(t *testing.T) {
	a := newTestAssembler()
	assert.Equal(t, a.RenderAt(types.NewDraft(), fixedTime), a.RenderAt(nil, fixedTime))
}

func TestRenderNumberedLists(t *testing.T) {
	tests := []struct {
		name       string
		questions  []string
		hypotheses []string
		want       []string
		notWant    []string
	}{
		{
			name:       "single blank entry",
			questions:  []string{""},
			hypotheses: []string{""},
			notWant:    []string{"\n1. "},
		},
		{
			name:       "trailing blank dropped",
			questions:  []string{"Q1", ""},
			hypotheses: []string{""},
			want:       []string{"\n1. Q1\n"},
			notWant:    []string{"\n2. "},
		},
		{
			name:       "blank in the middle renumbers",
			questions:  []string{"Why do users abandon?", "   ", "What do they compare?"},
			hypotheses: []string{"Shipping costs surprise users"},
			want: []string{
				"\n1. Why do users abandon?\n",
				"\n2. What do they compare?\n",
				"\n1. Shipping costs surprise users\n",
			},
			notWant: []string{"\n3. "},
		},
		{
			name:       "blank first hypothesis dropped",
			questions:  []string{"Why do users abandon?"},
			hypotheses: []string{"  ", "H2"},
			want:       []string{"\n1. Why do users abandon?\n", "\n1. H2\n"},
			notWant:    []string{"\n2. "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := types.NewDraft()
			d.Questions = tt.questions
			d.Hypotheses = tt.hypotheses
			out := newTestAssembler().RenderAt(d, fixedTime)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}
		})
	}
}

func TestNumbered(t *testing.T) {
	assert.Nil(t, Numbered(nil))
	assert.Nil(t, Numbered([]string{"", " "}))
	assert.Equal(t, []string{"1. a", "2. b"}, Numbered([]string{"", "a", "\t", "b"}))
}

func TestRenderAtIsDeterministic(t *testing.T) {
	d := types.NewDraft()
	d.ProjectName = "Checkout redesign"
	d.SelectedMethods = []string{catalog.Survey, catalog.UserInterview}
	a := newTestAssembler()
	assert.Equal(t, a.RenderAt(d, fixedTime), a.RenderAt(d, fixedTime))
}

func TestRenderMethods(t *testing.T) {
	d := types.NewDraft()
	d.SelectedMethods = []string{catalog.Survey, "nonexistent", catalog.UserInterview}
	out := newTestAssembler().RenderAt(d, fixedTime)

	survey, ok := catalog.Default().Find(catalog.Survey)
	require.True(t, ok)
	interview, ok := catalog.Default().Find(catalog.UserInterview)
	require.True(t, ok)

	si := strings.Index(out, "#### "+survey.Name+"\n")
	ii := strings.Index(out, "#### "+interview.Name+"\n")
	require.NotEqual(t, -1, si)
	require.NotEqual(t, -1, ii)
	assert.Less(t, si, ii, "methods render in selection order")
	assert.NotContains(t, out, "nonexistent")
	assert.Equal(t, 2, strings.Count(out, "\n#### "))
	assert.Contains(t, out, "- **Best for**: "+strings.Join(survey.BestFor, ", "))
	assert.Contains(t, out, "- **Estimated cost**: low")
}

func TestRenderFields(t *testing.T) {
	d := types.NewDraft()
	d.ProjectName = "Checkout redesign"
	d.ProjectType = types.ProjectFeatureImprovement
	d.CurrentPhase = types.PhaseDesign
	d.BusinessProblem = "Cart abandonment is 70%"
	d.Timeline = types.TimelineUrgent
	d.Execution.Location = types.LocationOnline
	d.Execution.Risks = "Low recruitment response"

	out := newTestAssembler().RenderAt(d, fixedTime)
	assert.Contains(t, out, "- **Project name**: Checkout redesign\n")
	assert.Contains(t, out, "- **Project type**: feature-improvement\n")
	assert.Contains(t, out, "- **Current phase**: design\n")
	assert.Contains(t, out, "- **Created**: March 14, 2026\n")
	assert.Contains(t, out, "### Business Problem\n\nCart abandonment is 70%\n")
	assert.Contains(t, out, "- **Timeline**: urgent\n")
	assert.Contains(t, out, "- **Location**: online\n")
	assert.Contains(t, out, "### Risks & Mitigation\n\nLow recruitment response\n")
}

func TestDocumentConfig(t *testing.T) {
	a := New(catalog.Default(), types.DocumentConfig{
		Version:    "2.1",
		Author:     "Research Ops",
		DateLayout: "2006-01-02",
	})
	out := a.RenderAt(nil, fixedTime)
	assert.Contains(t, out, "**Document version**: 2.1\n")
	assert.Contains(t, out, "**Author**: Research Ops\n")
	assert.Contains(t, out, "**Last updated**: 2026-03-14\n")
}
