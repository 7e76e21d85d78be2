// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import "github.com/pdiddy/research-design/pkg/types"

// Catalog answers whether a method ID exists.
type Catalog interface {
	Has(id string) bool
}

// Update changes one field group of a draft. Each group has its own type so
// the shape of every change is checked at compile time.
type Update interface {
	apply(d *types.ResearchDraft, c Catalog)
}

// Apply applies u to d. Updates never fail: unknown method IDs and
// out-of-range list indexes are ignored.
func Apply(d *types.ResearchDraft, c Catalog, u Update) {
	if d == nil || u == nil {
		return
	}
	u.apply(d, c)
}

// IdentityUpdate replaces the project identity fields.
type IdentityUpdate struct {
	ProjectName  string
	ProjectType  types.ProjectType
	CurrentPhase types.Phase
	Stakeholders string
}

func (u IdentityUpdate) apply(d *types.ResearchDraft, _ Catalog) {
	d.ProjectName = u.ProjectName
	d.ProjectType = u.ProjectType
	d.CurrentPhase = u.CurrentPhase
	d.Stakeholders = u.Stakeholders
}

// ProblemUpdate replaces the problem definition fields.
type ProblemUpdate struct {
	BusinessProblem string
	UserProblem     string
	ResearchPurpose string
	SuccessMetrics  string
}

func (u ProblemUpdate) apply(d *types.ResearchDraft, _ Catalog) {
	d.BusinessProblem = u.BusinessProblem
	d.UserProblem = u.UserProblem
	d.ResearchPurpose = u.ResearchPurpose
	d.SuccessMetrics = u.SuccessMetrics
}

// ListField selects the research questions or the hypotheses.
type ListField int

const (
	ListQuestions ListField = iota
	ListHypotheses
)

// ListOp is the edit a QuestionUpdate performs.
type ListOp int

const (
	ListSet ListOp = iota
	ListAdd
	ListRemove
)

// QuestionUpdate edits one entry of the questions or hypotheses list.
// ListAdd appends a blank entry. ListRemove never empties the list: removing
// the only entry leaves a single blank one.
type QuestionUpdate struct {
	Field ListField
	Op    ListOp
	Index int
	Text  string
}

func (u QuestionUpdate) apply(d *types.ResearchDraft, _ Catalog) {
	list := &d.Questions
	if u.Field == ListHypotheses {
		list = &d.Hypotheses
	}
	items := *list

	switch u.Op {
	case ListSet:
		if u.Index >= 0 && u.Index < len(items) {
			items[u.Index] = u.Text
		}
	case ListAdd:
		items = append(items, "")
	case ListRemove:
		if u.Index >= 0 && u.Index < len(items) {
			items = append(items[:u.Index:u.Index], items[u.Index+1:]...)
		}
	}
	if len(items) == 0 {
		items = []string{""}
	}
	*list = items
}

// QuestionsUpdate replaces the whole questions and hypotheses lists. Empty
// lists are stored as a single blank entry.
type QuestionsUpdate struct {
	Questions  []string
	Hypotheses []string
}

func (u QuestionsUpdate) apply(d *types.ResearchDraft, _ Catalog) {
	d.Questions = nonEmptyList(u.Questions)
	d.Hypotheses = nonEmptyList(u.Hypotheses)
}

func nonEmptyList(vs []string) []string {
	if len(vs) == 0 {
		return []string{""}
	}
	return append([]string(nil), vs...)
}

// AudienceUpdate replaces the target audience fields.
type AudienceUpdate struct {
	TargetUser          string
	UserSegments        string
	RecruitmentCriteria string
}

func (u AudienceUpdate) apply(d *types.ResearchDraft, _ Catalog) {
	d.TargetUser = u.TargetUser
	d.UserSegments = u.UserSegments
	d.RecruitmentCriteria = u.RecruitmentCriteria
}

// ConstraintsUpdate replaces the constraint fields.
type ConstraintsUpdate struct {
	Timeline    types.Timeline
	Budget      types.Budget
	Resources   types.Resources
	Limitations string
}

func (u ConstraintsUpdate) apply(d *types.ResearchDraft, _ Catalog) {
	d.Timeline = u.Timeline
	d.Budget = u.Budget
	d.Resources = u.Resources
	d.Limitations = u.Limitations
}

// MethodsUpdate replaces the method selection and rationale. Unknown and
// repeated IDs are dropped; the remaining order is kept.
type MethodsUpdate struct {
	Selected  []string
	Rationale string
}

func (u MethodsUpdate) apply(d *types.ResearchDraft, c Catalog) {
	d.SelectedMethods = FilterMethods(u.Selected, c)
	d.MethodRationale = u.Rationale
}

// MethodToggle selects the method if it is not selected and deselects it
// otherwise. Unknown IDs are ignored.
type MethodToggle struct {
	ID string
}

func (u MethodToggle) apply(d *types.ResearchDraft, c Catalog) {
	for i, id := range d.SelectedMethods {
		if id == u.ID {
			d.SelectedMethods = append(d.SelectedMethods[:i:i], d.SelectedMethods[i+1:]...)
			return
		}
	}
	if c != nil && c.Has(u.ID) {
		d.SelectedMethods = append(d.SelectedMethods, u.ID)
	}
}

// MethodRationaleUpdate replaces the method rationale only.
type MethodRationaleUpdate struct {
	Rationale string
}

func (u MethodRationaleUpdate) apply(d *types.ResearchDraft, _ Catalog) {
	d.MethodRationale = u.Rationale
}

// ExecutionUpdate replaces the execution details.
type ExecutionUpdate struct {
	Details types.ExecutionDetails
}

func (u ExecutionUpdate) apply(d *types.ResearchDraft, _ Catalog) {
	d.Execution = u.Details
}

// FilterMethods returns ids without duplicates and without IDs unknown to c,
// keeping first-occurrence order. It never returns nil.
func FilterMethods(ids []string, c Catalog) []string {
	out := []string{}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] || c == nil || !c.Has(id) {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
