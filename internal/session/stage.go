// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session models one research-design session: the five ordered
// stages, the completeness gate for each stage, contextual hints, and the
// field-group updates a collaborator applies to the draft.
package session

import (
	"fmt"
	"strings"

	"github.com/pdiddy/research-design/pkg/types"
)

// Stage is one step of the guided session.
type Stage int

const (
	StageContext Stage = iota
	StageProblem
	StageDesign
	StageExecution
	StageComplete
)

// Stages lists every stage in order.
var Stages = []Stage{StageContext, StageProblem, StageDesign, StageExecution, StageComplete}

var stageNames = [...]string{"context", "problem", "design", "execution", "complete"}

var stageTitles = [...]string{
	"Project Context",
	"Problem Definition",
	"Research Design",
	"Execution Plan",
	"Complete",
}

// Valid reports whether s is one of the five stages.
func (s Stage) Valid() bool {
	return s >= StageContext && s <= StageComplete
}

func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Title returns the human-readable stage title.
func (s Stage) Title() string {
	if !s.Valid() {
		return s.String()
	}
	return stageTitles[s]
}

// ParseStage accepts a stage name (case-insensitive) or its 1-based number.
func ParseStage(v string) (Stage, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, n := range stageNames {
		if v == n || v == fmt.Sprint(i+1) {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q: use context, problem, design, execution, or complete", v)
}

// IsComplete reports whether the draft has everything the stage requires
// before moving forward. Complete is always satisfied; unknown stages never
// are.
func IsComplete(s Stage, d *types.ResearchDraft) bool {
	if d == nil {
		return s == StageComplete
	}
	switch s {
	case StageContext:
		return allSet(d.ProjectName, string(d.ProjectType), string(d.CurrentPhase), d.Stakeholders)
	case StageProblem:
		return allSet(d.BusinessProblem, d.UserProblem, d.ResearchPurpose, d.TargetUser) &&
			anyNonBlank(d.Questions) && anyNonBlank(d.Hypotheses)
	case StageDesign:
		return len(d.SelectedMethods) > 0
	case StageExecution:
		e := d.Execution
		return allSet(e.Participants, string(e.RecruitmentMethod), e.Schedule, e.Tools,
			string(e.Location), e.DataCollection, e.AnalysisMethod, e.Deliverables)
	case StageComplete:
		return true
	default:
		return false
	}
}

// Missing names the required fields the stage still lacks, in form order.
func Missing(s Stage, d *types.ResearchDraft) []string {
	if d == nil {
		d = types.NewDraft()
	}
	var missing []string
	check := func(name, v string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	switch s {
	case StageContext:
		check("project_name", d.ProjectName)
		check("project_type", string(d.ProjectType))
		check("current_phase", string(d.CurrentPhase))
		check("stakeholders", d.Stakeholders)
	case StageProblem:
		check("business_problem", d.BusinessProblem)
		check("user_problem", d.UserProblem)
		check("research_purpose", d.ResearchPurpose)
		check("target_user", d.TargetUser)
		if !anyNonBlank(d.Questions) {
			missing = append(missing, "research_questions")
		}
		if !anyNonBlank(d.Hypotheses) {
			missing = append(missing, "hypotheses")
		}
	case StageDesign:
		if len(d.SelectedMethods) == 0 {
			missing = append(missing, "selected_methods")
		}
	case StageExecution:
		e := d.Execution
		check("participants", e.Participants)
		check("recruitment_method", string(e.RecruitmentMethod))
		check("schedule", e.Schedule)
		check("tools", e.Tools)
		check("location", string(e.Location))
		check("data_collection", e.DataCollection)
		check("analysis_method", e.AnalysisMethod)
		check("deliverables", e.Deliverables)
	}
	return missing
}

func allSet(vs ...string) bool {
	for _, v := range vs {
		if v == "" {
			return false
		}
	}
	return true
}

func anyNonBlank(vs []string) bool {
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
