// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import "github.com/pdiddy/research-design/pkg/types"

// Questions returns the contextual hints for a stage, with visibility
// computed from the draft. Stages without hints return nil.
func Questions(s Stage, d *types.ResearchDraft) []types.ContextualQuestion {
	if d == nil {
		d = types.NewDraft()
	}
	switch s {
	case StageContext:
		return []types.ContextualQuestion{
			{
				ID:       "project-clarity",
				Question: "Is the final goal of this project clearly defined?",
				Show:     d.ProjectName == "",
				Category: types.CategoryClarification,
				FollowUp: "Describe which product or service this research is about.",
			},
			{
				ID:       "stakeholder-alignment",
				Question: "Do the key stakeholders agree this research is needed?",
				Show:     d.ProjectName != "" && d.Stakeholders == "",
				Category: types.CategoryConcern,
				FollowUp: "Name who will use the results of this research.",
			},
		}
	case StageProblem:
		return []types.ContextualQuestion{
			{
				ID:       "problem-evidence",
				Question: "Is there evidence that the problem actually exists?",
				Show:     d.BusinessProblem != "" && d.UserProblem == "",
				Category: types.CategoryValidation,
				FollowUp: "Share user data, customer feedback, or analytics if you have them.",
			},
			{
				ID:       "assumption-check",
				Question: "Are the hypotheses based on more than the team's guesses?",
				Show:     anyNonBlank(d.Hypotheses),
				Category: types.CategoryChallenge,
				FollowUp: "Note the evidence or existing data behind each hypothesis.",
			},
		}
	default:
		return nil
	}
}

// Visible filters qs down to the questions that should be shown.
func Visible(qs []types.ContextualQuestion) []types.ContextualQuestion {
	var out []types.ContextualQuestion
	for _, q := range qs {
		if q.Show {
			out = append(out, q)
		}
	}
	return out
}
