// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// QuestionCategory tags the intent of a contextual question.
type QuestionCategory string

const (
	CategoryClarification QuestionCategory = "clarification"
	CategoryConcern       QuestionCategory = "concern"
	CategoryValidation    QuestionCategory = "validation"
	CategoryChallenge     QuestionCategory = "challenge"
)

// ContextualQuestion is a hint derived from the current draft. It is
// recomputed whenever the draft changes and never stored.
type ContextualQuestion struct {
	ID       string           `json:"id" yaml:"id"`
	Question string           `json:"question" yaml:"question"`
	Show     bool             `json:"show" yaml:"show"`
	Category QuestionCategory `json:"category" yaml:"category"`
	FollowUp string           `json:"follow_up" yaml:"follow_up"`
}
