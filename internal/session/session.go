// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/pdiddy/research-design/pkg/types"
)

var (
	// ErrStageIncomplete is returned by Next when the current stage gate fails.
	ErrStageIncomplete = errors.New("stage is incomplete")
	// ErrLastStage is returned by Next on the Complete stage.
	ErrLastStage = errors.New("already at the last stage")
	// ErrFirstStage is returned by Back on the Context stage.
	ErrFirstStage = errors.New("already at the first stage")
	// ErrForwardJump is returned by GoTo for a stage after the current one.
	ErrForwardJump = errors.New("can only jump back to an earlier stage")
	// ErrUnknownStage is returned by GoTo for a stage outside the five.
	ErrUnknownStage = errors.New("unknown stage")
)

// Session owns one draft and the stage the collaborator is on. Stages are
// entered strictly in order; any earlier stage can be revisited without
// losing data. The ID only correlates log lines.
type Session struct {
	ID      uuid.UUID
	stage   Stage
	draft   *types.ResearchDraft
	catalog Catalog
}

// New starts a session with a blank draft on the Context stage.
func New(c Catalog) *Session {
	return &Session{ID: uuid.New(), stage: StageContext, draft: types.NewDraft(), catalog: c}
}

// Resume starts a session on the Context stage with a copy of d.
func Resume(c Catalog, d *types.ResearchDraft) *Session {
	s := New(c)
	if d != nil {
		s.draft = d.Clone()
	}
	return s
}

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// Draft returns a copy of the draft.
func (s *Session) Draft() *types.ResearchDraft { return s.draft.Clone() }

// Apply applies a field-group update to the draft.
func (s *Session) Apply(u Update) { Apply(s.draft, s.catalog, u) }

// CanAdvance reports whether the current stage gate passes.
func (s *Session) CanAdvance() bool {
	return s.stage < StageComplete && IsComplete(s.stage, s.draft)
}

// Next moves to the following stage when the current one is complete.
func (s *Session) Next() error {
	if s.stage >= StageComplete {
		return ErrLastStage
	}
	if !IsComplete(s.stage, s.draft) {
		return ErrStageIncomplete
	}
	s.stage++
	return nil
}

// Back moves to the previous stage.
func (s *Session) Back() error {
	if s.stage <= StageContext {
		return ErrFirstStage
	}
	s.stage--
	return nil
}

// GoTo jumps back to an earlier (or the current) stage.
func (s *Session) GoTo(to Stage) error {
	if !to.Valid() {
		return ErrUnknownStage
	}
	if to > s.stage {
		return ErrForwardJump
	}
	s.stage = to
	return nil
}

// Restart discards the draft and returns to the Context stage.
func (s *Session) Restart() {
	s.draft = types.NewDraft()
	s.stage = StageContext
}
