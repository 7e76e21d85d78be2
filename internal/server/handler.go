// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the catalog, recommendation, stage gates and
// document rendering over HTTP. It is stateless: every request carries the
// whole draft as its JSON body.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/research-design/internal/assemble"
	"github.com/pdiddy/research-design/internal/draft"
	"github.com/pdiddy/research-design/internal/httputil"
	"github.com/pdiddy/research-design/internal/recommend"
	"github.com/pdiddy/research-design/internal/session"
	"github.com/pdiddy/research-design/pkg/types"
)

// Catalog is the method lookup the handlers need.
type Catalog interface {
	All() []types.ResearchMethod
	Has(id string) bool
}

// Handler wires the HTTP endpoints to the core packages.
type Handler struct {
	catalog Catalog
	engine  *recommend.Engine
	asm     *assemble.Assembler
	logger  *slog.Logger
}

// New constructs a handler with its dependencies.
func New(c Catalog, engine *recommend.Engine, asm *assemble.Assembler, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{catalog: c, engine: engine, asm: asm, logger: logger}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/methods", h.HandleMethods)
	r.Post("/recommend", h.HandleRecommend)
	r.Post("/render", h.HandleRender)
	r.Route("/stages/{stage}", func(r chi.Router) {
		r.Post("/complete", h.HandleStageComplete)
		r.Post("/questions", h.HandleStageQuestions)
	})
}

// NewRouter returns a router with the standard middleware and h mounted.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	h.Register(r)
	return r
}

// RecommendResponse is the body of POST /recommend.
type RecommendResponse struct {
	Shortlist []string                `json:"shortlist"`
	Scores    []recommend.MethodScore `json:"scores"`
	Dropped   []string                `json:"dropped,omitempty"`
}

// StageResponse is the body of POST /stages/{stage}/complete.
type StageResponse struct {
	Stage    string   `json:"stage"`
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing"`
}

// QuestionsResponse is the body of POST /stages/{stage}/questions.
type QuestionsResponse struct {
	Stage     string                     `json:"stage"`
	Questions []types.ContextualQuestion `json:"questions"`
}

// HandleMethods handles GET /methods.
func (h *Handler) HandleMethods(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.catalog.All())
}

// HandleRecommend handles POST /recommend.
func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	d, dropped, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	scores := h.engine.Score(d)
	shortlist := make([]string, 0, recommend.ShortlistSize)
	for _, s := range scores[:min(recommend.ShortlistSize, len(scores))] {
		shortlist = append(shortlist, s.ID)
	}
	h.logger.InfoContext(r.Context(), "recommended methods",
		"request_id", middleware.GetReqID(r.Context()),
		"shortlist", shortlist,
	)
	httputil.WriteJSON(w, http.StatusOK, RecommendResponse{
		Shortlist: shortlist,
		Scores:    scores,
		Dropped:   dropped,
	})
}

// HandleRender handles POST /render?format=markdown|html.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	format := types.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = types.FormatMarkdown
	}
	if format != types.FormatMarkdown && format != types.FormatHTML {
		httputil.WriteError(w, http.StatusBadRequest, "bad_format",
			fmt.Sprintf("unknown format %q: use markdown or html", format))
		return
	}
	d, _, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	contentType := "text/markdown; charset=utf-8"
	if format == types.FormatHTML {
		contentType = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", assemble.Filename(d.ProjectName, format)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.asm.Export(d, format)); err != nil {
		h.logger.ErrorContext(r.Context(), "writing document", "error", err)
	}
}

// HandleStageComplete handles POST /stages/{stage}/complete.
func (h *Handler) HandleStageComplete(w http.ResponseWriter, r *http.Request) {
	stage, ok := h.stageParam(w, r)
	if !ok {
		return
	}
	d, _, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	missing := session.Missing(stage, d)
	if missing == nil {
		missing = []string{}
	}
	httputil.WriteJSON(w, http.StatusOK, StageResponse{
		Stage:    stage.String(),
		Complete: session.IsComplete(stage, d),
		Missing:  missing,
	})
}

// HandleStageQuestions handles POST /stages/{stage}/questions.
func (h *Handler) HandleStageQuestions(w http.ResponseWriter, r *http.Request) {
	stage, ok := h.stageParam(w, r)
	if !ok {
		return
	}
	d, _, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	qs := session.Questions(stage, d)
	if qs == nil {
		qs = []types.ContextualQuestion{}
	}
	httputil.WriteJSON(w, http.StatusOK, QuestionsResponse{Stage: stage.String(), Questions: qs})
}

func (h *Handler) stageParam(w http.ResponseWriter, r *http.Request) (session.Stage, bool) {
	stage, err := session.ParseStage(chi.URLParam(r, "stage"))
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "unknown_stage", err.Error())
		return 0, false
	}
	return stage, true
}

// decodeDraft reads the draft body and normalizes it against the catalog.
func (h *Handler) decodeDraft(w http.ResponseWriter, r *http.Request) (*types.ResearchDraft, []string, bool) {
	d := types.NewDraft()
	if err := httputil.DecodeJSON(r, d); err != nil {
		h.logger.WarnContext(r.Context(), "rejecting draft",
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return nil, nil, false
	}
	dropped := draft.Normalize(d, h.catalog)
	if len(dropped) > 0 {
		h.logger.WarnContext(r.Context(), "dropped unknown or repeated methods",
			"request_id", middleware.GetReqID(r.Context()),
			"ids", dropped,
		)
	}
	return d, dropped, true
}
