// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-design/internal/assemble"
	"github.com/pdiddy/research-design/internal/catalog"
	"github.com/pdiddy/research-design/internal/httputil"
	"github.com/pdiddy/research-design/internal/recommend"
	"github.com/pdiddy/research-design/pkg/types"
)

const checkoutDraft = `{
  "project_name": "Checkout redesign",
  "current_phase": "design",
  "timeline": "urgent",
  "research_purpose": "understand user motivation and pain points in checkout",
  "selected_methods": ["survey", "bogus"]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := catalog.Default()
	h := New(c,
		recommend.NewEngine(c, recommend.DefaultRules()),
		assemble.New(c, types.DocumentConfig{}),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHandleMethods(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/methods")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	methods := decode[[]types.ResearchMethod](t, resp)
	require.Len(t, methods, len(catalog.Default().All()))
	assert.Equal(t, catalog.UserInterview, methods[0].ID)
}

func TestHandleRecommend(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv, "/recommend", checkoutDraft)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[RecommendResponse](t, resp)
	assert.Equal(t, []string{catalog.UsabilityTest, catalog.UserInterview, catalog.CardSorting}, body.Shortlist)
	assert.Len(t, body.Scores, len(catalog.Default().All()))
	assert.Equal(t, []string{"bogus"}, body.Dropped)
}

func TestHandleRender(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name        string
		query       string
		wantType    string
		wantFile    string
		wantContain string
	}{
		{"default markdown", "", "text/markdown", "Checkout redesign_research-design-document.md", "## Methodology"},
		{"explicit markdown", "?format=markdown", "text/markdown", "Checkout redesign_research-design-document.md", "#### Quantitative Survey"},
		{"html", "?format=html", "text/html", "Checkout redesign_research-design-document.html", "<h2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, "/render"+tt.query, checkoutDraft)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), tt.wantType)
			assert.Contains(t, resp.Header.Get("Content-Disposition"), tt.wantFile)

			data, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.wantContain)
			assert.NotContains(t, string(data), "bogus")
		})
	}
}

func TestHandleRenderBadFormat(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv, "/render?format=pdf", checkoutDraft)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "bad_format", decode[httputil.ErrorResponse](t, resp).Error)
}

func TestMalformedJSON(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/recommend", "/render", "/stages/context/complete", "/stages/problem/questions"} {
		t.Run(path, func(t *testing.T) {
			resp := post(t, srv, path, `{"project_name":`)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			assert.Equal(t, "bad_request", decode[httputil.ErrorResponse](t, resp).Error)
		})
	}
}

func TestHandleStageComplete(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		stage       string
		body        string
		wantStage   string
		wantDone    bool
		wantMissing []string
	}{
		{"context", `{}`, "context", false, []string{"project_name", "project_type", "current_phase", "stakeholders"}},
		{"1", `{"project_name":"a","project_type":"new-product","current_phase":"concept","stakeholders":"b"}`, "context", true, []string{}},
		{"design", `{"selected_methods":["survey"]}`, "design", true, []string{}},
		{"design", `{"selected_methods":["bogus"]}`, "design", false, []string{"selected_methods"}},
		{"complete", `{}`, "complete", true, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.stage+" "+tt.body, func(t *testing.T) {
			resp := post(t, srv, "/stages/"+tt.stage+"/complete", tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			body := decode[StageResponse](t, resp)
			assert.Equal(t, tt.wantStage, body.Stage)
			assert.Equal(t, tt.wantDone, body.Complete)
			assert.Equal(t, tt.wantMissing, body.Missing)
		})
	}
}

func TestHandleStageQuestions(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv, "/stages/problem/questions", `{"business_problem":"Churn","hypotheses":["Price"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[QuestionsResponse](t, resp)
	require.Len(t, body.Questions, 2)
	assert.Equal(t, "problem-evidence", body.Questions[0].ID)
	assert.True(t, body.Questions[0].Show)
	assert.Equal(t, "assumption-check", body.Questions[1].ID)
	assert.True(t, body.Questions[1].Show)

	resp = post(t, srv, "/stages/execution/questions", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[QuestionsResponse](t, resp).Questions)
}

func TestUnknownStage(t *testing.T) {
	srv := newTestServer(t)
	resp := post(t, srv, "/stages/launch/complete", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "unknown_stage", decode[httputil.ErrorResponse](t, resp).Error)
}
