package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/proofcard/internal/explain"
	"github.com/jonathan/proofcard/internal/types"
)

// stubGenerator returns canned prose without any external calls.
type stubGenerator struct {
	calls int
	fail  bool
}

func (g *stubGenerator) GenerateExplanation(_ context.Context, req explain.ExplanationRequest) (*explain.Explanation, error) {
	g.calls++
	if g.fail {
		return nil, fmt.Errorf("generator unavailable")
	}
	return &explain.Explanation{
		EvidenceSummary: "Completed sessions for " + req.SkillName + ".",
		Limitations:     "Early process evidence only.",
	}, nil
}

func newTestServer(gen explain.Generator) *Server {
	return &Server{generator: gen}
}

func evaluateBody(t *testing.T, skill string, activities []types.ActivitySummary) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(types.EvaluateRequest{SkillName: skill, Activities: activities})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func unlockableActivities() []types.ActivitySummary {
	return []types.ActivitySummary{
		{Title: "Session 1", Type: "code", Date: "2026-03-01T10:00:00Z",
			EvidenceSource:  string(types.SourceObserved),
			LearningSignals: &types.LearningSignals{SessionKind: types.SessionCoding, Version: types.SignalsVersion, ErrorCorrectionCycles: 1}},
		{Title: "Session 2", Type: "code", Date: "2026-03-02T10:00:00Z",
			EvidenceSource:  string(types.SourceObserved),
			LearningSignals: &types.LearningSignals{SessionKind: types.SessionCoding, Version: types.SignalsVersion}},
		{Title: "Session 3", Type: "code", Date: "2026-03-03T10:00:00Z"},
	}
}

func TestHandleEvaluate_Locked(t *testing.T) {
	gen := &stubGenerator{}
	server := newTestServer(gen)

	req := httptest.NewRequest(http.MethodPost, "/evaluate", evaluateBody(t, "python", nil))
	w := httptest.NewRecorder()

	server.handleEvaluate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result types.LockedResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, types.StatusLocked, result.Status)
	assert.Len(t, result.MissingRequirements, 5)
	assert.Equal(t, 0, gen.calls, "locked evaluations must never reach the generator")
}

func TestHandleEvaluate_Unlocked(t *testing.T) {
	gen := &stubGenerator{}
	server := newTestServer(gen)

	req := httptest.NewRequest(http.MethodPost, "/evaluate", evaluateBody(t, "python", unlockableActivities()))
	w := httptest.NewRecorder()

	server.handleEvaluate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result types.UnlockedResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, types.StatusUnlocked, result.Status)
	assert.Equal(t, "Completed sessions for python.", result.EvidenceSummary)
	assert.Equal(t, 1, gen.calls)
}

func TestHandleEvaluate_GeneratorFailureStillUnlocks(t *testing.T) {
	server := newTestServer(&stubGenerator{fail: true})

	req := httptest.NewRequest(http.MethodPost, "/evaluate", evaluateBody(t, "python", unlockableActivities()))
	w := httptest.NewRecorder()

	server.handleEvaluate(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result types.UnlockedResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, types.StatusUnlocked, result.Status)
	assert.NotEmpty(t, result.EvidenceSummary, "fallback summary expected")
}

func TestHandleEvaluate_InvalidBody(t *testing.T) {
	server := newTestServer(&stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	server.handleEvaluate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleEvaluate_MissingSkillName(t *testing.T) {
	server := newTestServer(&stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/evaluate", evaluateBody(t, "", nil))
	w := httptest.NewRecorder()

	server.handleEvaluate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleEvaluateBatch_PreservesOrder(t *testing.T) {
	server := newTestServer(&stubGenerator{})

	body, err := json.Marshal(types.BatchEvaluateRequest{
		Requests: []types.EvaluateRequest{
			{SkillName: "python", Activities: unlockableActivities()},
			{SkillName: "writing"},
			{SkillName: "sql"},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/evaluate/batch", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	server.handleEvaluateBatch(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Results []struct {
			SkillName string          `json:"skill_name"`
			Result    json.RawMessage `json:"result"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "python", resp.Results[0].SkillName)
	assert.Equal(t, "writing", resp.Results[1].SkillName)
	assert.Equal(t, "sql", resp.Results[2].SkillName)

	var first types.UnlockedResult
	require.NoError(t, json.Unmarshal(resp.Results[0].Result, &first))
	assert.Equal(t, types.StatusUnlocked, first.Status)

	var second types.LockedResult
	require.NoError(t, json.Unmarshal(resp.Results[1].Result, &second))
	assert.Equal(t, types.StatusLocked, second.Status)
}

func TestHandleEvaluateBatch_EmptyRejected(t *testing.T) {
	server := newTestServer(&stubGenerator{})

	body, err := json.Marshal(types.BatchEvaluateRequest{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/evaluate/batch", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	server.handleEvaluateBatch(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
