package api

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afyabuddy/internal/firstaid"
	"afyabuddy/internal/models"
	"afyabuddy/internal/session"
	"afyabuddy/internal/wellness"
)

type testServer struct {
	mux      *http.ServeMux
	sessions *session.MemoryStore
	history  *fakeHistory
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	guides, err := firstaid.Default()
	require.NoError(t, err)

	ts := &testServer{
		mux:      http.NewServeMux(),
		sessions: session.NewMemoryStore(0, 0),
		history:  &fakeHistory{},
	}
	coordinator := newTestCoordinator(ts.sessions, ts.history, nil)
	analyzer := wellness.NewAnalyzer(rand.NewPCG(1, 2))
	NewHandler(coordinator, guides, analyzer, nil, 1024).RegisterRoutes(ts.mux)
	return ts
}

func (ts *testServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		r.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	ts.mux.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/medical-advice"},
		{http.MethodGet, "/api/v1/consult"},
		{http.MethodGet, "/api/v1/translate"},
		{http.MethodGet, "/api/v1/clinics"},
		{http.MethodGet, "/api/v1/first-aid-steps"},
		{http.MethodGet, "/api/v1/wellness"},
		{http.MethodPost, "/api/v1/languages"},
		{http.MethodPost, "/api/v1/history"},
		{http.MethodDelete, "/api/v1/sessions/abc"},
	} {
		w := ts.do(tc.method, tc.path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, tc.path)
		assert.Equal(t, "Method not allowed", decode[errorResponse](t, w).Error, tc.path)
	}
}

func TestHandleMedicalAdvice(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/v1/medical-advice", `{"query":"my friend is choking","language":"en"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	got := decode[map[string]any](t, w)
	assert.Equal(t, "choking", got["category"])
	assert.Equal(t, 0.94, got["confidence"])
	assert.Equal(t, "high", got["urgencyLevel"])
	assert.Contains(t, got["advice"], "CHOKING EMERGENCY")
	assert.NotEmpty(t, got["recommendations"])
}

func TestHandleMedicalAdvice_AcceptLanguage(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/v1/medical-advice", `{"query":"heart attack"}`, "Accept-Language", "sw-KE,en;q=0.5")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[medicalAdviceResponse](t, w)
	assert.Equal(t, "heart_attack", got.Category)
	assert.Contains(t, got.Advice, "Dharura")
}

func TestHandleMedicalAdvice_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := map[string]string{
		"invalid json": `{"query":`,
		"missing":      `{"language":"en"}`,
		"blank":        `{"query":"   "}`,
		"empty body":   ``,
		"too large":    `{"query":"` + strings.Repeat("a", 2048) + `"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/medical-advice", bytes.NewBufferString(body))
			w := httptest.NewRecorder()
			ts.mux.ServeHTTP(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode[errorResponse](t, w).Error)
		})
	}
}

func TestHandleConsult(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/v1/consult",
		`{"query":"severe bleeding","session_id":"abc","location":{"latitude":-1.2921,"longitude":36.8219}}`)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[ConsultResponse](t, w)
	assert.Equal(t, "bleeding", got.Category)
	assert.Equal(t, models.UrgencyHigh, got.UrgencyLevel)
	assert.Equal(t, "abc", got.SessionID)
	assert.NotEmpty(t, got.Clinics)
	assert.NotEmpty(t, got.ClinicRecommendations)

	w = ts.do(http.MethodGet, "/api/v1/sessions/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	transcript := decode[struct {
		SessionID string           `json:"session_id"`
		Messages  []models.Message `json:"messages"`
	}](t, w)
	assert.Equal(t, "abc", transcript.SessionID)
	assert.Len(t, transcript.Messages, 2)

	w = ts.do(http.MethodGet, "/api/v1/history?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	hist := decode[struct {
		Consultations []models.Consultation `json:"consultations"`
		Categories    map[string]int        `json:"categories"`
	}](t, w)
	require.Len(t, hist.Consultations, 1)
	assert.Equal(t, got.ID, hist.Consultations[0].ID)
	assert.Equal(t, map[string]int{"bleeding": 1}, hist.Categories)
}

func TestHandleConsult_ExplicitLanguageOverridesHeader(t *testing.T) {
	ts := newTestServer(t)

	// Luhya is offered in the catalogue but has no dictionary
	w := ts.do(http.MethodPost, "/api/v1/consult",
		`{"query":"I need a doctor at the hospital","language":"lu"}`, "Accept-Language", "sw")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[ConsultResponse](t, w)
	assert.Equal(t, "en", got.Language)
	assert.NotContains(t, got.Advice, "Hospitali")

	w = ts.do(http.MethodPost, "/api/v1/medical-advice",
		`{"query":"heart attack","language":"som"}`, "Accept-Language", "sw")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, decode[medicalAdviceResponse](t, w).Advice, "Dharura")
}

func TestHandleMedicalAdvice_FailureCarriesFallbackAdvice(t *testing.T) {
	ts := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	send := func(body, acceptLanguage string) adviceErrorResponse {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/medical-advice", strings.NewReader(body)).WithContext(ctx)
		if acceptLanguage != "" {
			r.Header.Set("Accept-Language", acceptLanguage)
		}
		w := httptest.NewRecorder()
		ts.mux.ServeHTTP(w, r)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		return decode[adviceErrorResponse](t, w)
	}

	basic := send(`{"query":"general question"}`, "")
	assert.Equal(t, "Failed to produce advice", basic.Error)
	assert.Contains(t, basic.FallbackAdvice, "Basic First Aid Guidance")

	urgent := send(`{"query":"severe chest pain"}`, "sw")
	assert.Contains(t, urgent.FallbackAdvice, "Piga simu")
	assert.Contains(t, urgent.FallbackAdvice, "Dharura")
}

func TestHandleSession_NotFound(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(http.MethodGet, "/api/v1/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleHistory_BadLimit(t *testing.T) {
	ts := newTestServer(t)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/v1/history?limit=x", "").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/v1/history?limit=-1", "").Code)
}

func TestHandleTranslate(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/v1/translate", `{"text":"Hospital","from":"en","to":"sw","context":"medical"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[models.TranslationResult](t, w)
	assert.Equal(t, "Hospitali", got.TranslatedText)
	assert.Equal(t, 0.95, got.Confidence)
	assert.Equal(t, "en", got.DetectedSourceLanguage)
	assert.Len(t, got.CulturalNotes, 3)

	w = ts.do(http.MethodPost, "/api/v1/translate", `{"text":"Hospital"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleClinics(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/v1/clinics",
		`{"location":{"latitude":-1.2635,"longitude":36.8017},"keyword":"general","urgency":"normal"}`)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[clinicsResponse](t, w)
	assert.Equal(t, "OK", got.Status)
	require.Len(t, got.Results, 8)
	assert.Equal(t, "Aga Khan University Hospital", got.Results[0].Name)
	assert.Equal(t, "Consider appointment availability and waiting times", got.Recommendations[0])

	w = ts.do(http.MethodPost, "/api/v1/clinics", `{"keyword":"general"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFirstAidSteps(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/v1/first-aid-steps", `{"condition":"asthma attack"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.FirstAidGuide](t, w)
	assert.Equal(t, "asthma", got.Condition)
	assert.NotEmpty(t, got.Steps)

	w = ts.do(http.MethodPost, "/api/v1/first-aid-steps", `{"condition":"alien abduction"}`)
	require.Equal(t, http.StatusOK, w.Code)
	unknown := decode[models.FirstAidGuide](t, w)
	assert.Equal(t, firstaid.NoGuideContent, unknown.Content)
	assert.Zero(t, unknown.Confidence)

	w = ts.do(http.MethodPost, "/api/v1/first-aid-steps", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFirstAidSteps_Translated(t *testing.T) {
	ts := newTestServer(t)

	en := decode[models.FirstAidGuide](t, ts.do(http.MethodPost, "/api/v1/first-aid-steps", `{"condition":"bleeding"}`))
	sw := decode[models.FirstAidGuide](t, ts.do(http.MethodPost, "/api/v1/first-aid-steps", `{"condition":"bleeding","target_language":"sw"}`))

	assert.Len(t, sw.Steps, len(en.Steps))
	assert.NotEqual(t, en, sw)
}

func TestHandleWellness(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/v1/wellness", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[wellnessResponse](t, w)
	assert.Equal(t, 0.85, got.Confidence)
	assert.GreaterOrEqual(t, got.Analysis.MentalHealthScore, 60)
	assert.Equal(t, wellness.Recommendations(got.Analysis), got.Recommendations)
	assert.Empty(t, got.Error)
}

func TestHandleWellness_UnreadableBodyUsesBasicAssessment(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/v1/wellness", `{"image":`)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[wellnessResponse](t, w)
	assert.Equal(t, wellness.Basic(), got.Analysis)
	assert.Equal(t, "Facial analysis failed. Using basic assessment.", got.Error)
	assert.Equal(t, wellness.Recommendations(wellness.Basic()), got.Recommendations)
}

func TestHandleLanguages(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/v1/languages", "", "Accept-Language", "luo")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[struct {
		Languages []struct {
			Code string `json:"code"`
		} `json:"languages"`
		Preferred string `json:"preferred"`
	}](t, w)
	assert.Len(t, got.Languages, 13)
	assert.Equal(t, "luo", got.Preferred)
}

func TestHandleHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w)["status"])
}

func TestRequestLanguage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?lang=kam", nil)
	r.Header.Set("Accept-Language", "sw")
	assert.Equal(t, "kam", requestLanguage(r, ""))
	assert.Equal(t, "ki", requestLanguage(r, "ki"))

	r = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
	assert.Equal(t, "en", requestLanguage(r, ""))
}
