package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"afyabuddy/internal/clinics"
	"afyabuddy/internal/firstaid"
	"afyabuddy/internal/models"
	"afyabuddy/internal/session"
	"afyabuddy/internal/translate"
	"afyabuddy/internal/triage"
	"afyabuddy/internal/wellness"
)

// Handler serves the AfyaBuddy JSON API
type Handler struct {
	coordinator  *Coordinator
	guides       *firstaid.Library
	analyzer     *wellness.Analyzer
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewHandler creates a new API handler
func NewHandler(coordinator *Coordinator, guides *firstaid.Library, analyzer *wellness.Analyzer, logger *zap.Logger, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1024 * 1024 // Default to 1MB
	}
	if analyzer == nil {
		analyzer = wellness.NewAnalyzer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		coordinator:  coordinator,
		guides:       guides,
		analyzer:     analyzer,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// RegisterRoutes registers the API routes
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/medical-advice", h.HandleMedicalAdvice)
	mux.HandleFunc("/api/v1/consult", h.HandleConsult)
	mux.HandleFunc("/api/v1/translate", h.HandleTranslate)
	mux.HandleFunc("/api/v1/clinics", h.HandleClinics)
	mux.HandleFunc("/api/v1/first-aid-steps", h.HandleFirstAidSteps)
	mux.HandleFunc("/api/v1/wellness", h.HandleWellness)
	mux.HandleFunc("/api/v1/languages", h.HandleLanguages)
	mux.HandleFunc("/api/v1/history", h.HandleHistory)
	mux.HandleFunc("/api/v1/sessions/{id}", h.HandleSession)
	mux.HandleFunc("/api/v1/health", h.HandleHealthCheck)
}

type medicalAdviceRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

// adviceErrorResponse carries short generic guidance alongside the error
type adviceErrorResponse struct {
	Error          string `json:"error"`
	FallbackAdvice string `json:"fallbackAdvice"`
}

type medicalAdviceResponse struct {
	Advice          string              `json:"advice"`
	Confidence      float64             `json:"confidence"`
	UrgencyLevel    models.UrgencyLevel `json:"urgencyLevel"`
	Recommendations []string            `json:"recommendations"`
	Category        string              `json:"category"`
}

// HandleMedicalAdvice returns canned first-aid advice for a query
func (h *Handler) HandleMedicalAdvice(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req medicalAdviceRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	language := requestLanguage(r, req.Language)
	result, err := h.coordinator.Advise(r.Context(), req.Query, language)
	if err != nil {
		h.logger.Warn("Advice failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, adviceErrorResponse{
			Error:          "Failed to produce advice",
			FallbackAdvice: h.coordinator.Translator().Translate(
				triage.FallbackAdvice(req.Query), translate.DefaultLanguage, language),
		})
		return
	}

	h.writeJSON(w, http.StatusOK, medicalAdviceResponse{
		Advice:          result.Content,
		Confidence:      result.Confidence,
		UrgencyLevel:    result.UrgencyLevel,
		Recommendations: result.Recommendations,
		Category:        result.Category,
	})
}

// HandleConsult runs a full consultation
func (h *Handler) HandleConsult(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req ConsultRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.writeError(w, http.StatusBadRequest, "Query is required")
		return
	}
	req.Language = requestLanguage(r, req.Language)

	resp, err := h.coordinator.Consult(r.Context(), req)
	if err != nil {
		h.logger.Warn("Consultation failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Failed to process consultation")
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type translateRequest struct {
	Text    string `json:"text"`
	From    string `json:"from"`
	To      string `json:"to"`
	Context string `json:"context"`
}

// HandleTranslate translates a phrase with the built-in dictionaries
func (h *Handler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req translateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Text == "" || req.To == "" {
		h.writeError(w, http.StatusBadRequest, "Text and target language are required")
		return
	}
	if req.From == "" {
		req.From = translate.DefaultLanguage
	}
	if req.Context == "" {
		req.Context = "medical"
	}

	result := h.coordinator.Translator().TranslateDetailed(req.Text, req.From, req.To, req.Context)
	h.writeJSON(w, http.StatusOK, result)
}

type clinicsRequest struct {
	Location *models.Location `json:"location"`
	Keyword  string           `json:"keyword"`
	Urgency  string           `json:"urgency"`
}

type clinicsResponse struct {
	Results         []models.Clinic `json:"results"`
	Status          string          `json:"status"`
	Recommendations []string        `json:"recommendations"`
}

// HandleClinics ranks nearby clinics around a location
func (h *Handler) HandleClinics(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req clinicsRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Location == nil {
		h.writeError(w, http.StatusBadRequest, "Location is required")
		return
	}

	results := h.coordinator.Directory().Nearby(*req.Location, req.Keyword)
	if results == nil {
		results = []models.Clinic{}
	}

	h.writeJSON(w, http.StatusOK, clinicsResponse{
		Results:         results,
		Status:          "OK",
		Recommendations: clinics.Recommendations(models.ParseUrgency(req.Urgency)),
	})
}

type firstAidRequest struct {
	Condition      string `json:"condition"`
	TargetLanguage string `json:"target_language"`
}

// HandleFirstAidSteps returns a structured first-aid guide for a condition
func (h *Handler) HandleFirstAidSteps(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req firstAidRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Condition) == "" {
		h.writeError(w, http.StatusBadRequest, "Condition is required")
		return
	}

	guide := h.guides.Lookup(req.Condition)

	if language := requestLanguage(r, req.TargetLanguage); language != translate.DefaultLanguage {
		tr := h.coordinator.Translator()
		guide = firstaid.Translate(guide, func(s string) string {
			return tr.Translate(s, translate.DefaultLanguage, language)
		})
	}

	h.writeJSON(w, http.StatusOK, guide)
}

type wellnessRequest struct {
	Image string `json:"image,omitempty"` // base64 capture; not inspected
}

type wellnessResponse struct {
	Analysis        models.WellnessAnalysis `json:"analysis"`
	Recommendations []string                `json:"recommendations"`
	Confidence      float64                 `json:"confidence"`
	Error           string                  `json:"error,omitempty"`
}

// HandleWellness returns a mock wellness assessment. A body that cannot be
// read yields the fixed basic assessment with an error note.
func (h *Handler) HandleWellness(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodPost) {
		return
	}

	var req wellnessRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.logger.Warn("Wellness analysis failed", zap.Error(err))
		basic := wellness.Basic()
		h.writeJSON(w, http.StatusOK, wellnessResponse{
			Analysis:        basic,
			Recommendations: wellness.Recommendations(basic),
			Confidence:      basic.Confidence,
			Error:           "Facial analysis failed. Using basic assessment.",
		})
		return
	}

	analysis := h.analyzer.Analyze()
	h.writeJSON(w, http.StatusOK, wellnessResponse{
		Analysis:        analysis,
		Recommendations: wellness.Recommendations(analysis),
		Confidence:      analysis.Confidence,
	})
}

// HandleLanguages lists the supported UI languages
func (h *Handler) HandleLanguages(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodGet) {
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"languages": translate.Languages(),
		"preferred": requestLanguage(r, ""),
	})
}

// HandleHistory lists recent consultations
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodGet) {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			h.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	recent, counts, err := h.coordinator.History(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to load history", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"consultations": recent,
		"categories":    counts,
	})
}

// HandleSession returns the transcript of a chat session
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	if !h.allowMethod(w, r, http.MethodGet) {
		return
	}

	id := r.PathValue("id")
	messages, err := h.coordinator.Session(r.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load session", zap.String("session_id", id), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"session_id": id,
		"messages":   messages,
	})
}

// HandleHealthCheck provides a basic health check endpoint
func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
