package api

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"afyabuddy/internal/clinics"
	"afyabuddy/internal/models"
	"afyabuddy/internal/session"
	"afyabuddy/internal/translate"
	"afyabuddy/internal/triage"
)

// ErrEmptyQuery is returned when a consultation has no question text
var ErrEmptyQuery = errors.New("query is required")

// HistoryStore records answered consultations
type HistoryStore interface {
	Record(ctx context.Context, c *models.Consultation) error
	Recent(ctx context.Context, limit int) ([]models.Consultation, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// CoordinatorConfig contains configuration for the coordinator
type CoordinatorConfig struct {
	// SimulatedLatency delays every answer, imitating a remote model call
	SimulatedLatency time.Duration
}

// Coordinator runs a consultation through triage, clinic lookup, translation
// and storage
type Coordinator struct {
	classifier triage.Classifier
	translator *translate.Translator
	directory  *clinics.Directory
	sessions   session.Store
	history    HistoryStore
	logger     *zap.Logger
	latency    time.Duration
}

// NewCoordinator creates a new coordinator. sessions and history may be nil.
func NewCoordinator(
	classifier triage.Classifier,
	translator *translate.Translator,
	directory *clinics.Directory,
	sessions session.Store,
	history HistoryStore,
	logger *zap.Logger,
	config CoordinatorConfig,
) *Coordinator {
	if classifier == nil {
		classifier = triage.NewRuleBasedClassifier(triage.ClassifierConfig{})
	}
	if translator == nil {
		translator = translate.New(translate.ModeSequential)
	}
	if directory == nil {
		directory = clinics.NewDirectory(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Coordinator{
		classifier: classifier,
		translator: translator,
		directory:  directory,
		sessions:   sessions,
		history:    history,
		logger:     logger,
		latency:    config.SimulatedLatency,
	}
}

// ConsultRequest is a question from the user, with optional context
type ConsultRequest struct {
	Query     string           `json:"query"`
	Language  string           `json:"language,omitempty"`
	SessionID string           `json:"session_id,omitempty"`
	Location  *models.Location `json:"location,omitempty"`
}

// ConsultResponse is the coordinated answer to a consultation
type ConsultResponse struct {
	ID                    string              `json:"id"`
	SessionID             string              `json:"session_id,omitempty"`
	Category              string              `json:"category"`
	Advice                string              `json:"advice"`
	Confidence            float64             `json:"confidence"`
	UrgencyLevel          models.UrgencyLevel `json:"urgencyLevel"`
	Recommendations       []string            `json:"recommendations"`
	Language              string              `json:"language"`
	Clinics               []models.Clinic     `json:"clinics,omitempty"`
	ClinicRecommendations []string            `json:"clinicRecommendations,omitempty"`
	Timestamp             string              `json:"timestamp"`
}

// Advise classifies a query and translates the advice into language
func (c *Coordinator) Advise(ctx context.Context, query, language string) (models.TriageResult, error) {
	if strings.TrimSpace(query) == "" {
		return models.TriageResult{}, ErrEmptyQuery
	}
	if err := c.wait(ctx); err != nil {
		return models.TriageResult{}, err
	}

	result := c.classifier.Classify(query)
	return c.localize(result, language), nil
}

// Consult answers a query: classify, assess urgency, find clinics when a
// location is given, translate, then store the exchange. Storage failures are
// logged and never fail the consultation.
func (c *Coordinator) Consult(ctx context.Context, req ConsultRequest) (*ConsultResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	language := translate.Match(req.Language, "")
	consultation := models.NewConsultation(req.SessionID, req.Query, language)

	result := c.classifier.Classify(req.Query)
	consultation.Result = result

	response := &ConsultResponse{
		ID:           consultation.ID,
		SessionID:    req.SessionID,
		Category:     result.Category,
		Confidence:   result.Confidence,
		UrgencyLevel: result.UrgencyLevel,
		Language:     language,
		Timestamp:    consultation.CreatedAt.Format(time.RFC3339),
	}

	if req.Location != nil {
		keyword := "general"
		if result.IsEmergency() {
			keyword = "emergency"
		}
		response.Clinics = c.directory.Nearby(*req.Location, keyword)
		response.ClinicRecommendations = clinics.Recommendations(result.UrgencyLevel)
		consultation.Clinics = response.Clinics
	}

	localized := c.localize(result, language)
	response.Advice = localized.Content
	response.Recommendations = localized.Recommendations
	consultation.Content = localized.Content

	c.logger.Info("Consultation answered",
		zap.String("id", consultation.ID),
		zap.String("category", result.Category),
		zap.String("urgency", string(result.UrgencyLevel)),
		zap.String("language", language),
		zap.Int("clinics", len(response.Clinics)),
	)

	c.store(ctx, consultation)

	return response, nil
}

// localize translates the text fields of a result when language is not English
func (c *Coordinator) localize(result models.TriageResult, language string) models.TriageResult {
	language = translate.Match(language, "")
	if language == translate.DefaultLanguage {
		return result
	}

	out := result
	out.Content = c.translator.Translate(result.Content, translate.DefaultLanguage, language)
	out.Recommendations = make([]string, len(result.Recommendations))
	for i, r := range result.Recommendations {
		out.Recommendations[i] = c.translator.Translate(r, translate.DefaultLanguage, language)
	}
	return out
}

func (c *Coordinator) store(ctx context.Context, consultation *models.Consultation) {
	if c.sessions != nil && consultation.SessionID != "" {
		now := time.Now().UTC()
		err := c.sessions.Append(ctx, consultation.SessionID,
			models.Message{Role: models.RoleUser, Content: consultation.Query, Timestamp: consultation.CreatedAt},
			models.Message{Role: models.RoleAssistant, Content: consultation.Content, Timestamp: now},
		)
		if err != nil {
			c.logger.Warn("Failed to append session",
				zap.String("session_id", consultation.SessionID), zap.Error(err))
		}
	}

	if c.history != nil {
		if err := c.history.Record(ctx, consultation); err != nil {
			c.logger.Warn("Failed to record consultation",
				zap.String("id", consultation.ID), zap.Error(err))
		}
	}
}

// Session returns the stored transcript for a session
func (c *Coordinator) Session(ctx context.Context, sessionID string) ([]models.Message, error) {
	if c.sessions == nil {
		return nil, session.ErrNotFound
	}
	return c.sessions.Load(ctx, sessionID)
}

// History returns recent consultations and per-category counts. Both are
// empty when no history store is configured.
func (c *Coordinator) History(ctx context.Context, limit int) ([]models.Consultation, map[string]int, error) {
	if c.history == nil {
		return []models.Consultation{}, map[string]int{}, nil
	}

	recent, err := c.history.Recent(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	counts, err := c.history.CountByCategory(ctx)
	if err != nil {
		return nil, nil, err
	}
	if recent == nil {
		recent = []models.Consultation{}
	}
	return recent, counts, nil
}

// Translator exposes the translator used for advice
func (c *Coordinator) Translator() *translate.Translator {
	return c.translator
}

// Directory exposes the clinic directory
func (c *Coordinator) Directory() *clinics.Directory {
	return c.directory
}

// wait blocks for the configured latency or until ctx is done
func (c *Coordinator) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
