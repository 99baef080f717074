package models

import (
	"time"

	"github.com/google/uuid"
)

// UrgencyLevel represents how quickly a reported situation needs attention
type UrgencyLevel string

const (
	// UrgencyHigh represents potentially life-threatening situations
	UrgencyHigh UrgencyLevel = "high"

	// UrgencyModerate represents injuries or pain that need care soon
	UrgencyModerate UrgencyLevel = "moderate"

	// UrgencyNormal represents general questions
	UrgencyNormal UrgencyLevel = "normal"
)

// ParseUrgency converts a string to an UrgencyLevel, defaulting to normal
func ParseUrgency(s string) UrgencyLevel {
	switch UrgencyLevel(s) {
	case UrgencyHigh:
		return UrgencyHigh
	case UrgencyModerate:
		return UrgencyModerate
	default:
		return UrgencyNormal
	}
}

// TriageResult is the canned advice produced for a single query
type TriageResult struct {
	Category        string       `json:"category"`
	Content         string       `json:"content"`
	Confidence      float64      `json:"confidence"`
	UrgencyLevel    UrgencyLevel `json:"urgencyLevel"`
	Recommendations []string     `json:"recommendations"`
}

// IsEmergency returns true if the urgency assessment is high
func (r TriageResult) IsEmergency() bool {
	return r.UrgencyLevel == UrgencyHigh
}

// TranslationResult is the outcome of translating a piece of text
type TranslationResult struct {
	TranslatedText         string   `json:"translatedText"`
	Confidence             float64  `json:"confidence"`
	DetectedSourceLanguage string   `json:"detectedSourceLanguage"`
	CulturalNotes          []string `json:"culturalNotes,omitempty"`
}

// Consultation records one question answered by the assistant
type Consultation struct {
	ID        string       `json:"id"`
	SessionID string       `json:"session_id,omitempty"`
	Query     string       `json:"query"`
	Language  string       `json:"language"`
	Result    TriageResult `json:"result"`
	Content   string       `json:"content"`
	Clinics   []Clinic     `json:"clinics,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewConsultation creates a consultation with a fresh ID
func NewConsultation(sessionID, query, language string) *Consultation {
	return &Consultation{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Query:     query,
		Language:  language,
		CreatedAt: time.Now().UTC(),
	}
}

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a chat session transcript
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
