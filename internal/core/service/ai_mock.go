package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

const (
	mockNote        = "This is a MOCK response. Valid GEMINI_API_KEY not found in .env."
	mockAnalysis    = "AI analysis simulation in progress..."
	mockPlainAnswer = "Mock AI Response: Configure GEMINI_API_KEY in .env for real analysis."
)

// IsPlaceholderKey reports whether key is missing or one of the sample values shipped in .env templates.
func IsPlaceholderKey(key string) bool {
	k := strings.TrimSpace(key)
	return k == "" ||
		k == "PLACEHOLDER_API_KEY" ||
		k == "your_gemini_api_key_here" ||
		strings.Contains(k, "PLACEHOLDER")
}

// MockBackend answers without any network access. Output depends only on the prompt.
type MockBackend struct{}

func NewMockBackend() *MockBackend { return &MockBackend{} }

func (MockBackend) Name() string { return "mock" }

func (MockBackend) Generate(_ context.Context, prompt string) (domain.AIResult, error) {
	if !wantsJSON(prompt) {
		return domain.AIResult{Status: domain.AIStatusMock, Response: mockPlainAnswer}, nil
	}

	payload, err := json.MarshalIndent(mockPayload(prompt), "", "  ")
	if err != nil {
		return domain.AIResult{}, err
	}
	return domain.AIResult{Status: domain.AIStatusMock, Response: string(payload)}, nil
}

type mockAnalysisBody struct {
	Note           string   `json:"note"`
	Analysis       string   `json:"analysis"`
	Confidence     float64  `json:"confidence"`
	RiskLevel      string   `json:"risk_level,omitempty"`
	QSOFAScore     *int     `json:"qsofa_score,omitempty"`
	SIRSCriteria   *int     `json:"sirs_criteria,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
	RiskScore      *int     `json:"risk_score,omitempty"`
	RiskCategory   string   `json:"risk_category,omitempty"`
	Factors        []string `json:"factors,omitempty"`
}

type mockInteraction struct {
	Interaction    string `json:"interaction"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

type mockSchedule struct {
	OptimizedSlots []string `json:"optimized_slots"`
	EfficiencyGain string   `json:"efficiency_gain"`
}

// mockPayload picks the canned shape for the first keyword found in the prompt.
func mockPayload(prompt string) any {
	p := strings.ToLower(prompt)
	body := mockAnalysisBody{Note: mockNote, Analysis: mockAnalysis, Confidence: 0.99}

	switch {
	case strings.Contains(p, "sepsis"):
		body.RiskLevel = "Moderate"
		body.QSOFAScore = intPtr(1)
		body.SIRSCriteria = intPtr(2)
		body.Recommendation = "Monitor vitals q1h, consider lactate re-check."
		return body
	case strings.Contains(p, "drug"):
		return []mockInteraction{{
			Interaction:    "Major",
			Severity:       "High",
			Description:    "Simulated interaction detected.",
			Recommendation: "Monitor closely.",
		}}
	case strings.Contains(p, "risk"):
		body.RiskScore = intPtr(75)
		body.RiskCategory = "High"
		body.Factors = []string{"Age", "Comorbidities"}
		return body
	case strings.Contains(p, "schedule"):
		return mockSchedule{
			OptimizedSlots: []string{"09:00", "09:30", "10:15"},
			EfficiencyGain: "15%",
		}
	default:
		return body
	}
}

func wantsJSON(prompt string) bool {
	return strings.Contains(prompt, "Respond in JSON") || strings.Contains(prompt, "Respond in structured JSON")
}

func intPtr(v int) *int { return &v }
