package handler

import (
	"strings"
	"testing"
)

func TestAIFeatures_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range append(append([]AIRoute{}, basicAIFeatures...), advancedAIFeatures...) {
		if seen[f.Name()] {
			t.Fatalf("duplicate feature %q", f.Name())
		}
		seen[f.Name()] = true
	}
	if len(seen) != 29 {
		t.Fatalf("expected 29 features, got %d", len(seen))
	}
	for _, name := range []string{
		"cancer-screening", "nutrition-planner", "pandemic-simulation", "trial-eligibility",
		"cost-estimator", "genetic-risk", "emergency-response", "population-health",
		"patient-journey", "chronic-disease-manager", "wound-assessment", "auto-coder",
		"quality-metrics",
	} {
		if !seen[name] {
			t.Errorf("feature %q not registered", name)
		}
	}
}

func TestAIFeature_RenderTriage(t *testing.T) {
	f := registered[TriageInput](t, "triage")
	age := 45
	got, err := f.Render(TriageInput{
		PatientName: "John Doe",
		Symptoms:    []string{"fever", "cough"},
		Age:         &age,
		VitalSigns:  map[string]any{"bp": "120/80"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Name: John Doe",
		"Symptoms: fever, cough",
		"Age: 45",
		"Gender: Unknown",
		`Vitals: {"bp":"120/80"}`,
		"Respond in JSON format.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestAIFeature_RenderCostEstimate(t *testing.T) {
	f := registered[CostEstimateInput](t, "cost-estimator")
	los := 4
	got, err := f.Render(CostEstimateInput{
		Diagnosis:            "Appendicitis",
		TreatmentPlan:        []string{"appendectomy", "IV antibiotics"},
		LengthOfStayEstimate: &los,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Diagnosis: Appendicitis",
		"Treatment Plan: appendectomy, IV antibiotics",
		"Insurance: N/A, Estimated LOS: 4 days",
		"Respond in JSON with all amounts in USD.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestAIFeature_RenderGenericContext(t *testing.T) {
	f := registered[GenericInput](t, "generic")

	got, err := f.Render(GenericInput{Prompt: "Summarize bed usage"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Summarize bed usage" {
		t.Fatalf("prompt without context changed: %q", got)
	}

	got, _ = f.Render(GenericInput{Prompt: "Summarize", Context: map[string]any{"ward": "ICU"}})
	if got != "Summarize\n\nContext: {\"ward\":\"ICU\"}" {
		t.Fatalf("unexpected prompt %q", got)
	}
}

func TestOptional(t *testing.T) {
	v := 3.5
	var nilPtr *float64
	cases := []struct {
		in   any
		want string
	}{
		{nil, "N/A"},
		{nilPtr, "N/A"},
		{&v, "3.5"},
		{map[string]any{}, "N/A"},
		{[]map[string]any{{"a": 1}}, `[{"a":1}]`},
		{7, "7"},
	}
	for _, tc := range cases {
		if got := optional(tc.in, "N/A"); got != tc.want {
			t.Errorf("optional(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := joinList(nil); got != "None" {
		t.Errorf("joinList(nil) = %q", got)
	}
}

func registered[I any](t *testing.T, name string) AIFeature[I] {
	t.Helper()
	for _, r := range append(append([]AIRoute{}, basicAIFeatures...), advancedAIFeatures...) {
		if f, ok := r.(AIFeature[I]); ok && f.name == name {
			return f
		}
	}
	t.Fatalf("feature %q not registered", name)
	return AIFeature[I]{}
}
