package handler

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"text/template"
)

const notProvided = "Not provided"

var promptFuncs = template.FuncMap{
	"join": joinList,
	"opt":  optional,
	"json": toJSON,
}

func joinList(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

// optional prints v, or fallback when v is nil, a nil pointer or an empty collection.
func optional(v any, fallback string) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return fallback
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return fallback
		}
		return fmt.Sprint(rv.Elem().Interface())
	case reflect.Map, reflect.Slice:
		if rv.Len() == 0 {
			return fallback
		}
		return toJSON(v)
	}
	return fmt.Sprint(v)
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// ── /api/ai ───────────────────────────────────────────────────────────────────

type TriageInput struct {
	PatientName string         `json:"patient_name" validate:"required"`
	Symptoms    []string       `json:"symptoms" validate:"required"`
	Age         *int           `json:"age"`
	Gender      *string        `json:"gender"`
	VitalSigns  map[string]any `json:"vital_signs"`
}

type NotesInput struct {
	Notes string `json:"notes" validate:"required"`
}

type DischargeSummaryInput struct {
	PatientName string `json:"patient_name" validate:"required"`
	Condition   string `json:"condition" validate:"required"`
	History     string `json:"history" validate:"required"`
}

type GenericInput struct {
	Prompt  string         `json:"prompt" validate:"required"`
	Context map[string]any `json:"context"`
}

var basicAIFeatures = []AIRoute{
	NewAIFeature[TriageInput]("triage", `You are an expert medical AI triage assistant. Analyze this patient:
Name: {{.PatientName}}
Symptoms: {{join .Symptoms}}
Age: {{opt .Age "Unknown"}}
Gender: {{opt .Gender "Unknown"}}
Vitals: {{opt .VitalSigns "Not provided"}}
Provide: urgency level (Critical/High/Medium/Low), recommended department, immediate actions, and estimated wait time.
Respond in JSON format.`),

	NewAIFeature[NotesInput]("analyze-notes", `You are an expert medical AI assistant. Analyze these clinical notes:
"{{.Notes}}"
Provide: summary, recommended actions, and diagnosis suggestions.
Respond in JSON format.`),

	NewAIFeature[DischargeSummaryInput]("discharge-summary", `Draft a professional hospital discharge summary:
Patient: {{.PatientName}}
Condition: {{.Condition}}
History: {{.History}}
Keep it formal, empathetic, and clear.`),

	NewAIFeature[GenericInput]("generic", `{{.Prompt}}{{with .Context}}

Context: {{json .}}{{end}}`),
}

// ── /api/ai/advanced ──────────────────────────────────────────────────────────

type SepsisInput struct {
	PatientName           string   `json:"patient_name" validate:"required"`
	Temperature           *float64 `json:"temperature" validate:"required"`
	HeartRate             *int     `json:"heart_rate" validate:"required"`
	RespiratoryRate       *int     `json:"respiratory_rate" validate:"required"`
	WBCCount              *float64 `json:"wbc_count"`
	BloodPressureSystolic *int     `json:"blood_pressure_systolic"`
	LactateLevel          *float64 `json:"lactate_level"`
	MentalStatus          *string  `json:"mental_status"`
}

type DrugInteractionInput struct {
	Medications     []string `json:"medications" validate:"required"`
	PatientAge      *int     `json:"patient_age"`
	PatientWeight   *float64 `json:"patient_weight"`
	RenalFunction   *string  `json:"renal_function"`
	HepaticFunction *string  `json:"hepatic_function"`
}

type ClinicalPathwayInput struct {
	Diagnosis     string   `json:"diagnosis" validate:"required"`
	PatientAge    *int     `json:"patient_age" validate:"required"`
	Comorbidities []string `json:"comorbidities"`
	Severity      *string  `json:"severity"`
}

type RiskStratificationInput struct {
	PatientName   string         `json:"patient_name" validate:"required"`
	Age           *int           `json:"age" validate:"required"`
	Gender        string         `json:"gender" validate:"required"`
	Diagnoses     []string       `json:"diagnoses" validate:"required"`
	Medications   []string       `json:"medications"`
	LabResults    map[string]any `json:"lab_results"`
	SocialFactors map[string]any `json:"social_factors"`
}

type SmartSchedulingInput struct {
	Department           string           `json:"department" validate:"required"`
	Date                 string           `json:"date" validate:"required"`
	ExistingAppointments []map[string]any `json:"existing_appointments"`
	AvailableDoctors     []string         `json:"available_doctors"`
	PatientPriorities    []map[string]any `json:"patient_priorities"`
}

type SurgicalRiskInput struct {
	Procedure         string   `json:"procedure" validate:"required"`
	PatientAge        *int     `json:"patient_age" validate:"required"`
	BMI               *float64 `json:"bmi"`
	ASAClass          *int     `json:"asa_class"`
	Comorbidities     []string `json:"comorbidities"`
	PreviousSurgeries []string `json:"previous_surgeries"`
	AnesthesiaType    *string  `json:"anesthesia_type"`
}

type NLPRecordsInput struct {
	ClinicalText string `json:"clinical_text" validate:"required"`
}

type MentalHealthInput struct {
	PatientAge         *int     `json:"patient_age" validate:"required"`
	Gender             string   `json:"gender" validate:"required"`
	PresentingConcerns []string `json:"presenting_concerns" validate:"required"`
	PHQ9Score          *int     `json:"phq9_score"`
	GAD7Score          *int     `json:"gad7_score"`
	SleepQuality       *string  `json:"sleep_quality"`
	SubstanceUse       *string  `json:"substance_use"`
}

type RadiologyReportInput struct {
	Modality            string `json:"modality" validate:"required"`
	BodyPart            string `json:"body_part" validate:"required"`
	ClinicalIndication  string `json:"clinical_indication" validate:"required"`
	FindingsNotes       string `json:"findings_notes" validate:"required"`
	ComparisonAvailable bool   `json:"comparison_available"`
}

type PharmacovigilanceInput struct {
	Medication       string   `json:"medication" validate:"required"`
	AdverseEvent     string   `json:"adverse_event" validate:"required"`
	PatientAge       *int     `json:"patient_age" validate:"required"`
	PatientGender    string   `json:"patient_gender" validate:"required"`
	Dose             string   `json:"dose" validate:"required"`
	Duration         string   `json:"duration" validate:"required"`
	OtherMedications []string `json:"other_medications"`
}

type PredictiveStaffingInput struct {
	Department         string           `json:"department" validate:"required"`
	HistoricalCensus   []map[string]any `json:"historical_census"`
	UpcomingAdmissions int              `json:"upcoming_admissions" validate:"gte=0"`
	UpcomingSurgeries  int              `json:"upcoming_surgeries" validate:"gte=0"`
	DayOfWeek          string           `json:"day_of_week"`
	Season             string           `json:"season"`
	SpecialEvents      []string         `json:"special_events"`
}

type SpeechToSOAPInput struct {
	Transcription string  `json:"transcription" validate:"required"`
	VisitType     *string `json:"visit_type"`
	Specialty     *string `json:"specialty"`
}

type CancerScreeningInput struct {
	PatientAge         *int             `json:"patient_age" validate:"required"`
	Gender             string           `json:"gender" validate:"required"`
	FamilyHistory      []string         `json:"family_history"`
	SmokingStatus      *string          `json:"smoking_status"`
	BMI                *float64         `json:"bmi"`
	PreviousScreenings []map[string]any `json:"previous_screenings"`
}

type NutritionPlanInput struct {
	PatientName      string   `json:"patient_name" validate:"required"`
	Diagnosis        string   `json:"diagnosis" validate:"required"`
	DietRestrictions []string `json:"diet_restrictions"`
	Allergies        []string `json:"allergies"`
	BMI              *float64 `json:"bmi"`
	CaloricTarget    *int     `json:"caloric_target"`
}

type PandemicSimInput struct {
	PathogenType     string `json:"pathogen_type" validate:"required"`
	CurrentCases     *int   `json:"current_cases" validate:"required,gte=0"`
	HospitalCapacity *int   `json:"hospital_capacity" validate:"required,gte=0"`
	ICUBeds          *int   `json:"icu_beds" validate:"required,gte=0"`
	Ventilators      *int   `json:"ventilators" validate:"required,gte=0"`
	StaffCount       *int   `json:"staff_count" validate:"required,gte=0"`
	RegionPopulation *int   `json:"region_population" validate:"required,gte=0"`
}

type TrialMatchInput struct {
	PatientAge         *int     `json:"patient_age" validate:"required"`
	Gender             string   `json:"gender" validate:"required"`
	Diagnosis          string   `json:"diagnosis" validate:"required"`
	Stage              *string  `json:"stage"`
	Biomarkers         []string `json:"biomarkers"`
	PreviousTreatments []string `json:"previous_treatments"`
	ECOGStatus         *int     `json:"ecog_status"`
}

type CostEstimateInput struct {
	Diagnosis            string   `json:"diagnosis" validate:"required"`
	TreatmentPlan        []string `json:"treatment_plan" validate:"required"`
	InsuranceType        *string  `json:"insurance_type"`
	LengthOfStayEstimate *int     `json:"length_of_stay_estimate"`
}

type GeneticRiskInput struct {
	PatientAge     *int     `json:"patient_age" validate:"required"`
	Gender         string   `json:"gender" validate:"required"`
	FamilyHistory  []string `json:"family_history" validate:"required"`
	Ethnicity      *string  `json:"ethnicity"`
	KnownMutations []string `json:"known_mutations"`
}

type EmergencyResponseInput struct {
	IncidentType        string         `json:"incident_type" validate:"required"`
	Severity            string         `json:"severity" validate:"required"`
	Location            string         `json:"location" validate:"required"`
	CasualtiesEstimated *int           `json:"casualties_estimated" validate:"required,gte=0"`
	AvailableResources  map[string]any `json:"available_resources" validate:"required"`
}

type PopulationHealthInput struct {
	DemographicData   map[string]any `json:"demographic_data" validate:"required"`
	DiseasePrevalence map[string]any `json:"disease_prevalence" validate:"required"`
	TimePeriod        string         `json:"time_period" validate:"required"`
	Interventions     []string       `json:"interventions"`
}

type PatientJourneyInput struct {
	PatientName    string           `json:"patient_name" validate:"required"`
	Encounters     []map[string]any `json:"encounters" validate:"required"`
	ChiefComplaint string           `json:"chief_complaint" validate:"required"`
}

type ChronicDiseaseInput struct {
	Condition          string         `json:"condition" validate:"required"`
	PatientAge         *int           `json:"patient_age" validate:"required"`
	DurationYears      *int           `json:"duration_years" validate:"required,gte=0"`
	CurrentMedications []string       `json:"current_medications" validate:"required"`
	RecentLabs         map[string]any `json:"recent_labs"`
	Complications      []string       `json:"complications"`
	LifestyleFactors   map[string]any `json:"lifestyle_factors"`
}

type WoundAssessmentInput struct {
	WoundType            string   `json:"wound_type" validate:"required"`
	Location             string   `json:"location" validate:"required"`
	SizeCM               *string  `json:"size_cm"`
	Depth                *string  `json:"depth"`
	Drainage             *string  `json:"drainage"`
	SurroundingSkin      *string  `json:"surrounding_skin"`
	DurationDays         *int     `json:"duration_days" validate:"required,gte=0"`
	PatientComorbidities []string `json:"patient_comorbidities"`
}

type AutoCoderInput struct {
	ClinicalDocumentation string   `json:"clinical_documentation" validate:"required"`
	VisitType             string   `json:"visit_type" validate:"required"`
	ProceduresPerformed   []string `json:"procedures_performed"`
}

type QualityMetricsInput struct {
	Department    string         `json:"department" validate:"required"`
	MetricType    string         `json:"metric_type" validate:"required"`
	TimePeriod    string         `json:"time_period" validate:"required"`
	CurrentData   map[string]any `json:"current_data" validate:"required"`
	BenchmarkData map[string]any `json:"benchmark_data"`
}

var advancedAIFeatures = []AIRoute{
	NewAIFeature[SepsisInput]("sepsis-predictor", `You are a sepsis early warning AI system. Analyze these vitals for sepsis risk:
Patient: {{.PatientName}}
Temperature: {{opt .Temperature "?"}}°C, HR: {{opt .HeartRate "?"}} bpm, RR: {{opt .RespiratoryRate "?"}}/min
WBC: {{opt .WBCCount "N/A"}}, SBP: {{opt .BloodPressureSystolic "N/A"}}, Lactate: {{opt .LactateLevel "N/A"}}
Mental Status: {{opt .MentalStatus "N/A"}}
Calculate qSOFA score, SIRS criteria, and provide:
1. Sepsis risk level (Low/Moderate/High/Critical)
2. qSOFA score breakdown
3. SIRS criteria met
4. Recommended interventions (antibiotics, cultures, IV fluids)
5. Time-critical actions
Respond in structured JSON.`),

	NewAIFeature[DrugInteractionInput]("drug-interactions", `You are a clinical pharmacology AI. Analyze drug-drug interactions:
Medications: {{join .Medications}}
Patient Age: {{opt .PatientAge "N/A"}}, Weight: {{opt .PatientWeight "N/A"}}kg
Renal: {{opt .RenalFunction "N/A"}}, Hepatic: {{opt .HepaticFunction "N/A"}}
For each pair, provide:
1. Interaction severity (None/Minor/Moderate/Major/Contraindicated)
2. Mechanism of interaction
3. Clinical significance
4. Management recommendations
5. Alternative medications if contraindicated
Respond in JSON with an interactions array.`),

	NewAIFeature[ClinicalPathwayInput]("clinical-pathway", `You are a clinical pathway optimization AI. Design an evidence-based care pathway:
Diagnosis: {{.Diagnosis}}, Severity: {{opt .Severity "N/A"}}
Patient Age: {{opt .PatientAge "?"}}, Comorbidities: {{join .Comorbidities}}
Provide a structured pathway with:
1. Day-by-day treatment plan (milestones + interventions)
2. Expected length of stay
3. Key decision points
4. Lab/imaging schedule
5. Medication protocol
6. Discharge criteria
7. Follow-up plan
8. Cost-quality optimization notes
Respond in JSON.`),

	NewAIFeature[RiskStratificationInput]("risk-stratification", `You are a patient risk stratification AI. Perform comprehensive risk assessment:
Patient: {{.PatientName}}, Age: {{opt .Age "?"}}, Gender: {{.Gender}}
Diagnoses: {{join .Diagnoses}}, Medications: {{join .Medications}}
Labs: {{opt .LabResults "N/A"}}, Social Factors: {{opt .SocialFactors "N/A"}}
Provide multi-dimensional risk scores:
1. 30-day mortality risk (0-100%)
2. Fall risk score (Morse scale)
3. Pressure ulcer risk (Braden scale)
4. VTE risk (Padua score)
5. Malnutrition risk
6. Polypharmacy risk
7. Overall acuity level (1-5)
8. Personalized interventions for each risk
Respond in JSON.`),

	NewAIFeature[SmartSchedulingInput]("smart-scheduling", `You are a hospital scheduling optimization AI. Optimize the schedule:
Department: {{.Department}}, Date: {{.Date}}
Existing Appointments: {{opt .ExistingAppointments "None"}}
Available Doctors: {{join .AvailableDoctors}}
Patient Priorities: {{opt .PatientPriorities "None"}}
Provide:
1. Optimized schedule with time slots
2. Doctor-patient assignments
3. Buffer times for emergencies
4. Predicted wait times per patient
5. Utilization percentage per doctor
6. Bottleneck identification
7. Overbooking recommendations
Respond in JSON.`),

	NewAIFeature[SurgicalRiskInput]("surgical-risk", `You are a surgical risk assessment AI. Predict complications:
Procedure: {{.Procedure}}
Patient: Age {{opt .PatientAge "?"}}, BMI {{opt .BMI "N/A"}}, ASA Class {{opt .ASAClass "N/A"}}
Comorbidities: {{join .Comorbidities}}
Previous Surgeries: {{join .PreviousSurgeries}}
Anesthesia: {{opt .AnesthesiaType "N/A"}}
Provide:
1. Overall complication risk (Low/Moderate/High)
2. Specific risks: SSI, DVT/PE, cardiac, respiratory, bleeding
3. ACS-NSQIP estimated morbidity
4. Pre-op optimization recommendations
5. Intra-op precautions
6. Post-op monitoring priorities
7. Enhanced recovery protocol suggestions
Respond in JSON.`),

	NewAIFeature[NLPRecordsInput]("nlp-records", `You are a medical NLP AI. Analyze this clinical text:
"{{.ClinicalText}}"
Extract and provide:
1. Named entities: medications, diagnoses, procedures, anatomical sites, lab values
2. Temporal relationships between events
3. Negated findings (what was ruled out)
4. Assertion status for each finding (present/absent/possible/conditional)
5. Structured summary in SOAP format
6. ICD-10 codes for identified conditions
7. CPT codes for identified procedures
8. Key clinical concerns flagged
Respond in JSON.`),

	NewAIFeature[MentalHealthInput]("mental-health-screening", `You are a mental health screening AI. Assess and recommend:
Age: {{opt .PatientAge "?"}}, Gender: {{.Gender}}
Concerns: {{join .PresentingConcerns}}
PHQ-9: {{opt .PHQ9Score "N/A"}}, GAD-7: {{opt .GAD7Score "N/A"}}
Sleep: {{opt .SleepQuality "N/A"}}, Substance Use: {{opt .SubstanceUse "N/A"}}
Provide:
1. Depression severity (PHQ-9 interpretation)
2. Anxiety severity (GAD-7 interpretation)
3. Suicide risk assessment level
4. Recommended screening tools to administer
5. Treatment recommendations (therapy type, medication class)
6. Referral priority (Routine/Urgent/Emergent)
7. Safety planning recommendations
8. Lifestyle interventions
Respond in JSON. IMPORTANT: Include disclaimer that this is a screening tool, not a diagnosis.`),

	NewAIFeature[RadiologyReportInput]("radiology-report", `You are an AI radiology report generator. Create a structured report:
Modality: {{.Modality}}, Body Part: {{.BodyPart}}
Clinical Indication: {{.ClinicalIndication}}
Comparison: {{if .ComparisonAvailable}}Available{{else}}None available{{end}}
Findings Notes: "{{.FindingsNotes}}"
Generate a complete radiology report:
1. Exam type and technique
2. Clinical history
3. Comparison
4. Findings (organized by anatomical structure)
5. Impression (numbered, most critical first)
6. BI-RADS/Lung-RADS/LI-RADS (if applicable)
7. Critical/urgent findings flagged
8. Recommended follow-up imaging
Respond in JSON with structured sections.`),

	NewAIFeature[PharmacovigilanceInput]("pharmacovigilance", `You are a pharmacovigilance AI. Assess this adverse drug reaction:
Medication: {{.Medication}}, Dose: {{.Dose}}, Duration: {{.Duration}}
Adverse Event: {{.AdverseEvent}}
Patient: Age {{opt .PatientAge "?"}}, Gender {{.PatientGender}}
Concomitant Medications: {{join .OtherMedications}}
Provide:
1. Naranjo causality score
2. WHO-UMC causality assessment
3. Severity grade (mild/moderate/severe/life-threatening)
4. Expected vs unexpected classification
5. Rechallenge/dechallenge analysis
6. Seriousness criteria met
7. Recommended action (continue/dose adjust/discontinue)
8. MedWatch report recommendation
9. Alternative medication suggestions
Respond in JSON.`),

	NewAIFeature[PredictiveStaffingInput]("predictive-staffing", `You are a nurse staffing prediction AI. Optimize staffing levels:
Department: {{.Department}}
Day: {{or .DayOfWeek "Monday"}}, Season: {{or .Season "Winter"}}
Historical Census: {{opt .HistoricalCensus "None"}}
Upcoming: {{.UpcomingAdmissions}} admissions, {{.UpcomingSurgeries}} surgeries
Special Events: {{join .SpecialEvents}}
Provide:
1. Predicted patient census (next 24/48/72 hours)
2. Recommended RN staffing per shift (day/evening/night)
3. Nurse-to-patient ratio recommendation
4. CNA/Tech staffing needs
5. Float pool/agency nurse recommendations
6. Skill mix optimization
7. Overtime risk prediction
8. Cost impact analysis
Respond in JSON.`),

	NewAIFeature[SpeechToSOAPInput]("speech-to-soap", `You are a medical transcription AI. Convert this dictation into a SOAP note:
Visit Type: {{opt .VisitType "N/A"}}, Specialty: {{opt .Specialty "N/A"}}
Transcription: "{{.Transcription}}"
Generate a complete SOAP note with:
1. Subjective: Chief complaint, HPI, ROS, PMH, medications, allergies
2. Objective: Vitals, physical exam findings, labs/imaging
3. Assessment: Differential diagnoses with ICD-10 codes
4. Plan: Medications, procedures, referrals, follow-up, patient education
5. Billing codes: E&M level, CPT codes
Respond in JSON with clear SOAP sections.`),

	NewAIFeature[CancerScreeningInput]("cancer-screening", `You are a cancer screening AI advisor. Assess screening needs:
Age: {{opt .PatientAge "?"}}, Gender: {{.Gender}}
Family History: {{join .FamilyHistory}}
Smoking: {{opt .SmokingStatus "N/A"}}, BMI: {{opt .BMI "N/A"}}
Previous Screenings: {{opt .PreviousScreenings "None"}}
Provide evidence-based recommendations:
1. Applicable screening types (breast, cervical, colorectal, lung, prostate, skin)
2. Risk level for each cancer type (Low/Average/High)
3. Recommended screening schedule with intervals
4. Guideline source (USPSTF, ACS, NCCN)
5. Genetic testing recommendations
6. Lifestyle modification recommendations
Respond in JSON.`),

	NewAIFeature[NutritionPlanInput]("nutrition-planner", `You are a clinical nutrition AI. Create a hospital meal plan:
Patient: {{.PatientName}}, Diagnosis: {{.Diagnosis}}
Diet Restrictions: {{join .DietRestrictions}}, Allergies: {{join .Allergies}}
BMI: {{opt .BMI "N/A"}}, Caloric Target: {{opt .CaloricTarget "N/A"}}
Provide:
1. 3-day meal plan (breakfast, lunch, dinner, snacks)
2. Macro breakdown (protein/carbs/fat per meal)
3. Micronutrient considerations
4. Fluid recommendations
5. Supplementation needs
6. Contraindicated foods
7. Transition plan (NPO → clear liquid → regular diet)
Respond in JSON.`),

	NewAIFeature[PandemicSimInput]("pandemic-simulation", `You are a pandemic preparedness AI. Simulate and plan:
Pathogen: {{.PathogenType}}, Current Cases: {{opt .CurrentCases "?"}}
Hospital Capacity: {{opt .HospitalCapacity "?"}} beds, ICU: {{opt .ICUBeds "?"}}, Ventilators: {{opt .Ventilators "?"}}
Staff: {{opt .StaffCount "?"}}, Population: {{opt .RegionPopulation "?"}}
Provide:
1. 30-day case projection (optimistic/moderate/worst)
2. Hospital capacity timeline (when overflow)
3. ICU and ventilator demand curve
4. Staff burnout/shortage projections
5. PPE consumption forecast
6. Surge capacity recommendations
7. Triage protocol recommendations
8. Resource reallocation strategy
Respond in JSON.`),

	NewAIFeature[TrialMatchInput]("trial-eligibility", `You are a clinical trial matching AI. Find eligible trials:
Patient: Age {{opt .PatientAge "?"}}, Gender {{.Gender}}
Diagnosis: {{.Diagnosis}}, Stage: {{opt .Stage "N/A"}}
Biomarkers: {{join .Biomarkers}}, Prior Treatments: {{join .PreviousTreatments}}
ECOG: {{opt .ECOGStatus "N/A"}}
Provide:
1. 5 matching clinical trials (simulated realistic examples)
2. Eligibility score for each (0-100%)
3. Key inclusion/exclusion criteria analysis
4. Trial phase and endpoints
5. Nearest trial sites
6. Patient information sheet summary
Respond in JSON.`),

	NewAIFeature[CostEstimateInput]("cost-estimator", `You are a healthcare cost estimation AI. Estimate treatment costs:
Diagnosis: {{.Diagnosis}}
Treatment Plan: {{join .TreatmentPlan}}
Insurance: {{opt .InsuranceType "N/A"}}, Estimated LOS: {{opt .LengthOfStayEstimate "?"}} days
Provide:
1. Itemized cost breakdown (room, medications, procedures, labs, imaging)
2. Total estimated cost range (low/medium/high)
3. Insurance coverage estimate
4. Out-of-pocket estimate
5. DRG classification and weight
6. Cost optimization opportunities
7. Financial assistance program eligibility
Respond in JSON with all amounts in USD.`),

	NewAIFeature[GeneticRiskInput]("genetic-risk", `You are a genetic risk analysis AI. Assess hereditary disease risk:
Age: {{opt .PatientAge "?"}}, Gender: {{.Gender}}, Ethnicity: {{opt .Ethnicity "N/A"}}
Family History: {{join .FamilyHistory}}
Known Mutations: {{join .KnownMutations}}
Provide:
1. Hereditary cancer risk assessment
2. Cardiovascular genetic risk factors
3. Pharmacogenomic considerations
4. Recommended genetic tests
5. Carrier screening recommendations
6. Risk communication summary for the patient
7. Genetic counseling referral recommendation
Respond in JSON. Include disclaimer about clinical genetic testing.`),

	NewAIFeature[EmergencyResponseInput]("emergency-response", `You are an emergency response optimization AI. Plan response:
Incident: {{.IncidentType}}, Severity: {{.Severity}}
Location: {{.Location}}, Estimated Casualties: {{opt .CasualtiesEstimated "?"}}
Available Resources: {{opt .AvailableResources "None"}}
Provide:
1. Mass casualty triage protocol (START/SALT)
2. Resource deployment plan
3. Ambulance routing optimization
4. Hospital notification cascade
5. Surge capacity activation steps
6. Blood product mobilization plan
7. Communication protocols
8. Decontamination procedures (if applicable)
Respond in JSON.`),

	NewAIFeature[PopulationHealthInput]("population-health", `You are a population health analytics AI. Analyze trends:
Demographics: {{opt .DemographicData "None"}}
Disease Prevalence: {{opt .DiseasePrevalence "None"}}
Period: {{.TimePeriod}}, Interventions: {{join .Interventions}}
Provide:
1. Top health concerns by prevalence
2. Age-adjusted rates
3. Health disparities identification
4. Preventive care gap analysis
5. Cost-effectiveness of interventions
6. Predicted trend for next 12 months
7. Community health improvement priorities
8. HEDIS measure performance
Respond in JSON.`),

	NewAIFeature[PatientJourneyInput]("patient-journey", `You are a patient journey mapping AI. Analyze the care continuum:
Patient: {{.PatientName}}, Chief Complaint: {{.ChiefComplaint}}
Encounters: {{opt .Encounters "None"}}
Provide:
1. Timeline visualization data (events + dates)
2. Care gaps identified
3. Unnecessary visits/tests flagged
4. Care coordination issues
5. Patient experience pain points
6. Treatment adherence assessment
7. Optimization recommendations
8. Predicted next encounter
Respond in JSON.`),

	NewAIFeature[ChronicDiseaseInput]("chronic-disease-manager", `You are a chronic disease management AI. Create care plan:
Condition: {{.Condition}}, Duration: {{opt .DurationYears "?"}} years
Patient Age: {{opt .PatientAge "?"}}
Medications: {{join .CurrentMedications}}, Labs: {{opt .RecentLabs "N/A"}}
Complications: {{join .Complications}}, Lifestyle: {{opt .LifestyleFactors "N/A"}}
Provide:
1. Disease control status (Well-controlled/Suboptimal/Uncontrolled)
2. Medication optimization recommendations
3. Target lab values and monitoring schedule
4. Complication screening plan
5. Lifestyle modification program
6. Patient self-management education
7. Telehealth monitoring plan
8. Quarterly milestone goals
Respond in JSON.`),

	NewAIFeature[WoundAssessmentInput]("wound-assessment", `You are a wound care AI specialist. Assess and recommend:
Wound Type: {{.WoundType}}, Location: {{.Location}}
Size: {{opt .SizeCM "N/A"}}, Depth: {{opt .Depth "N/A"}}
Drainage: {{opt .Drainage "N/A"}}, Surrounding Skin: {{opt .SurroundingSkin "N/A"}}
Duration: {{opt .DurationDays "?"}} days, Comorbidities: {{join .PatientComorbidities}}
Provide:
1. Wound classification (Wagner/Bates-Jensen scoring)
2. Healing trajectory prediction
3. Infection risk assessment
4. Recommended dressing protocol
5. Debridement recommendation
6. Offloading/positioning advice
7. Nutritional support for healing
8. Follow-up schedule
9. When to escalate to wound specialist
Respond in JSON.`),

	NewAIFeature[AutoCoderInput]("auto-coder", `You are a medical coding AI (CCS/CPC certified level). Auto-code:
Visit Type: {{.VisitType}}
Procedures: {{join .ProceduresPerformed}}
Clinical Documentation: "{{.ClinicalDocumentation}}"
Provide:
1. Primary ICD-10-CM diagnosis code with description
2. Secondary diagnosis codes (up to 10)
3. PCS procedure codes (if inpatient)
4. CPT codes for procedures/services
5. E&M level with justification (time or complexity)
6. Modifier recommendations
7. HCC risk adjustment codes
8. DRG assignment
9. Coding confidence level
10. Documentation improvement suggestions
Respond in JSON.`),

	NewAIFeature[QualityMetricsInput]("quality-metrics", `You are a healthcare quality analytics AI. Analyze performance:
Department: {{.Department}}, Metric: {{.MetricType}}
Period: {{.TimePeriod}}
Current Data: {{opt .CurrentData "None"}}
Benchmark: {{opt .BenchmarkData "N/A"}}
Provide:
1. Current performance vs national benchmarks
2. Trend analysis (improving/stable/declining)
3. Root cause analysis for underperformance
4. Statistical significance of variations
5. CMS Star Rating impact
6. Leapfrog Grade impact
7. Action plan with SMART goals
8. Projected improvement with interventions
9. HCAHPS/patient satisfaction correlation
Respond in JSON.`),
}
