package domain

import "github.com/nexushealth/hms-api/pkg/patch"

// ── Patients ──────────────────────────────────────────────────────────────────

const (
	UrgencyLow      = "LOW"
	UrgencyMedium   = "MEDIUM"
	UrgencyHigh     = "HIGH"
	UrgencyCritical = "CRITICAL"

	ArchivedPrefix = "Archived: "
)

type Patient struct {
	ID            string  `json:"id" bson:"_id"`
	Name          string  `json:"name" bson:"name"`
	Age           int     `json:"age" bson:"age"`
	Gender        string  `json:"gender" bson:"gender"`
	AdmissionDate string  `json:"admission_date" bson:"admission_date"`
	Condition     string  `json:"condition" bson:"condition"`
	RoomNumber    *string `json:"room_number" bson:"room_number"`
	Urgency       string  `json:"urgency" bson:"urgency"`
	History       *string `json:"history" bson:"history"`
	Status        *string `json:"status" bson:"status"`
	Ward          *string `json:"ward" bson:"ward"`
	Phone         *string `json:"phone" bson:"phone"`
	Email         *string `json:"email" bson:"email"`
}

func (p Patient) RecordID() string { return p.ID }

// PatientInput.Status is OPD when omitted; an explicit null is kept.
type PatientInput struct {
	Name          string                 `json:"name" validate:"required"`
	Age           *int                   `json:"age" validate:"required,gte=0,lte=150"`
	Gender        string                 `json:"gender" validate:"required"`
	AdmissionDate string                 `json:"admission_date" validate:"required"`
	Condition     string                 `json:"condition" validate:"required"`
	RoomNumber    *string                `json:"room_number"`
	Urgency       string                 `json:"urgency" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	History       *string                `json:"history"`
	Status        patch.Nullable[string] `json:"status"`
	Ward          *string                `json:"ward"`
	Phone         *string                `json:"phone"`
	Email         *string                `json:"email" validate:"omitempty,email"`
}

// PatientPatch has no admission_date: admission is fixed once recorded.
type PatientPatch struct {
	Name       patch.Value[string]    `json:"name"`
	Age        patch.Value[int]       `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender     patch.Value[string]    `json:"gender"`
	Condition  patch.Value[string]    `json:"condition"`
	RoomNumber patch.Nullable[string] `json:"room_number"`
	Urgency    patch.Value[string]    `json:"urgency" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	History    patch.Nullable[string] `json:"history"`
	Status     patch.Nullable[string] `json:"status"`
	Ward       patch.Nullable[string] `json:"ward"`
	Phone      patch.Nullable[string] `json:"phone"`
	Email      patch.Nullable[string] `json:"email" validate:"omitempty,email"`
}

var PatientResource = Descriptor[Patient, PatientInput, PatientPatch]{
	Path:     "patients",
	Tag:      "Patient",
	IDPrefix: "P-",
	Policy:   Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in PatientInput) Patient {
		opd := "OPD"
		status := &opd
		in.Status.ApplyTo(&status)
		return Patient{
			ID:            id,
			Name:          in.Name,
			Age:           *in.Age,
			Gender:        in.Gender,
			AdmissionDate: in.AdmissionDate,
			Condition:     in.Condition,
			RoomNumber:    in.RoomNumber,
			Urgency:       orDefault(in.Urgency, UrgencyMedium),
			History:       in.History,
			Status:        status,
			Ward:          in.Ward,
			Phone:         in.Phone,
			Email:         in.Email,
		}
	},
	Merge: func(r *Patient, p PatientPatch) {
		p.Name.ApplyTo(&r.Name)
		p.Age.ApplyTo(&r.Age)
		p.Gender.ApplyTo(&r.Gender)
		p.Condition.ApplyTo(&r.Condition)
		p.RoomNumber.ApplyTo(&r.RoomNumber)
		p.Urgency.ApplyTo(&r.Urgency)
		p.History.ApplyTo(&r.History)
		p.Status.ApplyTo(&r.Status)
		p.Ward.ApplyTo(&r.Ward)
		p.Phone.ApplyTo(&r.Phone)
		p.Email.ApplyTo(&r.Email)
	},
}

// ── Appointments ──────────────────────────────────────────────────────────────

const AppointmentCancelled = "Cancelled"

type Appointment struct {
	ID          string `json:"id" bson:"_id"`
	PatientName string `json:"patient_name" bson:"patient_name"`
	DoctorName  string `json:"doctor_name" bson:"doctor_name"`
	Time        string `json:"time" bson:"time"`
	Date        string `json:"date" bson:"date"`
	Type        string `json:"type" bson:"type"`
	Status      string `json:"status" bson:"status"`
	IsOnline    bool   `json:"is_online" bson:"is_online"`
}

func (a Appointment) RecordID() string { return a.ID }

type AppointmentInput struct {
	PatientName string `json:"patient_name" validate:"required"`
	DoctorName  string `json:"doctor_name" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Status      string `json:"status"`
	IsOnline    bool   `json:"is_online"`
}

type AppointmentPatch struct {
	PatientName patch.Value[string] `json:"patient_name"`
	DoctorName  patch.Value[string] `json:"doctor_name"`
	Time        patch.Value[string] `json:"time"`
	Date        patch.Value[string] `json:"date"`
	Type        patch.Value[string] `json:"type"`
	Status      patch.Value[string] `json:"status"`
	IsOnline    patch.Value[bool]   `json:"is_online"`
}

var AppointmentResource = Descriptor[Appointment, AppointmentInput, AppointmentPatch]{
	Path:     "appointments",
	Tag:      "Appointments",
	IDPrefix: "APT-",
	Policy:   Policy{Delete: []Role{RoleAdmin, RoleReceptionist}},
	Build: func(id string, in AppointmentInput) Appointment {
		return Appointment{
			ID:          id,
			PatientName: in.PatientName,
			DoctorName:  in.DoctorName,
			Time:        in.Time,
			Date:        in.Date,
			Type:        in.Type,
			Status:      orDefault(in.Status, "Pending"),
			IsOnline:    in.IsOnline,
		}
	},
	Merge: func(r *Appointment, p AppointmentPatch) {
		p.PatientName.ApplyTo(&r.PatientName)
		p.DoctorName.ApplyTo(&r.DoctorName)
		p.Time.ApplyTo(&r.Time)
		p.Date.ApplyTo(&r.Date)
		p.Type.ApplyTo(&r.Type)
		p.Status.ApplyTo(&r.Status)
		p.IsOnline.ApplyTo(&r.IsOnline)
	},
}

// ── Lab requests ──────────────────────────────────────────────────────────────

// PendingLabStatuses are the lab request states counted as outstanding work.
var PendingLabStatuses = []string{"Pending", "Processing", "Sample Collected"}

type LabRequest struct {
	ID          string `json:"id" bson:"_id"`
	PatientName string `json:"patient_name" bson:"patient_name"`
	TestName    string `json:"test_name" bson:"test_name"`
	Priority    string `json:"priority" bson:"priority"`
	Status      string `json:"status" bson:"status"`
	Date        string `json:"date" bson:"date"`
}

func (l LabRequest) RecordID() string { return l.ID }

type LabRequestInput struct {
	PatientName string `json:"patient_name" validate:"required"`
	TestName    string `json:"test_name" validate:"required"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Date        string `json:"date" validate:"required"`
}

type LabRequestPatch struct {
	PatientName patch.Value[string] `json:"patient_name"`
	TestName    patch.Value[string] `json:"test_name"`
	Priority    patch.Value[string] `json:"priority"`
	Status      patch.Value[string] `json:"status"`
	Date        patch.Value[string] `json:"date"`
}

var LabRequestResource = Descriptor[LabRequest, LabRequestInput, LabRequestPatch]{
	Path:     "lab-requests",
	Tag:      "Lab Requests",
	IDPrefix: "LAB-",
	Policy: Policy{
		Delete: []Role{RoleAdmin, RoleLabTechnician},
	},
	Build: func(id string, in LabRequestInput) LabRequest {
		return LabRequest{
			ID:          id,
			PatientName: in.PatientName,
			TestName:    in.TestName,
			Priority:    orDefault(in.Priority, "Routine"),
			Status:      orDefault(in.Status, "Pending"),
			Date:        in.Date,
		}
	},
	Merge: func(r *LabRequest, p LabRequestPatch) {
		p.PatientName.ApplyTo(&r.PatientName)
		p.TestName.ApplyTo(&r.TestName)
		p.Priority.ApplyTo(&r.Priority)
		p.Status.ApplyTo(&r.Status)
		p.Date.ApplyTo(&r.Date)
	},
}

// ── Radiology ─────────────────────────────────────────────────────────────────

type RadiologyRequest struct {
	ID          string `json:"id" bson:"_id"`
	PatientName string `json:"patient_name" bson:"patient_name"`
	Modality    string `json:"modality" bson:"modality"`
	BodyPart    string `json:"body_part" bson:"body_part"`
	Status      string `json:"status" bson:"status"`
	Date        string `json:"date" bson:"date"`
}

func (r RadiologyRequest) RecordID() string { return r.ID }

type RadiologyInput struct {
	PatientName string `json:"patient_name" validate:"required"`
	Modality    string `json:"modality" validate:"required"`
	BodyPart    string `json:"body_part" validate:"required"`
	Status      string `json:"status"`
	Date        string `json:"date" validate:"required"`
}

type RadiologyPatch struct {
	PatientName patch.Value[string] `json:"patient_name"`
	Modality    patch.Value[string] `json:"modality"`
	BodyPart    patch.Value[string] `json:"body_part"`
	Status      patch.Value[string] `json:"status"`
	Date        patch.Value[string] `json:"date"`
}

var RadiologyResource = Descriptor[RadiologyRequest, RadiologyInput, RadiologyPatch]{
	Path:     "radiology",
	Tag:      "Radiology",
	IDPrefix: "RAD-",
	Policy:   Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in RadiologyInput) RadiologyRequest {
		return RadiologyRequest{
			ID:          id,
			PatientName: in.PatientName,
			Modality:    in.Modality,
			BodyPart:    in.BodyPart,
			Status:      orDefault(in.Status, "Scheduled"),
			Date:        in.Date,
		}
	},
	Merge: func(r *RadiologyRequest, p RadiologyPatch) {
		p.PatientName.ApplyTo(&r.PatientName)
		p.Modality.ApplyTo(&r.Modality)
		p.BodyPart.ApplyTo(&r.BodyPart)
		p.Status.ApplyTo(&r.Status)
		p.Date.ApplyTo(&r.Date)
	},
}

// ── Referrals ─────────────────────────────────────────────────────────────────

type Referral struct {
	ID          string `json:"id" bson:"_id"`
	PatientName string `json:"patient_name" bson:"patient_name"`
	Direction   string `json:"direction" bson:"direction"`
	Hospital    string `json:"hospital" bson:"hospital"`
	Reason      string `json:"reason" bson:"reason"`
	Status      string `json:"status" bson:"status"`
	Date        string `json:"date" bson:"date"`
}

func (r Referral) RecordID() string { return r.ID }

type ReferralInput struct {
	PatientName string `json:"patient_name" validate:"required"`
	Direction   string `json:"direction" validate:"required"`
	Hospital    string `json:"hospital" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	Status      string `json:"status"`
	Date        string `json:"date" validate:"required"`
}

type ReferralPatch struct {
	PatientName patch.Value[string] `json:"patient_name"`
	Direction   patch.Value[string] `json:"direction"`
	Hospital    patch.Value[string] `json:"hospital"`
	Reason      patch.Value[string] `json:"reason"`
	Status      patch.Value[string] `json:"status"`
	Date        patch.Value[string] `json:"date"`
}

var ReferralResource = Descriptor[Referral, ReferralInput, ReferralPatch]{
	Path:     "referrals",
	Tag:      "Referrals",
	IDPrefix: "REF-",
	Policy:   Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in ReferralInput) Referral {
		return Referral{
			ID:          id,
			PatientName: in.PatientName,
			Direction:   in.Direction,
			Hospital:    in.Hospital,
			Reason:      in.Reason,
			Status:      orDefault(in.Status, "Pending"),
			Date:        in.Date,
		}
	},
	Merge: func(r *Referral, p ReferralPatch) {
		p.PatientName.ApplyTo(&r.PatientName)
		p.Direction.ApplyTo(&r.Direction)
		p.Hospital.ApplyTo(&r.Hospital)
		p.Reason.ApplyTo(&r.Reason)
		p.Status.ApplyTo(&r.Status)
		p.Date.ApplyTo(&r.Date)
	},
}

// ── Medical certificates ──────────────────────────────────────────────────────

type Certificate struct {
	ID          string `json:"id" bson:"_id"`
	PatientName string `json:"patient_name" bson:"patient_name"`
	Type        string `json:"type" bson:"type"`
	IssueDate   string `json:"issue_date" bson:"issue_date"`
	Doctor      string `json:"doctor" bson:"doctor"`
	Status      string `json:"status" bson:"status"`
}

func (c Certificate) RecordID() string { return c.ID }

type CertificateInput struct {
	PatientName string `json:"patient_name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	IssueDate   string `json:"issue_date" validate:"required"`
	Doctor      string `json:"doctor" validate:"required"`
	Status      string `json:"status"`
}

type CertificatePatch struct {
	PatientName patch.Value[string] `json:"patient_name"`
	Type        patch.Value[string] `json:"type"`
	IssueDate   patch.Value[string] `json:"issue_date"`
	Doctor      patch.Value[string] `json:"doctor"`
	Status      patch.Value[string] `json:"status"`
}

// Certificates are legal documents; only clinicians may draft or amend them.
var CertificateResource = Descriptor[Certificate, CertificateInput, CertificatePatch]{
	Path:       "certificates",
	Tag:        "Medical Certificates",
	IDPrefix:   "MC-",
	Collection: "medical_certificates",
	Policy: Policy{
		Write:  []Role{RoleAdmin, RoleDoctor},
		Delete: []Role{RoleAdmin},
	},
	Build: func(id string, in CertificateInput) Certificate {
		return Certificate{
			ID:          id,
			PatientName: in.PatientName,
			Type:        in.Type,
			IssueDate:   in.IssueDate,
			Doctor:      in.Doctor,
			Status:      orDefault(in.Status, "Draft"),
		}
	},
	Merge: func(r *Certificate, p CertificatePatch) {
		p.PatientName.ApplyTo(&r.PatientName)
		p.Type.ApplyTo(&r.Type)
		p.IssueDate.ApplyTo(&r.IssueDate)
		p.Doctor.ApplyTo(&r.Doctor)
		p.Status.ApplyTo(&r.Status)
	},
}

// ── Research trials ───────────────────────────────────────────────────────────

type ResearchTrial struct {
	ID             string `json:"id" bson:"_id"`
	Title          string `json:"title" bson:"title"`
	Phase          string `json:"phase" bson:"phase"`
	Participants   int    `json:"participants" bson:"participants"`
	Status         string `json:"status" bson:"status"`
	LeadResearcher string `json:"lead_researcher" bson:"lead_researcher"`
}

func (r ResearchTrial) RecordID() string { return r.ID }

type ResearchTrialInput struct {
	Title          string `json:"title" validate:"required"`
	Phase          string `json:"phase" validate:"required"`
	Participants   int    `json:"participants" validate:"gte=0"`
	Status         string `json:"status"`
	LeadResearcher string `json:"lead_researcher" validate:"required"`
}

type ResearchTrialPatch struct {
	Title          patch.Value[string] `json:"title"`
	Phase          patch.Value[string] `json:"phase"`
	Participants   patch.Value[int]    `json:"participants" validate:"omitempty,gte=0"`
	Status         patch.Value[string] `json:"status"`
	LeadResearcher patch.Value[string] `json:"lead_researcher"`
}

var ResearchTrialResource = Descriptor[ResearchTrial, ResearchTrialInput, ResearchTrialPatch]{
	Path:   "research-trials",
	Tag:    "Research Trials",
	Policy: Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in ResearchTrialInput) ResearchTrial {
		return ResearchTrial{
			ID:             id,
			Title:          in.Title,
			Phase:          in.Phase,
			Participants:   in.Participants,
			Status:         orDefault(in.Status, "Recruiting"),
			LeadResearcher: in.LeadResearcher,
		}
	},
	Merge: func(r *ResearchTrial, p ResearchTrialPatch) {
		p.Title.ApplyTo(&r.Title)
		p.Phase.ApplyTo(&r.Phase)
		p.Participants.ApplyTo(&r.Participants)
		p.Status.ApplyTo(&r.Status)
		p.LeadResearcher.ApplyTo(&r.LeadResearcher)
	},
}

// ── Maternity ─────────────────────────────────────────────────────────────────

type MaternityRecord struct {
	ID            string  `json:"id" bson:"_id"`
	Name          string  `json:"name" bson:"name"`
	WeeksPregnant int     `json:"weeks_pregnant" bson:"weeks_pregnant"`
	Doctor        string  `json:"doctor" bson:"doctor"`
	Status        string  `json:"status" bson:"status"`
	Room          *string `json:"room" bson:"room"`
}

func (m MaternityRecord) RecordID() string { return m.ID }

type MaternityInput struct {
	Name          string  `json:"name" validate:"required"`
	WeeksPregnant *int    `json:"weeks_pregnant" validate:"required,gte=0,lte=45"`
	Doctor        string  `json:"doctor" validate:"required"`
	Status        string  `json:"status"`
	Room          *string `json:"room"`
}

type MaternityPatch struct {
	Name          patch.Value[string]    `json:"name"`
	WeeksPregnant patch.Value[int]       `json:"weeks_pregnant" validate:"omitempty,gte=0,lte=45"`
	Doctor        patch.Value[string]    `json:"doctor"`
	Status        patch.Value[string]    `json:"status"`
	Room          patch.Nullable[string] `json:"room"`
}

var MaternityResource = Descriptor[MaternityRecord, MaternityInput, MaternityPatch]{
	Path:   "maternity",
	Tag:    "Maternity",
	Policy: Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in MaternityInput) MaternityRecord {
		return MaternityRecord{
			ID:            id,
			Name:          in.Name,
			WeeksPregnant: *in.WeeksPregnant,
			Doctor:        in.Doctor,
			Status:        orDefault(in.Status, "Ante-natal"),
			Room:          in.Room,
		}
	},
	Merge: func(r *MaternityRecord, p MaternityPatch) {
		p.Name.ApplyTo(&r.Name)
		p.WeeksPregnant.ApplyTo(&r.WeeksPregnant)
		p.Doctor.ApplyTo(&r.Doctor)
		p.Status.ApplyTo(&r.Status)
		p.Room.ApplyTo(&r.Room)
	},
}

// ── OPD queue ─────────────────────────────────────────────────────────────────

type QueueItem struct {
	ID          string  `json:"id" bson:"_id"`
	TokenNumber int     `json:"token_number" bson:"token_number"`
	PatientName string  `json:"patient_name" bson:"patient_name"`
	DoctorName  string  `json:"doctor_name" bson:"doctor_name"`
	Department  string  `json:"department" bson:"department"`
	Status      string  `json:"status" bson:"status"`
	WaitTime    *string `json:"wait_time" bson:"wait_time"`
}

func (q QueueItem) RecordID() string { return q.ID }

type QueueItemInput struct {
	TokenNumber *int    `json:"token_number" validate:"required,gte=0"`
	PatientName string  `json:"patient_name" validate:"required"`
	DoctorName  string  `json:"doctor_name" validate:"required"`
	Department  string  `json:"department" validate:"required"`
	Status      string  `json:"status"`
	WaitTime    *string `json:"wait_time"`
}

type QueueItemPatch struct {
	TokenNumber patch.Value[int]       `json:"token_number" validate:"omitempty,gte=0"`
	PatientName patch.Value[string]    `json:"patient_name"`
	DoctorName  patch.Value[string]    `json:"doctor_name"`
	Department  patch.Value[string]    `json:"department"`
	Status      patch.Value[string]    `json:"status"`
	WaitTime    patch.Nullable[string] `json:"wait_time"`
}

var QueueItemResource = Descriptor[QueueItem, QueueItemInput, QueueItemPatch]{
	Path:       "opd-queue",
	Tag:        "OPD Queue",
	IDPrefix:   "Q-",
	Collection: "queue_items",
	Policy:     Policy{Delete: []Role{RoleAdmin, RoleReceptionist}},
	Build: func(id string, in QueueItemInput) QueueItem {
		return QueueItem{
			ID:          id,
			TokenNumber: *in.TokenNumber,
			PatientName: in.PatientName,
			DoctorName:  in.DoctorName,
			Department:  in.Department,
			Status:      orDefault(in.Status, "Waiting"),
			WaitTime:    in.WaitTime,
		}
	},
	Merge: func(r *QueueItem, p QueueItemPatch) {
		p.TokenNumber.ApplyTo(&r.TokenNumber)
		p.PatientName.ApplyTo(&r.PatientName)
		p.DoctorName.ApplyTo(&r.DoctorName)
		p.Department.ApplyTo(&r.Department)
		p.Status.ApplyTo(&r.Status)
		p.WaitTime.ApplyTo(&r.WaitTime)
	},
}
