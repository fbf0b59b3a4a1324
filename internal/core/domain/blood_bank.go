package domain

import "github.com/nexushealth/hms-api/pkg/patch"

const defaultBagVolumeML = 450

// ── Blood units (stock per group) ─────────────────────────────────────────────

type BloodUnit struct {
	ID     string `json:"id" bson:"_id"`
	Group  string `json:"group" bson:"group"`
	Bags   int    `json:"bags" bson:"bags"`
	Status string `json:"status" bson:"status"`
}

func (b BloodUnit) RecordID() string { return b.ID }

type BloodUnitInput struct {
	Group  string `json:"group" validate:"required"`
	Bags   *int   `json:"bags" validate:"required,gte=0"`
	Status string `json:"status"`
}

type BloodUnitPatch struct {
	Group  patch.Value[string] `json:"group"`
	Bags   patch.Value[int]    `json:"bags" validate:"omitempty,gte=0"`
	Status patch.Value[string] `json:"status"`
}

var BloodUnitResource = Descriptor[BloodUnit, BloodUnitInput, BloodUnitPatch]{
	Path:     "blood-units",
	Tag:      "Blood Units",
	IDPrefix: "BU-",
	Policy:   Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in BloodUnitInput) BloodUnit {
		return BloodUnit{
			ID:     id,
			Group:  in.Group,
			Bags:   *in.Bags,
			Status: orDefault(in.Status, "Adequate"),
		}
	},
	Merge: func(r *BloodUnit, p BloodUnitPatch) {
		p.Group.ApplyTo(&r.Group)
		p.Bags.ApplyTo(&r.Bags)
		p.Status.ApplyTo(&r.Status)
	},
}

// ── Blood bags ────────────────────────────────────────────────────────────────

type BloodBag struct {
	ID             string  `json:"id" bson:"_id"`
	BloodGroup     string  `json:"blood_group" bson:"blood_group"`
	DonorID        *string `json:"donor_id" bson:"donor_id"`
	DonorName      *string `json:"donor_name" bson:"donor_name"`
	CollectionDate string  `json:"collection_date" bson:"collection_date"`
	ExpiryDate     string  `json:"expiry_date" bson:"expiry_date"`
	Volume         float64 `json:"volume" bson:"volume"`
	Status         string  `json:"status" bson:"status"`
	Location       *string `json:"location" bson:"location"`
}

func (b BloodBag) RecordID() string { return b.ID }

type BloodBagInput struct {
	BloodGroup     string  `json:"blood_group" validate:"required"`
	DonorID        *string `json:"donor_id"`
	DonorName      *string `json:"donor_name"`
	CollectionDate string  `json:"collection_date" validate:"required"`
	ExpiryDate     string  `json:"expiry_date" validate:"required"`
	Volume         float64 `json:"volume" validate:"gte=0"`
	Status         string  `json:"status"`
	Location       *string `json:"location"`
}

type BloodBagPatch struct {
	BloodGroup     patch.Value[string]    `json:"blood_group"`
	DonorID        patch.Nullable[string] `json:"donor_id"`
	DonorName      patch.Nullable[string] `json:"donor_name"`
	CollectionDate patch.Value[string]    `json:"collection_date"`
	ExpiryDate     patch.Value[string]    `json:"expiry_date"`
	Volume         patch.Value[float64]   `json:"volume" validate:"omitempty,gte=0"`
	Status         patch.Value[string]    `json:"status"`
	Location       patch.Nullable[string] `json:"location"`
}

var BloodBagResource = Descriptor[BloodBag, BloodBagInput, BloodBagPatch]{
	Path:     "blood-bags",
	Tag:      "Blood Bags",
	IDPrefix: "BB-",
	Policy:   Policy{Delete: []Role{RoleAdmin, RoleLabTechnician}},
	Build: func(id string, in BloodBagInput) BloodBag {
		volume := in.Volume
		if volume == 0 {
			volume = defaultBagVolumeML
		}
		return BloodBag{
			ID:             id,
			BloodGroup:     in.BloodGroup,
			DonorID:        in.DonorID,
			DonorName:      in.DonorName,
			CollectionDate: in.CollectionDate,
			ExpiryDate:     in.ExpiryDate,
			Volume:         volume,
			Status:         orDefault(in.Status, "Available"),
			Location:       in.Location,
		}
	},
	Merge: func(r *BloodBag, p BloodBagPatch) {
		p.BloodGroup.ApplyTo(&r.BloodGroup)
		p.DonorID.ApplyTo(&r.DonorID)
		p.DonorName.ApplyTo(&r.DonorName)
		p.CollectionDate.ApplyTo(&r.CollectionDate)
		p.ExpiryDate.ApplyTo(&r.ExpiryDate)
		p.Volume.ApplyTo(&r.Volume)
		p.Status.ApplyTo(&r.Status)
		p.Location.ApplyTo(&r.Location)
	},
}

// ── Blood donors ──────────────────────────────────────────────────────────────

type BloodDonor struct {
	ID                string  `json:"id" bson:"_id"`
	Name              string  `json:"name" bson:"name"`
	Age               int     `json:"age" bson:"age"`
	Gender            string  `json:"gender" bson:"gender"`
	BloodGroup        string  `json:"blood_group" bson:"blood_group"`
	Contact           *string `json:"contact" bson:"contact"`
	Email             *string `json:"email" bson:"email"`
	Address           *string `json:"address" bson:"address"`
	LastDonationDate  *string `json:"last_donation_date" bson:"last_donation_date"`
	TotalDonations    int     `json:"total_donations" bson:"total_donations"`
	Status            string  `json:"status" bson:"status"`
	MedicalConditions *string `json:"medical_conditions" bson:"medical_conditions"`
	CreatedAt         *string `json:"created_at" bson:"created_at"`
}

func (b BloodDonor) RecordID() string { return b.ID }

type BloodDonorInput struct {
	Name              string  `json:"name" validate:"required"`
	Age               *int    `json:"age" validate:"required,gte=16,lte=100"`
	Gender            string  `json:"gender" validate:"required"`
	BloodGroup        string  `json:"blood_group" validate:"required"`
	Contact           *string `json:"contact"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Address           *string `json:"address"`
	LastDonationDate  *string `json:"last_donation_date"`
	TotalDonations    int     `json:"total_donations" validate:"gte=0"`
	Status            string  `json:"status"`
	MedicalConditions *string `json:"medical_conditions"`
	CreatedAt         *string `json:"created_at"`
}

type BloodDonorPatch struct {
	Name              patch.Value[string]    `json:"name"`
	Age               patch.Value[int]       `json:"age" validate:"omitempty,gte=16,lte=100"`
	Gender            patch.Value[string]    `json:"gender"`
	BloodGroup        patch.Value[string]    `json:"blood_group"`
	Contact           patch.Nullable[string] `json:"contact"`
	Email             patch.Nullable[string] `json:"email" validate:"omitempty,email"`
	Address           patch.Nullable[string] `json:"address"`
	LastDonationDate  patch.Nullable[string] `json:"last_donation_date"`
	TotalDonations    patch.Value[int]       `json:"total_donations" validate:"omitempty,gte=0"`
	Status            patch.Value[string]    `json:"status"`
	MedicalConditions patch.Nullable[string] `json:"medical_conditions"`
	CreatedAt         patch.Nullable[string] `json:"created_at"`
}

var BloodDonorResource = Descriptor[BloodDonor, BloodDonorInput, BloodDonorPatch]{
	Path:     "blood-donors",
	Tag:      "Blood Donors",
	IDPrefix: "D-",
	Policy:   Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in BloodDonorInput) BloodDonor {
		return BloodDonor{
			ID:                id,
			Name:              in.Name,
			Age:               *in.Age,
			Gender:            in.Gender,
			BloodGroup:        in.BloodGroup,
			Contact:           in.Contact,
			Email:             in.Email,
			Address:           in.Address,
			LastDonationDate:  in.LastDonationDate,
			TotalDonations:    in.TotalDonations,
			Status:            orDefault(in.Status, "Active"),
			MedicalConditions: in.MedicalConditions,
			CreatedAt:         in.CreatedAt,
		}
	},
	Merge: func(r *BloodDonor, p BloodDonorPatch) {
		p.Name.ApplyTo(&r.Name)
		p.Age.ApplyTo(&r.Age)
		p.Gender.ApplyTo(&r.Gender)
		p.BloodGroup.ApplyTo(&r.BloodGroup)
		p.Contact.ApplyTo(&r.Contact)
		p.Email.ApplyTo(&r.Email)
		p.Address.ApplyTo(&r.Address)
		p.LastDonationDate.ApplyTo(&r.LastDonationDate)
		p.TotalDonations.ApplyTo(&r.TotalDonations)
		p.Status.ApplyTo(&r.Status)
		p.MedicalConditions.ApplyTo(&r.MedicalConditions)
		p.CreatedAt.ApplyTo(&r.CreatedAt)
	},
}

// ── Blood requests ────────────────────────────────────────────────────────────

type BloodRequest struct {
	ID               string  `json:"id" bson:"_id"`
	PatientID        *string `json:"patient_id" bson:"patient_id"`
	PatientName      string  `json:"patient_name" bson:"patient_name"`
	BloodGroup       string  `json:"blood_group" bson:"blood_group"`
	UnitsRequired    int     `json:"units_required" bson:"units_required"`
	Urgency          string  `json:"urgency" bson:"urgency"`
	Department       *string `json:"department" bson:"department"`
	Doctor           *string `json:"doctor" bson:"doctor"`
	Status           string  `json:"status" bson:"status"`
	RequestDate      string  `json:"request_date" bson:"request_date"`
	RequiredDate     *string `json:"required_date" bson:"required_date"`
	CrossMatchStatus *string `json:"cross_match_status" bson:"cross_match_status"`
	Notes            *string `json:"notes" bson:"notes"`
	FulfilledDate    *string `json:"fulfilled_date" bson:"fulfilled_date"`
	FulfilledUnits   *int    `json:"fulfilled_units" bson:"fulfilled_units"`
}

func (b BloodRequest) RecordID() string { return b.ID }

type BloodRequestInput struct {
	PatientID        *string `json:"patient_id"`
	PatientName      string  `json:"patient_name" validate:"required"`
	BloodGroup       string  `json:"blood_group" validate:"required"`
	UnitsRequired    *int    `json:"units_required" validate:"required,gte=1"`
	Urgency          string  `json:"urgency"`
	Department       *string `json:"department"`
	Doctor           *string `json:"doctor"`
	Status           string  `json:"status"`
	RequestDate      string  `json:"request_date" validate:"required"`
	RequiredDate     *string `json:"required_date"`
	CrossMatchStatus *string `json:"cross_match_status"`
	Notes            *string `json:"notes"`
}

// BloodRequestPatch also carries the fulfilment fields, which are only set after creation.
type BloodRequestPatch struct {
	PatientID        patch.Nullable[string] `json:"patient_id"`
	PatientName      patch.Value[string]    `json:"patient_name"`
	BloodGroup       patch.Value[string]    `json:"blood_group"`
	UnitsRequired    patch.Value[int]       `json:"units_required" validate:"omitempty,gte=1"`
	Urgency          patch.Value[string]    `json:"urgency"`
	Department       patch.Nullable[string] `json:"department"`
	Doctor           patch.Nullable[string] `json:"doctor"`
	Status           patch.Value[string]    `json:"status"`
	RequestDate      patch.Value[string]    `json:"request_date"`
	RequiredDate     patch.Nullable[string] `json:"required_date"`
	CrossMatchStatus patch.Nullable[string] `json:"cross_match_status"`
	Notes            patch.Nullable[string] `json:"notes"`
	FulfilledDate    patch.Nullable[string] `json:"fulfilled_date"`
	FulfilledUnits   patch.Nullable[int]    `json:"fulfilled_units" validate:"omitempty,gte=0"`
}

var BloodRequestResource = Descriptor[BloodRequest, BloodRequestInput, BloodRequestPatch]{
	Path:     "blood-requests",
	Tag:      "Blood Requests",
	IDPrefix: "BR-",
	Policy:   Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in BloodRequestInput) BloodRequest {
		return BloodRequest{
			ID:               id,
			PatientID:        in.PatientID,
			PatientName:      in.PatientName,
			BloodGroup:       in.BloodGroup,
			UnitsRequired:    *in.UnitsRequired,
			Urgency:          orDefault(in.Urgency, "Routine"),
			Department:       in.Department,
			Doctor:           in.Doctor,
			Status:           orDefault(in.Status, "Pending"),
			RequestDate:      in.RequestDate,
			RequiredDate:     in.RequiredDate,
			CrossMatchStatus: in.CrossMatchStatus,
			Notes:            in.Notes,
		}
	},
	Merge: func(r *BloodRequest, p BloodRequestPatch) {
		p.PatientID.ApplyTo(&r.PatientID)
		p.PatientName.ApplyTo(&r.PatientName)
		p.BloodGroup.ApplyTo(&r.BloodGroup)
		p.UnitsRequired.ApplyTo(&r.UnitsRequired)
		p.Urgency.ApplyTo(&r.Urgency)
		p.Department.ApplyTo(&r.Department)
		p.Doctor.ApplyTo(&r.Doctor)
		p.Status.ApplyTo(&r.Status)
		p.RequestDate.ApplyTo(&r.RequestDate)
		p.RequiredDate.ApplyTo(&r.RequiredDate)
		p.CrossMatchStatus.ApplyTo(&r.CrossMatchStatus)
		p.Notes.ApplyTo(&r.Notes)
		p.FulfilledDate.ApplyTo(&r.FulfilledDate)
		p.FulfilledUnits.ApplyTo(&r.FulfilledUnits)
	},
}
