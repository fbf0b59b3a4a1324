package domain

import "github.com/nexushealth/hms-api/pkg/patch"

// ── Invoices ──────────────────────────────────────────────────────────────────

const (
	InvoicePaid    = "Paid"
	InvoicePending = "Pending"
)

type Invoice struct {
	ID          string   `json:"id" bson:"_id"`
	PatientName string   `json:"patient_name" bson:"patient_name"`
	Date        string   `json:"date" bson:"date"`
	Amount      float64  `json:"amount" bson:"amount"`
	Status      string   `json:"status" bson:"status"`
	Items       []string `json:"items" bson:"items"`
}

func (i Invoice) RecordID() string { return i.ID }

type InvoiceInput struct {
	PatientName string   `json:"patient_name" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required,gte=0"`
	Status      string   `json:"status"`
	Items       []string `json:"items"`
}

type InvoicePatch struct {
	PatientName patch.Value[string]      `json:"patient_name"`
	Date        patch.Value[string]      `json:"date"`
	Amount      patch.Value[float64]     `json:"amount" validate:"omitempty,gte=0"`
	Status      patch.Value[string]      `json:"status"`
	Items       patch.Nullable[[]string] `json:"items"`
}

var InvoiceResource = Descriptor[Invoice, InvoiceInput, InvoicePatch]{
	Path:     "invoices",
	Tag:      "Invoices",
	IDPrefix: "INV-",
	Policy: Policy{
		Write:  []Role{RoleAdmin, RoleReceptionist, RoleStaff},
		Delete: []Role{RoleAdmin},
	},
	Build: func(id string, in InvoiceInput) Invoice {
		return Invoice{
			ID:          id,
			PatientName: in.PatientName,
			Date:        in.Date,
			Amount:      *in.Amount,
			Status:      orDefault(in.Status, InvoicePending),
			Items:       in.Items,
		}
	},
	Merge: func(r *Invoice, p InvoicePatch) {
		p.PatientName.ApplyTo(&r.PatientName)
		p.Date.ApplyTo(&r.Date)
		p.Amount.ApplyTo(&r.Amount)
		p.Status.ApplyTo(&r.Status)
		if p.Items.IsSet() {
			var items *[]string
			p.Items.ApplyTo(&items)
			r.Items = nil
			if items != nil {
				r.Items = *items
			}
		}
	},
}

// ── Inventory ─────────────────────────────────────────────────────────────────

type InventoryItem struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Category    string  `json:"category" bson:"category"`
	Stock       int     `json:"stock" bson:"stock"`
	Unit        string  `json:"unit" bson:"unit"`
	LastUpdated *string `json:"last_updated" bson:"last_updated"`
	Status      string  `json:"status" bson:"status"`
}

func (i InventoryItem) RecordID() string { return i.ID }

type InventoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Stock       *int    `json:"stock" validate:"required,gte=0"`
	Unit        string  `json:"unit" validate:"required"`
	LastUpdated *string `json:"last_updated"`
	Status      string  `json:"status"`
}

type InventoryPatch struct {
	Name        patch.Value[string]    `json:"name"`
	Category    patch.Value[string]    `json:"category"`
	Stock       patch.Value[int]       `json:"stock" validate:"omitempty,gte=0"`
	Unit        patch.Value[string]    `json:"unit"`
	LastUpdated patch.Nullable[string] `json:"last_updated"`
	Status      patch.Value[string]    `json:"status"`
}

var InventoryResource = Descriptor[InventoryItem, InventoryInput, InventoryPatch]{
	Path:       "inventory",
	Tag:        "Inventory",
	IDPrefix:   "ITM-",
	Collection: "inventory_items",
	Policy: Policy{
		Write:  []Role{RoleAdmin, RolePharmacist, RoleStaff},
		Delete: []Role{RoleAdmin, RolePharmacist},
	},
	Build: func(id string, in InventoryInput) InventoryItem {
		return InventoryItem{
			ID:          id,
			Name:        in.Name,
			Category:    in.Category,
			Stock:       *in.Stock,
			Unit:        in.Unit,
			LastUpdated: in.LastUpdated,
			Status:      orDefault(in.Status, "In Stock"),
		}
	},
	Merge: func(r *InventoryItem, p InventoryPatch) {
		p.Name.ApplyTo(&r.Name)
		p.Category.ApplyTo(&r.Category)
		p.Stock.ApplyTo(&r.Stock)
		p.Unit.ApplyTo(&r.Unit)
		p.LastUpdated.ApplyTo(&r.LastUpdated)
		p.Status.ApplyTo(&r.Status)
	},
}

// ── Ambulances ────────────────────────────────────────────────────────────────

const AmbulanceOnRoute = "On Route"

type Ambulance struct {
	ID            string  `json:"id" bson:"_id"`
	VehicleNumber string  `json:"vehicle_number" bson:"vehicle_number"`
	DriverName    string  `json:"driver_name" bson:"driver_name"`
	Status        string  `json:"status" bson:"status"`
	Location      *string `json:"location" bson:"location"`
	Type          string  `json:"type" bson:"type"`
}

func (a Ambulance) RecordID() string { return a.ID }

type AmbulanceInput struct {
	VehicleNumber string  `json:"vehicle_number" validate:"required"`
	DriverName    string  `json:"driver_name" validate:"required"`
	Status        string  `json:"status"`
	Location      *string `json:"location"`
	Type          string  `json:"type"`
}

type AmbulancePatch struct {
	VehicleNumber patch.Value[string]    `json:"vehicle_number"`
	DriverName    patch.Value[string]    `json:"driver_name"`
	Status        patch.Value[string]    `json:"status"`
	Location      patch.Nullable[string] `json:"location"`
	Type          patch.Value[string]    `json:"type"`
}

var AmbulanceResource = Descriptor[Ambulance, AmbulanceInput, AmbulancePatch]{
	Path:     "ambulances",
	Tag:      "Ambulances",
	IDPrefix: "AMB-",
	Policy:   Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in AmbulanceInput) Ambulance {
		return Ambulance{
			ID:            id,
			VehicleNumber: in.VehicleNumber,
			DriverName:    in.DriverName,
			Status:        orDefault(in.Status, "Available"),
			Location:      in.Location,
			Type:          orDefault(in.Type, "BLS"),
		}
	},
	Merge: func(r *Ambulance, p AmbulancePatch) {
		p.VehicleNumber.ApplyTo(&r.VehicleNumber)
		p.DriverName.ApplyTo(&r.DriverName)
		p.Status.ApplyTo(&r.Status)
		p.Location.ApplyTo(&r.Location)
		p.Type.ApplyTo(&r.Type)
	},
}

// ── Staff ─────────────────────────────────────────────────────────────────────

type StaffMember struct {
	ID        string  `json:"id" bson:"_id"`
	Name      string  `json:"name" bson:"name"`
	Specialty string  `json:"specialty" bson:"specialty"`
	Status    string  `json:"status" bson:"status"`
	Patients  int     `json:"patients" bson:"patients"`
	Image     *string `json:"image" bson:"image"`
	Phone     *string `json:"phone" bson:"phone"`
	Email     *string `json:"email" bson:"email"`
}

func (s StaffMember) RecordID() string { return s.ID }

type StaffInput struct {
	Name      string  `json:"name" validate:"required"`
	Specialty string  `json:"specialty" validate:"required"`
	Status    string  `json:"status"`
	Patients  int     `json:"patients" validate:"gte=0"`
	Image     *string `json:"image"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

type StaffPatch struct {
	Name      patch.Value[string]    `json:"name"`
	Specialty patch.Value[string]    `json:"specialty"`
	Status    patch.Value[string]    `json:"status"`
	Patients  patch.Value[int]       `json:"patients" validate:"omitempty,gte=0"`
	Image     patch.Nullable[string] `json:"image"`
	Phone     patch.Nullable[string] `json:"phone"`
	Email     patch.Nullable[string] `json:"email" validate:"omitempty,email"`
}

// The staff directory is maintained by administrators.
var StaffResource = Descriptor[StaffMember, StaffInput, StaffPatch]{
	Path:       "staff",
	Tag:        "Staff",
	Collection: "doctors",
	Policy: Policy{
		Write:  []Role{RoleAdmin},
		Delete: []Role{RoleAdmin},
	},
	Build: func(id string, in StaffInput) StaffMember {
		return StaffMember{
			ID:        id,
			Name:      in.Name,
			Specialty: in.Specialty,
			Status:    orDefault(in.Status, "Online"),
			Patients:  in.Patients,
			Image:     in.Image,
			Phone:     in.Phone,
			Email:     in.Email,
		}
	},
	Merge: func(r *StaffMember, p StaffPatch) {
		p.Name.ApplyTo(&r.Name)
		p.Specialty.ApplyTo(&r.Specialty)
		p.Status.ApplyTo(&r.Status)
		p.Patients.ApplyTo(&r.Patients)
		p.Image.ApplyTo(&r.Image)
		p.Phone.ApplyTo(&r.Phone)
		p.Email.ApplyTo(&r.Email)
	},
}

// ── Tasks ─────────────────────────────────────────────────────────────────────

type Task struct {
	ID       string `json:"id" bson:"_id"`
	Title    string `json:"title" bson:"title"`
	Assignee string `json:"assignee" bson:"assignee"`
	Priority string `json:"priority" bson:"priority"`
	Status   string `json:"status" bson:"status"`
}

func (t Task) RecordID() string { return t.ID }

type TaskInput struct {
	Title    string `json:"title" validate:"required"`
	Assignee string `json:"assignee" validate:"required"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

type TaskPatch struct {
	Title    patch.Value[string] `json:"title"`
	Assignee patch.Value[string] `json:"assignee"`
	Priority patch.Value[string] `json:"priority"`
	Status   patch.Value[string] `json:"status"`
}

var TaskResource = Descriptor[Task, TaskInput, TaskPatch]{
	Path: "tasks",
	Tag:  "Tasks",
	Build: func(id string, in TaskInput) Task {
		return Task{
			ID:       id,
			Title:    in.Title,
			Assignee: in.Assignee,
			Priority: orDefault(in.Priority, "Medium"),
			Status:   orDefault(in.Status, "Todo"),
		}
	},
	Merge: func(r *Task, p TaskPatch) {
		p.Title.ApplyTo(&r.Title)
		p.Assignee.ApplyTo(&r.Assignee)
		p.Priority.ApplyTo(&r.Priority)
		p.Status.ApplyTo(&r.Status)
	},
}

// ── Beds ──────────────────────────────────────────────────────────────────────

const (
	BedAvailable = "Available"
	BedOccupied  = "Occupied"
)

type Bed struct {
	ID          string  `json:"id" bson:"_id"`
	Ward        string  `json:"ward" bson:"ward"`
	Number      string  `json:"number" bson:"number"`
	Status      string  `json:"status" bson:"status"`
	PatientName *string `json:"patient_name" bson:"patient_name"`
	Type        string  `json:"type" bson:"type"`
}

func (b Bed) RecordID() string { return b.ID }

type BedInput struct {
	Ward        string  `json:"ward" validate:"required"`
	Number      string  `json:"number" validate:"required"`
	Status      string  `json:"status"`
	PatientName *string `json:"patient_name"`
	Type        string  `json:"type"`
}

type BedPatch struct {
	Ward        patch.Value[string]    `json:"ward"`
	Number      patch.Value[string]    `json:"number"`
	Status      patch.Value[string]    `json:"status"`
	PatientName patch.Nullable[string] `json:"patient_name"`
	Type        patch.Value[string]    `json:"type"`
}

var BedResource = Descriptor[Bed, BedInput, BedPatch]{
	Path:     "beds",
	Tag:      "Beds",
	IDPrefix: "B-",
	Policy:   Policy{Delete: []Role{RoleAdmin}},
	Build: func(id string, in BedInput) Bed {
		return Bed{
			ID:          id,
			Ward:        in.Ward,
			Number:      in.Number,
			Status:      orDefault(in.Status, BedAvailable),
			PatientName: in.PatientName,
			Type:        orDefault(in.Type, "General"),
		}
	},
	Merge: func(r *Bed, p BedPatch) {
		p.Ward.ApplyTo(&r.Ward)
		p.Number.ApplyTo(&r.Number)
		p.Status.ApplyTo(&r.Status)
		p.PatientName.ApplyTo(&r.PatientName)
		p.Type.ApplyTo(&r.Type)
	},
}

// ── Notices ───────────────────────────────────────────────────────────────────

type Notice struct {
	ID       string `json:"id" bson:"_id"`
	Title    string `json:"title" bson:"title"`
	Content  string `json:"content" bson:"content"`
	Date     string `json:"date" bson:"date"`
	Priority string `json:"priority" bson:"priority"`
}

func (n Notice) RecordID() string { return n.ID }

type NoticeInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Priority string `json:"priority"`
}

type NoticePatch struct {
	Title    patch.Value[string] `json:"title"`
	Content  patch.Value[string] `json:"content"`
	Date     patch.Value[string] `json:"date"`
	Priority patch.Value[string] `json:"priority"`
}

var NoticeResource = Descriptor[Notice, NoticeInput, NoticePatch]{
	Path: "notices",
	Tag:  "Notices",
	Policy: Policy{
		Write:  []Role{RoleAdmin, RoleDoctor, RoleNurse},
		Delete: []Role{RoleAdmin},
	},
	Build: func(id string, in NoticeInput) Notice {
		return Notice{
			ID:       id,
			Title:    in.Title,
			Content:  in.Content,
			Date:     in.Date,
			Priority: orDefault(in.Priority, "Normal"),
		}
	},
	Merge: func(r *Notice, p NoticePatch) {
		p.Title.ApplyTo(&r.Title)
		p.Content.ApplyTo(&r.Content)
		p.Date.ApplyTo(&r.Date)
		p.Priority.ApplyTo(&r.Priority)
	},
}
