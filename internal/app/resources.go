package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/api/handler"
	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
	"github.com/nexushealth/hms-api/internal/core/service"
	"github.com/nexushealth/hms-api/internal/infrastructure/db"
)

type engine[T domain.Record, C any, P any] = service.ResourceEngine[T, C, P]

// Engines holds one service per registered resource.
type Engines struct {
	Patients *service.PatientService

	Appointments  *engine[domain.Appointment, domain.AppointmentInput, domain.AppointmentPatch]
	LabRequests   *engine[domain.LabRequest, domain.LabRequestInput, domain.LabRequestPatch]
	Radiology     *engine[domain.RadiologyRequest, domain.RadiologyInput, domain.RadiologyPatch]
	Referrals     *engine[domain.Referral, domain.ReferralInput, domain.ReferralPatch]
	Certificates  *engine[domain.Certificate, domain.CertificateInput, domain.CertificatePatch]
	Research      *engine[domain.ResearchTrial, domain.ResearchTrialInput, domain.ResearchTrialPatch]
	Maternity     *engine[domain.MaternityRecord, domain.MaternityInput, domain.MaternityPatch]
	Queue         *engine[domain.QueueItem, domain.QueueItemInput, domain.QueueItemPatch]
	Invoices      *engine[domain.Invoice, domain.InvoiceInput, domain.InvoicePatch]
	Inventory     *engine[domain.InventoryItem, domain.InventoryInput, domain.InventoryPatch]
	Ambulances    *engine[domain.Ambulance, domain.AmbulanceInput, domain.AmbulancePatch]
	Staff         *engine[domain.StaffMember, domain.StaffInput, domain.StaffPatch]
	Tasks         *engine[domain.Task, domain.TaskInput, domain.TaskPatch]
	Beds          *engine[domain.Bed, domain.BedInput, domain.BedPatch]
	Notices       *engine[domain.Notice, domain.NoticeInput, domain.NoticePatch]
	BloodUnits    *engine[domain.BloodUnit, domain.BloodUnitInput, domain.BloodUnitPatch]
	BloodBags     *engine[domain.BloodBag, domain.BloodBagInput, domain.BloodBagPatch]
	BloodDonors   *engine[domain.BloodDonor, domain.BloodDonorInput, domain.BloodDonorPatch]
	BloodRequests *engine[domain.BloodRequest, domain.BloodRequestInput, domain.BloodRequestPatch]
}

// engineBuilder opens a store per descriptor and keeps the first error.
type engineBuilder struct {
	ctx       context.Context
	ds        *db.Datastore
	validator ports.Validator
	logger    zerolog.Logger
	err       error
}

func build[T domain.Record, C any, P any](b *engineBuilder, desc domain.Descriptor[T, C, P]) *engine[T, C, P] {
	if b.err != nil {
		return nil
	}
	store, err := db.Store[T](b.ctx, b.ds, desc.CollectionName())
	if err != nil {
		b.err = err
		return nil
	}
	return service.NewResourceEngine(desc, store, b.validator, b.logger)
}

func newEngines(ctx context.Context, ds *db.Datastore, v ports.Validator, logger zerolog.Logger) (*Engines, error) {
	b := &engineBuilder{ctx: ctx, ds: ds, validator: v, logger: logger}

	patients, err := db.Store[domain.Patient](ctx, ds, domain.PatientResource.CollectionName())
	if err != nil {
		return nil, err
	}

	en := &Engines{
		Patients:      service.NewPatientService(patients, v, logger),
		Appointments:  build(b, domain.AppointmentResource),
		LabRequests:   build(b, domain.LabRequestResource),
		Radiology:     build(b, domain.RadiologyResource),
		Referrals:     build(b, domain.ReferralResource),
		Certificates:  build(b, domain.CertificateResource),
		Research:      build(b, domain.ResearchTrialResource),
		Maternity:     build(b, domain.MaternityResource),
		Queue:         build(b, domain.QueueItemResource),
		Invoices:      build(b, domain.InvoiceResource),
		Inventory:     build(b, domain.InventoryResource),
		Ambulances:    build(b, domain.AmbulanceResource),
		Staff:         build(b, domain.StaffResource),
		Tasks:         build(b, domain.TaskResource),
		Beds:          build(b, domain.BedResource),
		Notices:       build(b, domain.NoticeResource),
		BloodUnits:    build(b, domain.BloodUnitResource),
		BloodBags:     build(b, domain.BloodBagResource),
		BloodDonors:   build(b, domain.BloodDonorResource),
		BloodRequests: build(b, domain.BloodRequestResource),
	}
	if b.err != nil {
		return nil, b.err
	}
	return en, nil
}

// Routes returns one handler per resource, patients first.
func (en *Engines) Routes() []handler.Routes {
	return []handler.Routes{
		handler.NewPatientHandler(en.Patients),
		handler.NewResourceHandler(domain.AppointmentResource, en.Appointments),
		handler.NewResourceHandler(domain.LabRequestResource, en.LabRequests),
		handler.NewResourceHandler(domain.RadiologyResource, en.Radiology),
		handler.NewResourceHandler(domain.ReferralResource, en.Referrals),
		handler.NewResourceHandler(domain.CertificateResource, en.Certificates),
		handler.NewResourceHandler(domain.ResearchTrialResource, en.Research),
		handler.NewResourceHandler(domain.MaternityResource, en.Maternity),
		handler.NewResourceHandler(domain.QueueItemResource, en.Queue),
		handler.NewResourceHandler(domain.InvoiceResource, en.Invoices),
		handler.NewResourceHandler(domain.InventoryResource, en.Inventory),
		handler.NewResourceHandler(domain.AmbulanceResource, en.Ambulances),
		handler.NewResourceHandler(domain.StaffResource, en.Staff),
		handler.NewResourceHandler(domain.TaskResource, en.Tasks),
		handler.NewResourceHandler(domain.BedResource, en.Beds),
		handler.NewResourceHandler(domain.NoticeResource, en.Notices),
		handler.NewResourceHandler(domain.BloodUnitResource, en.BloodUnits),
		handler.NewResourceHandler(domain.BloodBagResource, en.BloodBags),
		handler.NewResourceHandler(domain.BloodDonorResource, en.BloodDonors),
		handler.NewResourceHandler(domain.BloodRequestResource, en.BloodRequests),
	}
}

func (en *Engines) statsSources() service.StatsSources {
	return service.StatsSources{
		Patients:     en.Patients,
		Appointments: en.Appointments,
		Invoices:     en.Invoices,
		Staff:        en.Staff,
		Beds:         en.Beds,
		LabRequests:  en.LabRequests,
		Ambulances:   en.Ambulances,
	}
}
