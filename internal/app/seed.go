package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

type importer[T domain.Record] interface {
	Import(ctx context.Context, recs ...T) error
}

// SeedReport counts what a seed run wrote and what already existed.
type SeedReport struct {
	Inserted int
	Skipped  int
}

// Seed loads the demo data set. Records and accounts that already exist are
// left untouched, so running it twice is harmless.
func (a *App) Seed(ctx context.Context) (SeedReport, error) {
	return seed(ctx, a.auth, a.engines, a.logger)
}

type provisioner interface {
	Provision(ctx context.Context, id string, in ports.RegisterInput) (*domain.Principal, error)
}

func seed(ctx context.Context, auth provisioner, en *Engines, logger zerolog.Logger) (SeedReport, error) {
	var r SeedReport

	accounts := []struct {
		id string
		in ports.RegisterInput
	}{
		{"admin-001", ports.RegisterInput{Name: "Admin", Email: "admin@nexushealth.com", Password: "admin123", Role: domain.RoleAdmin}},
		{"doc-001", ports.RegisterInput{Name: "Dr. Sarah Chen", Email: "sarah.chen@nexushealth.com", Password: "doctor123", Role: domain.RoleDoctor}},
	}
	for _, acc := range accounts {
		_, err := auth.Provision(ctx, acc.id, acc.in)
		switch {
		case err == nil:
			r.Inserted++
		case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrDuplicateID):
			r.Skipped++
		default:
			return r, fmt.Errorf("seed account %s: %w", acc.id, err)
		}
	}

	steps := []func() error{
		func() error { return seedAll(ctx, &r, en.Patients, seedPatients()...) },
		func() error { return seedAll(ctx, &r, en.Appointments, seedAppointments()...) },
		func() error { return seedAll(ctx, &r, en.Invoices, seedInvoices()...) },
		func() error { return seedAll(ctx, &r, en.Inventory, seedInventory()...) },
		func() error { return seedAll(ctx, &r, en.Ambulances, seedAmbulances()...) },
		func() error { return seedAll(ctx, &r, en.Staff, seedStaff()...) },
		func() error { return seedAll(ctx, &r, en.Tasks, seedTasks()...) },
		func() error { return seedAll(ctx, &r, en.Beds, seedBeds()...) },
		func() error { return seedAll(ctx, &r, en.Notices, seedNotices()...) },
		func() error { return seedAll(ctx, &r, en.LabRequests, seedLabRequests()...) },
		func() error { return seedAll(ctx, &r, en.Radiology, seedRadiology()...) },
		func() error { return seedAll(ctx, &r, en.Referrals, seedReferrals()...) },
		func() error { return seedAll(ctx, &r, en.Certificates, seedCertificates()...) },
		func() error { return seedAll(ctx, &r, en.Research, seedTrials()...) },
		func() error { return seedAll(ctx, &r, en.Maternity, seedMaternity()...) },
		func() error { return seedAll(ctx, &r, en.Queue, seedQueue()...) },
		func() error { return seedAll(ctx, &r, en.BloodUnits, seedBloodUnits()...) },
		func() error { return seedAll(ctx, &r, en.BloodBags, seedBloodBags()...) },
		func() error { return seedAll(ctx, &r, en.BloodDonors, seedBloodDonors()...) },
		func() error { return seedAll(ctx, &r, en.BloodRequests, seedBloodRequests()...) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return r, err
		}
	}

	logger.Info().Int("inserted", r.Inserted).Int("skipped", r.Skipped).Msg("seed complete")
	return r, nil
}

func seedAll[T domain.Record](ctx context.Context, r *SeedReport, dst importer[T], recs ...T) error {
	for _, rec := range recs {
		err := dst.Import(ctx, rec)
		switch {
		case err == nil:
			r.Inserted++
		case errors.Is(err, domain.ErrDuplicateID):
			r.Skipped++
		default:
			return err
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
