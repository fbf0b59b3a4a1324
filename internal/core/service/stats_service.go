package service

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

// Lister is the read capability the dashboard needs from each resource.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type StatsSources struct {
	Patients     Lister[domain.Patient]
	Appointments Lister[domain.Appointment]
	Invoices     Lister[domain.Invoice]
	Staff        Lister[domain.StaffMember]
	Beds         Lister[domain.Bed]
	LabRequests  Lister[domain.LabRequest]
	Ambulances   Lister[domain.Ambulance]
}

// StatsService computes dashboard counters. Each source is read concurrently.
type StatsService struct {
	src StatsSources
}

func NewStatsService(src StatsSources) *StatsService {
	return &StatsService{src: src}
}

func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		patients, err := s.src.Patients.List(ctx)
		stats.TotalPatients = len(patients)
		return wrapStats("patients", err)
	})
	g.Go(func() error {
		appts, err := s.src.Appointments.List(ctx)
		for _, a := range appts {
			if a.Status != domain.AppointmentCancelled {
				stats.TotalAppointments++
			}
		}
		return wrapStats("appointments", err)
	})
	g.Go(func() error {
		invoices, err := s.src.Invoices.List(ctx)
		for _, inv := range invoices {
			switch inv.Status {
			case domain.InvoicePaid:
				stats.TotalRevenue += inv.Amount
			case domain.InvoicePending:
				stats.PendingRevenue += inv.Amount
			}
		}
		return wrapStats("invoices", err)
	})
	g.Go(func() error {
		staff, err := s.src.Staff.List(ctx)
		stats.TotalStaff = len(staff)
		return wrapStats("staff", err)
	})
	g.Go(func() error {
		beds, err := s.src.Beds.List(ctx)
		for _, b := range beds {
			switch b.Status {
			case domain.BedAvailable:
				stats.AvailableBeds++
			case domain.BedOccupied:
				stats.OccupiedBeds++
			}
		}
		return wrapStats("beds", err)
	})
	g.Go(func() error {
		labs, err := s.src.LabRequests.List(ctx)
		for _, l := range labs {
			if slices.Contains(domain.PendingLabStatuses, l.Status) {
				stats.PendingLabs++
			}
		}
		return wrapStats("lab requests", err)
	})
	g.Go(func() error {
		ambulances, err := s.src.Ambulances.List(ctx)
		for _, a := range ambulances {
			if a.Status == domain.AmbulanceOnRoute {
				stats.ActiveAmbulances++
			}
		}
		return wrapStats("ambulances", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func wrapStats(source string, err error) error {
	if err != nil {
		return fmt.Errorf("stats %s: %w", source, err)
	}
	return nil
}
