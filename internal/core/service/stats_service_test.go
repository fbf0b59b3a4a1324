package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

type staticLister[T any] struct {
	items []T
	err   error
}

func (s staticLister[T]) List(context.Context) ([]T, error) { return s.items, s.err }

func TestStatsService_Dashboard(t *testing.T) {
	svc := NewStatsService(StatsSources{
		Patients: staticLister[domain.Patient]{items: make([]domain.Patient, 5)},
		Appointments: staticLister[domain.Appointment]{items: []domain.Appointment{
			{Status: "Confirmed"}, {Status: "Pending"}, {Status: "Cancelled"}, {Status: "Confirmed"},
		}},
		Invoices: staticLister[domain.Invoice]{items: []domain.Invoice{
			{Amount: 450, Status: "Paid"}, {Amount: 1250, Status: "Pending"}, {Amount: 120, Status: "Overdue"},
		}},
		Staff: staticLister[domain.StaffMember]{items: make([]domain.StaffMember, 6)},
		Beds: staticLister[domain.Bed]{items: []domain.Bed{
			{Status: "Available"}, {Status: "Occupied"}, {Status: "Cleaning"}, {Status: "Available"},
		}},
		LabRequests: staticLister[domain.LabRequest]{items: []domain.LabRequest{
			{Status: "Completed"}, {Status: "Processing"}, {Status: "Sample Collected"}, {Status: "Pending"},
		}},
		Ambulances: staticLister[domain.Ambulance]{items: []domain.Ambulance{
			{Status: "Available"}, {Status: "On Route"}, {Status: "Maintenance"},
		}},
	})

	got, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	want := domain.DashboardStats{
		TotalPatients:     5,
		TotalAppointments: 3,
		TotalRevenue:      450,
		PendingRevenue:    1250,
		TotalStaff:        6,
		AvailableBeds:     2,
		OccupiedBeds:      1,
		PendingLabs:       3,
		ActiveAmbulances:  1,
	}
	if *got != want {
		t.Fatalf("unexpected stats:\n got %+v\nwant %+v", *got, want)
	}
}

func TestStatsService_SourceErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	svc := NewStatsService(StatsSources{
		Patients:     staticLister[domain.Patient]{},
		Appointments: staticLister[domain.Appointment]{},
		Invoices:     staticLister[domain.Invoice]{err: boom},
		Staff:        staticLister[domain.StaffMember]{},
		Beds:         staticLister[domain.Bed]{},
		LabRequests:  staticLister[domain.LabRequest]{},
		Ambulances:   staticLister[domain.Ambulance]{},
	})

	if _, err := svc.Dashboard(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
