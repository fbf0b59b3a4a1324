package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

type PatientEngine = ResourceEngine[domain.Patient, domain.PatientInput, domain.PatientPatch]

// PatientService specializes the generic engine: newest admissions first, and archive/restore.
type PatientService struct {
	*PatientEngine
}

func NewPatientService(store ports.RecordStore[domain.Patient], validator ports.Validator, logger zerolog.Logger) *PatientService {
	return &PatientService{
		PatientEngine: NewResourceEngine(domain.PatientResource, store, validator, logger),
	}
}

// List orders patients by admission date, most recent first.
func (s *PatientService) List(ctx context.Context) ([]domain.Patient, error) {
	patients, err := s.PatientEngine.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(patients, func(i, j int) bool {
		return patients[i].AdmissionDate > patients[j].AdmissionDate
	})
	return patients, nil
}

// Archive lowers urgency and marks the condition as archived. Archiving twice is a no-op.
func (s *PatientService) Archive(ctx context.Context, id string) (domain.Patient, error) {
	return s.Modify(ctx, id, func(p *domain.Patient) {
		p.Urgency = domain.UrgencyLow
		if !strings.HasPrefix(p.Condition, domain.ArchivedPrefix) {
			p.Condition = domain.ArchivedPrefix + p.Condition
		}
	})
}

// Restore removes the archive marker from the condition. Urgency is left as is.
func (s *PatientService) Restore(ctx context.Context, id string) (domain.Patient, error) {
	return s.Modify(ctx, id, func(p *domain.Patient) {
		p.Condition = strings.ReplaceAll(p.Condition, domain.ArchivedPrefix, "")
	})
}
