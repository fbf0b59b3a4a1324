package ports

import (
	"context"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

// ResourceService is the five-operation surface every resource exposes.
type ResourceService[T domain.Record, C any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, in C) (T, error)
	Update(ctx context.Context, id string, p P) (T, error)
	Delete(ctx context.Context, id string) error
}

// PatientService adds the archive workflow to the patient resource.
type PatientService interface {
	ResourceService[domain.Patient, domain.PatientInput, domain.PatientPatch]
	Archive(ctx context.Context, id string) (domain.Patient, error)
	Restore(ctx context.Context, id string) (domain.Patient, error)
}

// Validator checks a decoded body against its declared rules.
// Failures are *domain.ValidationError.
type Validator interface {
	Validate(v any) error
}
