package ports

import (
	"context"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

// GenerativeBackend produces a reply for a rendered prompt. Implementations
// may fail; the gateway turns failures into an error-tagged result.
type GenerativeBackend interface {
	Name() string
	Generate(ctx context.Context, prompt string) (domain.AIResult, error)
}

// AIGateway always returns a structured result and never fails.
type AIGateway interface {
	Invoke(ctx context.Context, feature, prompt string) domain.AIResult
	Mode() string
}

type StatsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
