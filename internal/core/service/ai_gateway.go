package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

const defaultAITimeout = 30 * time.Second

// AIGateway forwards prompts to the backend chosen at construction and
// converts every failure, including timeouts and panics, into an error-tagged result.
type AIGateway struct {
	backend ports.GenerativeBackend
	timeout time.Duration
	logger  zerolog.Logger
}

func NewAIGateway(backend ports.GenerativeBackend, timeout time.Duration, logger zerolog.Logger) *AIGateway {
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	return &AIGateway{backend: backend, timeout: timeout, logger: logger}
}

// Mode names the active backend ("mock" or "gemini").
func (g *AIGateway) Mode() string {
	return g.backend.Name()
}

func (g *AIGateway) Invoke(ctx context.Context, feature, prompt string) (result domain.AIResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error().Str("feature", feature).Interface("panic", r).Msg("generative backend panicked")
			result = errorResult(fmt.Errorf("backend failure"))
		}
		g.logger.Debug().
			Str("feature", feature).
			Str("backend", g.backend.Name()).
			Str("status", string(result.Status)).
			Dur("elapsed", time.Since(start)).
			Msg("ai request completed")
	}()

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.backend.Generate(callCtx, prompt)
	if err != nil {
		g.logger.Warn().Err(err).Str("feature", feature).Msg("generative backend failed")
		return errorResult(err)
	}
	return res
}

func errorResult(err error) domain.AIResult {
	return domain.AIResult{Status: domain.AIStatusError, Response: "AI Error: " + err.Error()}
}
