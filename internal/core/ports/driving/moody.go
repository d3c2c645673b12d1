package driving

import (
	"context"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// MoodyService produces friction-factor-vs-Reynolds curves for the
// diagram renderers.
type MoodyService interface {
	// Curve evaluates the friction factor across a logarithmically
	// spaced Reynolds sweep at fixed relative roughness.
	Curve(ctx context.Context, sweep domain.MoodySweep) ([]domain.MoodyPoint, error)
}
