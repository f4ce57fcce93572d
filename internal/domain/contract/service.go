package contract

import (
	"context"

	"github.com/diegoclair/session-planner-bot/internal/domain/entity"
)

type PlannerService interface {
	Status(ctx context.Context) (*entity.Status, error)
}

// Pinger performs the keep-alive request
type Pinger interface {
	Ping(ctx context.Context, url string) error
}

// TaskRunner starts a background task whose error is fatal to the process.
// *errgroup.Group satisfies it.
type TaskRunner interface {
	Go(fn func() error)
}
