package repository

import (
	"context"
	"errors"

	"github.com/dhlim/plancycle/internal/domain"
)

// ErrNotFound is wrapped by repositories when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type PlanGroupRepo interface {
	Create(ctx context.Context, g *domain.PlanGroup) error
	GetByID(ctx context.Context, id string) (*domain.PlanGroup, error)
	List(ctx context.Context) ([]*domain.PlanGroup, error)
	Delete(ctx context.Context, id string) error
}

type ScheduledPlanRepo interface {
	CreateBatch(ctx context.Context, plans []*domain.ScheduledPlan) error
	ListByGroup(ctx context.Context, groupID string) ([]*domain.ScheduledPlan, error)
	ListByGroupAndDate(ctx context.Context, groupID, date string) ([]*domain.ScheduledPlan, error)
	DeleteByGroup(ctx context.Context, groupID string) error
}
