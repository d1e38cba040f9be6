package service

import (
	"context"

	"github.com/dhlim/plancycle/internal/domain"
	"github.com/dhlim/plancycle/internal/importer"
	"github.com/dhlim/plancycle/internal/scheduler"
)

// GenerateResult is one scheduling run: the plans produced, the diagnostics
// accumulated along the way, and the group row when the run was saved.
type GenerateResult struct {
	Group    *domain.PlanGroup
	Plans    []*domain.ScheduledPlan
	Failures []scheduler.FailureReason
	Saved    bool
}

type ScheduleService interface {
	// GenerateFromFile loads, validates and schedules a plan file.
	// save persists the group and its plans transactionally.
	GenerateFromFile(ctx context.Context, path string, save bool) (*GenerateResult, error)

	// GenerateFromPlanFile schedules an already-loaded plan file.
	GenerateFromPlanFile(ctx context.Context, plan *importer.PlanFile, save bool) (*GenerateResult, error)

	// ListGroups returns every saved plan group, newest first.
	ListGroups(ctx context.Context) ([]*domain.PlanGroup, error)

	// GetGroupPlans returns a saved group with its plans in timetable order.
	GetGroupPlans(ctx context.Context, groupID string) (*domain.PlanGroup, []*domain.ScheduledPlan, error)

	// DeleteGroup removes a saved group and its plans.
	DeleteGroup(ctx context.Context, groupID string) error
}
