package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dhlim/plancycle/internal/db"
	"github.com/dhlim/plancycle/internal/domain"
	"github.com/dhlim/plancycle/internal/importer"
	"github.com/dhlim/plancycle/internal/repository"
	"github.com/dhlim/plancycle/internal/scheduler"
)

type scheduleService struct {
	groups repository.PlanGroupRepo
	plans  repository.ScheduledPlanRepo
	uow    db.UnitOfWork
}

func NewScheduleService(
	groups repository.PlanGroupRepo,
	plans repository.ScheduledPlanRepo,
	uow db.UnitOfWork,
) ScheduleService {
	return &scheduleService{
		groups: groups,
		plans:  plans,
		uow:    uow,
	}
}

func (s *scheduleService) GenerateFromFile(ctx context.Context, path string, save bool) (*GenerateResult, error) {
	plan, err := importer.LoadPlanFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading plan file: %w", err)
	}
	return s.GenerateFromPlanFile(ctx, plan, save)
}

func (s *scheduleService) GenerateFromPlanFile(ctx context.Context, plan *importer.PlanFile, save bool) (*GenerateResult, error) {
	if errs := importer.ValidatePlanFile(plan); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	schedCtx, err := importer.Convert(plan)
	if err != nil {
		return nil, fmt.Errorf("converting plan file: %w", err)
	}

	engine, err := scheduler.New(schedCtx)
	if err != nil {
		return nil, fmt.Errorf("building scheduler: %w", err)
	}
	generated, failures := engine.Generate()

	group := &domain.PlanGroup{
		ID:          uuid.New().String(),
		Name:        plan.Name,
		PeriodStart: plan.Period.Start,
		PeriodEnd:   plan.Period.End,
		Kind:        schedCtx.Kind,
		StudyDays:   schedCtx.Options.StudyDays,
		ReviewDays:  schedCtx.Options.ReviewDays,
		CreatedAt:   time.Now().UTC(),
	}

	plans := make([]*domain.ScheduledPlan, 0, len(generated))
	for i := range generated {
		p := generated[i]
		p.ID = uuid.New().String()
		p.GroupID = group.ID
		plans = append(plans, &p)
	}

	result := &GenerateResult{Group: group, Plans: plans, Failures: failures}
	if !save || len(plans) == 0 {
		return result, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		groups := repository.NewSQLitePlanGroupRepo(tx)
		planRepo := repository.NewSQLiteScheduledPlanRepo(tx)
		if err := groups.Create(ctx, group); err != nil {
			return err
		}
		return planRepo.CreateBatch(ctx, plans)
	})
	if err != nil {
		return nil, fmt.Errorf("saving plan group: %w", err)
	}
	result.Saved = true
	return result, nil
}

func (s *scheduleService) ListGroups(ctx context.Context) ([]*domain.PlanGroup, error) {
	return s.groups.List(ctx)
}

func (s *scheduleService) GetGroupPlans(ctx context.Context, groupID string) (*domain.PlanGroup, []*domain.ScheduledPlan, error) {
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	plans, err := s.plans.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	return group, plans, nil
}

func (s *scheduleService) DeleteGroup(ctx context.Context, groupID string) error {
	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.groups.Delete(ctx, groupID)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("plan file validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
