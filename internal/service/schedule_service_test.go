package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dhlim/plancycle/internal/domain"
	"github.com/dhlim/plancycle/internal/importer"
	"github.com/dhlim/plancycle/internal/repository"
	"github.com/dhlim/plancycle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekPlanFile() *importer.PlanFile {
	var blocks []importer.BlockImport
	for dow := 0; dow < 7; dow++ {
		blocks = append(blocks, importer.BlockImport{
			DayOfWeek: dow, BlockIndex: 1, StartTime: "09:00", EndTime: "18:00",
		})
	}
	return &importer.PlanFile{
		Name:   "week one",
		Period: importer.PeriodImport{Start: "2025-01-01", End: "2025-01-07"},
		Kind:   "timetable_1730",
		Blocks: blocks,
		Contents: []importer.ContentImport{
			{ContentType: "book", ContentID: "bk-1", StartRange: 1, EndRange: 61, Subject: "Math"},
		},
	}
}

func newTestService(t *testing.T) (ScheduleService, *repository.SQLitePlanGroupRepo, *repository.SQLiteScheduledPlanRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	groups := repository.NewSQLitePlanGroupRepo(database)
	plans := repository.NewSQLiteScheduledPlanRepo(database)
	return NewScheduleService(groups, plans, testutil.NewTestUoW(database)), groups, plans
}

func TestScheduleService_GenerateWithoutSave(t *testing.T) {
	svc, groups, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.GenerateFromPlanFile(ctx, weekPlanFile(), false)
	require.NoError(t, err)

	assert.False(t, result.Saved)
	assert.Len(t, result.Plans, 7)
	assert.Empty(t, result.Failures)
	assert.Equal(t, domain.KindTimetable1730, result.Group.Kind)

	saved, err := groups.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved, "nothing persists without save")
}

func TestScheduleService_GenerateAndSave(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	result, err := svc.GenerateFromPlanFile(ctx, weekPlanFile(), true)
	require.NoError(t, err)
	require.True(t, result.Saved)

	group, plans, err := svc.GetGroupPlans(ctx, result.Group.ID)
	require.NoError(t, err)
	assert.Equal(t, "week one", group.Name)
	require.Len(t, plans, 7)

	// Every persisted plan carries its group and a fresh id.
	for _, p := range plans {
		assert.Equal(t, group.ID, p.GroupID)
		assert.NotEmpty(t, p.ID)
	}
}

func TestScheduleService_ValidationFailureIsError(t *testing.T) {
	svc, _, _ := newTestService(t)

	plan := weekPlanFile()
	plan.Contents = nil
	_, err := svc.GenerateFromPlanFile(context.Background(), plan, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestScheduleService_DiagnosticsAreNotErrors(t *testing.T) {
	svc, _, _ := newTestService(t)

	plan := weekPlanFile()
	plan.Blocks = nil // no availability anywhere
	result, err := svc.GenerateFromPlanFile(context.Background(), plan, false)
	require.NoError(t, err, "scheduling diagnostics surface in the result, not as errors")
	assert.Empty(t, result.Plans)
	assert.NotEmpty(t, result.Failures)
}

func TestScheduleService_SaveRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	groups := repository.NewSQLitePlanGroupRepo(database)
	plans := repository.NewSQLiteScheduledPlanRepo(database)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom}
	svc := NewScheduleService(groups, plans, uow)
	ctx := context.Background()

	_, err := svc.GenerateFromPlanFile(ctx, weekPlanFile(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	saved, err := groups.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved, "partial writes must roll back")
}

func TestScheduleService_DeleteGroup(t *testing.T) {
	svc, _, plans := newTestService(t)
	ctx := context.Background()

	result, err := svc.GenerateFromPlanFile(ctx, weekPlanFile(), true)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroup(ctx, result.Group.ID))

	left, err := plans.ListByGroup(ctx, result.Group.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	err = svc.DeleteGroup(ctx, result.Group.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScheduleService_GenerateFromFile(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GenerateFromFile(context.Background(), "/nonexistent/plan.json", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading plan file")
}
