package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dhlim/plancycle/internal/db"
	"github.com/dhlim/plancycle/internal/domain"
)

const scheduledPlanColumns = `id, group_id, plan_date, block_index, content_type, content_id,
	planned_start, planned_end, chapter, reschedulable, start_time, end_time,
	cycle_day_number, date_type`

// SQLiteScheduledPlanRepo implements ScheduledPlanRepo over a db.DBTX.
type SQLiteScheduledPlanRepo struct {
	db db.DBTX
}

func NewSQLiteScheduledPlanRepo(db db.DBTX) *SQLiteScheduledPlanRepo {
	return &SQLiteScheduledPlanRepo{db: db}
}

func (r *SQLiteScheduledPlanRepo) CreateBatch(ctx context.Context, plans []*domain.ScheduledPlan) error {
	query := `INSERT INTO scheduled_plans (` + scheduledPlanColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, p := range plans {
		_, err := r.db.ExecContext(ctx, query,
			p.ID,
			p.GroupID,
			p.PlanDate,
			p.BlockIndex,
			string(p.ContentType),
			p.ContentID,
			p.PlannedStart,
			p.PlannedEnd,
			p.Chapter,
			boolToInt(p.Reschedulable),
			p.StartTime,
			p.EndTime,
			p.CycleDayNumber,
			string(p.DateType),
		)
		if err != nil {
			return fmt.Errorf("inserting scheduled plan %s: %w", p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteScheduledPlanRepo) ListByGroup(ctx context.Context, groupID string) ([]*domain.ScheduledPlan, error) {
	query := `SELECT ` + scheduledPlanColumns + ` FROM scheduled_plans
		WHERE group_id = ? ORDER BY plan_date, block_index`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing plans by group: %w", err)
	}
	defer rows.Close()
	return scanScheduledPlans(rows)
}

func (r *SQLiteScheduledPlanRepo) ListByGroupAndDate(ctx context.Context, groupID, date string) ([]*domain.ScheduledPlan, error) {
	query := `SELECT ` + scheduledPlanColumns + ` FROM scheduled_plans
		WHERE group_id = ? AND plan_date = ? ORDER BY block_index`
	rows, err := r.db.QueryContext(ctx, query, groupID, date)
	if err != nil {
		return nil, fmt.Errorf("listing plans by date: %w", err)
	}
	defer rows.Close()
	return scanScheduledPlans(rows)
}

func (r *SQLiteScheduledPlanRepo) DeleteByGroup(ctx context.Context, groupID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_plans WHERE group_id = ?`, groupID); err != nil {
		return fmt.Errorf("deleting plans by group: %w", err)
	}
	return nil
}

func scanScheduledPlans(rows *sql.Rows) ([]*domain.ScheduledPlan, error) {
	var plans []*domain.ScheduledPlan
	for rows.Next() {
		var p domain.ScheduledPlan
		var contentType, dateType string
		var reschedulable int
		err := rows.Scan(
			&p.ID, &p.GroupID, &p.PlanDate, &p.BlockIndex, &contentType, &p.ContentID,
			&p.PlannedStart, &p.PlannedEnd, &p.Chapter, &reschedulable, &p.StartTime, &p.EndTime,
			&p.CycleDayNumber, &dateType,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning scheduled plan row: %w", err)
		}
		p.ContentType = domain.ContentType(contentType)
		p.DateType = domain.DayType(dateType)
		p.Reschedulable = intToBool(reschedulable)
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}
