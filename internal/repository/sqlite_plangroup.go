package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dhlim/plancycle/internal/db"
	"github.com/dhlim/plancycle/internal/domain"
)

// SQLitePlanGroupRepo implements PlanGroupRepo over a db.DBTX, so the same
// code runs standalone or inside a unit of work.
type SQLitePlanGroupRepo struct {
	db db.DBTX
}

func NewSQLitePlanGroupRepo(db db.DBTX) *SQLitePlanGroupRepo {
	return &SQLitePlanGroupRepo{db: db}
}

func (r *SQLitePlanGroupRepo) Create(ctx context.Context, g *domain.PlanGroup) error {
	query := `INSERT INTO plan_groups (id, name, period_start, period_end, kind, study_days, review_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Name,
		g.PeriodStart,
		g.PeriodEnd,
		string(g.Kind),
		g.StudyDays,
		g.ReviewDays,
		g.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan group: %w", err)
	}
	return nil
}

func (r *SQLitePlanGroupRepo) GetByID(ctx context.Context, id string) (*domain.PlanGroup, error) {
	query := `SELECT id, name, period_start, period_end, kind, study_days, review_days, created_at
		FROM plan_groups WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var g domain.PlanGroup
	var kind, createdAt string
	err := row.Scan(&g.ID, &g.Name, &g.PeriodStart, &g.PeriodEnd, &kind, &g.StudyDays, &g.ReviewDays, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan group %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan group: %w", err)
	}
	g.Kind = domain.SchedulerKind(kind)
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &g, nil
}

func (r *SQLitePlanGroupRepo) List(ctx context.Context) ([]*domain.PlanGroup, error) {
	query := `SELECT id, name, period_start, period_end, kind, study_days, review_days, created_at
		FROM plan_groups ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plan groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.PlanGroup
	for rows.Next() {
		var g domain.PlanGroup
		var kind, createdAt string
		if err := rows.Scan(&g.ID, &g.Name, &g.PeriodStart, &g.PeriodEnd, &kind, &g.StudyDays, &g.ReviewDays, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning plan group row: %w", err)
		}
		g.Kind = domain.SchedulerKind(kind)
		g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}

func (r *SQLitePlanGroupRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_groups WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting plan group: %w", err)
	}
	return nil
}
