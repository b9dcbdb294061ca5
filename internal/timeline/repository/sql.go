package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/dto"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, e *model.TimelineEvent) error {
	query := `
        INSERT INTO timeline_events (id, action, shift_id, actor_user_id, description, metadata, created_at)
        VALUES (:id, :action, :shift_id, :actor_user_id, :description, :metadata, :created_at)
    `
	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, e); err != nil {
		return fmt.Errorf("insert timeline event: %w", err)
	}
	return nil
}

// Record lets the repository act as the durable timeline sink.
func (r *SQLRepository) Record(ctx context.Context, e *model.TimelineEvent) error {
	return r.Create(ctx, e)
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.TimelineFilters) ([]model.TimelineEvent, int, error) {
	conn := database.Conn(ctx, r.DB)

	conditions := []string{}
	args := []interface{}{}
	if f.ShiftID != "" {
		conditions = append(conditions, "shift_id = ?")
		args = append(args, f.ShiftID)
	}
	if f.Action != "" {
		conditions = append(conditions, "action = ?")
		args = append(args, f.Action)
	}
	if f.Query != "" {
		conditions = append(conditions, "LOWER(description) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Query)+"%")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := sqlx.GetContext(ctx, conn, &count, conn.Rebind("SELECT count(*) FROM timeline_events"+whereClause), args...); err != nil {
		return nil, 0, fmt.Errorf("count timeline: %w", err)
	}

	query := "SELECT id, action, shift_id, actor_user_id, description, metadata, created_at FROM timeline_events" +
		whereClause + " ORDER BY created_at DESC, id DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	events := []model.TimelineEvent{}
	if err := sqlx.SelectContext(ctx, conn, &events, conn.Rebind(query), args...); err != nil {
		return nil, 0, fmt.Errorf("list timeline: %w", err)
	}
	return events, count, nil
}
