package postgres

import (
	"context"
	"database/sql"
	"time"
)

type screenTimeRepository struct {
	executor DBExecutor
}

func NewScreenTimeRepository(db *sql.DB) *screenTimeRepository {
	return &screenTimeRepository{executor: db}
}

func (r *screenTimeRepository) GetMinutesForUsers(ctx context.Context, userIDs []string, date time.Time) (map[string]int, error) {
	minutes := make(map[string]int, len(userIDs))
	if len(userIDs) == 0 {
		return minutes, nil
	}

	query := `
		SELECT user_id, duration_minutes
		FROM screen_time_entries
		WHERE user_id = ANY($1) AND date = $2
	`

	rows, err := r.executor.QueryContext(ctx, query, userIDs, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var durationMinutes int
		if err := rows.Scan(&userID, &durationMinutes); err != nil {
			return nil, err
		}
		minutes[userID] = durationMinutes
	}

	return minutes, rows.Err()
}

func (r *screenTimeRepository) Upsert(ctx context.Context, userID string, date time.Time, durationMinutes int) error {
	query := `
		INSERT INTO screen_time_entries (user_id, date, duration_minutes)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE
		SET duration_minutes = EXCLUDED.duration_minutes
	`

	_, err := r.executor.ExecContext(ctx, query, userID, date.Format("2006-01-02"), durationMinutes)
	return err
}
