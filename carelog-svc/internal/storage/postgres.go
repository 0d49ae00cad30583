package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"carehome/carelog-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const careLogColumns = `id, resident_id, COALESCE(staff_id, 0), title, COALESCE(activity_type, ''),
	COALESCE(meal_type, ''), COALESCE(quantity, ''), COALESCE(notes, ''), COALESCE(food_items, ''),
	status, start_time, end_time, created_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCareLog(row scanner) (*domain.CareLog, error) {
	var log domain.CareLog
	var endTime sql.NullTime
	if err := row.Scan(&log.ID, &log.ResidentID, &log.StaffID, &log.Title, &log.ActivityType,
		&log.MealType, &log.Quantity, &log.Notes, &log.FoodItems,
		&log.Status, &log.StartTime, &endTime, &log.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if endTime.Valid {
		log.EndTime = &endTime.Time
	}
	return &log, nil
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}

func (r *PostgresRepository) InsertCareLog(log *domain.CareLog) error {
	activity := log.ActivityType
	if activity == "" {
		activity = "meal"
	}
	return r.DB.QueryRow(`
		INSERT INTO care_logs (resident_id, staff_id, title, activity_type, meal_type, quantity, notes, food_items, status, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		log.ResidentID, nullInt(log.StaffID), log.Title, activity, log.MealType, log.Quantity,
		log.Notes, log.FoodItems, log.Status, log.StartTime, log.EndTime).
		Scan(&log.ID, &log.CreatedAt)
}

func (r *PostgresRepository) GetCareLog(id int) (*domain.CareLog, error) {
	return scanCareLog(r.DB.QueryRow(`SELECT `+careLogColumns+` FROM care_logs WHERE id = $1`, id))
}

// ListCareLogs returns one page of matches ordered by start time, plus the
// total number of matches.
func (r *PostgresRepository) ListCareLogs(filter domain.ListFilter) ([]domain.CareLog, int, error) {
	conditions := []string{"resident_id = $1"}
	args := []interface{}{filter.ResidentID}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, fmt.Sprintf("start_time < $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM care_logs WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count care logs: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	rows, err := r.DB.Query(fmt.Sprintf(`SELECT %s FROM care_logs WHERE %s
		ORDER BY start_time, id
		LIMIT $%d OFFSET $%d`, careLogColumns, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var logs []domain.CareLog
	for rows.Next() {
		log, err := scanCareLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan care log: %w", err)
		}
		logs = append(logs, *log)
	}
	return logs, total, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(id int, status string) (*domain.CareLog, error) {
	return scanCareLog(r.DB.QueryRow(`
		UPDATE care_logs
		SET status = $1,
		    end_time = CASE WHEN $1 = 'completed' THEN COALESCE(end_time, CURRENT_TIMESTAMP) ELSE end_time END
		WHERE id = $2
		RETURNING `+careLogColumns, status, id))
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS care_logs (
			id SERIAL PRIMARY KEY,
			resident_id INTEGER NOT NULL,
			staff_id INTEGER,
			title TEXT NOT NULL DEFAULT '',
			activity_type TEXT,
			meal_type TEXT,
			quantity TEXT,
			notes TEXT,
			food_items TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		"CREATE INDEX IF NOT EXISTS idx_care_logs_resident_start ON care_logs(resident_id, start_time)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
