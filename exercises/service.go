// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package exercises

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/range-exercises/db"
	"github.com/danielhkuo/range-exercises/metrics"
	"github.com/danielhkuo/range-exercises/models"
)

const exerciseColumns = `id, display_order, title, description, constraint_type,
	lower_bound, upper_bound, is_active, created_at, updated_at`

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

type Service struct {
	conn    *sql.DB
	dialect db.Dialect
	now     func() time.Time
}

func NewService(conn *sql.DB, dialect db.Dialect) *Service {
	return &Service{
		conn:    conn,
		dialect: dialect,
		now:     time.Now,
	}
}

// Get returns the exercise with its data points.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (models.Exercise, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercise
		WHERE id = $1
	`, id)

	ex, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Exercise{}, fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("query exercise %s: %w", id, err)
	}

	if ex.DataPoints, err = loadPoints(ctx, s.conn, ex.ID); err != nil {
		return models.Exercise{}, err
	}
	return ex, nil
}

// GetFirst returns the exercise with the lowest order.
func (s *Service) GetFirst(ctx context.Context) (models.Exercise, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercise
		ORDER BY display_order
		LIMIT 1
	`)

	ex, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Exercise{}, ErrNoExercises
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("query first exercise: %w", err)
	}

	if ex.DataPoints, err = loadPoints(ctx, s.conn, ex.ID); err != nil {
		return models.Exercise{}, err
	}
	return ex, nil
}

// GetNext returns the exercise following id in display order, or nil when id
// is the last one.
func (s *Service) GetNext(ctx context.Context, id uuid.UUID) (*models.Exercise, error) {
	var order int
	err := s.conn.QueryRowContext(ctx, "SELECT display_order FROM exercise WHERE id = $1", id).Scan(&order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query exercise %s: %w", id, err)
	}

	row := s.conn.QueryRowContext(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercise
		WHERE display_order > $1
		ORDER BY display_order
		LIMIT 1
	`, order)

	next, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query next exercise after %s: %w", id, err)
	}

	if next.DataPoints, err = loadPoints(ctx, s.conn, next.ID); err != nil {
		return nil, err
	}
	return &next, nil
}

// List returns exercises in display order, without data points.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]models.Exercise, error) {
	query := "SELECT " + exerciseColumns + " FROM exercise"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY display_order"

	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	list := []models.Exercise{}
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		list = append(list, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return list, nil
}

// Create persists a batch of exercises in one transaction. Each exercise gets
// the next display order under a lock, so concurrent batches never share an
// order. Any failure rolls back the whole batch.
func (s *Service) Create(ctx context.Context, batch []models.NewExercise) ([]models.Exercise, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	created := make([]models.Exercise, 0, len(batch))
	for i, req := range batch {
		// TODO: support reordering exercises once an admin endpoint needs it.
		order, err := s.nextOrder(ctx, tx)
		if err != nil {
			return nil, err
		}

		now := s.now().UTC().Truncate(time.Microsecond)
		ex := req.Entity()
		ex.ID = uuid.New()
		ex.Order = order
		ex.CreatedAt = now
		ex.UpdatedAt = now

		if err := ex.Validate(); err != nil {
			var ve *models.ValidationError
			if errors.As(err, &ve) {
				ve.Field = strings.TrimSuffix(fmt.Sprintf("exercises[%d].%s", i, ve.Field), ".")
			}
			return nil, err
		}

		if err := insertExercise(ctx, tx, ex); err != nil {
			return nil, err
		}
		if err := insertPoints(ctx, tx, ex.ID, req.Points); err != nil {
			return nil, err
		}

		stored, err := s.reload(ctx, tx, ex.ID)
		if err != nil {
			return nil, err
		}
		created = append(created, stored)
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrOrderConflict
		}
		return nil, fmt.Errorf("commit exercises: %w", err)
	}

	for _, ex := range created {
		metrics.ExercisesCreated.Inc()
		slog.Info("exercise created", "exercise_id", ex.ID, "order", ex.Order, "points", len(ex.DataPoints))
	}
	return created, nil
}

// Delete removes an exercise; its data points go with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM exercise WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete exercise %s: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrExerciseNotFound, id)
	}

	slog.Info("exercise deleted", "exercise_id", id)
	return nil
}

// nextOrder returns max(display_order)+1 while holding a lock that excludes
// other allocators until the transaction ends. On SQLite the transaction
// already holds the write lock since BEGIN IMMEDIATE.
func (s *Service) nextOrder(ctx context.Context, tx *sql.Tx) (int, error) {
	if s.dialect == db.DialectPostgres {
		if _, err := tx.ExecContext(ctx, "LOCK TABLE exercise IN SHARE ROW EXCLUSIVE MODE"); err != nil {
			return 0, fmt.Errorf("lock exercise table: %w", err)
		}
	}

	var maxOrder int
	err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(display_order), 0) FROM exercise").Scan(&maxOrder)
	if err != nil {
		return 0, fmt.Errorf("query max exercise order: %w", err)
	}
	return maxOrder + 1, nil
}

func (s *Service) reload(ctx context.Context, q querier, id uuid.UUID) (models.Exercise, error) {
	row := q.QueryRowContext(ctx, "SELECT "+exerciseColumns+" FROM exercise WHERE id = $1", id)
	ex, err := scanExercise(row)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("reload exercise %s: %w", id, err)
	}
	if ex.DataPoints, err = loadPoints(ctx, q, id); err != nil {
		return models.Exercise{}, err
	}
	return ex, nil
}

func insertExercise(ctx context.Context, q querier, ex models.Exercise) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO exercise (id, display_order, title, description, constraint_type,
			lower_bound, upper_bound, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, ex.ID, ex.Order, ex.Title, ex.Description, string(ex.ConstraintType),
		nullFloat(ex.LowerBound), nullFloat(ex.UpperBound), ex.IsActive, ex.CreatedAt, ex.UpdatedAt)

	if db.IsUniqueViolation(err) {
		return ErrOrderConflict
	}
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

// pointsPerInsert keeps each multi-row INSERT under SQLite's limit of 32766
// bind variables.
const pointsPerInsert = 500

// insertPoints writes the points of an exercise with multi-row INSERTs of at
// most pointsPerInsert rows. Positions continue across chunks.
func insertPoints(ctx context.Context, q querier, exerciseID uuid.UUID, points []models.NewDataPoint) error {
	for start := 0; start < len(points); start += pointsPerInsert {
		end := min(start+pointsPerInsert, len(points))
		if err := insertPointChunk(ctx, q, exerciseID, start, points[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func insertPointChunk(ctx context.Context, q querier, exerciseID uuid.UUID, offset int, points []models.NewDataPoint) error {
	const cols = 6
	var sb strings.Builder
	sb.WriteString("INSERT INTO exercise_data_point (id, exercise_id, position, x, y, size) VALUES ")

	args := make([]any, 0, len(points)*cols)
	for i, p := range points {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * cols
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, uuid.New(), exerciseID, offset+i, p.X, p.Y, p.Size)
	}

	if _, err := q.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("insert data points %d-%d: %w", offset, offset+len(points)-1, err)
	}
	return nil
}

func loadPoints(ctx context.Context, q querier, exerciseID uuid.UUID) ([]models.DataPoint, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, x, y, size
		FROM exercise_data_point
		WHERE exercise_id = $1
		ORDER BY position
	`, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("query data points: %w", err)
	}
	defer rows.Close()

	points := []models.DataPoint{}
	for rows.Next() {
		var p models.DataPoint
		if err := rows.Scan(&p.ID, &p.X, &p.Y, &p.Size); err != nil {
			return nil, fmt.Errorf("scan data point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query data points: %w", err)
	}
	return points, nil
}

func scanExercise(row rowScanner) (models.Exercise, error) {
	var (
		ex             models.Exercise
		constraintType string
		lower, upper   sql.NullFloat64
	)

	err := row.Scan(
		&ex.ID, &ex.Order, &ex.Title, &ex.Description, &constraintType,
		&lower, &upper, &ex.IsActive, &ex.CreatedAt, &ex.UpdatedAt,
	)
	if err != nil {
		return models.Exercise{}, err
	}

	ex.ConstraintType = models.ConstraintType(constraintType)
	if lower.Valid {
		ex.LowerBound = &lower.Float64
	}
	if upper.Valid {
		ex.UpperBound = &upper.Float64
	}
	ex.CreatedAt = ex.CreatedAt.UTC()
	ex.UpdatedAt = ex.UpdatedAt.UTC()
	return ex, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
