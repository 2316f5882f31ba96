package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/models"
)

const uniqueViolation = "23505"

// PostgresStore keeps users and exercises in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the users and exercises tables if they don't exist.
// exercises.user_id has no foreign key; ownership is checked by the service.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username   TEXT UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
		);
		CREATE TABLE IF NOT EXISTS exercises (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id     UUID NOT NULL,
			description TEXT NOT NULL,
			duration    INTEGER NOT NULL,
			date        DATE NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
		);
		CREATE INDEX IF NOT EXISTS exercises_user_date_idx ON exercises (user_id, date);
	`)
	return err
}

func (s *PostgresStore) CreateUser(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username) VALUES ($1) RETURNING id::text, username`,
		username,
	).Scan(&u.ID, &u.Username)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT id::text, username FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id::text, username FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) InsertExercise(ctx context.Context, e models.Exercise) (*models.Exercise, error) {
	out := e
	err := s.pool.QueryRow(ctx,
		`INSERT INTO exercises (user_id, description, duration, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id::text`,
		e.UserID, e.Description, e.Duration, e.Date,
	).Scan(&out.ID)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}
	return &out, nil
}

// logSQL builds the parameterised SELECT for q.
func logSQL(q models.LogQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id::text, user_id::text, description, duration, date FROM exercises WHERE user_id = $1`)
	args := []any{q.UserID}
	if q.From != nil {
		args = append(args, *q.From)
		sb.WriteString(" AND date >= $" + strconv.Itoa(len(args)))
	}
	if q.To != nil {
		args = append(args, *q.To)
		sb.WriteString(" AND date <= $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY date, created_at")
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	return sb.String(), args
}

func (s *PostgresStore) FindExercises(ctx context.Context, q models.LogQuery) ([]models.Exercise, error) {
	if _, err := uuid.Parse(q.UserID); err != nil {
		return []models.Exercise{}, nil
	}
	query, args := logSQL(q)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	defer rows.Close()

	out := []models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			return nil, fmt.Errorf("find exercises: %w", err)
		}
		e.Date = e.Date.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
