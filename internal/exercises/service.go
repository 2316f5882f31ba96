package exercises

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/apperror"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/events"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/models"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/observability"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/store"
)

// UserFinder resolves the owner of an exercise.
type UserFinder interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines the interface for exercise persistence.
type Store interface {
	InsertExercise(ctx context.Context, e models.Exercise) (*models.Exercise, error)
	FindExercises(ctx context.Context, q models.LogQuery) ([]models.Exercise, error)
}

// Service records exercises and builds exercise logs.
type Service struct {
	users     UserFinder
	store     Store
	publisher events.Publisher
	now       func() time.Time
}

func NewService(users UserFinder, store Store, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{users: users, store: store, publisher: publisher, now: time.Now}
}

// AddInput is the raw input of an add-exercise request.
type AddInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// Logged is a stored exercise together with its owner.
type Logged struct {
	User     models.User
	Exercise models.Exercise
}

// LogInput is the raw input of a log request. Empty fields are unset.
type LogInput struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// Log is a user's filtered exercise log.
type Log struct {
	User      models.User
	Exercises []models.Exercise
}

func (s *Service) findUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NewNotFoundError("User not found", err)
		}
		return nil, apperror.NewDatabaseError("find user", err)
	}
	return u, nil
}

// Add stores a new exercise for in.UserID. Date defaults to today (UTC).
func (s *Service) Add(ctx context.Context, in AddInput) (*Logged, error) {
	user, err := s.findUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, apperror.NewValidationError("description is required", nil)
	}
	if strings.TrimSpace(in.Duration) == "" {
		return nil, apperror.NewValidationError("duration is required", nil)
	}
	duration, err := strconv.Atoi(strings.TrimSpace(in.Duration))
	if err != nil {
		return nil, apperror.NewValidationError("duration must be an integer number of minutes", err)
	}

	date := Today(s.now())
	if strings.TrimSpace(in.Date) != "" {
		if date, err = ParseDate(in.Date); err != nil {
			return nil, apperror.NewValidationError("date must be formatted as yyyy-mm-dd", err)
		}
	}

	saved, err := s.store.InsertExercise(ctx, models.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		return nil, apperror.NewDatabaseError("insert exercise", err)
	}
	observability.RecordExerciseLogged()
	s.publish(ctx, *user, *saved)

	return &Logged{User: *user, Exercise: *saved}, nil
}

// publish emits exercise.logged. The exercise is already stored, so a
// failure here is only logged.
func (s *Service) publish(ctx context.Context, user models.User, e models.Exercise) {
	evt := events.ExerciseLogged{
		ExerciseID:  e.ID,
		UserID:      user.ID,
		Username:    user.Username,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        FormatDate(e.Date),
		LoggedAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishExerciseLogged(ctx, evt); err != nil {
		observability.RecordPublishFailure()
		log.Printf("publish exercise %s: %v", e.ID, err)
	}
}

// Logs returns the user's exercises, ascending by date, bounded by the
// inclusive from/to dates and capped by limit when it is a positive integer.
// An unusable limit is ignored rather than rejected.
func (s *Service) Logs(ctx context.Context, in LogInput) (*Log, error) {
	user, err := s.findUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	q := models.LogQuery{UserID: user.ID}
	if strings.TrimSpace(in.From) != "" {
		from, err := ParseDate(in.From)
		if err != nil {
			return nil, apperror.NewValidationError("from must be formatted as yyyy-mm-dd", err)
		}
		q.From = &from
	}
	if strings.TrimSpace(in.To) != "" {
		to, err := ParseDate(in.To)
		if err != nil {
			return nil, apperror.NewValidationError("to must be formatted as yyyy-mm-dd", err)
		}
		q.To = &to
	}
	if limit, err := strconv.Atoi(strings.TrimSpace(in.Limit)); err == nil && limit > 0 {
		q.Limit = limit
	}

	found, err := s.store.FindExercises(ctx, q)
	if err != nil {
		return nil, apperror.NewDatabaseError("find exercises", err)
	}
	if found == nil {
		found = []models.Exercise{}
	}
	return &Log{User: *user, Exercises: found}, nil
}
