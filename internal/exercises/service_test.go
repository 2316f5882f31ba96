package exercises

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/apperror"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/events"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/models"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/store"
)

type recordingPublisher struct {
	events []events.ExerciseLogged
	err    error
}

func (p *recordingPublisher) PublishExerciseLogged(ctx context.Context, evt events.ExerciseLogged) error {
	p.events = append(p.events, evt)
	return p.err
}

var fixedNow = time.Date(2024, 1, 1, 15, 4, 5, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.MemoryStore, *recordingPublisher) {
	t.Helper()
	mem := store.NewMemoryStore()
	pub := &recordingPublisher{}
	svc := NewService(mem, mem, pub)
	svc.now = func() time.Time { return fixedNow }
	return svc, mem, pub
}

func seedUser(t *testing.T, mem *store.MemoryStore, name string) models.User {
	t.Helper()
	u, err := mem.CreateUser(context.Background(), name)
	require.NoError(t, err)
	return *u
}

func TestAddParsesDurationAndDate(t *testing.T) {
	svc, mem, pub := newTestService(t)
	u := seedUser(t, mem, "alice")

	logged, err := svc.Add(context.Background(), AddInput{UserID: u.ID, Description: "run", Duration: "30", Date: "2023-01-01"})
	require.NoError(t, err)
	require.Equal(t, u, logged.User)
	require.Equal(t, 30, logged.Exercise.Duration)
	require.Equal(t, "Sun Jan 01 2023", FormatDate(logged.Exercise.Date))
	require.NotEmpty(t, logged.Exercise.ID)

	require.Len(t, pub.events, 1)
	require.Equal(t, events.ExerciseLogged{
		ExerciseID:  logged.Exercise.ID,
		UserID:      u.ID,
		Username:    "alice",
		Description: "run",
		Duration:    30,
		Date:        "Sun Jan 01 2023",
		LoggedAt:    fixedNow,
	}, pub.events[0])
}

func TestAddDefaultsToToday(t *testing.T) {
	svc, mem, _ := newTestService(t)
	u := seedUser(t, mem, "alice")

	logged, err := svc.Add(context.Background(), AddInput{UserID: u.ID, Description: "swim", Duration: "45"})
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), logged.Exercise.Date)
}

func TestAddUnknownUserIsNotFound(t *testing.T) {
	svc, _, pub := newTestService(t)

	_, err := svc.Add(context.Background(), AddInput{UserID: "nope", Description: "run", Duration: "30"})
	require.True(t, apperror.IsNotFound(err))
	require.Empty(t, pub.events)
}

func TestAddValidation(t *testing.T) {
	svc, mem, _ := newTestService(t)
	u := seedUser(t, mem, "alice")

	cases := map[string]AddInput{
		"missing description": {UserID: u.ID, Duration: "30"},
		"missing duration":    {UserID: u.ID, Description: "run"},
		"non-numeric":         {UserID: u.ID, Description: "run", Duration: "thirty"},
		"fractional":          {UserID: u.ID, Description: "run", Duration: "30.5"},
		"bad date":            {UserID: u.ID, Description: "run", Duration: "30", Date: "someday"},
	}
	for name, in := range cases {
		_, err := svc.Add(context.Background(), in)
		require.True(t, apperror.IsValidationError(err), name)
	}

	logs, err := svc.Logs(context.Background(), LogInput{UserID: u.ID})
	require.NoError(t, err)
	require.Empty(t, logs.Exercises)
}

func TestAddSucceedsWhenPublishFails(t *testing.T) {
	svc, mem, pub := newTestService(t)
	pub.err = errors.New("broker down")
	u := seedUser(t, mem, "alice")

	_, err := svc.Add(context.Background(), AddInput{UserID: u.ID, Description: "run", Duration: "30"})
	require.NoError(t, err)
	require.Len(t, pub.events, 1)
}

func seedYear(t *testing.T, svc *Service, userID string) {
	t.Helper()
	for _, d := range []string{"2023-12-01", "2023-01-01", "2023-06-01"} {
		_, err := svc.Add(context.Background(), AddInput{UserID: userID, Description: "run " + d, Duration: "30", Date: d})
		require.NoError(t, err)
	}
}

func logDates(l *Log) []string {
	out := make([]string, 0, len(l.Exercises))
	for _, e := range l.Exercises {
		out = append(out, e.Date.Format("2006-01-02"))
	}
	return out
}

func TestLogsFiltering(t *testing.T) {
	svc, mem, _ := newTestService(t)
	u := seedUser(t, mem, "alice")
	seedYear(t, svc, u.ID)
	ctx := context.Background()

	all, err := svc.Logs(ctx, LogInput{UserID: u.ID})
	require.NoError(t, err)
	require.Equal(t, []string{"2023-01-01", "2023-06-01", "2023-12-01"}, logDates(all))

	from, err := svc.Logs(ctx, LogInput{UserID: u.ID, From: "2023-03-01"})
	require.NoError(t, err)
	require.Equal(t, []string{"2023-06-01", "2023-12-01"}, logDates(from))

	ranged, err := svc.Logs(ctx, LogInput{UserID: u.ID, From: "2023-03-01", To: "2023-09-01"})
	require.NoError(t, err)
	require.Equal(t, []string{"2023-06-01"}, logDates(ranged))

	limited, err := svc.Logs(ctx, LogInput{UserID: u.ID, Limit: "1"})
	require.NoError(t, err)
	require.Len(t, limited.Exercises, 1)

	inclusive, err := svc.Logs(ctx, LogInput{UserID: u.ID, From: "2023-06-01", To: "2023-06-01"})
	require.NoError(t, err)
	require.Equal(t, []string{"2023-06-01"}, logDates(inclusive))
}

func TestLogsIgnoresUnusableLimit(t *testing.T) {
	svc, mem, _ := newTestService(t)
	u := seedUser(t, mem, "alice")
	seedYear(t, svc, u.ID)

	for _, limit := range []string{"abc", "0", "-2", ""} {
		l, err := svc.Logs(context.Background(), LogInput{UserID: u.ID, Limit: limit})
		require.NoError(t, err)
		require.Len(t, l.Exercises, 3, limit)
	}
}

func TestLogsRejectsBadBounds(t *testing.T) {
	svc, mem, _ := newTestService(t)
	u := seedUser(t, mem, "alice")

	_, err := svc.Logs(context.Background(), LogInput{UserID: u.ID, From: "soon"})
	require.True(t, apperror.IsValidationError(err))

	_, err = svc.Logs(context.Background(), LogInput{UserID: u.ID, To: "later"})
	require.True(t, apperror.IsValidationError(err))
}

func TestLogsEmptyAndUnknownUser(t *testing.T) {
	svc, mem, _ := newTestService(t)
	u := seedUser(t, mem, "alice")

	l, err := svc.Logs(context.Background(), LogInput{UserID: u.ID})
	require.NoError(t, err)
	require.NotNil(t, l.Exercises)
	require.Empty(t, l.Exercises)

	_, err = svc.Logs(context.Background(), LogInput{UserID: "ghost"})
	require.True(t, apperror.IsNotFound(err))
}

func TestLogsIsolatesUsers(t *testing.T) {
	svc, mem, _ := newTestService(t)
	alice := seedUser(t, mem, "alice")
	bob := seedUser(t, mem, "bob")
	seedYear(t, svc, alice.ID)

	l, err := svc.Logs(context.Background(), LogInput{UserID: bob.ID})
	require.NoError(t, err)
	require.Empty(t, l.Exercises)
}
