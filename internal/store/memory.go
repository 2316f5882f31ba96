package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/models"
)

// MemoryStore keeps everything in process memory. It backs the test suite
// and STORE_BACKEND=memory for local runs.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []models.User
	byID       map[string]int
	byUsername map[string]struct{}
	exercises  []models.Exercise
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:       make(map[string]int),
		byUsername: make(map[string]struct{}),
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[username]; taken {
		return nil, ErrDuplicateUsername
	}
	u := models.User{ID: uuid.NewString(), Username: username}
	s.byID[u.ID] = len(s.users)
	s.byUsername[username] = struct{}{}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.users[idx]
	return &u, nil
}

func (s *MemoryStore) InsertExercise(ctx context.Context, e models.Exercise) (*models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	s.exercises = append(s.exercises, e)
	return &e, nil
}

func (s *MemoryStore) FindExercises(ctx context.Context, q models.LogQuery) ([]models.Exercise, error) {
	s.mu.RLock()
	out := []models.Exercise{}
	for _, e := range s.exercises {
		if q.Matches(e) {
			out = append(out, e)
		}
	}
	s.mu.RUnlock()

	// stable keeps insertion order for same-day entries
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}
