package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hrm-backend/internal/models"
	"hrm-backend/internal/storage"
)

// Store is an in-memory storage.Store used by tests and local runs.
// It mirrors the postgres store's behavior, including the email unique
// constraint.
type Store struct {
	mu         sync.Mutex
	users      map[uint]models.User
	depts      map[uint]models.Department
	nextUserID uint
	nextDeptID uint
}

func NewStore() *Store {
	return &Store{
		users: make(map[uint]models.User),
		depts: make(map[uint]models.Department),
	}
}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) FindUserByID(_ context.Context, id uint) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (s *Store) SaveUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return models.User{}, storage.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) CreateDepartment(_ context.Context, dept models.Department) (models.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDeptID++
	dept.ID = s.nextDeptID
	now := time.Now()
	dept.CreatedAt = now
	dept.UpdatedAt = now
	s.depts[dept.ID] = dept
	return dept, nil
}

func (s *Store) ListDepartments(_ context.Context) ([]models.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Department, 0, len(s.depts))
	for _, d := range s.depts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindDepartmentByID(_ context.Context, id uint) (models.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.depts[id]
	if !ok {
		return models.Department{}, storage.ErrNotFound
	}
	return d, nil
}

func (s *Store) SaveDepartment(_ context.Context, dept models.Department) (models.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.depts[dept.ID]; !ok {
		return models.Department{}, storage.ErrNotFound
	}
	dept.UpdatedAt = time.Now()
	s.depts[dept.ID] = dept
	return dept, nil
}
