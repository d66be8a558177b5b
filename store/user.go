package store

import (
	"errors"
	"sync"
	"time"

	"ratein-backend/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// Users 全局用户存储
var Users = NewUserStore()

type UserStore struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*model.User),
	}
}

func (s *UserStore) CreateUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return ErrUserExists
	}
	user.CreatedAt = time.Now()
	s.users[user.Email] = user
	return nil
}

func (s *UserStore) GetUserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
