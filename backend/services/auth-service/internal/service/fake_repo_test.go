package service

import (
	"context"
	"sync"

	"urjaportal/backend/services/auth-service/internal/models"
	"urjaportal/backend/services/auth-service/internal/repository"
)

type memoryRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.Consumer
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[int64]*models.Consumer)}
}

func (m *memoryRepo) Create(_ context.Context, c *models.Consumer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == c.Email || existing.ConsumerNumber == c.ConsumerNumber {
			return repository.ErrDuplicate
		}
	}
	m.nextID++
	c.ID = m.nextID
	stored := *c
	m.byID[c.ID] = &stored
	return nil
}

func (m *memoryRepo) find(match func(*models.Consumer) bool) (*models.Consumer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.byID {
		if match(c) {
			out := *c
			return &out, nil
		}
	}
	return nil, repository.ErrConsumerNotFound
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (*models.Consumer, error) {
	return m.find(func(c *models.Consumer) bool { return c.Email == email })
}

func (m *memoryRepo) GetByConsumerNumber(_ context.Context, number string) (*models.Consumer, error) {
	return m.find(func(c *models.Consumer) bool { return c.ConsumerNumber == number })
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (*models.Consumer, error) {
	return m.find(func(c *models.Consumer) bool { return c.ID == id })
}

func (m *memoryRepo) UpdateProfile(_ context.Context, c *models.Consumer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[c.ID]; !ok {
		return repository.ErrConsumerNotFound
	}
	stored := *c
	m.byID[c.ID] = &stored
	return nil
}
