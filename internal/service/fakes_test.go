package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]domain.User{}}
}

func (r *memUserRepo) FindAll(context.Context, int64) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *memUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID.Hex()] = user
	return user, nil
}

func (r *memUserRepo) Update(_ context.Context, id string, patch domain.UserPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Type != nil {
		u.Type = *patch.Type
	}
	if patch.Status != nil {
		u.Status = *patch.Status
	}
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return true, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *memUserRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]domain.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]domain.Task{}}
}

func (r *memTaskRepo) FindAll(context.Context, int64) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTaskRepo) FindByID(_ context.Context, id string) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[id]; ok {
		return t, nil
	}
	return domain.Task{}, domain.ErrNotFound
}

func (r *memTaskRepo) FindByUser(_ context.Context, userID string) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Task
	for _, t := range r.tasks {
		if t.UserID.Hex() == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) Create(_ context.Context, task domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt
	r.tasks[task.ID.Hex()] = task
	return task, nil
}

func (r *memTaskRepo) Update(_ context.Context, id string, patch domain.TaskPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return false, nil
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.StartDate != nil {
		t.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = patch.EndDate
	}
	if patch.CampaignID != nil {
		t.CampaignID = patch.CampaignID
	}
	t.UpdatedAt = time.Now().UTC()
	r.tasks[id] = t
	return true, nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *memTaskRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.tasks)), nil
}

type memClientRepo struct {
	mu      sync.Mutex
	clients map[string]domain.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: map[string]domain.Client{}}
}

func (r *memClientRepo) FindAll(_ context.Context, limit int64) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *memClientRepo) FindByID(_ context.Context, id string) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clients[id]; ok {
		return c, nil
	}
	return domain.Client{}, domain.ErrNotFound
}

func (r *memClientRepo) Search(_ context.Context, query string) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lowered := strings.ToLower(query)
	var out []domain.Client
	for _, c := range r.clients {
		if strings.Contains(strings.ToLower(c.Name), lowered) ||
			strings.Contains(strings.ToLower(c.City), lowered) ||
			strings.Contains(strings.ToLower(c.CompanyName), lowered) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memClientRepo) Create(_ context.Context, client domain.Client) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	client.CreatedAt = time.Now().UTC()
	client.UpdatedAt = client.CreatedAt
	r.clients[client.ID.Hex()] = client
	return client, nil
}

func (r *memClientRepo) Update(_ context.Context, id string, patch domain.ClientPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return false, nil
	}
	if patch.CompanyName != nil {
		c.CompanyName = *patch.CompanyName
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Mobile != nil {
		c.Mobile = *patch.Mobile
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.Company != nil {
		c.Company = *patch.Company
	}
	if patch.TaxID != nil {
		c.TaxID = *patch.TaxID
	}
	if patch.IDCard != nil {
		c.IDCard = *patch.IDCard
	}
	if patch.BirthDate != nil {
		c.BirthDate = patch.BirthDate
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.Salesperson != nil {
		c.Salesperson = *patch.Salesperson
	}
	c.UpdatedAt = time.Now().UTC()
	r.clients[id] = c
	return true, nil
}

func (r *memClientRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

func (r *memClientRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.clients)), nil
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]domain.Session{}}
}

func (s *memSessionStore) Save(_ context.Context, session domain.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *memSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[token]; ok {
		return &session, nil
	}
	return nil, nil
}

func (s *memSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
