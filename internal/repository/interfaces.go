package repository

import (
	"context"
	"time"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
)

// UserRepository exposes persistence for accounts.
type UserRepository interface {
	FindAll(ctx context.Context, limit int64) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// TaskRepository exposes persistence for tasks.
type TaskRepository interface {
	FindAll(ctx context.Context, limit int64) ([]domain.Task, error)
	FindByID(ctx context.Context, id string) (domain.Task, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// ClientRepository exposes persistence for client contacts.
type ClientRepository interface {
	FindAll(ctx context.Context, limit int64) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (domain.Client, error)
	Search(ctx context.Context, query string) ([]domain.Client, error)
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	Update(ctx context.Context, id string, patch domain.ClientPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CampaignRepository is read-only: no write path to campaigns exists.
type CampaignRepository interface {
	FindAll(ctx context.Context, limit int64) ([]domain.Campaign, error)
	FindByID(ctx context.Context, id string) (domain.Campaign, error)
	Count(ctx context.Context) (int64, error)
}

// SessionStore holds server-side session state keyed by opaque token.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
