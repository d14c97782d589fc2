package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/config"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/password"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/repository"
)

// EnsureAdmin provisions the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured. An existing account with that email is left
// untouched.
func EnsureAdmin(ctx context.Context, cfg config.Config, users repository.UserRepository, logger *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("lookup admin account: %w", err)
	}

	hashed, err := password.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	created, err := users.Create(ctx, domain.User{
		Name:         "Administrador",
		Email:        cfg.AdminEmail,
		PasswordHash: hashed,
		Type:         domain.UserTypeAdmin,
		Status:       domain.UserStatusActive,
	})
	if err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	logger.Info("admin account provisioned",
		zap.String("user_id", created.ID.Hex()),
		zap.String("email", created.Email),
	)
	return nil
}
