package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/config"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	pw "github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/password"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/repository"
)

// AuthService owns the session state machine: a request is either anonymous
// or authenticated as the user recorded against its token.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	cfg      config.Config
	logger   *zap.Logger
	tracer   trace.Tracer
}

// NewAuthService wires dependencies.
func NewAuthService(users repository.UserRepository, sessions repository.SessionStore, cfg config.Config, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		tracer:   otel.Tracer("github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"),
	}
}

// Register creates an account and opens a session for it, so registration
// doubles as login.
func (s *AuthService) Register(ctx context.Context, name, email, password, confirm string) (domain.User, string, error) {
	ctx, span := s.startSpan(ctx, "AuthService.Register")
	defer span.End()

	normalized := normalizeEmail(email)
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if normalized == "" {
		fields["email"] = "email is required"
	} else if !strings.Contains(normalized, "@") {
		fields["email"] = "email is invalid"
	}
	if password == "" {
		fields["password"] = "password is required"
	} else if password != confirm {
		fields["password_confirm"] = "passwords do not match"
	}
	if len(fields) > 0 {
		return domain.User{}, "", newValidationError("validation failed", fields)
	}

	if _, err := s.users.FindByEmail(ctx, normalized); err == nil {
		return domain.User{}, "", newValidationError("validation failed", map[string]string{"email": domain.ErrEmailTaken.Error()})
	} else if !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		return domain.User{}, "", fmt.Errorf("check existing user: %w", err)
	}

	hashed, err := pw.Hash(password)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, domain.User{
		Name:         strings.TrimSpace(name),
		Email:        normalized,
		PasswordHash: hashed,
		Type:         domain.UserTypeDefault,
		Status:       domain.UserStatusActive,
	})
	if err != nil {
		span.RecordError(err)
		return domain.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.openSession(ctx, created)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, "", err
	}

	s.audit("auth.register.success", "user_id", created.ID.Hex(), "email", created.Email)
	return created, token, nil
}

// Login validates credentials and transitions the session to authenticated.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	ctx, span := s.startSpan(ctx, "AuthService.Login")
	defer span.End()

	normalized := normalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		span.RecordError(err)
		return domain.User{}, "", fmt.Errorf("lookup user: %w", err)
	}

	ok, needsRehash, err := pw.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		if err != nil {
			span.RecordError(err)
		}
		s.audit("auth.login.failure", "email", normalized)
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	if needsRehash {
		s.upgradeLegacyHash(ctx, user, password)
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, "", err
	}

	s.audit("auth.login.success", "user_id", user.ID.Hex())
	return user, token, nil
}

// Logout clears the session unconditionally; an unknown token is not an
// error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := s.startSpan(ctx, "AuthService.Logout")
	defer span.End()

	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		span.RecordError(err)
		return fmt.Errorf("clear session: %w", err)
	}
	s.audit("auth.logout")
	return nil
}

// CurrentUser resolves the token to a live user document. A dangling
// identifier (user deleted after login) is treated as anonymous.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	ctx, span := s.startSpan(ctx, "AuthService.CurrentUser")
	defer span.End()

	if token == "" {
		return domain.User{}, domain.ErrNoSession
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return domain.User{}, domain.ErrNoSession
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrNoSession
		}
		span.RecordError(err)
		return domain.User{}, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}

// SessionTTL exposes the configured session lifetime for cookie max-age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.cfg.SessionTTL
}

func (s *AuthService) openSession(ctx context.Context, user domain.User) (string, error) {
	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID.Hex(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, session, s.cfg.SessionTTL); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}
	return session.Token, nil
}

// upgradeLegacyHash replaces a plaintext-stored password with an argon2id
// hash. Login proceeds even if the upgrade fails.
func (s *AuthService) upgradeLegacyHash(ctx context.Context, user domain.User, password string) {
	hashed, err := pw.Hash(password)
	if err != nil {
		s.log().Warn("legacy password rehash failed", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		return
	}
	if _, err := s.users.Update(ctx, user.ID.Hex(), domain.UserPatch{PasswordHash: &hashed}); err != nil {
		s.log().Warn("legacy password upgrade failed", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		return
	}
	s.audit("auth.password.upgraded", "user_id", user.ID.Hex())
}

func (s *AuthService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name)
}

func (s *AuthService) audit(event string, attrs ...any) {
	logger := s.log()
	if logger == nil {
		return
	}
	fields := make([]zap.Field, 0, len(attrs)/2+2)
	fields = append(fields, zap.String("event", event), zap.Time("timestamp", time.Now().UTC()))
	for i := 0; i+1 < len(attrs); i += 2 {
		key, ok := attrs[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, attrs[i+1]))
	}
	logger.Info("audit", fields...)
}

func (s *AuthService) log() *zap.Logger {
	if s != nil && s.logger != nil {
		return s.logger
	}
	return zap.L()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
