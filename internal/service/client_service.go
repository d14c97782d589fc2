package service

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/repository"
)

// ClientService mediates client contact CRUD. Clients carry no ownership
// scoping.
type ClientService struct {
	clients repository.ClientRepository
	logger  *zap.Logger
	tracer  trace.Tracer
}

// NewClientService wires dependencies.
func NewClientService(clients repository.ClientRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		clients: clients,
		logger:  logger,
		tracer:  otel.Tracer("github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"),
	}
}

// List returns clients, optionally filtered by a case-insensitive substring
// over name, city, and company name.
func (s *ClientService) List(ctx context.Context, query string, limit int64) ([]domain.Client, error) {
	ctx, span := s.startSpan(ctx, "ClientService.List")
	defer span.End()

	var (
		clients []domain.Client
		err     error
	)
	if strings.TrimSpace(query) != "" {
		clients, err = s.clients.Search(ctx, strings.TrimSpace(query))
	} else {
		clients, err = s.clients.FindAll(ctx, limit)
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// Get returns one client by id.
func (s *ClientService) Get(ctx context.Context, id string) (domain.Client, error) {
	ctx, span := s.startSpan(ctx, "ClientService.Get")
	defer span.End()

	return s.clients.FindByID(ctx, id)
}

// Create inserts a new client contact.
func (s *ClientService) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	ctx, span := s.startSpan(ctx, "ClientService.Create")
	defer span.End()

	if strings.TrimSpace(client.Name) == "" {
		return domain.Client{}, newValidationError("validation failed", map[string]string{"name": "name is required"})
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		span.RecordError(err)
		return domain.Client{}, fmt.Errorf("create client: %w", err)
	}

	s.log().Info("client created", zap.String("client_id", created.ID.Hex()))
	return created, nil
}

// Update applies a partial update and returns the updated document.
func (s *ClientService) Update(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, error) {
	ctx, span := s.startSpan(ctx, "ClientService.Update")
	defer span.End()

	if patch.IsZero() {
		return domain.Client{}, newValidationError("no fields to update", nil)
	}

	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return domain.Client{}, err
	}

	if _, err := s.clients.Update(ctx, id, patch); err != nil {
		span.RecordError(err)
		return domain.Client{}, fmt.Errorf("update client: %w", err)
	}
	return s.clients.FindByID(ctx, id)
}

// Delete removes a client.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "ClientService.Delete")
	defer span.End()

	removed, err := s.clients.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete client: %w", err)
	}
	if !removed {
		return domain.ErrNotFound
	}

	s.log().Info("client deleted", zap.String("client_id", id))
	return nil
}

func (s *ClientService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name)
}

func (s *ClientService) log() *zap.Logger {
	if s != nil && s.logger != nil {
		return s.logger
	}
	return zap.L()
}
