package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/domain"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/repository"
)

// TaskService scopes every task operation to its owning user. A task that
// exists but belongs to someone else is reported as not found, never as
// forbidden.
type TaskService struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
	tracer trace.Tracer
}

// NewTaskService wires dependencies.
func NewTaskService(tasks repository.TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{
		tasks:  tasks,
		logger: logger,
		tracer: otel.Tracer("github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"),
	}
}

// ListForUser returns every task owned by the user, in store order.
func (s *TaskService) ListForUser(ctx context.Context, user domain.User) ([]domain.Task, error) {
	ctx, span := s.startSpan(ctx, "TaskService.ListForUser")
	defer span.End()

	tasks, err := s.tasks.FindByUser(ctx, user.ID.Hex())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create stamps ownership and defaults before inserting.
func (s *TaskService) Create(ctx context.Context, user domain.User, task domain.Task) (domain.Task, error) {
	ctx, span := s.startSpan(ctx, "TaskService.Create")
	defer span.End()

	if strings.TrimSpace(task.Title) == "" {
		return domain.Task{}, newValidationError("validation failed", map[string]string{"title": "title is required"})
	}

	task.UserID = user.ID
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if task.Priority == 0 {
		task.Priority = domain.TaskPriorityLow
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		span.RecordError(err)
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.log().Info("task created",
		zap.String("task_id", created.ID.Hex()),
		zap.String("user_id", user.ID.Hex()),
	)
	return created, nil
}

// GetOwned returns the task only when the user owns it.
func (s *TaskService) GetOwned(ctx context.Context, user domain.User, taskID string) (domain.Task, error) {
	ctx, span := s.startSpan(ctx, "TaskService.GetOwned")
	defer span.End()

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			span.RecordError(err)
		}
		return domain.Task{}, err
	}
	if task.UserID != user.ID {
		return domain.Task{}, domain.ErrNotFound
	}
	return task, nil
}

// UpdateOwned applies a partial update to a task the user owns and returns
// the updated document.
func (s *TaskService) UpdateOwned(ctx context.Context, user domain.User, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	ctx, span := s.startSpan(ctx, "TaskService.UpdateOwned")
	defer span.End()

	if patch.IsZero() {
		return domain.Task{}, newValidationError("no fields to update", nil)
	}

	if _, err := s.GetOwned(ctx, user, taskID); err != nil {
		return domain.Task{}, err
	}

	if _, err := s.tasks.Update(ctx, taskID, patch); err != nil {
		span.RecordError(err)
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	return s.GetOwned(ctx, user, taskID)
}

// DeleteOwned removes a task the user owns.
func (s *TaskService) DeleteOwned(ctx context.Context, user domain.User, taskID string) error {
	ctx, span := s.startSpan(ctx, "TaskService.DeleteOwned")
	defer span.End()

	if _, err := s.GetOwned(ctx, user, taskID); err != nil {
		return err
	}

	removed, err := s.tasks.Delete(ctx, taskID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete task: %w", err)
	}
	if !removed {
		return domain.ErrNotFound
	}

	s.log().Info("task deleted",
		zap.String("task_id", taskID),
		zap.String("user_id", user.ID.Hex()),
	)
	return nil
}

// ToggleComplete flips the status between pending and completed on each
// call. Only a pending task moves to completed; any other stored status,
// including drifted values, resets to pending.
func (s *TaskService) ToggleComplete(ctx context.Context, user domain.User, taskID string) (domain.Task, error) {
	ctx, span := s.startSpan(ctx, "TaskService.ToggleComplete")
	defer span.End()

	task, err := s.GetOwned(ctx, user, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	next := domain.TaskStatusPending
	if task.Status == domain.TaskStatusPending {
		next = domain.TaskStatusCompleted
	}
	return s.UpdateOwned(ctx, user, taskID, domain.TaskPatch{Status: &next})
}

func (s *TaskService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if s == nil || s.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return s.tracer.Start(ctx, name)
}

func (s *TaskService) log() *zap.Logger {
	if s != nil && s.logger != nil {
		return s.logger
	}
	return zap.L()
}
