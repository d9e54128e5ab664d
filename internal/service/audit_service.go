package service

import (
	"context"
	"encoding/json"
	"fmt"

	"personnel/internal/model"
	"personnel/internal/repository"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=audit_service.go -destination=../mocks/audit_service.go -package=mocks

// AuditEntry is what callers hand to the audit sink; values are serialized as JSON.
type AuditEntry struct {
	UserID    string
	Action    string
	Entity    string
	EntityID  string
	OldValues any
	NewValues any
}

type AuditLogResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Action    string  `json:"action"`
	Entity    string  `json:"entity"`
	EntityID  string  `json:"entity_id"`
	OldValues *string `json:"old_values"`
	NewValues *string `json:"new_values"`
	CreatedAt string  `json:"created_at"`
}

type AuditService interface {
	Record(ctx context.Context, entry AuditEntry) error
	GetAuditLogs(ctx context.Context, entity string, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// Record writes one audit row. Inside RunInTx it joins the caller's transaction.
func (s *auditService) Record(ctx context.Context, entry AuditEntry) error {
	oldValues, err := marshalAuditValues(entry.OldValues)
	if err != nil {
		return fmt.Errorf("marshal old values: %w", err)
	}
	newValues, err := marshalAuditValues(entry.NewValues)
	if err != nil {
		return fmt.Errorf("marshal new values: %w", err)
	}

	log := model.AuditLog{
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		OldValues: oldValues,
		NewValues: newValues,
	}

	if entry.UserID != "" {
		if parsed, err := uuid.Parse(entry.UserID); err == nil {
			log.UserID = &parsed
		}
	}

	if err := s.repo.Log(ctx, &log); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func marshalAuditValues(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// GetAuditLogs returns newest entries first, optionally for a single entity type
func (s *auditService) GetAuditLogs(ctx context.Context, entity string, page, limit int) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.repo.List(ctx, entity, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		username := "System"
		userID := ""
		if l.User != nil {
			username = l.User.Username
		}
		if l.UserID != nil {
			userID = l.UserID.String()
		}

		res = append(res, AuditLogResponse{
			ID:        l.ID.String(),
			UserID:    userID,
			Username:  username,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			OldValues: l.OldValues,
			NewValues: l.NewValues,
			CreatedAt: l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
