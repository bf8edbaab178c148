package dto

import (
	"dipadubank/internal/models"

	"github.com/google/uuid"
)

// Development endpoint DTOs

// IssueSessionRequest names the identity a development session is minted for
type IssueSessionRequest struct {
	RoqUserID string   `json:"roq_user_id" validate:"required"`
	TenantID  string   `json:"tenant_id" validate:"required"`
	Roles     []string `json:"roles" validate:"required,min=1"`
}

// SessionResponse carries a signed session token. ExpiresAt is RFC 3339.
type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// SeedResponse reports the records created by one seed run
type SeedResponse struct {
	Entity  string      `json:"entity"`
	Created int         `json:"created"`
	IDs     []uuid.UUID `json:"ids"`
}

// AuditPage is one page of audit entries
type AuditPage struct {
	Entries []*models.AuditLog `json:"entries"`
	Total   int64              `json:"total"`
	Offset  int                `json:"offset"`
	Limit   int                `json:"limit"`
}
