package models

import "time"

// Audit action names recorded by mutation and authentication flows.
const (
	AuditActionLogin          = "login"
	AuditActionUserCreated    = "user.created"
	AuditActionUserUpdated    = "user.updated"
	AuditActionUserDeleted    = "user.deleted"
	AuditActionUserActivated  = "user.activated"
	AuditActionUserDeactivate = "user.deactivated"
	AuditActionPasswordSet    = "password.set"
	AuditActionPasswordChange = "password.changed"
	AuditActionRoleAssigned   = "role.assigned"
	AuditActionRoleRemoved    = "role.removed"
)

// AuditEvent is an immutable record of a sensitive operation.
type AuditEvent struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	TargetID  string    `json:"target_id"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditFilter narrows an audit listing. Zero-valued fields are ignored.
type AuditFilter struct {
	ActorID  string
	Action   string
	TargetID string
	From     time.Time
	To       time.Time
	Limit    uint64
}
