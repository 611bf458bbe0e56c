package model

import "time"

type AuditAction string

const (
	AuditActionReserve      AuditAction = "reserve"
	AuditActionCancel       AuditAction = "cancel"
	AuditActionPickup       AuditAction = "pickup"
	AuditActionDeliver      AuditAction = "deliver"
	AuditActionStatusChange AuditAction = "status_change"
	AuditActionExpire       AuditAction = "expire"
	AuditActionMovement     AuditAction = "movement"
)

type AuditEvent struct {
	ID           string      `json:"id"`
	Action       AuditAction `json:"action"`
	Entity       string      `json:"entity"`
	EntityID     uint64      `json:"entity_id"`
	BranchID     *uint64     `json:"branch_id,omitempty"`
	ActorID      *uint64     `json:"actor_id,omitempty"`
	BeforeStatus string      `json:"before_status,omitempty"`
	AfterStatus  string      `json:"after_status,omitempty"`
	Payload      any         `json:"payload,omitempty"`
	At           time.Time   `json:"at"`
}
