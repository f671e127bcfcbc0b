package model

import "time"

// AuditStatus is the outcome of an administrative call.
type AuditStatus string

const (
	AuditSucceeded AuditStatus = "success"
	AuditRejected  AuditStatus = "rejected"
)

// AuditRecord describes one administrative call.
type AuditRecord struct {
	Collection string
	Operation  string
	Caller     Address
	Detail     string
	Status     AuditStatus
	Error      string
	Timestamp  time.Time
}
