package store

import (
	"context"

	"github.com/MKhiriev/go-page-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AuditRepository persists append-only audit entries.
type AuditRepository interface {
	// Append stores entry. Entries are never updated or deleted.
	Append(ctx context.Context, entry models.AuditLogEntry) error

	// List returns entries of query.Actor, newest first, at most
	// query.Limit of them.
	List(ctx context.Context, query models.AuditQuery) ([]models.AuditLogEntry, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
