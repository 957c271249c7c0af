package store

import "github.com/MKhiriev/go-page-guard/internal/logger"

// Repositories groups every repository the service layer depends on.
type Repositories struct {
	AuditRepository AuditRepository
}

// NewRepositories builds the repositories on top of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		AuditRepository: NewAuditRepository(db, log),
	}
}
