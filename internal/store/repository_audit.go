package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/models"
)

// auditRepository is the SQL implementation of [AuditRepository]. It works
// against both PostgreSQL and SQLite; statements are built with squirrel in
// the connection's placeholder format.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository] backed by the provided
// database connection and logger.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts one entry.
//
// A unique violation on the entry id yields [ErrAuditEntryExists], any
// other driver error a wrapped [ErrExecutingStatement], and zero affected
// rows [ErrAuditEntryNotSaved].
func (r *auditRepository) Append(ctx context.Context, entry models.AuditLogEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAuditQuery(r.db.Builder(), entry)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.Append").Msg("error building query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		class := r.db.Classify(err)
		log.Err(err).Str("func", "*auditRepository.Append").Stringer("class", class).Msg("error inserting audit entry")
		if class == Duplicate {
			return ErrAuditEntryExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil || affected == 0 {
		log.Error().Str("func", "*auditRepository.Append").Msg("audit entry was not saved")
		return ErrAuditEntryNotSaved
	}

	return nil
}

// List returns the newest entries of one actor.
func (r *auditRepository) List(ctx context.Context, q models.AuditQuery) ([]models.AuditLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuditQuery(r.db.Builder(), q)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.List").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.List").Msg("error selecting audit entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditLogEntry, 0)
	for rows.Next() {
		var (
			id, actor, action, resource, outcome, contextJSON string
			occurredAt                                        time.Time
		)
		if err := rows.Scan(&id, &occurredAt, &actor, &action, &resource, &outcome, &contextJSON); err != nil {
			log.Err(err).Str("func", "*auditRepository.List").Msg("error scanning audit row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var auditCtx map[string]string
		if contextJSON != "" {
			if err := json.Unmarshal([]byte(contextJSON), &auditCtx); err != nil {
				return nil, fmt.Errorf("%w: decode context: %w", ErrScanningRows, err)
			}
		}
		if len(auditCtx) == 0 {
			auditCtx = nil
		}

		entries = append(entries, models.NewAuditLogEntry(id, occurredAt.UTC(), models.AuditFields{
			Actor:    actor,
			Action:   action,
			Resource: resource,
			Outcome:  models.AuditOutcome(outcome),
			Context:  auditCtx,
		}))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
