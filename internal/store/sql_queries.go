package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-page-guard/models"
)

const (
	auditTable = "audit_logs"

	// defaultAuditListLimit caps List when the query carries no limit.
	defaultAuditListLimit = 100
)

var auditColumns = []string{"id", "occurred_at", "actor", "action", "resource", "outcome", "context"}

// buildInsertAuditQuery returns the INSERT for one entry. The context map is
// stored as a JSON document.
func buildInsertAuditQuery(b sq.StatementBuilderType, entry models.AuditLogEntry) (string, []any, error) {
	contextJSON, err := json.Marshal(entry.Context())
	if err != nil {
		return "", nil, fmt.Errorf("%w: marshal context: %w", ErrBuildingSQLQuery, err)
	}
	if entry.Context() == nil {
		contextJSON = []byte("{}")
	}

	query, args, err := b.Insert(auditTable).
		Columns(auditColumns...).
		Values(
			entry.ID(),
			entry.Timestamp().UTC(),
			entry.Actor(),
			entry.Action(),
			entry.Resource(),
			string(entry.Outcome()),
			string(contextJSON),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListAuditQuery returns the SELECT for one actor's entries, newest
// first.
func buildListAuditQuery(b sq.StatementBuilderType, q models.AuditQuery) (string, []any, error) {
	limit := q.Limit
	if limit == 0 {
		limit = defaultAuditListLimit
	}

	query, args, err := b.Select(auditColumns...).
		From(auditTable).
		Where(sq.Eq{"actor": q.Actor}).
		OrderBy("occurred_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
