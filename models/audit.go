// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"time"
)

// AuditOutcome is the result recorded for an audited action.
type AuditOutcome string

const (
	OutcomeSuccess AuditOutcome = "success"
	OutcomeFailure AuditOutcome = "failure"
	OutcomeDenied  AuditOutcome = "denied"
)

// AuditFields is the caller-supplied part of an audit record. Timestamp and
// ID are assigned by the server when the entry is built.
type AuditFields struct {
	Actor    string
	Action   string
	Resource string
	Outcome  AuditOutcome
	Context  map[string]string
}

// AuditLogEntry is an append-only audit record.
//
// Fields are unexported so an entry cannot be changed once built; the
// context map is copied on the way in and on the way out.
type AuditLogEntry struct {
	id        string
	timestamp time.Time
	actor     string
	action    string
	resource  string
	outcome   AuditOutcome
	context   map[string]string
}

// NewAuditLogEntry assembles an entry from already sanitised values.
// Callers outside the guard package should use guard.NewAuditEntry, which
// assigns the id and timestamp and scrubs the context.
func NewAuditLogEntry(id string, timestamp time.Time, fields AuditFields) AuditLogEntry {
	return AuditLogEntry{
		id:        id,
		timestamp: timestamp,
		actor:     fields.Actor,
		action:    fields.Action,
		resource:  fields.Resource,
		outcome:   fields.Outcome,
		context:   maps.Clone(fields.Context),
	}
}

func (e AuditLogEntry) ID() string { return e.id }
func (e AuditLogEntry) Timestamp() time.Time { return e.timestamp }
func (e AuditLogEntry) Actor() string { return e.actor }
func (e AuditLogEntry) Action() string { return e.action }
func (e AuditLogEntry) Resource() string { return e.resource }
func (e AuditLogEntry) Outcome() AuditOutcome { return e.outcome }
func (e AuditLogEntry) Context() map[string]string { return maps.Clone(e.context) }

type auditLogEntryJSON struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Actor     string            `json:"actor,omitempty"`
	Action    string            `json:"action"`
	Resource  string            `json:"resource"`
	Outcome   AuditOutcome      `json:"outcome"`
	Context   map[string]string `json:"context,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (e AuditLogEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(auditLogEntryJSON{
		ID:        e.id,
		Timestamp: e.timestamp,
		Actor:     e.actor,
		Action:    e.action,
		Resource:  e.resource,
		Outcome:   e.outcome,
		Context:   e.context,
	})
}

// AuditQuery selects audit entries for one actor, newest first.
type AuditQuery struct {
	Actor string
	Limit uint64
}
