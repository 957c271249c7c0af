package guard

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/mock"
	"github.com/MKhiriev/go-page-guard/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticIDs struct{ id string }

func (s staticIDs) Generate() string { return s.id }

var fixedTime = time.Date(2026, 3, 1, 15, 4, 5, 0, time.FixedZone("UTC+3", 3*3600))

func TestScrubContext(t *testing.T) {
	in := map[string]string{
		"password":      "hunter2",
		"new_password":  "hunter3",
		"AccessToken":   "eyJ...",
		"client_secret": "s",
		"card_number":   "4000123456789010",
		"cvv":           "123",
		"otp-code":      "000000",
		"pin":           "1234",
		"ip":            "10.0.0.1",
		"status_code":   "422",
		"last4":         "9010",
		"note":          "paid with 4000 1234 5678 9010 today",
		"opinion":       "kept",
	}

	out := ScrubContext(in)

	assert.Equal(t, map[string]string{
		"ip":          "10.0.0.1",
		"status_code": "422",
		"last4":       "9010",
		"note":        "paid with " + RedactedValue + " today",
		"opinion":     "kept",
	}, out)
	assert.Equal(t, "hunter2", in["password"], "input map must not be modified")
}

func TestScrubContext_Empty(t *testing.T) {
	assert.Nil(t, ScrubContext(nil))
	assert.Nil(t, ScrubContext(map[string]string{}))
}

func TestAuditBuilder_Build(t *testing.T) {
	b := NewAuditBuilderWith(staticIDs{id: "entry-1"}, func() time.Time { return fixedTime })

	ctx := map[string]string{"ip": "10.0.0.1", "token": "abc"}
	entry := b.Build(models.AuditFields{
		Actor:    "42",
		Action:   "vault.decrypt",
		Resource: "field",
		Outcome:  models.OutcomeFailure,
		Context:  ctx,
	})

	assert.Equal(t, "entry-1", entry.ID())
	assert.Equal(t, fixedTime.UTC(), entry.Timestamp())
	assert.Equal(t, time.UTC, entry.Timestamp().Location())
	assert.Equal(t, "42", entry.Actor())
	assert.Equal(t, "vault.decrypt", entry.Action())
	assert.Equal(t, "field", entry.Resource())
	assert.Equal(t, models.OutcomeFailure, entry.Outcome())
	assert.Equal(t, map[string]string{"ip": "10.0.0.1"}, entry.Context())

	ctx["ip"] = "changed"
	got := entry.Context()
	got["ip"] = "changed too"
	assert.Equal(t, "10.0.0.1", entry.Context()["ip"], "entry must not share its context map")
}

func TestNewAuditEntry_AssignsUUIDv7AndUTC(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	entry := NewAuditEntry(models.AuditFields{Action: "otp.verify", Resource: "otp", Outcome: models.OutcomeSuccess})

	id, err := uuid.Parse(entry.ID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.True(t, entry.Timestamp().After(before))
	assert.Equal(t, time.UTC, entry.Timestamp().Location())
	assert.Nil(t, entry.Context())
}

func TestNewAuditEntry_UniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewAuditEntry(models.AuditFields{Action: "a"}).ID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestAuditRecorder_Record_Persists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockAuditRepository(ctrl)
	b := NewAuditBuilderWith(staticIDs{id: "entry-7"}, func() time.Time { return fixedTime })
	rec := NewAuditRecorder(repo, b, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.AuditLogEntry) error {
			assert.Equal(t, "entry-7", e.ID())
			assert.Equal(t, "credentials.verify", e.Action())
			assert.NotContains(t, e.Context(), "password")
			return nil
		},
	)

	entry := rec.Record(ctx, models.AuditFields{
		Actor:    "7",
		Action:   "credentials.verify",
		Resource: "password",
		Outcome:  models.OutcomeDenied,
		Context:  map[string]string{"password": "hunter2", "ip": "127.0.0.1"},
	})

	assert.Equal(t, "entry-7", entry.ID())
	assert.Equal(t, models.OutcomeDenied, entry.Outcome())
}

func TestAuditRecorder_Record_StoreFailureIsLoggedOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	repo := mock.NewMockAuditRepository(ctrl)
	rec := NewAuditRecorder(repo, NewAuditBuilderWith(staticIDs{id: "entry-9"}, time.Now), logger.New(&buf, "test", "debug"))

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	entry := rec.Record(context.Background(), models.AuditFields{Action: "vault.encrypt", Outcome: models.OutcomeSuccess})

	assert.Equal(t, "entry-9", entry.ID())
	assert.Contains(t, buf.String(), "failed to persist audit entry")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestAuditRecorder_NilRepository(t *testing.T) {
	var buf bytes.Buffer
	rec := NewAuditRecorder(nil, nil, logger.New(&buf, "test", "debug"))

	entry := rec.Record(context.Background(), models.AuditFields{Action: "export.create", Outcome: models.OutcomeSuccess})

	assert.NotEmpty(t, entry.ID())
	assert.Contains(t, buf.String(), "export.create")
}
