package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/mock"
	"github.com/MKhiriev/go-page-guard/internal/packager"
	"github.com/MKhiriev/go-page-guard/internal/validators"
	"github.com/MKhiriev/go-page-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestExportSvc(t *testing.T) (ExportService, *mock.MockPackager, *auditSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	pkg := mock.NewMockPackager(ctrl)
	audit, sink := newTestAudit(ctrl)
	return NewExportService(pkg, validators.NewExportRequestValidator(), audit, logger.Nop()), pkg, sink
}

func landingRequest() models.ExportRequest {
	return models.ExportRequest{
		OwnerID: 999,
		HTML:    "<h1>Hi</h1>",
		Template: models.TemplateOptions{
			Kind:    models.TemplateLanding,
			Landing: &models.LandingOptions{Title: "Hi"},
		},
	}
}

func TestExportService_Export_SetsOwnerAndFingerprint(t *testing.T) {
	svc, pkg, sink := newTestExportSvc(t)
	pkg.EXPECT().Package(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ExportRequest) (models.ProtectedPackage, error) {
			assert.Equal(t, int64(7), req.OwnerID)
			assert.Equal(t, "acct-7", req.Protection.UserFingerprint)
			return models.ProtectedPackage{ExportID: "exp-1"}, nil
		})

	got, err := svc.Export(withUser(7), landingRequest())

	require.NoError(t, err)
	assert.Equal(t, "exp-1", got.ExportID)

	entry := sink.last(t)
	assert.Equal(t, "export.create", entry.Action())
	assert.Equal(t, "exp-1", entry.Context()["export_id"])
	assert.Equal(t, "landing", entry.Context()["template"])
}

func TestExportService_Export_KeepsExplicitFingerprint(t *testing.T) {
	svc, pkg, _ := newTestExportSvc(t)
	req := landingRequest()
	req.Protection.UserFingerprint = "studio-42"
	pkg.EXPECT().Package(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ExportRequest) (models.ProtectedPackage, error) {
			assert.Equal(t, "studio-42", req.Protection.UserFingerprint)
			return models.ProtectedPackage{ExportID: "exp-2"}, nil
		})

	_, err := svc.Export(withUser(7), req)

	require.NoError(t, err)
}

func TestExportService_Export_NoOwner(t *testing.T) {
	svc, _, _ := newTestExportSvc(t)

	_, err := svc.Export(context.Background(), landingRequest())

	assert.ErrorIs(t, err, ErrNoOwner)
}

func TestExportService_Export_PackagerError(t *testing.T) {
	svc, pkg, sink := newTestExportSvc(t)
	stageErr := &packager.StageError{Stage: packager.StageCompose, Err: packager.ErrEmptyContent}
	pkg.EXPECT().Package(gomock.Any(), gomock.Any()).Return(models.ProtectedPackage{}, stageErr)

	_, err := svc.Export(withUser(7), landingRequest())

	var se *packager.StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, packager.StageCompose, se.Stage)
	assert.ErrorIs(t, err, packager.ErrEmptyContent)

	entry := sink.last(t)
	assert.Equal(t, models.OutcomeFailure, entry.Outcome())
	_, hasID := entry.Context()["export_id"]
	assert.False(t, hasID)
}

func TestExportService_Export_RejectsInvalidRequestBeforePackaging(t *testing.T) {
	svc, _, sink := newTestExportSvc(t)
	req := models.ExportRequest{
		HTML: "<p>win</p>",
		Template: models.TemplateOptions{
			Kind: models.TemplateGame,
			Game: &models.GameOptions{Title: "Spin", GameType: "wheel"},
		},
	}

	_, err := svc.Export(withUser(7), req)

	assert.ErrorIs(t, err, validators.ErrNoPrizes)
	entry := sink.last(t)
	assert.Equal(t, models.OutcomeFailure, entry.Outcome())
	assert.Equal(t, "validation", entry.Context()["error"])
}
