package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

var unsetBuildInfo = models.NewAppBuildInfo(models.BuildInfoUnset, models.BuildInfoUnset, models.BuildInfoUnset)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, unsetBuildInfo, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_NoVersionAnywhere_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, unsetBuildInfo, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_EmptyConfigVersion_LinkerVersionUsed(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v0.3.0", "2026-10-01", "abc123")

	svc, err := NewAppInfoService(config.App{}, buildInfo, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "v0.3.0", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, unsetBuildInfo, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_LinkerVersionWins(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("v1.2.3-beta+build.42", models.BuildInfoUnset, models.BuildInfoUnset)

	svc, err := NewAppInfoService(config.App{Version: "dev"}, buildInfo, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, unsetBuildInfo, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_CarriesResolvedVersion(t *testing.T) {
	buildInfo := models.NewAppBuildInfo(models.BuildInfoUnset, "2026-10-01", "abc123")

	svc, err := NewAppInfoService(config.App{Version: "dev"}, buildInfo, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())
	assert.Equal(t, "dev", got.BuildVersion())
	assert.Equal(t, "2026-10-01", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}
