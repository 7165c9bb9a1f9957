package service

import (
	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

type Services struct {
	Authenticator   Authenticator
	SyncExecutor    SyncExecutor
	SyncCoordinator SyncCoordinator
	DeviceService   DeviceService
	SaleService     SaleService
	AppInfoService  AppInfoService
}

func NewServices(
	storages *store.Storages,
	remoteAdapter adapter.RemoteAdapter,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	m *metrics.SyncMetrics,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger.WithComponent("app_info"))
	if err != nil {
		return nil, err
	}

	deviceService := NewDeviceService(storages.DeviceRepository, validators.NewDeviceValidator(), logger.WithComponent("device_service"))
	authenticator := NewAuthService(remoteAdapter, storages.TokenStore, logger.WithComponent("authenticator"))
	saleService := NewSaleService(
		remoteAdapter,
		storages.TokenStore,
		authenticator,
		storages.SaleRepository,
		deviceService,
		validators.NewSaleValidator(),
		cfg.Remote,
		m,
		logger.WithComponent("sale_service"),
	)
	executor := NewSyncService(remoteAdapter, deviceService, m, logger.WithComponent("sync_executor"))

	return &Services{
		Authenticator:   authenticator,
		SyncExecutor:    executor,
		SyncCoordinator: NewSyncCoordinator(storages.TokenStore, authenticator, executor, cfg.Remote, m, logger.WithComponent("sync_coordinator")),
		DeviceService:   deviceService,
		SaleService:     saleService,
		AppInfoService:  appInfoService,
	}, nil
}
