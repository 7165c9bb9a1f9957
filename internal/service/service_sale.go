package service

import (
	"context"
	"errors"
	"fmt"

	"k8s.io/utils/clock"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/metrics"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

type saleService struct {
	remoteAdapter  adapter.RemoteAdapter
	tokenStore     store.TokenStore
	authenticator  Authenticator
	saleRepository store.SaleRepository
	deviceService  DeviceService
	validator      validators.Validator

	username string
	password string

	metrics *metrics.SyncMetrics
	clock   clock.PassiveClock

	logger *logger.Logger
}

// NewSaleService wires sale forwarding. The credential is shared with the
// sync job: it is read from tokenStore and renewed through authenticator
// with the username and password from remote. m may be nil.
func NewSaleService(
	remoteAdapter adapter.RemoteAdapter,
	tokenStore store.TokenStore,
	authenticator Authenticator,
	saleRepository store.SaleRepository,
	deviceService DeviceService,
	validator validators.Validator,
	remote config.Remote,
	m *metrics.SyncMetrics,
	logger *logger.Logger,
) SaleService {
	return &saleService{
		remoteAdapter:  remoteAdapter,
		tokenStore:     tokenStore,
		authenticator:  authenticator,
		saleRepository: saleRepository,
		deviceService:  deviceService,
		validator:      validator,
		username:       remote.Username,
		password:       remote.Password,
		metrics:        m,
		clock:          clock.RealClock{},
		logger:         logger,
	}
}

// Sell implements SaleService.
//
// Errors:
//   - ErrInvalidSale if the request fails validation or names a device that
//     is not in the local catalogue.
//   - ErrSaleRejected if the remote authority answers 400.
//   - ErrAuth if the credential cannot be renewed or the renewed one is
//     rejected as well.
//   - ErrTransport for any other remote failure.
//
// A sale accepted remotely but not recorded locally is logged with its id
// and the store error is returned.
func (s *saleService) Sell(ctx context.Context, sale models.SaleRequest) (models.Sale, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, sale); err != nil {
		return models.Sale{}, fmt.Errorf("%w: %w", ErrInvalidSale, err)
	}

	if _, err := s.deviceService.FindDeviceByID(ctx, sale.DeviceID); err != nil {
		if errors.Is(err, store.ErrDeviceNotFound) {
			return models.Sale{}, fmt.Errorf("%w: device %d is not in the catalogue", ErrInvalidSale, sale.DeviceID)
		}
		return models.Sale{}, err
	}

	if sale.SoldAt.IsZero() {
		sale.SoldAt = s.clock.Now()
	}
	sale.SoldAt = sale.SoldAt.UTC()

	var remote models.RemoteSale
	err := s.withCredential(ctx, func(token string) error {
		var callErr error
		remote, callErr = s.remoteAdapter.Sell(ctx, token, sale)
		return callErr
	})
	if err != nil {
		if errors.Is(err, ErrSaleRejected) {
			s.metrics.ObserveSale(metrics.SaleRejected)
		} else {
			s.metrics.ObserveSale(metrics.SaleFailed)
		}
		log.Err(err).
			Str("func", "saleService.Sell").
			Int64("device_id", sale.DeviceID).
			Msg("sale was not registered")
		return models.Sale{}, err
	}
	s.metrics.ObserveSale(metrics.SaleAccepted)

	record := models.Sale{
		ID:         remote.ID,
		DeviceID:   sale.DeviceID,
		FinalPrice: sale.FinalPrice,
		SoldAt:     sale.SoldAt,
	}
	if err = s.saleRepository.Save(ctx, record); err != nil {
		log.Err(err).
			Str("func", "saleService.Sell").
			Int64("sale_id", remote.ID).
			Msg("sale registered remotely but not recorded locally")
		return models.Sale{}, fmt.Errorf("error recording sale %d: %w", remote.ID, err)
	}

	log.Info().
		Int64("sale_id", record.ID).
		Int64("device_id", record.DeviceID).
		Float64("final_price", record.FinalPrice).
		Msg("sale registered")

	return record, nil
}

func (s *saleService) FindAllSales(ctx context.Context) ([]models.Sale, error) {
	sales, err := s.saleRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting all sales: %w", err)
	}

	return sales, nil
}

func (s *saleService) FindSaleByID(ctx context.Context, id int64) (models.Sale, error) {
	if id <= 0 {
		return models.Sale{}, fmt.Errorf("%w: id must be positive", ErrInvalidSale)
	}

	sale, err := s.saleRepository.FindByID(ctx, id)
	if err != nil {
		return models.Sale{}, fmt.Errorf("error getting sale %d: %w", id, err)
	}

	return sale, nil
}

// GetRemoteSale returns the remote authority's view of sale id. An unknown
// id yields ErrRemoteSaleNotFound.
func (s *saleService) GetRemoteSale(ctx context.Context, id int64) (models.RemoteSale, error) {
	if id <= 0 {
		return models.RemoteSale{}, fmt.Errorf("%w: id must be positive", ErrInvalidSale)
	}

	var sale models.RemoteSale
	err := s.withCredential(ctx, func(token string) error {
		var callErr error
		sale, callErr = s.remoteAdapter.GetSale(ctx, token, id)
		return callErr
	})
	if err != nil {
		return models.RemoteSale{}, err
	}

	return sale, nil
}

// ListRemoteSales returns every sale the remote authority holds, never nil.
func (s *saleService) ListRemoteSales(ctx context.Context) ([]models.RemoteSale, error) {
	var sales []models.RemoteSale
	err := s.withCredential(ctx, func(token string) error {
		var callErr error
		sales, callErr = s.remoteAdapter.ListSales(ctx, token)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []models.RemoteSale{}
	}

	return sales, nil
}

// withCredential runs call with the stored credential, logging in first when
// none is stored. A 401 triggers one renewal and one more call; a 401 after
// a renewal is final.
func (s *saleService) withCredential(ctx context.Context, call func(token string) error) error {
	log := logger.FromContext(ctx)

	renewed := false
	cred, ok := s.tokenStore.Load()
	if !ok {
		log.Info().Msg("no stored credential, logging in")
		var err error
		if cred, err = s.renew(ctx); err != nil {
			return err
		}
		renewed = true
	}

	for {
		err := call(cred.Token)
		if err == nil {
			return nil
		}
		if !errors.Is(err, adapter.ErrUnauthorized) {
			return remoteError(err)
		}
		if renewed {
			return fmt.Errorf("%w: renewed credential was rejected: %w", ErrAuth, err)
		}

		log.Info().Msg("stored credential rejected, renewing")
		if cred, err = s.renew(ctx); err != nil {
			return err
		}
		renewed = true
	}
}

func (s *saleService) renew(ctx context.Context) (models.Credential, error) {
	cred, err := s.authenticator.Login(ctx, s.username, s.password)
	s.metrics.ObserveRenewal(err == nil)
	return cred, err
}

func remoteError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrSaleRejected, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteSaleNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
}
