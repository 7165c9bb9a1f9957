package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/adapter"
	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/utils"
	"github.com/MKhiriev/go-device-sync/models"
)

// authService is the concrete implementation of Authenticator.
type authService struct {
	// remoteAdapter performs the POST /authenticate exchange.
	remoteAdapter adapter.RemoteAdapter

	// tokenStore receives every renewed credential before it is handed out.
	tokenStore store.TokenStore

	logger *logger.Logger
}

// NewAuthService constructs an Authenticator that logs in through
// remoteAdapter and persists the result in tokenStore.
func NewAuthService(remoteAdapter adapter.RemoteAdapter, tokenStore store.TokenStore, logger *logger.Logger) Authenticator {
	return &authService{
		remoteAdapter: remoteAdapter,
		tokenStore:    tokenStore,
		logger:        logger,
	}
}

// Login implements Authenticator.
//
// The credential is saved before it is returned, so a caller never uses a
// renewed token that was not durably stored. Errors:
//   - ErrAuth (wrapping the adapter cause) if the remote authority rejects the
//     login or answers without a token.
//   - store.ErrPersistence (wrapped) if the token file cannot be written.
func (a *authService) Login(ctx context.Context, username, password string) (models.Credential, error) {
	cred, err := a.remoteAdapter.Authenticate(ctx, username, password)
	if err != nil {
		a.logger.Err(err).Str("username", username).Msg("login rejected by remote authority")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrAuth, err)
	}
	if cred.IsEmpty() {
		a.logger.Error().Str("username", username).Msg("remote authority returned an empty token")
		return models.Credential{}, fmt.Errorf("%w: empty token", ErrAuth)
	}

	if err = a.tokenStore.Save(cred); err != nil {
		a.logger.Err(err).Msg("renewed credential could not be saved")
		return models.Credential{}, err
	}

	event := a.logger.Info().Str("username", username)
	if exp, expErr := utils.TokenExpiry(cred.Token); expErr == nil {
		event = event.Time("token_exp", exp)
	}
	event.Msg("credential renewed")

	return cred, nil
}
