package store

import (
	"github.com/MKhiriev/go-device-sync/internal/config"
	"github.com/MKhiriev/go-device-sync/internal/logger"
)

// Storages groups the stores handed to the service layer.
type Storages struct {
	TokenStore       TokenStore
	DeviceRepository DeviceRepository
	SaleRepository   SaleRepository
}

// NewStorages wires the credential file from cfg and the repositories over
// an already migrated db.
func NewStorages(cfg config.Storage, db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		TokenStore:       NewFileTokenStore(cfg.TokenFile, logger.WithComponent("token_store")),
		DeviceRepository: NewDeviceRepository(db, logger.WithComponent("device_repository")),
		SaleRepository:   NewSaleRepository(db, logger.WithComponent("sale_repository")),
	}
}
