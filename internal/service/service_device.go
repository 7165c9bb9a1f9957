package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

type deviceService struct {
	deviceRepository store.DeviceRepository
	validator        validators.Validator

	logger *logger.Logger
}

// NewDeviceService returns a DeviceService backed by deviceRepository.
func NewDeviceService(deviceRepository store.DeviceRepository, validator validators.Validator, logger *logger.Logger) DeviceService {
	return &deviceService{
		deviceRepository: deviceRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (d *deviceService) FindAllDevices(ctx context.Context) ([]models.Device, error) {
	devices, err := d.deviceRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting all devices: %w", err)
	}

	return devices, nil
}

func (d *deviceService) FindDeviceByID(ctx context.Context, id int64) (models.Device, error) {
	if id <= 0 {
		return models.Device{}, fmt.Errorf("%w: id must be positive", ErrInvalidDevice)
	}

	device, err := d.deviceRepository.FindByID(ctx, id)
	if err != nil {
		return models.Device{}, fmt.Errorf("error getting device %d: %w", id, err)
	}

	return device, nil
}

func (d *deviceService) CreateDevice(ctx context.Context, device models.Device) error {
	if err := d.validateDevice(ctx, device); err != nil {
		return err
	}

	if err := d.deviceRepository.Create(ctx, device); err != nil {
		return fmt.Errorf("error creating device %d: %w", device.ID, err)
	}

	return nil
}

func (d *deviceService) UpdateDevice(ctx context.Context, device models.Device) error {
	if err := d.validateDevice(ctx, device); err != nil {
		return err
	}

	if err := d.deviceRepository.Update(ctx, device); err != nil {
		return fmt.Errorf("error updating device %d: %w", device.ID, err)
	}

	return nil
}

// UpsertDevice inserts device or replaces the stored record with the same id.
// Used by reconciliation; the remote record is written as received.
func (d *deviceService) UpsertDevice(ctx context.Context, device models.Device) error {
	if err := d.deviceRepository.Upsert(ctx, device); err != nil {
		return fmt.Errorf("error upserting device %d: %w", device.ID, err)
	}

	return nil
}

func (d *deviceService) DeleteDevice(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidDevice)
	}

	if err := d.deviceRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting device %d: %w", id, err)
	}

	return nil
}

// validateDevice checks a caller-supplied device. Remote records skip it:
// the remote authority is trusted as-is.
func (d *deviceService) validateDevice(ctx context.Context, device models.Device) error {
	if err := d.validator.Validate(ctx, device); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDevice, err)
	}

	return nil
}
