package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/internal/mock"
	"github.com/MKhiriev/go-device-sync/internal/store"
	"github.com/MKhiriev/go-device-sync/internal/validators"
	"github.com/MKhiriev/go-device-sync/models"
)

func newTestDeviceSvc(t *testing.T) (DeviceService, *mock.MockDeviceRepository) {
	t.Helper()
	repo := mock.NewMockDeviceRepository(gomock.NewController(t))
	return NewDeviceService(repo, validators.NewDeviceValidator(), logger.Nop()), repo
}

func TestDeviceService_FindAllDevices(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	want := []models.Device{device(1, "a"), device(2, "b")}

	repo.EXPECT().FindAll(gomock.Any()).Return(want, nil)

	got, err := svc.FindAllDevices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeviceService_FindAllDevices_Error(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	repo.EXPECT().FindAll(gomock.Any()).Return(nil, store.ErrScanningRows)

	_, err := svc.FindAllDevices(context.Background())
	assert.ErrorIs(t, err, store.ErrScanningRows)
}

func TestDeviceService_FindDeviceByID(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(device(3, "c"), nil)

	got, err := svc.FindDeviceByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestDeviceService_FindDeviceByID_NotFound(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	repo.EXPECT().FindByID(gomock.Any(), int64(9)).Return(models.Device{}, store.ErrDeviceNotFound)

	_, err := svc.FindDeviceByID(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrDeviceNotFound)
}

func TestDeviceService_InvalidIDs_NeverReachRepository(t *testing.T) {
	svc, _ := newTestDeviceSvc(t)
	ctx := context.Background()

	_, err := svc.FindDeviceByID(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDevice)

	assert.ErrorIs(t, svc.DeleteDevice(ctx, -1), ErrInvalidDevice)
	assert.ErrorIs(t, svc.CreateDevice(ctx, models.Device{Name: "no id"}), ErrInvalidDevice)
	assert.ErrorIs(t, svc.UpdateDevice(ctx, models.Device{ID: 1}), ErrInvalidDevice)
}

func TestDeviceService_CreateDevice_ValidatorErrorIsWrapped(t *testing.T) {
	svc, _ := newTestDeviceSvc(t)
	d := device(5, "e")
	d.BasePrice = -1

	err := svc.CreateDevice(context.Background(), d)
	assert.ErrorIs(t, err, ErrInvalidDevice)
	assert.ErrorIs(t, err, validators.ErrNegativePrice)
}

func TestDeviceService_CreateDevice(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	d := device(5, "e")
	repo.EXPECT().Create(gomock.Any(), d).Return(nil)

	assert.NoError(t, svc.CreateDevice(context.Background(), d))
}

func TestDeviceService_CreateDevice_AlreadyExists(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	d := device(5, "e")
	repo.EXPECT().Create(gomock.Any(), d).Return(store.ErrDeviceAlreadyExists)

	assert.ErrorIs(t, svc.CreateDevice(context.Background(), d), store.ErrDeviceAlreadyExists)
}

func TestDeviceService_UpdateDevice(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	d := device(5, "e")
	repo.EXPECT().Update(gomock.Any(), d).Return(store.ErrDeviceNotFound)

	assert.ErrorIs(t, svc.UpdateDevice(context.Background(), d), store.ErrDeviceNotFound)
}

func TestDeviceService_UpsertDevice_SkipsValidation(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	// remote records are written as received
	d := models.Device{ID: 8}
	repo.EXPECT().Upsert(gomock.Any(), d).Return(nil)

	assert.NoError(t, svc.UpsertDevice(context.Background(), d))
}

func TestDeviceService_DeleteDevice(t *testing.T) {
	svc, repo := newTestDeviceSvc(t)
	repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	assert.NoError(t, svc.DeleteDevice(context.Background(), 4))
}
