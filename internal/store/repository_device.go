package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

// deviceRepository is the SQL implementation of [DeviceRepository]. It works
// against both PostgreSQL and SQLite; dialect differences are confined to the
// placeholder format carried by [DB].
//
// Methods log through the context-scoped logger so entries carry the trace
// id of the request or sync cycle that caused them.
type deviceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDeviceRepository constructs a [DeviceRepository] backed by db.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll returns every stored device ordered by id. An empty table yields
// an empty, non-nil slice.
func (r *deviceRepository) FindAll(ctx context.Context) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllDevicesQuery(r.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.FindAll").
			Stringer("class", r.db.classify(err)).
			Msg("failed to query devices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	devices := make([]models.Device, 0, 64)
	for rows.Next() {
		device, scanErr := scanDevice(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "deviceRepository.FindAll").
				Msg("failed to scan device row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		devices = append(devices, device)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "deviceRepository.FindAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return devices, nil
}

// FindByID returns the device with the given id or [ErrDeviceNotFound].
func (r *deviceRepository) FindByID(ctx context.Context, id int64) (models.Device, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDeviceByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.Device{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	device, err := scanDevice(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Device{}, ErrDeviceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "deviceRepository.FindByID").
			Int64("device_id", id).
			Stringer("class", r.db.classify(err)).
			Msg("failed to get device")
		return models.Device{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return device, nil
}

// Create inserts a new device. Returns [ErrDeviceAlreadyExists] when the id
// is taken.
func (r *deviceRepository) Create(ctx context.Context, device models.Device) error {
	query, args, err := buildInsertDeviceQuery(r.db.builder(), device)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDeviceAlreadyExists
		}
		r.logExecError(ctx, "deviceRepository.Create", device.ID, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Update overwrites an existing device. Returns [ErrDeviceNotFound] when no
// row has the id.
func (r *deviceRepository) Update(ctx context.Context, device models.Device) error {
	query, args, err := buildUpdateDeviceQuery(r.db.builder(), device)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logExecError(ctx, "deviceRepository.Update", device.ID, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// Upsert inserts the device or overwrites the row with the same id, in a
// single statement.
func (r *deviceRepository) Upsert(ctx context.Context, device models.Device) error {
	query, args, err := buildUpsertDeviceQuery(r.db.builder(), device)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logExecError(ctx, "deviceRepository.Upsert", device.ID, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the device with the given id. Returns [ErrDeviceNotFound]
// when no row has the id.
func (r *deviceRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteDeviceQuery(r.db.builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logExecError(ctx, "deviceRepository.Delete", id, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

func (r *deviceRepository) logExecError(ctx context.Context, fn string, id int64, err error) {
	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Int64("device_id", id).
		Stringer("class", r.db.classify(err)).
		Msg("failed to execute device statement")
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(row rowScanner) (models.Device, error) {
	var d models.Device
	err := row.Scan(
		&d.ID,
		&d.Code,
		&d.Name,
		&d.Description,
		&d.BasePrice,
		&d.Currency,
		&d.Characteristics,
		&d.Customizations,
		&d.Extras,
	)
	return d, err
}
