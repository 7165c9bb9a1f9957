package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-device-sync/internal/logger"
	"github.com/MKhiriev/go-device-sync/models"
)

// saleRepository is the SQL implementation of [SaleRepository].
//
// sold_at is stored as RFC 3339 text in UTC so the column reads back the
// same way from PostgreSQL and SQLite.
type saleRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSaleRepository constructs a [SaleRepository] backed by db.
func NewSaleRepository(db *DB, logger *logger.Logger) SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger,
	}
}

// Save records the sale, replacing any row with the same id.
func (r *saleRepository) Save(ctx context.Context, sale models.Sale) error {
	query, args, err := buildUpsertSaleQuery(r.db.builder(), sale)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "saleRepository.Save").
			Int64("sale_id", sale.ID).
			Stringer("class", r.db.classify(err)).
			Msg("failed to save sale")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindAll returns every recorded sale ordered by id, never nil.
func (r *saleRepository) FindAll(ctx context.Context) ([]models.Sale, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllSalesQuery(r.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "saleRepository.FindAll").
			Stringer("class", r.db.classify(err)).
			Msg("failed to query sales")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0, 16)
	for rows.Next() {
		sale, scanErr := scanSale(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "saleRepository.FindAll").
				Msg("failed to scan sale row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		sales = append(sales, sale)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sales, nil
}

// FindByID returns the sale with the given id or [ErrSaleNotFound].
func (r *saleRepository) FindByID(ctx context.Context, id int64) (models.Sale, error) {
	query, args, err := buildSelectSaleByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.Sale{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sale, err := scanSale(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sale{}, ErrSaleNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "saleRepository.FindByID").
			Int64("sale_id", id).
			Stringer("class", r.db.classify(err)).
			Msg("failed to get sale")
		return models.Sale{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return sale, nil
}

func scanSale(row rowScanner) (models.Sale, error) {
	var (
		s      models.Sale
		soldAt string
	)
	if err := row.Scan(&s.ID, &s.DeviceID, &s.FinalPrice, &soldAt); err != nil {
		return models.Sale{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, soldAt)
	if err != nil {
		return models.Sale{}, fmt.Errorf("sold_at %q: %w", soldAt, err)
	}
	s.SoldAt = t
	return s, nil
}

func formatSoldAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
