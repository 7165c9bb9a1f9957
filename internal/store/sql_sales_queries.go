package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-device-sync/models"
)

const salesTable = "sales"

var saleColumns = []string{"id", "device_id", "final_price", "sold_at"}

// The remote authority owns sale ids, so a repeated save of the same sale
// only refreshes the row.
const saleUpsertSuffix = "ON CONFLICT (id) DO UPDATE SET device_id = excluded.device_id, " +
	"final_price = excluded.final_price, sold_at = excluded.sold_at"

func buildUpsertSaleQuery(b sq.StatementBuilderType, s models.Sale) (string, []any, error) {
	return b.Insert(salesTable).
		Columns(saleColumns...).
		Values(s.ID, s.DeviceID, s.FinalPrice, formatSoldAt(s.SoldAt)).
		Suffix(saleUpsertSuffix).
		ToSql()
}

func buildSelectAllSalesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(saleColumns...).
		From(salesTable).
		OrderBy("id").
		ToSql()
}

func buildSelectSaleByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(saleColumns...).
		From(salesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
