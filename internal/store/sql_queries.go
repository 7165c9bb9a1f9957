package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-device-sync/models"
)

const devicesTable = "devices"

var deviceColumns = []string{
	"id",
	"code",
	"name",
	"description",
	"base_price",
	"currency",
	"characteristics",
	"customizations",
	"extras",
}

// upsertSuffix overwrites every non-key column with the incoming row. The
// syntax is shared by PostgreSQL and SQLite 3.24+.
var upsertSuffix = func() string {
	sets := make([]string, 0, len(deviceColumns)-1)
	for _, c := range deviceColumns[1:] {
		sets = append(sets, c+" = excluded."+c)
	}
	return "ON CONFLICT (id) DO UPDATE SET " + strings.Join(sets, ", ")
}()

func deviceValues(d models.Device) []any {
	return []any{
		d.ID,
		d.Code,
		d.Name,
		d.Description,
		d.BasePrice,
		d.Currency,
		d.Characteristics,
		d.Customizations,
		d.Extras,
	}
}

func buildSelectAllDevicesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(deviceColumns...).
		From(devicesTable).
		OrderBy("id").
		ToSql()
}

func buildSelectDeviceByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(deviceColumns...).
		From(devicesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertDeviceQuery(b sq.StatementBuilderType, d models.Device) (string, []any, error) {
	return b.Insert(devicesTable).
		Columns(deviceColumns...).
		Values(deviceValues(d)...).
		ToSql()
}

func buildUpsertDeviceQuery(b sq.StatementBuilderType, d models.Device) (string, []any, error) {
	return b.Insert(devicesTable).
		Columns(deviceColumns...).
		Values(deviceValues(d)...).
		Suffix(upsertSuffix).
		ToSql()
}

func buildUpdateDeviceQuery(b sq.StatementBuilderType, d models.Device) (string, []any, error) {
	return b.Update(devicesTable).
		SetMap(sq.Eq{
			"code":            d.Code,
			"name":            d.Name,
			"description":     d.Description,
			"base_price":      d.BasePrice,
			"currency":        d.Currency,
			"characteristics": d.Characteristics,
			"customizations":  d.Customizations,
			"extras":          d.Extras,
		}).
		Where(sq.Eq{"id": d.ID}).
		ToSql()
}

func buildDeleteDeviceQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(devicesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
