package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	"github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
)

// ClickHouseSink implements PointSink for a ReplacingMergeTree table.
type ClickHouseSink struct {
	db    *sql.DB
	table string
}

// NewClickHouseSink creates ClickHouse storage. table is database.table.
func NewClickHouseSink(db *sql.DB, table string) repository.PointSink {
	return &ClickHouseSink{db: db, table: table}
}

type pointRow struct {
	measurement string
	tagKey      string
	tags        map[string]string
	fields      map[string]float64
	strFields   map[string]string
}

func (s *ClickHouseSink) Write(ctx context.Context, points ...*models.Point) error {
	if len(points) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("clickhouse begin: %w", err)
	}
	q := fmt.Sprintf("INSERT INTO %s (measurement, ts, tag_key, tags, fields, str_fields)", s.table)
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clickhouse prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		r := toRow(p)
		if len(r.fields) == 0 && len(r.strFields) == 0 {
			continue
		}
		if _, err := stmt.ExecContext(ctx, r.measurement, p.Time, r.tagKey, r.tags, r.fields, r.strFields); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clickhouse append: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("clickhouse commit: %w", err)
	}
	return nil
}

func (s *ClickHouseSink) Close() error {
	return nil // Managed by pkg
}

// toRow splits fields by type; bools are stored as 0/1.
func toRow(p *models.Point) pointRow {
	r := pointRow{
		measurement: p.Measurement,
		tags:        make(map[string]string, len(p.Tags)),
		fields:      make(map[string]float64),
		strFields:   make(map[string]string),
	}
	keys := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t.Value == "" {
			continue
		}
		r.tags[t.Key] = t.Value
		keys = append(keys, t.Key+"="+t.Value)
	}
	sort.Strings(keys)
	r.tagKey = strings.Join(keys, ",")

	for _, f := range p.NonNilFields() {
		switch v := f.Value.(type) {
		case int64:
			r.fields[f.Key] = float64(v)
		case float64:
			r.fields[f.Key] = v
		case bool:
			if v {
				r.fields[f.Key] = 1
			} else {
				r.fields[f.Key] = 0
			}
		case string:
			r.strFields[f.Key] = v
		default:
			r.strFields[f.Key] = fmt.Sprint(v)
		}
	}
	return r
}
