// Package pgdb loads building records into the PostGIS buildings table.
package pgdb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/royalcat/osmbuildings/buildings"
	"github.com/royalcat/osmbuildings/settings"
	"github.com/royalcat/osmbuildings/wkt"
)

const insertBuilding = `
INSERT INTO buildings (name, height, building_type, address, geometry)
VALUES ($1, $2, $3, $4, ST_GeomFromText($5, 4326))`

type Sink struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func Connect(ctx context.Context, config settings.DatabaseConfig) (*Sink, error) {
	pool, err := pgxpool.New(ctx, config.ConnString())
	if err != nil {
		return nil, fmt.Errorf("error connecting to database %q: %w", config.Database, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error connecting to database %q: %w", config.Database, err)
	}

	return &Sink{
		pool: pool,
		log:  slog.With("component", "pgdb"),
	}, nil
}

func (s *Sink) Close() {
	s.pool.Close()
}

// LoadReport tells what actually landed in the table.
type LoadReport struct {
	Inserted int
	Failed   []FailedInsert
}

type FailedInsert struct {
	Name   string
	Reason string
}

// Load clears the buildings table and inserts every record, all inside
// one transaction committed once at the end. Each insert runs under a
// savepoint so a failing record is rolled back alone and reported, the
// rest still commit.
func (s *Sink) Load(ctx context.Context, records []buildings.Record) (LoadReport, error) {
	var report LoadReport

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return report, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM buildings"); err != nil {
		return report, fmt.Errorf("clearing buildings table: %w", err)
	}

	bar := pb.StartNew(len(records))
	bar.Set("prefix", "loading buildings")
	for _, record := range records {
		if err := s.insert(ctx, tx, record); err != nil {
			s.log.WarnContext(ctx, "error inserting building, skipping",
				"name", record.Name, "error", err.Error())
			report.Failed = append(report.Failed, FailedInsert{Name: record.Name, Reason: err.Error()})
		} else {
			report.Inserted++
		}
		bar.Increment()
	}
	bar.Finish()

	if err := tx.Commit(ctx); err != nil {
		return report, fmt.Errorf("commit: %w", err)
	}
	return report, nil
}

func (s *Sink) insert(ctx context.Context, tx pgx.Tx, record buildings.Record) error {
	geom, err := wkt.MarshalPolygonZ(record.Ring)
	if err != nil {
		return err
	}

	// nested Begin is a savepoint in pgx
	inner, err := tx.Begin(ctx)
	if err != nil {
		return err
	}
	if _, err := inner.Exec(ctx, insertBuilding,
		record.Name, record.Height, record.BuildingType, record.Address, geom); err != nil {
		_ = inner.Rollback(ctx)
		return err
	}
	return inner.Commit(ctx)
}
