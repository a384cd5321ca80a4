package pgdb

import (
	"context"
	"fmt"
)

const createBuildings = `
CREATE TABLE IF NOT EXISTS buildings (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	height        DOUBLE PRECISION NOT NULL,
	building_type TEXT NOT NULL,
	address       TEXT NOT NULL,
	geometry      geometry(POLYGONZ, 4326) NOT NULL
)`

// EnsureSchema creates the buildings table when it does not exist yet.
// A convenience for fresh databases, not a migration layer.
func (s *Sink) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createBuildings); err != nil {
		return fmt.Errorf("creating buildings table: %w", err)
	}
	return nil
}
