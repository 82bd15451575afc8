package clicks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Click is one recorded ticket-link redirect.
type Click struct {
	bun.BaseModel `bun:"table:clicks"`

	ID        string    `bun:"id,pk" json:"id"`
	EventID   string    `bun:"event_id,notnull" json:"event_id"`
	EventName string    `bun:"event_name" json:"event_name"`
	Venue     string    `bun:"venue" json:"venue"`
	Source    string    `bun:"source" json:"source"`
	TicketURL string    `bun:"ticket_url,notnull" json:"ticket_url"`
	Referer   string    `bun:"referer" json:"referer"`
	ClickedAt time.Time `bun:"clicked_at,notnull" json:"clicked_at"`
}

// ClickCount is the per-event aggregate served by the stats endpoint.
type ClickCount struct {
	EventID   string `bun:"event_id" json:"event_id"`
	EventName string `bun:"event_name" json:"event_name"`
	Clicks    int    `bun:"clicks" json:"clicks"`
}

type DB struct {
	Bun *bun.DB
}

// OpenDB opens (or creates) the local sqlite click log and ensures the
// schema exists.
func OpenDB(path string) (*DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	d := &DB{Bun: bunDB}
	if err := d.createSchema(); err != nil {
		bunDB.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) createSchema() error {
	_, err := d.Bun.NewCreateTable().
		Model((*Click)(nil)).
		IfNotExists().
		Exec(context.Background())
	if err != nil {
		return fmt.Errorf("create clicks table: %w", err)
	}
	return nil
}

func (d *DB) Close() error {
	return d.Bun.Close()
}

func (d *DB) RecordClick(click Click) error {
	_, err := d.Bun.NewInsert().Model(&click).Exec(context.Background())
	return err
}

func (d *DB) CountsByEvent() ([]ClickCount, error) {
	var counts []ClickCount
	err := d.Bun.NewSelect().
		Model((*Click)(nil)).
		ColumnExpr("event_id").
		ColumnExpr("max(event_name) AS event_name").
		ColumnExpr("count(*) AS clicks").
		Group("event_id").
		OrderExpr("clicks DESC").
		Scan(context.Background(), &counts)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
