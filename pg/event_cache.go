// Package pg memoizes upstream provider fetches in PostgreSQL. Raw provider
// JSON is stored as-is; normalization always happens on the way out, so a
// normalizer fix applies to cached records too.
package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
	"github.com/lib/pq"
)

// EventCache stores raw provider event records in a PostgreSQL jsonb column,
// keyed by the provider's event id, together with the time they were fetched.
type EventCache struct {
	DB *sql.DB
}

// Init sets up the database schema.
func (c *EventCache) Init(ctx context.Context) error {
	const op errors.Op = "EventCache.Init"

	_, err := c.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS event_cache (
	   id          VARCHAR(64)  NOT NULL,
	   data        jsonb        NOT NULL,
	   fetched_at  timestamptz  NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS event_cache_id_idx ON event_cache (id);
	`)
	if err != nil {
		return errors.E(op, pgErr(err))
	}

	return nil
}

// Save creates or updates a cached record, given a raw JSON message from the
// provider. The message must carry an id field.
func (c *EventCache) Save(ctx context.Context, raw json.RawMessage, fetchedAt time.Time) error {
	const op errors.Op = "EventCache.Save"

	var evtID struct {
		ID brabant.EventID `json:"id"`
	}
	if err := json.Unmarshal([]byte(raw), &evtID); err != nil {
		return errors.E(op, errors.Invalid, err)
	}
	if evtID.ID == "" {
		return errors.E(op, errors.Invalid, "record has no id")
	}

	_, err := c.DB.ExecContext(ctx, `
		INSERT INTO event_cache
			(id, data, fetched_at)
		VALUES
			($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
			SET data=$2, fetched_at=$3
		`, evtID.ID, []byte(raw), fetchedAt.UTC())
	if err != nil {
		return errors.E(op, evtID.ID, pgErr(err), "upsert event")
	}

	return nil
}

// Get returns the cached raw record for an event id and the time it was
// fetched from the provider. A cache miss is a NotExist error.
func (c *EventCache) Get(ctx context.Context, id brabant.EventID) (json.RawMessage, time.Time, error) {
	const op errors.Op = "EventCache.Get"

	var data []byte
	var fetchedAt time.Time
	err := c.DB.QueryRowContext(ctx, `
	SELECT data::text, fetched_at
	FROM event_cache
	WHERE id = $1
	`, string(id)).Scan(&data, &fetchedAt)
	if err != nil {
		return nil, time.Time{}, errors.E(op, id, pgErr(err))
	}

	return json.RawMessage(data), fetchedAt.UTC(), nil
}

// Purge deletes records fetched before the cutoff and returns how many were
// dropped. It's meant to be run periodically so the cache doesn't accumulate
// events that left the provider's listing long ago.
func (c *EventCache) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	const op errors.Op = "EventCache.Purge"

	res, err := c.DB.ExecContext(ctx, `
	DELETE FROM event_cache
	WHERE fetched_at < $1
	`, cutoff.UTC())
	if err != nil {
		return 0, errors.E(op, pgErr(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.E(op, pgErr(err))
	}
	return n, nil
}

// GetMulti returns the cached raw records for a batch of ids. Missing ids are
// silently absent from the result.
func (c *EventCache) GetMulti(ctx context.Context, ids []brabant.EventID) (map[brabant.EventID]json.RawMessage, error) {
	const op errors.Op = "EventCache.GetMulti"

	var idStrings pq.StringArray
	for _, id := range ids {
		idStrings = append(idStrings, string(id))
	}

	rows, err := c.DB.QueryContext(ctx, `
	SELECT id, data::text
	FROM event_cache
	WHERE id = ANY ($1)
	`, idStrings)
	if err != nil {
		return nil, errors.E(op, pgErr(err), "select events")
	}
	defer rows.Close()

	found := map[brabant.EventID]json.RawMessage{}
	for rows.Next() {
		var id brabant.EventID
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, errors.E(op, pgErr(err))
		}
		found[id] = json.RawMessage(data)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.E(op, pgErr(err))
	}

	return found, nil
}
