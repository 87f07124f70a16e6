// Package pgtest provides utilities for creating and destroying test
// databases in PostgreSQL. It's used in the cache store tests. The code is
// based on and largely identical to chain's pgtest package.
package pgtest

import (
	"context"
	"database/sql"
	"math/rand"
	"net/url"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/frankokule97/brabant-events/errors"
	"github.com/lib/pq"
)

var (
	// DefaultURL is the default URL used for accessing the postgres server
	// in open(). Override with the PGTEST_URL environment variable.
	DefaultURL = "postgres://localhost/postgres?sslmode=disable"
	dbpool     = make(chan *sql.DB, 4)

	random = rand.New(rand.NewSource(time.Now().UnixNano()))
	gcDur  = 3 * time.Minute
)

// NewDB creates a connection to a fresh PostgreSQL database for testing. If
// no postgres server is reachable the calling test is skipped.
//
// Don't worry about closing the DB. It will close on its own when garbage collected.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	runtime.GC() // give the finalizers a chance to run

	ctx := context.Background()

	db, err := getdb(ctx, "")
	if err != nil {
		t.Skipf("postgres unavailable, skipping: %v", err)
	}
	runtime.SetFinalizer(db, (*sql.DB).Close)

	return db
}

func open(ctx context.Context, baseURL string) (*sql.DB, error) {
	if baseURL == "" {
		baseURL = os.Getenv("PGTEST_URL")
	}
	if baseURL == "" {
		baseURL = DefaultURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	ctldb, err := sql.Open("postgres", baseURL)
	if err != nil {
		return nil, errors.E(err, "create test db")
	}
	defer ctldb.Close()

	if err = ctldb.PingContext(ctx); err != nil {
		return nil, errors.E(err, "ping test server")
	}

	if err = gcdbs(ctldb); err != nil {
		return nil, err
	}

	dbname := pickName("db")
	u.Path = "/" + dbname
	_, err = ctldb.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbname))
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", u.String())
	if err != nil {
		return nil, errors.E(err, "open test db")
	}

	return db, nil
}

func pickName(prefix string) (s string) {
	const chars = "abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < 10; i++ {
		s += string(chars[random.Intn(len(chars))])
	}
	return formatPrefix(prefix, time.Now()) + s
}

func formatPrefix(prefix string, t time.Time) string {
	return "pgtest_" + prefix + "_" + t.UTC().Format("20060102150405") + "Z_"
}

func gcdbs(db *sql.DB) error {
	gcTime := time.Now().Add(-gcDur)
	const q = `
		SELECT datname FROM pg_database
		WHERE datname LIKE 'pgtest_%' AND datname < $1`
	rows, err := db.Query(q, formatPrefix("db", gcTime))
	if err != nil {
		return err
	}
	var names []string
	for rows.Next() {
		var name string
		err = rows.Scan(&name)
		if err != nil {
			return err
		}
		names = append(names, name)
	}
	if rows.Err() != nil {
		return rows.Err()
	}
	for i, name := range names {
		if i > 5 {
			break // drop up to five per test
		}
		go db.Exec("DROP DATABASE " + pq.QuoteIdentifier(name))
	}
	return nil
}

func getdb(ctx context.Context, url string) (*sql.DB, error) {
	select {
	case db := <-dbpool:
		return db, nil
	default:
		return open(ctx, url)
	}
}
