// Package db selects the persistence backend from the DATABASE_URL scheme.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/nexushealth/hms-api/internal/core/ports"
	"github.com/nexushealth/hms-api/internal/infrastructure/db/memory"
	mongostore "github.com/nexushealth/hms-api/internal/infrastructure/db/mongo"
	"github.com/nexushealth/hms-api/internal/infrastructure/db/postgres"
)

type Kind string

const (
	KindMemory   Kind = "memory"
	KindMongo    Kind = "mongodb"
	KindPostgres Kind = "postgres"
)

type Config struct {
	URL      string
	MongoDB  string
	MaxConns int32
	MinConns int32
}

// Datastore owns the backend connection and hands out per-resource stores.
type Datastore struct {
	kind       Kind
	principals ports.PrincipalRepository
	mongoCli   *mongodrv.Client
	mongoDB    *mongodrv.Database
	pool       *pgxpool.Pool
}

func KindOf(url string) (Kind, error) {
	switch {
	case url == "" || strings.HasPrefix(url, "memory://"):
		return KindMemory, nil
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return KindMongo, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return KindPostgres, nil
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme in %q", redact(url))
	}
}

// Open connects to the configured backend and prepares the credential store.
func Open(ctx context.Context, cfg Config) (*Datastore, error) {
	kind, err := KindOf(cfg.URL)
	if err != nil {
		return nil, err
	}

	ds := &Datastore{kind: kind}
	switch kind {
	case KindMemory:
		ds.principals = memory.NewPrincipalRepository()

	case KindMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.URL, Database: cfg.MongoDB})
		if err != nil {
			return nil, err
		}
		repo := mongostore.NewPrincipalRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("users indexes: %w", err)
		}
		ds.mongoCli, ds.mongoDB, ds.principals = client, db, repo

	case KindPostgres:
		pool, err := postgres.NewPool(ctx, cfg.URL, cfg.MaxConns, cfg.MinConns)
		if err != nil {
			return nil, err
		}
		repo := postgres.NewPrincipalRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		ds.pool, ds.principals = pool, repo
	}
	return ds, nil
}

func (d *Datastore) Kind() Kind { return d.kind }

func (d *Datastore) Principals() ports.PrincipalRepository { return d.principals }

// Ping reports backend reachability. The memory backend is always up.
func (d *Datastore) Ping(ctx context.Context) error {
	switch d.kind {
	case KindMongo:
		return mongostore.Pinger{Client: d.mongoCli}.Ping(ctx)
	case KindPostgres:
		return d.pool.Ping(ctx)
	default:
		return nil
	}
}

func (d *Datastore) Close(ctx context.Context) error {
	switch d.kind {
	case KindMongo:
		return d.mongoCli.Disconnect(ctx)
	case KindPostgres:
		d.pool.Close()
	}
	return nil
}

// Store returns the record store for one collection, creating its table or index first.
func Store[T any](ctx context.Context, d *Datastore, collection string) (ports.RecordStore[T], error) {
	switch d.kind {
	case KindMongo:
		s := mongostore.NewRecordStore[T](d.mongoDB, collection)
		if err := s.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("%s indexes: %w", collection, err)
		}
		return s, nil
	case KindPostgres:
		s := postgres.NewRecordStore[T](d.pool, collection)
		if err := s.Migrate(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return memory.NewRecordStore[T](), nil
	}
}

// redact hides credentials embedded in a connection string.
func redact(url string) string {
	if at := strings.LastIndex(url, "@"); at >= 0 {
		if scheme := strings.Index(url, "://"); scheme >= 0 && scheme < at {
			return url[:scheme+3] + "***" + url[at:]
		}
	}
	return url
}
