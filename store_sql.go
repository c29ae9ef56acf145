package authclient

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type authStateRow struct {
	bun.BaseModel `bun:"table:auth_state,alias:ast"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}

// SQLStore is the durable SessionStore: a two-row key/value table in a local
// SQLite database, the client-side analogue of browser local storage.
type SQLStore struct {
	db *bun.DB
}

// NewSQLStore wraps an existing bun handle. Call Init before first use.
func NewSQLStore(db *bun.DB) *SQLStore {
	return &SQLStore{db: db}
}

// OpenSQLStore opens (or creates) the SQLite database at path and ensures the
// schema exists. Use ":memory:" for throwaway stores.
func OpenSQLStore(ctx context.Context, path string) (*SQLStore, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to open session store")
	}

	store := NewSQLStore(bun.NewDB(sqldb, sqlitedialect.New()))
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// Init creates the auth_state table when missing.
func (s *SQLStore) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*authStateRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to create session store schema")
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Read returns the persisted snapshot, or an absent snapshot when either slot
// is missing or the stored identity fails to parse.
func (s *SQLStore) Read(ctx context.Context) (SessionSnapshot, error) {
	var rows []authStateRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("key IN (?, ?)", storeKeyToken, storeKeyUser).
		Scan(ctx)
	if err != nil {
		return SessionSnapshot{}, errors.Wrap(err, errors.CategoryInternal, "failed to read session store")
	}

	var credential string
	var identityJSON []byte
	for _, row := range rows {
		switch row.Key {
		case storeKeyToken:
			credential = row.Value
		case storeKeyUser:
			identityJSON = []byte(row.Value)
		}
	}

	return snapshotFromStored(credential, identityJSON), nil
}

// Write upserts both slots.
func (s *SQLStore) Write(ctx context.Context, credential string, identity Identity) error {
	data, err := marshalIdentity(identity)
	if err != nil {
		return err
	}

	rows := []authStateRow{
		{Key: storeKeyToken, Value: credential},
		{Key: storeKeyUser, Value: string(data)},
	}

	_, err = s.db.NewInsert().
		Model(&rows).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to write session store")
	}
	return nil
}

// Clear removes both slots. Clearing an empty store is a no-op.
func (s *SQLStore) Clear(ctx context.Context) error {
	_, err := s.db.NewDelete().
		Model((*authStateRow)(nil)).
		Where("key IN (?, ?)", storeKeyToken, storeKeyUser).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to clear session store")
	}
	return nil
}
