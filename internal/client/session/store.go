// Package session persists the authenticated identity between runs.
//
// The identity is two string values under the keys "username" and
// "session_token". A stored pair with either value missing is treated as no
// session at all.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/facecam/internal/common"
	"github.com/dmitrijs2005/facecam/internal/dbx"
)

const (
	KeyUsername     = "username"
	KeySessionToken = "session_token"
)

// Store is the durable home of the session identity.
type Store interface {
	// Restore returns the persisted session, or ok=false when either field
	// is missing.
	Restore(ctx context.Context) (s models.Session, ok bool, err error)
	// Establish replaces the persisted session with a new one.
	Establish(ctx context.Context, username, token string) error
	// Clear removes the persisted session. It is safe to call repeatedly.
	Clear(ctx context.Context) error
}

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *SQLiteStore) Restore(ctx context.Context) (models.Session, bool, error) {
	repo := s.repo(s.db)

	username, _, err := repo.Get(ctx, KeyUsername)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("restore session: %w", err)
	}
	token, _, err := repo.Get(ctx, KeySessionToken)
	if err != nil {
		return models.Session{}, false, fmt.Errorf("restore session: %w", err)
	}

	sess := models.Session{Username: username, Token: token}
	if !sess.Valid() {
		return models.Session{}, false, nil
	}
	return sess, true, nil
}

// Establish writes both keys in one transaction so a crash can never leave
// a half-updated identity behind.
func (s *SQLiteStore) Establish(ctx context.Context, username, token string) error {
	if !(models.Session{Username: username, Token: token}).Valid() {
		return common.ErrInvalidSession
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, KeyUsername, username); err != nil {
			return err
		}
		return repo.Set(ctx, KeySessionToken, token)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Delete(ctx, KeyUsername, KeySessionToken); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
