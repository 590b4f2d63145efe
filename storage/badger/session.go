package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// SessionRepository implements storage.SessionRepository for BadgerDB.
type SessionRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(backend *Backend) (*SessionRepository, error) {
	idSeq, err := backend.GetSequence(sessionIDSeq)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *SessionRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *SessionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddSessions adds ideation sessions to storage.
func (r *SessionRepository) AddSessions(ctx context.Context, sessions ...*core.IdeationSession) ([]*core.IdeationSession, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, s := range sessions {
			if s.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				s.Id = core.ID(nextID)
			}

			if s.CreatedAt.IsZero() {
				s.CreatedAt = time.Now().UTC()
			}
			s.UpdatedAt = time.Now().UTC()

			key := makeSessionKey(s.Id)
			value := storage.MarshalSession(s)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			dateKey := makeSessionDateKey(s.CreatedAt, s.Id)
			if err := tx.Set(dateKey, storage.MarshalID(s.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return sessions, err
}

// UpdateSessions updates existing sessions.
func (r *SessionRepository) UpdateSessions(ctx context.Context, sessions ...*core.IdeationSession) ([]*core.IdeationSession, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, s := range sessions {
			key := makeSessionKey(s.Id)

			old, err := readSession(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			s.UpdatedAt = time.Now().UTC()

			value := storage.MarshalSession(s)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			if !old.CreatedAt.Equal(s.CreatedAt) {
				oldDateKey := makeSessionDateKey(old.CreatedAt, old.Id)
				if err := tx.Delete(oldDateKey); err != nil {
					return err
				}
				newDateKey := makeSessionDateKey(s.CreatedAt, s.Id)
				if err := tx.Set(newDateKey, storage.MarshalID(s.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return sessions, err
}

// DeleteSession removes a session by ID.
func (r *SessionRepository) DeleteSession(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(id)

		s, err := readSession(tx, key)
		if err != nil {
			return err
		}
		if s == nil {
			return storage.ErrNotFound
		}

		dateKey := makeSessionDateKey(s.CreatedAt, s.Id)
		if err := tx.Delete(dateKey); err != nil {
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetSession retrieves a single session by ID.
func (r *SessionRepository) GetSession(ctx context.Context, id core.ID) (*core.IdeationSession, error) {
	var result *core.IdeationSession
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSessionKey(id)
		var err error
		result, err = readSession(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListSessions retrieves sessions ordered by creation time descending.
func (r *SessionRepository) ListSessions(ctx context.Context, skip, limit int) ([]*core.IdeationSession, error) {
	var results []*core.IdeationSession
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		startKey := makePartialSessionDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(sessionDatePrefix + ":")

		skipped := 0
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()

			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var sessionID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				sessionID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			s, err := readSession(tx, makeSessionKey(sessionID))
			if err != nil {
				return err
			}
			if s == nil {
				continue
			}

			if skipped < skip {
				skipped++
				continue
			}

			results = append(results, s)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
		return nil
	}, false)

	return results, err
}

// readSession reads a session from the transaction.
func readSession(tx *badger.Txn, key []byte) (*core.IdeationSession, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var s *core.IdeationSession
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		s, unmarshalErr = storage.UnmarshalSession(val)
		return unmarshalErr
	})
	return s, err
}
