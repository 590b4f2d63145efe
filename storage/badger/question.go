package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tom2tomtomtom/playbookwiz/core"
	"github.com/tom2tomtomtom/playbookwiz/storage"
)

// QuestionRepository implements storage.QuestionRepository for BadgerDB.
type QuestionRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.QuestionRepository = (*QuestionRepository)(nil)

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(backend *Backend) (*QuestionRepository, error) {
	idSeq, err := backend.GetSequence(questionIDSeq)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *QuestionRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *QuestionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddQuestions adds question records to storage.
func (r *QuestionRepository) AddQuestions(ctx context.Context, questions ...*core.Question) ([]*core.Question, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, q := range questions {
			if q.Id == 0 {
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
				q.Id = core.ID(nextID)
			}

			if q.AskedAt.IsZero() {
				q.AskedAt = time.Now().UTC()
			}
			q.UpdatedAt = time.Now().UTC()

			// Store primary record
			key := makeQuestionKey(q.Id)
			value := storage.MarshalQuestion(q)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index
			dateKey := makeQuestionDateKey(q.AskedAt, q.Id)
			if err := tx.Set(dateKey, storage.MarshalID(q.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return questions, err
}

// UpdateQuestions updates existing question records.
func (r *QuestionRepository) UpdateQuestions(ctx context.Context, questions ...*core.Question) ([]*core.Question, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, q := range questions {
			key := makeQuestionKey(q.Id)

			old, err := readQuestion(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			q.UpdatedAt = time.Now().UTC()

			value := storage.MarshalQuestion(q)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index if asked time changed
			if !old.AskedAt.Equal(q.AskedAt) {
				oldDateKey := makeQuestionDateKey(old.AskedAt, old.Id)
				if err := tx.Delete(oldDateKey); err != nil {
					return err
				}
				newDateKey := makeQuestionDateKey(q.AskedAt, q.Id)
				if err := tx.Set(newDateKey, storage.MarshalID(q.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return questions, err
}

// DeleteQuestion removes a question record by ID.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeQuestionKey(id)

		q, err := readQuestion(tx, key)
		if err != nil {
			return err
		}
		if q == nil {
			return storage.ErrNotFound
		}

		dateKey := makeQuestionDateKey(q.AskedAt, q.Id)
		if err := tx.Delete(dateKey); err != nil {
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetQuestion retrieves a single question record by ID.
func (r *QuestionRepository) GetQuestion(ctx context.Context, id core.ID) (*core.Question, error) {
	var result *core.Question
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeQuestionKey(id)
		var err error
		result, err = readQuestion(tx, key)
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

// GetRecentQuestions retrieves question records ordered by AskedAt descending.
func (r *QuestionRepository) GetRecentQuestions(ctx context.Context, sessionID string, skip, limit int) ([]*core.Question, error) {
	var results []*core.Question
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent records first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		startKey := makePartialQuestionDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(questionDatePrefix + ":")

		skipped := 0
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in the question date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			q, err := readQuestion(tx, makeQuestionKey(recordID))
			if err != nil {
				return err
			}
			if q == nil {
				continue
			}

			if sessionID != "" && q.SessionId != sessionID {
				continue
			}

			if skipped < skip {
				skipped++
				continue
			}

			results = append(results, q)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
		return nil
	}, false)

	return results, err
}

// GetQuestionsByDateRange retrieves records where start <= AskedAt < end.
func (r *QuestionRepository) GetQuestionsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Question, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.Question
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialQuestionDateKey(start)
		endKey := makePartialQuestionDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			q, err := readQuestion(tx, makeQuestionKey(recordID))
			if err != nil {
				return err
			}
			if q != nil {
				results = append(results, q)
			}
		}
		return nil
	}, false)

	return results, err
}

// readQuestion reads a question record from the transaction.
func readQuestion(tx *badger.Txn, key []byte) (*core.Question, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var q *core.Question
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		q, unmarshalErr = storage.UnmarshalQuestion(val)
		return unmarshalErr
	})
	return q, err
}
