package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alex-pricope/gift-selection-service/logging"
	"github.com/google/uuid"
)

type UpsertAction string

const (
	ActionCreated UpsertAction = "created"
	ActionUpdated UpsertAction = "updated"
)

type UpsertResult struct {
	Selection *Selection
	Action    UpsertAction
	// Previous is the replaced record, nil when Action is ActionCreated.
	Previous *Selection
}

type SelectionStorage interface {
	Upsert(ctx context.Context, selection *Selection) (*UpsertResult, error)
	GetAll(ctx context.Context) ([]*Selection, error)
}

// Clock provides time to the store so tests can pin receivedAt.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// NewSelectionID returns a time-ordered identifier that stays unique for
// writes landing in the same instant.
func NewSelectionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "selection_" + id.String()
}

// DefaultSelectionStorage keeps at most one record per employee on top of a
// RecordStorage. Every call reloads the record set; writes run a full
// load-modify-save cycle under a mutex, so concurrent writers in this process
// cannot drop each other's changes. Separate processes sharing one backend are
// not coordinated and the last save wins.
type DefaultSelectionStorage struct {
	Records RecordStorage
	Clock   Clock
	NewID   func() string

	mu sync.RWMutex
}

func NewSelectionStorage(records RecordStorage) *DefaultSelectionStorage {
	return &DefaultSelectionStorage{
		Records: records,
		Clock:   SystemClock{},
		NewID:   NewSelectionID,
	}
}

// Upsert stores a fresh copy of selection with a new id and receivedAt. A
// record for the same employee is replaced in place, never merged.
func (s *DefaultSelectionStorage) Upsert(ctx context.Context, selection *Selection) (*UpsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selections, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	record := selection.Clone()
	record.SetServerField(FieldID, s.NewID())
	record.SetServerField(FieldReceivedAt, s.Clock.Now().Format(time.RFC3339Nano))

	result := &UpsertResult{Selection: record, Action: ActionCreated}
	replaced := false
	for i, existing := range selections {
		if existing.EmployeeID == record.EmployeeID {
			result.Action = ActionUpdated
			result.Previous = existing
			selections[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		selections = append(selections, record)
	}

	if err := s.Records.Save(ctx, selections); err != nil {
		logging.Log.Errorf("STORAGE: failed to save %d selections: %v", len(selections), err)
		return nil, err
	}
	return result, nil
}

func (s *DefaultSelectionStorage) GetAll(ctx context.Context) ([]*Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load(ctx)
}

// load treats an undecodable record set as empty. The next successful write
// replaces the corrupt content.
func (s *DefaultSelectionStorage) load(ctx context.Context) ([]*Selection, error) {
	selections, err := s.Records.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrCorruptStore) {
			logging.Log.Warnf("STORAGE: falling back to an empty store: %v", err)
			return []*Selection{}, nil
		}
		logging.Log.Errorf("STORAGE: failed to load selections: %v", err)
		return nil, err
	}
	return selections, nil
}
