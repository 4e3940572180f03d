package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alex-pricope/gift-selection-service/logging"
	"github.com/sirupsen/logrus"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

// memoryRecords is a RecordStorage that can be told to fail.
type memoryRecords struct {
	selections []*Selection
	loadErr    error
	saveErr    error
	saves      int
}

func (m *memoryRecords) Load(_ context.Context) ([]*Selection, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]*Selection, 0, len(m.selections))
	for _, s := range m.selections {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (m *memoryRecords) Save(_ context.Context, selections []*Selection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.selections = selections
	return nil
}

var errDiskFull = errors.New("disk full")

func setupFileStore(t *testing.T) (*DefaultSelectionStorage, *FileRecordStorage) {
	t.Helper()
	logging.Log = logrus.New()

	records := &FileRecordStorage{Path: filepath.Join(t.TempDir(), "selections.json")}
	store := NewSelectionStorage(records)

	var seq atomic.Int64
	store.NewID = func() string {
		return fmt.Sprintf("selection_test_%d", seq.Add(1))
	}
	store.Clock = &fixedClock{now: time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)}
	return store, records
}

func newSelection(employeeID, giftID, giftName, giftPrice string) *Selection {
	return &Selection{
		EmployeeID: employeeID,
		GiftID:     giftID,
		GiftName:   giftName,
		GiftPrice:  giftPrice,
	}
}
