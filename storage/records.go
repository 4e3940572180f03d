package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// RecordStorage persists the whole ordered selection list as one unit.
// Load returns an empty list when nothing has been saved yet and an error
// wrapping ErrCorruptStore when saved content cannot be decoded.
type RecordStorage interface {
	Load(ctx context.Context) ([]*Selection, error)
	Save(ctx context.Context, selections []*Selection) error
}

func decodeRecords(b []byte) ([]*Selection, error) {
	var decoded []*Selection
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	selections := make([]*Selection, 0, len(decoded))
	for _, sel := range decoded {
		if sel != nil {
			selections = append(selections, sel)
		}
	}
	return selections, nil
}

func encodeRecords(selections []*Selection) ([]byte, error) {
	if selections == nil {
		selections = []*Selection{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(selections); err != nil {
		return nil, fmt.Errorf("marshal selections: %w", err)
	}
	return buf.Bytes(), nil
}
