package storage

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Selection is one employee's current gift choice. Fields the service does not
// know about are kept in Extra and written back verbatim.
//
// A known field sent as something other than a string (a numeric price, say)
// is kept verbatim in Extra under its own key, and the typed field holds its
// JSON text so the record can still be matched and aggregated.
type Selection struct {
	ID            string
	EmployeeID    string
	GiftID        string
	GiftName      string
	GiftPrice     string
	SelectionTime string
	ReceivedAt    string
	Extra         map[string]json.RawMessage

	// present records known keys that were in the decoded JSON, so an
	// explicit "" is written back and an absent key stays absent.
	present map[string]bool
}

const (
	FieldID            = "id"
	FieldEmployeeID    = "employeeId"
	FieldGiftID        = "giftId"
	FieldGiftName      = "giftName"
	FieldGiftPrice     = "giftPrice"
	FieldSelectionTime = "selectionTime"
	FieldReceivedAt    = "receivedAt"
)

// knownFields is also the order used when encoding a record.
var knownFields = []string{
	FieldID,
	FieldEmployeeID,
	FieldGiftID,
	FieldGiftName,
	FieldGiftPrice,
	FieldSelectionTime,
	FieldReceivedAt,
}

func (s *Selection) field(name string) *string {
	switch name {
	case FieldID:
		return &s.ID
	case FieldEmployeeID:
		return &s.EmployeeID
	case FieldGiftID:
		return &s.GiftID
	case FieldGiftName:
		return &s.GiftName
	case FieldGiftPrice:
		return &s.GiftPrice
	case FieldSelectionTime:
		return &s.SelectionTime
	case FieldReceivedAt:
		return &s.ReceivedAt
	}
	return nil
}

// SelectedAt is the timestamp shown for the selection: the client click time
// when present, otherwise the time the server accepted it.
func (s *Selection) SelectedAt() string {
	if s.SelectionTime != "" {
		return s.SelectionTime
	}
	return s.ReceivedAt
}

// Clone returns a deep copy of the record.
func (s *Selection) Clone() *Selection {
	c := *s
	if s.present != nil {
		c.present = make(map[string]bool, len(s.present))
		for k, v := range s.present {
			c.present[k] = v
		}
	}
	if s.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			c.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return &c
}

// UnmarshalJSON accepts any JSON object. Known fields holding a string are
// decoded into the typed fields; everything else lands in Extra untouched.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = Selection{}
	for key, value := range raw {
		if target := s.field(key); target != nil {
			if s.present == nil {
				s.present = make(map[string]bool)
			}
			s.present[key] = true

			var str string
			if err := json.Unmarshal(value, &str); err == nil {
				*target = str
				continue
			}
			*target = RawFieldText(value)
		}
		if s.Extra == nil {
			s.Extra = make(map[string]json.RawMessage)
		}
		s.Extra[key] = value
	}
	return nil
}

// RawFieldText is the string view of a non-string JSON value: its compact JSON
// text, or "" for null.
func RawFieldText(value json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(bytes.TrimSpace(value))
	}
	if buf.String() == "null" {
		return ""
	}
	return buf.String()
}

// SetServerField assigns a server-owned known field, discarding whatever the
// client sent under the same key.
func (s *Selection) SetServerField(name, value string) {
	if target := s.field(name); target != nil {
		*target = value
		delete(s.Extra, name)
	}
}

// MarshalJSON writes known fields first, in a fixed order, then extra fields
// sorted by key. An empty known field is written only if it was present when
// the record was decoded.
func (s Selection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	write := func(key string, value []byte) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := encodeJSON(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
		return nil
	}

	for _, key := range knownFields {
		if raw, ok := s.Extra[key]; ok {
			if err := write(key, raw); err != nil {
				return nil, err
			}
			continue
		}
		typed := *s.field(key)
		if typed == "" && !s.present[key] {
			continue
		}
		v, err := encodeJSON(typed)
		if err != nil {
			return nil, err
		}
		if err := write(key, v); err != nil {
			return nil, err
		}
	}

	extraKeys := make([]string, 0, len(s.Extra))
	for k := range s.Extra {
		if (&Selection{}).field(k) != nil {
			continue
		}
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		if err := write(k, s.Extra[k]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
