package storage

import "errors"

// ErrCorruptStore is returned by a RecordStorage whose backing content exists
// but cannot be decoded as a list of selections.
var ErrCorruptStore = errors.New("selection store content is not a valid record list")

// ErrRecordSetTooLarge is returned when the encoded selection list does not fit
// in a single backend item.
var ErrRecordSetTooLarge = errors.New("selection record set exceeds the backend item size limit")
