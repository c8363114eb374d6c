package pagination

import (
	"errors"
	"strconv"
)

// Cursor is the position of a record in the ascending-by-id scan order.
// Its wire form is the decimal string of the record id, so clients can
// pass the last id they saw straight back as the next page's position.
type Cursor int64

var ErrInvalidCursor = errors.New("invalid cursor")

func (c Cursor) Encode() string {
	return strconv.FormatInt(int64(c), 10)
}

func Decode(s string) (Cursor, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidCursor
	}
	if id <= 0 {
		return 0, ErrInvalidCursor
	}
	return Cursor(id), nil
}
