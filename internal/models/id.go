package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidID is returned when an identifier is neither a JSON integer nor a
// string holding one.
var ErrInvalidID = errors.New("invalid id")

// ID is a store-assigned identifier. The admin UI sends ids as numbers while
// older clients send them as strings, so both forms are accepted.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := data
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidID
		}
		if s == "" {
			return nil
		}
		raw = []byte(s)
	}

	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return ErrInvalidID
	}
	*id = ID(v)
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
