package entity

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// ID is a backend identifier. The backend emits numeric ids, some endpoints
// emit them as strings; both decode into the same value.
type ID string

// String returns the id as text.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// Int returns the numeric form of the id, or 0 when it is not numeric.
func (id ID) Int() int64 {
	n, _ := id.Numeric()

	return n
}

// Numeric returns the numeric form of the id and whether it has one.
func (id ID) Numeric() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// UnmarshalJSON accepts a JSON number, string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode string id")
		}
		*id = ID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decode numeric id")
	}
	*id = ID(n.String())

	return nil
}

// MarshalJSON emits numeric ids as numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}

	return json.Marshal(string(id))
}
