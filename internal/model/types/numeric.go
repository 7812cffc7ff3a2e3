// Package types carries scalar types used at the JSON boundary.
//
// Clients of the legacy API have been observed sending numeric fields as
// quoted strings ({"calories": "300"}), so the request-facing numeric types
// accept both forms. Serialization always emits bare numbers.
package types

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Int is an int that additionally unmarshals from a quoted JSON number.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	data = unquote(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "expected an integer")
	}
	*i = Int(v)
	return nil
}

// Float is a float64 that additionally unmarshals from a quoted JSON number.
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	data = unquote(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "expected a number")
	}
	*f = Float(v)
	return nil
}

func unquote(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return bytes.TrimSpace(data[1 : len(data)-1])
	}
	return data
}
