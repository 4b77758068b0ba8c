package byteunit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/heistp/byteunit/unit"
)

// Size is a byte count that can be decoded from a size string or a plain
// integer, so {"size": 1234}, {"size": "1234"} and {"size": "1.5 GiB"} all
// work in JSON, and likewise in TOML. It encodes as a plain integer.
type Size uint64

// Uint64 returns the size as uint64.
func (s Size) Uint64() uint64 {
	return uint64(s)
}

// Bytes returns the size as unit.Bytes.
func (s Size) Bytes() unit.Bytes {
	return unit.Bytes(s)
}

// In returns the size expressed in u.
func (s Size) In(u unit.Unit) float64 {
	return s.Bytes().In(u)
}

func (s Size) String() string {
	return Format(uint64(s))
}

func (s *Size) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = Size(n)
	return nil
}

func (s *Size) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	n, err := decodeSize(v)
	if err != nil {
		return fmt.Errorf("error decoding size: %w", err)
	}
	*s = Size(n)
	return nil
}

func (s *Size) UnmarshalTOML(data interface{}) error {
	n, err := decodeSize(data)
	if err != nil {
		return fmt.Errorf("error decoding TOML size: %w", err)
	}
	*s = Size(n)
	return nil
}

// decodeSize takes a size string or a non-negative integer, as produced by
// the JSON and TOML decoders, and returns the byte count.
func decodeSize(v interface{}) (uint64, error) {
	switch v := v.(type) {
	case string:
		return Parse(v)
	case json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s is not a non-negative integer", v)
		}
		return n, nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("cannot be negative")
		}
		return uint64(v), nil
	case uint64:
		return v, nil
	case float64, float32:
		return 0, fmt.Errorf("cannot be float")
	default:
		return 0, fmt.Errorf("failed to convert value \"%v\" to size", v)
	}
}
