package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeJSON decodes a single JSON value from data, rejecting unknown fields
// and trailing content.
func DecodeJSON(data []byte, dst interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if decoder.More() {
		return fmt.Errorf("invalid JSON: trailing data")
	}
	return nil
}
