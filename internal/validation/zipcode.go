package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ZipCode is a postal code that decodes from either a JSON string or a JSON
// number. Numbers are kept in their decimal form, so 97403 and "97403" are
// the same value; the zipcode rule then checks the digits.
type ZipCode string

// UnmarshalJSON implements json.Unmarshaler.
func (z *ZipCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*z = ZipCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("zip code must be a string or a number: %w", err)
	}
	*z = ZipCode(n.String())
	return nil
}

// String returns the code as a plain string.
func (z ZipCode) String() string {
	return string(z)
}
