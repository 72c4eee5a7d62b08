package rustdoc

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a rustdoc item identifier, normalized to its string form.
//
// Older format versions emit IDs as JSON strings, newer ones as integers;
// both decode transparently.
type ID string

// UnmarshalJSON accepts either a string or an integer ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty item ID")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal string ID: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unmarshal numeric ID: %w", err)
	}
	*id = ID(strconv.FormatInt(n, 10))
	return nil
}

func (id ID) String() string {
	return string(id)
}
