package shared

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a float64 that tolerates sloppy client payloads: a quoted number,
// an empty string, null, or outright garbage all decode instead of failing,
// with anything unreadable collapsing to zero.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*a = 0
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		trimmed = strings.TrimSpace(s)
		if trimmed == "" {
			*a = 0
			return nil
		}
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(parsed)
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}
