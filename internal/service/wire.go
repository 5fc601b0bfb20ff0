package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// WireNumber is a request field that may arrive as a JSON number or as a
// numeric string (entry forms submit strings). The raw text is kept so the
// caller chooses float or integer parsing.
type WireNumber string

func (n *WireNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*n = WireNumber(v)
		return nil
	}
	*n = WireNumber(s)
	return nil
}

// Empty reports whether the field was absent or blank.
func (n WireNumber) Empty() bool { return strings.TrimSpace(string(n)) == "" }

// Float parses the field as a decimal number.
func (n WireNumber) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
}

// Int parses the field as a whole number. Shipment quantities count discrete
// units, so they go through here rather than Float.
func (n WireNumber) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(n)))
}
