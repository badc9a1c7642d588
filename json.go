package dmxaddr

import (
	"bytes"

	j "github.com/goccy/go-json"
)

// MarshalJSON encodes the address as its canonical dotted string.
func (a Address) MarshalJSON() ([]byte, error) {
	return j.Marshal(a.String())
}

// UnmarshalJSON accepts either a JSON string in any notation Parse
// understands, or a JSON number interpreted as the absolute form. Numbers
// are read via json.Number so large integers are not rounded through
// float64 before the range check.
func (a *Address) UnmarshalJSON(data []byte) error {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return &ParseError{Code: CodeInvalidFormat, Input: string(data), Message: "invalid JSON scalar", Cause: err}
	}
	switch t := v.(type) {
	case nil:
		// null leaves the receiver unchanged, mirroring encoding/json.
		return nil
	case string:
		parsed, err := Parse(t)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case j.Number:
		// A number is always the absolute form; "1.5" must not be read as
		// dotted notation, so the digits go through the absolute path only.
		parsed, err := parseAbsolute(string(data), t.String())
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return &ParseError{Code: CodeInvalidFormat, Input: string(data), Message: "expected JSON string or number"}
	}
}
