package dmxaddr

// MarshalText implements encoding.TextMarshaler using the canonical dotted
// notation.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is the reverse
// conversion entry point and delegates to Parse; the receiver is left
// untouched on failure.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
