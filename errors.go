package dmxaddr

import (
	"errors"
	"fmt"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidFormat = "invalid_format"        // wrong shape: bad separator count, empty parts, non-digit characters
	CodeUniverseRange = "universe_out_of_range" // dotted-form universe outside [1, MaxUniverse]
	CodeChannelRange  = "channel_out_of_range"  // dotted-form channel outside [1, ChannelsPerUniverse]
	CodeAbsoluteRange = "absolute_out_of_range" // absolute-form value outside [1, MaxAbsolute]
	CodeOverflow      = "overflow"              // numeric substring too large for 32 bits
)

// ParseError reports why an input could not be converted into an Address.
// It is always returned as a value; no entry point panics on malformed input.
type ParseError struct {
	Code    string // One of the codes listed above.
	Input   string // The offending input; constructors render their arguments as text.
	Message string
	Cause   error // Optional: underlying error.
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("dmxaddr: %s: %q", e.Code, e.Input)
	}
	return fmt.Sprintf("dmxaddr: %s: %s: %q", e.Code, e.Message, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// AsParseError extracts a *ParseError from an error using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
