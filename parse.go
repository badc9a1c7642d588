package dmxaddr

import (
	"errors"
	"strconv"
	"strings"
)

// Parse converts textual input into an Address. Two notations are accepted:
//
//   - dotted "universe.channel", e.g. "2.15"
//   - absolute "n", e.g. "527"
//
// Components must be bare decimal digits: no surrounding whitespace, no
// signs, no blank parts. Parse is pure and never panics; every failure
// comes back as a *ParseError.
func Parse(s string) (Address, error) {
	if strings.Contains(s, ".") {
		parts := strings.Split(s, ".")
		if len(parts) != 2 {
			return Address{}, &ParseError{Code: CodeInvalidFormat, Input: s, Message: "want exactly one separator"}
		}
		universe, err := parseComponent(s, parts[0])
		if err != nil {
			return Address{}, err
		}
		channel, err := parseComponent(s, parts[1])
		if err != nil {
			return Address{}, err
		}
		if universe < 1 || universe > MaxUniverse {
			return Address{}, &ParseError{Code: CodeUniverseRange, Input: s, Message: "universe must be in [1,512]"}
		}
		if channel < 1 || channel > ChannelsPerUniverse {
			return Address{}, &ParseError{Code: CodeChannelRange, Input: s, Message: "channel must be in [1,512]"}
		}
		return Address{
			Universe: uint16(universe),
			Channel:  uint16(channel),
			Absolute: (universe-1)*ChannelsPerUniverse + channel,
		}, nil
	}
	return parseAbsolute(s, s)
}

// parseAbsolute handles the absolute notation. input is the full original
// input for error reporting; num is the numeric substring.
func parseAbsolute(input, num string) (Address, error) {
	abs, err := parseComponent(input, num)
	if err != nil {
		return Address{}, err
	}
	if abs < 1 || abs > MaxAbsolute {
		return Address{}, &ParseError{Code: CodeAbsoluteRange, Input: input, Message: "absolute address must be in [1,262144]"}
	}
	return Address{
		Universe: uint16((abs-1)/ChannelsPerUniverse) + 1,
		Channel:  uint16((abs-1)%ChannelsPerUniverse) + 1,
		Absolute: abs,
	}, nil
}

// parseComponent reads one decimal component. ParseUint already enforces
// digits-only for base 10 (signs, spaces and empty strings are syntax
// errors); range failures map to the dedicated overflow code.
func parseComponent(input, part string) (uint32, error) {
	v, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Code: CodeOverflow, Input: input, Message: "numeric component exceeds 32 bits", Cause: err}
		}
		return 0, &ParseError{Code: CodeInvalidFormat, Input: input, Message: "numeric component expected", Cause: err}
	}
	return uint32(v), nil
}
