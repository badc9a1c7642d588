package dmxaddr

import (
	"fmt"
	"strconv"
)

// DMX-512 layout constants.
const (
	// ChannelsPerUniverse is the number of channels in one DMX universe,
	// numbered 1..512.
	ChannelsPerUniverse = 512
	// MaxUniverse is the highest addressable universe.
	MaxUniverse = 512
	// MaxAbsolute is the highest flattened address
	// (MaxUniverse * ChannelsPerUniverse).
	MaxAbsolute = MaxUniverse * ChannelsPerUniverse
)

// Address is a DMX-512 address. It stores both the (Universe, Channel) pair
// and the flattened Absolute form; the three fields are kept mutually
// consistent by every constructor, so Absolute always equals
// (Universe-1)*512 + Channel.
//
// Address is a comparable value type; two addresses are equal exactly when
// == says so.
type Address struct {
	Universe uint16 // Universe, starting from 1.
	Channel  uint16 // Channel within the universe (1-512).
	Absolute uint32 // Flattened address across all universes (1-262144).
}

// New builds an Address from a universe/channel pair, computing the absolute
// form. Both components are 1-based and bounded by MaxUniverse and
// ChannelsPerUniverse.
func New(universe, channel uint16) (Address, error) {
	if universe < 1 || universe > MaxUniverse {
		return Address{}, &ParseError{Code: CodeUniverseRange, Input: fmt.Sprintf("%d.%d", universe, channel), Message: "universe must be in [1,512]"}
	}
	if channel < 1 || channel > ChannelsPerUniverse {
		return Address{}, &ParseError{Code: CodeChannelRange, Input: fmt.Sprintf("%d.%d", universe, channel), Message: "channel must be in [1,512]"}
	}
	return Address{
		Universe: universe,
		Channel:  channel,
		Absolute: uint32(universe-1)*ChannelsPerUniverse + uint32(channel),
	}, nil
}

// FromAbsolute builds an Address from its flattened form, decomposing it
// into the universe/channel pair.
func FromAbsolute(abs uint32) (Address, error) {
	if abs < 1 || abs > MaxAbsolute {
		return Address{}, &ParseError{Code: CodeAbsoluteRange, Input: strconv.FormatUint(uint64(abs), 10), Message: "absolute address must be in [1,262144]"}
	}
	return Address{
		Universe: uint16((abs-1)/ChannelsPerUniverse) + 1,
		Channel:  uint16((abs-1)%ChannelsPerUniverse) + 1,
		Absolute: abs,
	}, nil
}

// String renders the canonical dotted notation with a zero-padded channel,
// e.g. "1.012". Parse accepts the output unchanged.
func (a Address) String() string {
	return fmt.Sprintf("%d.%03d", a.Universe, a.Channel)
}
