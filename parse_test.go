package dmxaddr

import "testing"

func TestParse_Dotted(t *testing.T) {
	cases := []struct {
		in   string
		want Address
	}{
		{"1.1", Address{Universe: 1, Channel: 1, Absolute: 1}},
		{"1.511", Address{Universe: 1, Channel: 511, Absolute: 511}},
		{"1.512", Address{Universe: 1, Channel: 512, Absolute: 512}},
		{"2.1", Address{Universe: 2, Channel: 1, Absolute: 513}},
		{"3.210", Address{Universe: 3, Channel: 210, Absolute: 1234}},
		{"256.512", Address{Universe: 256, Channel: 512, Absolute: 131072}},
		{"512.512", Address{Universe: 512, Channel: 512, Absolute: 262144}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) err: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParse_Absolute(t *testing.T) {
	cases := []struct {
		in   string
		want Address
	}{
		{"1", Address{Universe: 1, Channel: 1, Absolute: 1}},
		{"224", Address{Universe: 1, Channel: 224, Absolute: 224}},
		{"512", Address{Universe: 1, Channel: 512, Absolute: 512}},
		{"513", Address{Universe: 2, Channel: 1, Absolute: 513}},
		{"1024", Address{Universe: 2, Channel: 512, Absolute: 1024}},
		{"1234", Address{Universe: 3, Channel: 210, Absolute: 1234}},
		{"1536", Address{Universe: 3, Channel: 512, Absolute: 1536}},
		{"1537", Address{Universe: 4, Channel: 1, Absolute: 1537}},
		{"131072", Address{Universe: 256, Channel: 512, Absolute: 131072}},
		{"262144", Address{Universe: 512, Channel: 512, Absolute: 262144}},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q) err: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		in   string
		code string
	}{
		{"", CodeInvalidFormat},
		{"abc", CodeInvalidFormat},
		{"something invalid", CodeInvalidFormat},
		{".", CodeInvalidFormat},
		{"2.", CodeInvalidFormat},
		{".2", CodeInvalidFormat},
		{"1.2.3", CodeInvalidFormat},
		{"-3", CodeInvalidFormat},
		{"+3", CodeInvalidFormat},
		{"-1.3", CodeInvalidFormat},
		{"1.-3", CodeInvalidFormat},
		{" 1", CodeInvalidFormat},
		{"1 ", CodeInvalidFormat},
		{"1. 2", CodeInvalidFormat},
		{"0.1", CodeUniverseRange},
		{"0.0", CodeUniverseRange},
		{"513.1", CodeUniverseRange},
		{"1.0", CodeChannelRange},
		{"2.0", CodeChannelRange},
		{"1.513", CodeChannelRange},
		{"2.513", CodeChannelRange},
		{"0", CodeAbsoluteRange},
		{"262145", CodeAbsoluteRange},
		{"4294967295", CodeAbsoluteRange},
		{"4294967296", CodeOverflow},
		{"1.99999999999", CodeOverflow},
		{"98981265123519681981681514984984984464984984", CodeOverflow},
	}
	for _, c := range cases {
		_, err := Parse(c.in)
		if err == nil {
			t.Fatalf("Parse(%q): expected error", c.in)
		}
		pe, ok := AsParseError(err)
		if !ok {
			t.Fatalf("Parse(%q): error is not a *ParseError: %v", c.in, err)
		}
		if pe.Code != c.code {
			t.Fatalf("Parse(%q) code = %s, want %s", c.in, pe.Code, c.code)
		}
		if pe.Input != c.in {
			t.Fatalf("Parse(%q) recorded input %q", c.in, pe.Input)
		}
	}
}

func TestParse_ErrorNeverMutates(t *testing.T) {
	var a Address
	if err := a.UnmarshalText([]byte("513.1")); err == nil {
		t.Fatalf("expected error")
	}
	if a != (Address{}) {
		t.Fatalf("receiver mutated on failure: %+v", a)
	}
}
