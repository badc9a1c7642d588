package dmxaddr

import "gopkg.in/yaml.v3"

// MarshalYAML encodes the address as its canonical dotted string.
func (a Address) MarshalYAML() (any, error) {
	return a.String(), nil
}

// UnmarshalYAML accepts any scalar node whose text Parse understands. An
// unquoted "1.012" arrives as a float-looking scalar and a bare "527" as an
// int-looking one; both carry the raw text, which is what Parse wants.
func (a *Address) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return &ParseError{Code: CodeInvalidFormat, Input: value.Value, Message: "expected scalar YAML node"}
	}
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
