// Package dmxaddr models DMX-512 addresses.
//
// An Address carries the universe/channel pair and the flattened absolute
// address at the same time, so consumers never recompute the conversion.
// Values are built through fallible entry points only:
//
//   - Parse understands dotted notation ("2.15") and absolute notation ("527")
//   - New and FromAbsolute validate component and flattened inputs
//   - text, JSON and YAML unmarshalling all delegate to Parse
//
// Every failure is reported as a *ParseError carrying a stable issue code;
// nothing in this package panics, logs, or touches I/O. The zero Address is
// not a valid address.
package dmxaddr
