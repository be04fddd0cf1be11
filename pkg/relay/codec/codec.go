// Package codec encodes a relay payload into the opaque binary blob carried
// across the process boundary, and decodes it back on arrival. The format is
// MessagePack over the payload's sixteen containers, including empty ones;
// it is versionless and only promises that Decode inverts Encode within one
// build.
package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"mercator-hq/ganymede/pkg/relay"
)

// DecodeError reports a structurally invalid byte sequence. Decoding is
// all-or-nothing: when a DecodeError is returned, no partial payload is
// produced and nothing may be applied from the attempted replay.
type DecodeError struct {
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("payload decode failed: %v", e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Encode serializes the full payload, every container included, into a
// single byte sequence. Callers must hold the owning accumulator's lock for
// the duration of the call; see buffer.Accumulator.TakeBuf for the harvest
// path that does this.
func Encode(p *relay.Payload) ([]byte, error) {
	buf, err := msgpack.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("payload encode failed: %w", err)
	}
	return buf, nil
}

// Decode is the inverse of Encode. The returned payload has every container
// allocated, so `Decode(Encode(p))` is observationally equal to p for any
// payload p, including one with only empty containers.
func Decode(buf []byte) (*relay.Payload, error) {
	var p relay.Payload
	if err := msgpack.Unmarshal(buf, &p); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	p.Init()
	return &p, nil
}
