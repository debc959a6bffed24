package sim

import (
	"encoding/json"

	"github.com/pion/rtp"
)

// Wire identity of the simulated stream. Every attempt reuses the same
// SSRC/PT pair; the channel stamps sequence numbers per attempt.
const (
	wireSSRC uint32 = 0x1e55c4a0
	wirePT   uint8  = 96

	timestampStep uint32 = 160
)

// Packet wraps one opaque payload for a single transmission attempt.
// Payloads must be JSON-serializable.
type Packet struct {
	Data any
}

func NewPacket(data any) Packet { return Packet{Data: data} }

// envelope is the fixed structural body carried in the RTP payload.
type envelope struct {
	Data any `json:"data"`
}

// EncodeError reports a payload that cannot be serialized.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "encode packet: " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }

// Encode marshals the payload into the JSON envelope and frames it as an
// RTP packet. Deterministic for a given payload and sequence number.
func (p Packet) Encode(seq uint16) ([]byte, error) {
	body, err := json.Marshal(envelope{Data: p.Data})
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	frame := rtp.Packet{
		Header: rtp.Header{
			Version:        2,
			PayloadType:    wirePT,
			SequenceNumber: seq,
			Timestamp:      uint32(seq) * timestampStep,
			SSRC:           wireSSRC,
		},
		Payload: body,
	}
	buf, err := frame.Marshal()
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return buf, nil
}

// DecodePacket parses a wire frame back into its payload. ok is false on
// empty input, an unparsable frame, an unparsable body, or an envelope
// without the data field. A failed decode is the expected signal for a
// corrupted transmission, so no error detail is surfaced here.
func DecodePacket(buf []byte) (any, bool) {
	if len(buf) == 0 {
		return nil, false
	}
	var frame rtp.Packet
	if err := frame.Unmarshal(buf); err != nil {
		return nil, false
	}
	var env envelope
	if err := json.Unmarshal(frame.Payload, &env); err != nil {
		return nil, false
	}
	if env.Data == nil {
		return nil, false
	}
	return env.Data, true
}
