package mbus

import "github.com/cybroslabs/dlms-mbus-go/base"

// Reassemble joins one or more segmented long-frame telegrams into a single
// APDU byte stream. It returns the telegrams not consumed by
// this call and the joined payload.
//
// expectedSegment is tracked as a plain byte and wraps at 256 even though
// ControlInformation.Segment only ever carries a 4-bit value (0-15); this
// asymmetry is preserved deliberately rather than patched, per the design
// note recorded in DESIGN.md.
//
// On success the returned payload may alias the first telegram's UserData
// (single-frame case) rather than being copied, to avoid allocation in the
// common case.
func Reassemble(telegrams []Telegram) (remaining []Telegram, payload []byte, err error) {
	var buffer []byte
	var expectedSegment byte
	consumed := 0

	for i, t := range telegrams {
		ci, cerr := ParseControlInformation(t.ControlInformation)
		if cerr != nil {
			return nil, nil, cerr
		}

		rest := t.UserData
		if ci.Segmented {
			if ci.Segment != expectedSegment {
				return nil, nil, base.NewChecksumMismatch(
					"segment sequence violation: expected %d, got %d", expectedSegment, ci.Segment)
			}
			expectedSegment++ // wraps mod 256 by construction
		} else {
			switch ci.Header {
			case HeaderLong:
				if len(rest) < 6 {
					return nil, nil, base.NewInvalidFormat("long transport header truncated")
				}
				rest = rest[6:]
			case HeaderShort:
				if len(rest) < 3 {
					return nil, nil, base.NewInvalidFormat("short transport header truncated")
				}
				rest = rest[3:]
			}
		}

		if len(rest) < 2 {
			return nil, nil, base.NewInvalidFormat("missing source/destination SAP bytes")
		}
		rest = rest[2:]

		consumed++
		if consumed == 1 && ci.LastSegment {
			// Single-frame fast path: alias the caller's slice, no copy.
			return telegrams[i+1:], rest, nil
		}

		buffer = append(buffer, rest...)

		if ci.LastSegment {
			return telegrams[i+1:], buffer, nil
		}
	}

	return nil, nil, base.NewIncomplete("reassembly ran out of telegrams before last segment")
}
