package mbus

import "github.com/cybroslabs/dlms-mbus-go/base"

// HeaderType distinguishes the short and long M-Bus transport headers.
type HeaderType int

const (
	HeaderShort HeaderType = iota
	HeaderLong
)

// Direction records which side originated an unsegmented long-frame.
type Direction int

const (
	DirectionMasterSlave Direction = iota
	DirectionSlaveMaster
)

// ControlInformation is the decoded form of a long-frame's leading byte.
type ControlInformation struct {
	// Segmented is true when this telegram is one segment of a multi-frame
	// transfer; Segment/LastSegment are only meaningful in that case.
	Segmented   bool
	Segment     byte
	LastSegment bool
	Header      HeaderType
	Direction   Direction
}

// ParseControlInformation decodes the control-information byte per the
// DLMS/COSEM wrapper profile: 0x00-0x1F are segmented frames (low 4 bits =
// segment index, bit 4 = last-segment); 0x60/0x61/0x7C/0x7D are the four
// unsegmented header/direction combinations; anything else is malformed.
func ParseControlInformation(b byte) (ControlInformation, error) {
	switch {
	case b <= 0x1F:
		return ControlInformation{
			Segmented:   true,
			Segment:     b & 0x0F,
			LastSegment: b&0x10 != 0,
		}, nil
	case b == 0x60:
		return ControlInformation{Header: HeaderLong, Direction: DirectionMasterSlave, LastSegment: true}, nil
	case b == 0x61:
		return ControlInformation{Header: HeaderShort, Direction: DirectionMasterSlave, LastSegment: true}, nil
	case b == 0x7C:
		return ControlInformation{Header: HeaderLong, Direction: DirectionSlaveMaster, LastSegment: true}, nil
	case b == 0x7D:
		return ControlInformation{Header: HeaderShort, Direction: DirectionSlaveMaster, LastSegment: true}, nil
	default:
		return ControlInformation{}, base.NewInvalidFormat("invalid control information byte: %#02x", b)
	}
}
