package cosem

import (
	"fmt"
	"io"

	"github.com/cybroslabs/dlms-mbus-go/base"
)

// Date carries calendar fields with no range validation: meters legitimately
// emit the sentinel bytes 0xFF/0xFFFF for "not specified" fields, and this
// type keeps them verbatim rather than rejecting them.
type Date struct {
	Year       uint16
	Month      byte
	DayOfMonth byte
	DayOfWeek  byte
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.DayOfMonth)
}

func readDate(src io.Reader, tmp *[12]byte) (Date, error) {
	if _, err := io.ReadFull(src, tmp[:5]); err != nil {
		return Date{}, incompleteOrInvalid(err, "reading Date")
	}
	return Date{
		Year:       uint16(tmp[0])<<8 | uint16(tmp[1]),
		Month:      tmp[2],
		DayOfMonth: tmp[3],
		DayOfWeek:  tmp[4],
	}, nil
}

// Time carries optional clock fields: byte value 0xFF means the field is
// absent; any other out-of-range byte is a parse failure.
type Time struct {
	Hour      *byte
	Minute    *byte
	Second    *byte
	Hundredth *byte
}

func readTime(src io.Reader, tmp *[12]byte) (Time, error) {
	if _, err := io.ReadFull(src, tmp[:4]); err != nil {
		return Time{}, incompleteOrInvalid(err, "reading Time")
	}
	hour, err := sentinelField(tmp[0], 23, "hour")
	if err != nil {
		return Time{}, err
	}
	minute, err := sentinelField(tmp[1], 59, "minute")
	if err != nil {
		return Time{}, err
	}
	second, err := sentinelField(tmp[2], 59, "second")
	if err != nil {
		return Time{}, err
	}
	hundredth, err := sentinelField(tmp[3], 99, "hundredth")
	if err != nil {
		return Time{}, err
	}
	return Time{Hour: hour, Minute: minute, Second: second, Hundredth: hundredth}, nil
}

func sentinelField(b byte, max byte, name string) (*byte, error) {
	if b == 0xFF {
		return nil, nil
	}
	if b > max {
		return nil, base.NewInvalidFormat("%s out of range: %d", name, b)
	}
	v := b
	return &v, nil
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%02d", derefOr(t.Hour, 0), derefOr(t.Minute, 0), derefOr(t.Second, 0), derefOr(t.Hundredth, 0))
}

func derefOr(b *byte, def byte) byte {
	if b == nil {
		return def
	}
	return *b
}

// ClockStatus is the trailing status byte of a DateTime, bit-addressable.
type ClockStatus byte

const (
	clockInvalidValue   ClockStatus = 0x01
	clockDoubtfulValue  ClockStatus = 0x02
	clockDifferentBase  ClockStatus = 0x04
	clockInvalidStatus  ClockStatus = 0x08
	clockDaylightSaving ClockStatus = 0x80
)

func (c ClockStatus) InvalidValue() bool   { return c&clockInvalidValue != 0 }
func (c ClockStatus) DoubtfulValue() bool  { return c&clockDoubtfulValue != 0 }
func (c ClockStatus) DifferentBase() bool  { return c&clockDifferentBase != 0 }
func (c ClockStatus) InvalidStatus() bool  { return c&clockInvalidStatus != 0 }
func (c ClockStatus) DaylightSaving() bool { return c&clockDaylightSaving != 0 }

// DateTime combines Date and Time with an optional UTC offset (in minutes,
// sentinel 0x8000) and an optional clock-status byte (sentinel 0xFF).
type DateTime struct {
	Date         Date
	Time         Time
	OffsetMinute *int16
	ClockStatus  *ClockStatus
}

func readDateTime(src io.Reader, tmp *[12]byte) (DateTime, error) {
	date, err := readDate(src, tmp)
	if err != nil {
		return DateTime{}, err
	}
	time, err := readTime(src, tmp)
	if err != nil {
		return DateTime{}, err
	}
	if _, err := io.ReadFull(src, tmp[:3]); err != nil {
		return DateTime{}, incompleteOrInvalid(err, "reading DateTime offset/status")
	}
	offset := int16(uint16(tmp[0])<<8 | uint16(tmp[1]))
	var offsetPtr *int16
	if uint16(offset) != 0x8000 {
		o := offset
		offsetPtr = &o
	}
	var statusPtr *ClockStatus
	if tmp[2] != 0xFF {
		s := ClockStatus(tmp[2])
		statusPtr = &s
	}
	return DateTime{Date: date, Time: time, OffsetMinute: offsetPtr, ClockStatus: statusPtr}, nil
}

// String renders "<date>T<time>[±HH:MM]". The sign is inverted from the
// usual UTC-offset convention ('-' for a non-negative offset, '+' for
// negative); deployed consumers rely on this rendering, so it must not be
// corrected. See DESIGN.md.
func (dt DateTime) String() string {
	s := dt.Date.String() + "T" + dt.Time.String()
	if dt.OffsetMinute != nil {
		sign := '-'
		off := *dt.OffsetMinute
		if off < 0 {
			sign = '+'
			off = -off
		}
		s += fmt.Sprintf("%c%02d:%02d", sign, off/60, off%60)
	}
	return s
}
