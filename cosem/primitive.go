// Package cosem implements the DLMS/COSEM application-layer value model:
// the Data value tree, Date/Time/DateTime, ObisCode, the Unit table, the
// SecurityControl byte, the general-glo-ciphering envelope, APDU dispatch,
// and OBIS projection into an ObisMap.
package cosem

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/cybroslabs/dlms-mbus-go/base"
)

// incompleteOrInvalid classifies a raw io error the way the rest of the
// pipeline expects: running out of bytes mid-structure is Incomplete,
// anything else from the underlying reader is InvalidFormat.
func incompleteOrInvalid(err error, context string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return base.NewIncomplete("%s: %v", context, err)
	}
	return base.WrapInvalidFormat(err, context)
}

func readU8(src io.Reader, tmp *[12]byte) (byte, error) {
	if _, err := io.ReadFull(src, tmp[:1]); err != nil {
		return 0, incompleteOrInvalid(err, "reading byte")
	}
	return tmp[0], nil
}

func readI8(src io.Reader, tmp *[12]byte) (int8, error) {
	b, err := readU8(src, tmp)
	return int8(b), err
}

func readU16(src io.Reader, tmp *[12]byte) (uint16, error) {
	if _, err := io.ReadFull(src, tmp[:2]); err != nil {
		return 0, incompleteOrInvalid(err, "reading uint16")
	}
	return binary.BigEndian.Uint16(tmp[:2]), nil
}

func readI16(src io.Reader, tmp *[12]byte) (int16, error) {
	v, err := readU16(src, tmp)
	return int16(v), err
}

func readU32(src io.Reader, tmp *[12]byte) (uint32, error) {
	if _, err := io.ReadFull(src, tmp[:4]); err != nil {
		return 0, incompleteOrInvalid(err, "reading uint32")
	}
	return binary.BigEndian.Uint32(tmp[:4]), nil
}

func readI32(src io.Reader, tmp *[12]byte) (int32, error) {
	v, err := readU32(src, tmp)
	return int32(v), err
}

func readU64(src io.Reader, tmp *[12]byte) (uint64, error) {
	if _, err := io.ReadFull(src, tmp[:8]); err != nil {
		return 0, incompleteOrInvalid(err, "reading uint64")
	}
	return binary.BigEndian.Uint64(tmp[:8]), nil
}

func readI64(src io.Reader, tmp *[12]byte) (int64, error) {
	v, err := readU64(src, tmp)
	return int64(v), err
}

func readFloat32(src io.Reader, tmp *[12]byte) (float32, error) {
	v, err := readU32(src, tmp)
	return math.Float32frombits(v), err
}

func readFloat64(src io.Reader, tmp *[12]byte) (float64, error) {
	v, err := readU64(src, tmp)
	return math.Float64frombits(v), err
}

func readOctets(src io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, incompleteOrInvalid(err, "reading octets")
	}
	return buf, nil
}
