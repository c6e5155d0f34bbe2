package cosem

import (
	"fmt"

	"github.com/cybroslabs/dlms-mbus-go/base"
)

// ObisCode is a six-octet OBIS identifier, ordered lexicographically by the
// six-tuple (A,B,C,D,E,F).
type ObisCode struct {
	A, B, C, D, E, F byte
}

// NewObisCodeFromBytes decodes an ObisCode from exactly 6 bytes.
func NewObisCodeFromBytes(b []byte) (ObisCode, error) {
	if len(b) != 6 {
		return ObisCode{}, base.NewInvalidFormat("OBIS code must be 6 bytes, got %d", len(b))
	}
	return ObisCode{A: b[0], B: b[1], C: b[2], D: b[3], E: b[4], F: b[5]}, nil
}

// Less reports whether o sorts before other in lexicographic six-tuple order.
func (o ObisCode) Less(other ObisCode) bool {
	if o.A != other.A {
		return o.A < other.A
	}
	if o.B != other.B {
		return o.B < other.B
	}
	if o.C != other.C {
		return o.C < other.C
	}
	if o.D != other.D {
		return o.D < other.D
	}
	if o.E != other.E {
		return o.E < other.E
	}
	return o.F < other.F
}

func (o ObisCode) String() string {
	return fmt.Sprintf("%d-%d:%d.%d.%d*%d", o.A, o.B, o.C, o.D, o.E, o.F)
}
