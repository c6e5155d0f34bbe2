package cosem

import "github.com/cybroslabs/dlms-mbus-go/base"

// Register is one projected OBIS register: its code, its (possibly scaled)
// value, and the unit the scaler/unit pair named, if any.
type Register struct {
	obisCode ObisCode
	value    Data
	unit     *Unit
}

func (r Register) ObisCode() ObisCode { return r.obisCode }
func (r Register) Value() Data        { return r.value }
func (r Register) Unit() *Unit        { return r.unit }

// parseObisCode takes the leading item, which must be a 6-byte OctetString.
func parseObisCode(items []Data) (ObisCode, int, error) {
	if len(items) == 0 {
		return ObisCode{}, 0, base.NewInvalidFormat("register: missing obis code")
	}
	item := items[0]
	if item.Tag != TagOctetString {
		return ObisCode{}, 0, base.NewInvalidFormat("register: expected octet-string obis code, got tag %d", item.Tag)
	}
	code, err := NewObisCodeFromBytes(item.Value.([]byte))
	if err != nil {
		return ObisCode{}, 0, err
	}
	return code, 1, nil
}

// parseScalerUnit peeks the leading item. consumed reports whether the item
// is a 2-element [Integer, Enum] structure belonging to this register; apply
// is false for the (0, 0xFF) sentinel, which is consumed but suppresses
// scaling and carries no unit.
func parseScalerUnit(items []Data) (scaler int8, unit byte, consumed, apply bool) {
	if len(items) == 0 {
		return 0, 0, false, false
	}
	item := items[0]
	if item.Tag != TagStructure {
		return 0, 0, false, false
	}
	fields, _ := item.Value.([]Data)
	if len(fields) != 2 {
		return 0, 0, false, false
	}
	if fields[0].Tag != TagInteger || fields[1].Tag != TagEnum {
		return 0, 0, false, false
	}
	scaler = fields[0].Value.(int8)
	unit = fields[1].Value.(byte)
	apply = scaler != 0 || unit != 0xFF
	return scaler, unit, true, apply
}

// scaleValue applies the scaler/unit pair's numeric factor, converting
// LongUnsigned to Float32 and DoubleLongUnsigned to Float64; every other
// variant passes through unchanged.
func scaleValue(value Data, scaler int8) Data {
	n := int(scaler)
	if n < 0 {
		n = -n
	}
	factor := uint64(1)
	for i := 0; i < n; i++ {
		factor *= 10
	}

	switch value.Tag {
	case TagLongUnsigned:
		v := float32(value.Value.(uint16))
		f := float32(factor)
		if scaler < 0 {
			return Data{Tag: TagFloat32, Value: v / f}
		}
		return Data{Tag: TagFloat32, Value: v * f}
	case TagDoubleLongUnsigned:
		v := float64(value.Value.(uint32))
		f := float64(factor)
		if scaler < 0 {
			return Data{Tag: TagFloat64, Value: v / f}
		}
		return Data{Tag: TagFloat64, Value: v * f}
	default:
		return value
	}
}

// parseRegisterFlat parses the flat [obis, value, scaler_unit?] form.
func parseRegisterFlat(items []Data) (Register, int, error) {
	obis, n, err := parseObisCode(items)
	if err != nil {
		return Register{}, 0, err
	}
	if len(items) <= n {
		return Register{}, 0, base.NewInvalidFormat("register: missing value")
	}
	value := items[n]
	consumed := n + 1

	var unitPtr *Unit
	if scaler, unitCode, suConsumed, apply := parseScalerUnit(items[consumed:]); suConsumed {
		consumed++
		if apply {
			u, known := LookupUnit(unitCode)
			if !known {
				return Register{}, 0, base.NewInvalidFormat("register: unknown unit code %#02x", unitCode)
			}
			value = scaleValue(value, scaler)
			unitPtr = &u
		}
	}

	return Register{obisCode: obis, value: value, unit: unitPtr}, consumed, nil
}

// parseRegisterNested parses a single Structure wrapping the flat form,
// requiring the wrapped structure to be fully consumed.
func parseRegisterNested(items []Data) (Register, int, error) {
	if len(items) == 0 {
		return Register{}, 0, base.NewInvalidFormat("register: empty input")
	}
	item := items[0]
	if item.Tag != TagStructure {
		return Register{}, 0, base.NewInvalidFormat("register: expected nested structure, got tag %d", item.Tag)
	}
	inner, _ := item.Value.([]Data)
	reg, consumed, err := parseRegisterFlat(inner)
	if err != nil {
		return Register{}, 0, err
	}
	if consumed != len(inner) {
		return Register{}, 0, base.NewInvalidFormat("register: %d item(s) left unconsumed inside nested structure", len(inner)-consumed)
	}
	return reg, 1, nil
}

// parseRegister tries the flat form first, falling back to the nested form.
func parseRegister(items []Data) (Register, int, error) {
	if reg, n, err := parseRegisterFlat(items); err == nil {
		return reg, n, nil
	}
	return parseRegisterNested(items)
}
