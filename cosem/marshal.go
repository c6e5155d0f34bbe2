package cosem

import "encoding/json"

// MarshalJSON renders m as an object keyed by each register's OBIS string,
// each value `{"value": ..., "unit": "..."}`. unit is omitted when the
// register carries none.
func (m *ObisMap) MarshalJSON() ([]byte, error) {
	out := make(map[string]registerJSON, len(m.entries))
	for _, reg := range m.entries {
		out[reg.obisCode.String()] = newRegisterJSON(reg)
	}
	return json.Marshal(out)
}

// newRegisterJSON builds the wire view of one register. Units with no
// printable suffix (Other, Count) are omitted entirely.
func newRegisterJSON(reg Register) registerJSON {
	rj := registerJSON{Value: dataJSONValue(reg.value)}
	if reg.unit != nil {
		if s := reg.unit.String(); s != "" {
			rj.Unit = &s
		}
	}
	return rj
}

type registerJSON struct {
	Value any     `json:"value"`
	Unit  *string `json:"unit,omitempty"`
}

// MarshalJSON renders a single Register the same way ObisMap renders one of
// its entries.
func (r Register) MarshalJSON() ([]byte, error) {
	return json.Marshal(newRegisterJSON(r))
}

// dataJSONValue converts a decoded Data into a plain Go value suitable for
// encoding/json: numeric variants become bare numbers, OctetString becomes
// an array of byte values, Structure recurses, Null becomes nil, and
// DateTime-family variants render via their Stringer.
func dataJSONValue(d Data) any {
	switch d.Tag {
	case TagNull:
		return nil
	case TagStructure:
		items, _ := d.Value.([]Data)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = dataJSONValue(item)
		}
		return out
	case TagOctetString:
		// encoding/json renders []byte as a base64 string; the wire view wants a
		// literal array of byte values, so widen to []int first.
		b, _ := d.Value.([]byte)
		out := make([]int, len(b))
		for i, v := range b {
			out[i] = int(v)
		}
		return out
	case TagUtf8String:
		return d.Value
	case TagDateTime:
		v, _ := d.Value.(DateTime)
		return v.String()
	case TagDate:
		v, _ := d.Value.(Date)
		return v.String()
	case TagTime:
		v, _ := d.Value.(Time)
		return v.String()
	default:
		return d.Value
	}
}
