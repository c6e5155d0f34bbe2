package cosem

import "sort"

// ObisMap is an ordered map of ObisCode to Register, always kept sorted by
// ObisCode's six-tuple order.
type ObisMap struct {
	entries []Register
}

func (m *ObisMap) search(code ObisCode) (int, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return !m.entries[i].obisCode.Less(code)
	})
	if i < len(m.entries) && m.entries[i].obisCode == code {
		return i, true
	}
	return i, false
}

// insert adds reg, or overwrites the existing entry for the same ObisCode.
// Duplicate keys take the last occurrence's value, matching a BTreeMap insert.
func (m *ObisMap) insert(reg Register) {
	i, found := m.search(reg.obisCode)
	if found {
		m.entries[i] = reg
		return
	}
	m.entries = append(m.entries, Register{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = reg
}

// Get looks up the register stored for code.
func (m *ObisMap) Get(code ObisCode) (Register, bool) {
	i, found := m.search(code)
	if !found {
		return Register{}, false
	}
	return m.entries[i], true
}

// Len reports the number of registers held.
func (m *ObisMap) Len() int { return len(m.entries) }

// All returns the registers in ascending ObisCode order. The returned slice
// is owned by the caller; mutating it does not affect the map.
func (m *ObisMap) All() []Register {
	out := make([]Register, len(m.entries))
	copy(out, m.entries)
	return out
}

// Convert atomically replaces the stored value for code via f, a helper for
// post-projection adjustments. It reports whether code was
// present.
func (m *ObisMap) Convert(code ObisCode, f func(Data) Data) bool {
	i, found := m.search(code)
	if !found {
		return false
	}
	m.entries[i].value = f(m.entries[i].value)
	return true
}
