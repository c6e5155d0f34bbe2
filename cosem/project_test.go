package cosem

import "testing"

func obisBytes(a, b, c, d, e, f byte) []byte {
	return []byte{a, b, c, d, e, f}
}

func notificationWithBody(items []Data) Apdu {
	return Apdu{
		Tag: 0x0F,
		DataNotification: &DataNotification{
			NotificationBody: Data{Tag: TagStructure, Value: items},
		},
	}
}

// The (scaler=0, unit=0xFF) sentinel is consumed but leaves the value and
// unit untouched.
func TestProject_ScalerUnitSuppression(t *testing.T) {
	items := []Data{
		{Tag: TagOctetString, Value: obisBytes(1, 0, 1, 8, 0, 255)},
		{Tag: TagDoubleLongUnsigned, Value: uint32(100)},
		{Tag: TagStructure, Value: []Data{
			{Tag: TagInteger, Value: int8(0)},
			{Tag: TagEnum, Value: byte(0xFF)},
		}},
	}

	m, err := Project(notificationWithBody(items))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	reg, ok := m.Get(ObisCode{1, 0, 1, 8, 0, 255})
	if !ok {
		t.Fatal("register missing")
	}
	if reg.Unit() != nil {
		t.Errorf("unit = %v, want nil", reg.Unit())
	}
	if reg.Value().Tag != TagDoubleLongUnsigned || reg.Value().Value.(uint32) != 100 {
		t.Errorf("value = %+v, want DoubleLongUnsigned(100)", reg.Value())
	}
}

// Integer(-3)/Enum(30) over DoubleLongUnsigned(12345) yields
// Float64(12.345) tagged WattHour.
func TestProject_ScalingApplied(t *testing.T) {
	items := []Data{
		{Tag: TagOctetString, Value: obisBytes(1, 0, 1, 8, 0, 255)},
		{Tag: TagDoubleLongUnsigned, Value: uint32(12345)},
		{Tag: TagStructure, Value: []Data{
			{Tag: TagInteger, Value: int8(-3)},
			{Tag: TagEnum, Value: byte(UnitWattHour)},
		}},
	}

	m, err := Project(notificationWithBody(items))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	reg, ok := m.Get(ObisCode{1, 0, 1, 8, 0, 255})
	if !ok {
		t.Fatal("register missing")
	}
	if reg.Unit() == nil || *reg.Unit() != UnitWattHour {
		t.Errorf("unit = %v, want WattHour", reg.Unit())
	}
	if reg.Value().Tag != TagFloat64 {
		t.Fatalf("value tag = %d, want Float64", reg.Value().Tag)
	}
	if got := reg.Value().Value.(float64); got != 12.345 {
		t.Errorf("value = %v, want 12.345", got)
	}
}

func TestProject_NestedForm(t *testing.T) {
	items := []Data{
		{Tag: TagStructure, Value: []Data{
			{Tag: TagOctetString, Value: obisBytes(0, 0, 1, 0, 0, 255)},
			{Tag: TagOctetString, Value: []byte{0xDE, 0xAD}},
		}},
	}

	m, err := Project(notificationWithBody(items))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("map has %d entries, want 1", m.Len())
	}
	reg, ok := m.Get(ObisCode{0, 0, 1, 0, 0, 255})
	if !ok {
		t.Fatal("register missing")
	}
	if reg.Unit() != nil {
		t.Errorf("unit = %v, want nil", reg.Unit())
	}
}

func TestProject_UnknownUnitFails(t *testing.T) {
	items := []Data{
		{Tag: TagOctetString, Value: obisBytes(1, 0, 1, 8, 0, 255)},
		{Tag: TagDoubleLongUnsigned, Value: uint32(1)},
		{Tag: TagStructure, Value: []Data{
			{Tag: TagInteger, Value: int8(0)},
			{Tag: TagEnum, Value: byte(58)}, // reserved gap, no known suffix
		}},
	}
	if _, err := Project(notificationWithBody(items)); err == nil {
		t.Fatal("expected error for unknown unit code")
	}
}

func TestProject_DuplicateKeyTakesLast(t *testing.T) {
	items := []Data{
		{Tag: TagOctetString, Value: obisBytes(1, 0, 1, 8, 0, 255)},
		{Tag: TagUnsigned, Value: byte(1)},
		{Tag: TagOctetString, Value: obisBytes(1, 0, 1, 8, 0, 255)},
		{Tag: TagUnsigned, Value: byte(2)},
	}
	m, err := Project(notificationWithBody(items))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("map has %d entries, want 1", m.Len())
	}
	reg, _ := m.Get(ObisCode{1, 0, 1, 8, 0, 255})
	if reg.Value().Value.(byte) != 2 {
		t.Errorf("value = %v, want 2 (last occurrence)", reg.Value().Value)
	}
}
