package cosem

import (
	"bytes"
	"testing"
)

// A captured encrypted general-glo-ciphering envelope (354 bytes), the tag
// byte 0xDB included so DecodeApdu can dispatch straight to it.
var encryptedEnvelope = []byte{
	0xdb, 0x08, 0x4b, 0x46, 0x4d, 0x10, 0x20, 0x01, 0x12, 0xa9, 0x82, 0x01, 0x55, 0x21, 0x00, 0x02,
	0xbc, 0x66, 0xf4, 0x50, 0xb5, 0x97, 0xb1, 0x1f, 0x09, 0x45, 0x0a, 0x68, 0x03, 0x63, 0xe7, 0x18,
	0x41, 0xc4, 0x09, 0x82, 0x9a, 0xab, 0xe0, 0x8b, 0x44, 0x3f, 0x6c, 0x9a, 0x70, 0x73, 0xbc, 0xc4,
	0x5c, 0xdb, 0x8b, 0x57, 0x48, 0x85, 0x11, 0x80, 0x42, 0x0c, 0x79, 0xd9, 0x0e, 0x26, 0xf1, 0x26,
	0x15, 0xbe, 0xed, 0x5f, 0xea, 0x7d, 0xc8, 0x54, 0x26, 0xaf, 0x38, 0x9c, 0x8c, 0x92, 0x02, 0x9f,
	0xf3, 0x64, 0x63, 0xf7, 0xbf, 0x1b, 0x9e, 0x56, 0xa3, 0x88, 0x75, 0x69, 0xf6, 0x1a, 0x5a, 0x86,
	0x23, 0x9a, 0xd6, 0x2f, 0xda, 0x85, 0x48, 0xb3, 0xf6, 0x22, 0x61, 0x25, 0x3f, 0xe5, 0xcd, 0x0e,
	0x06, 0xb7, 0x14, 0xad, 0x5c, 0x26, 0x85, 0xc8, 0x45, 0x57, 0x70, 0x8d, 0x57, 0xde, 0xba, 0x10,
	0xca, 0xc0, 0x8d, 0xeb, 0xba, 0xcc, 0xc5, 0x66, 0x2b, 0x45, 0x50, 0x14, 0xbc, 0x8b, 0x44, 0x17,
	0x48, 0x1d, 0x2b, 0x9a, 0xf1, 0x66, 0x22, 0x07, 0x1f, 0xbe, 0xef, 0x5e, 0xce, 0xaf, 0x1e, 0x39,
	0xf7, 0x99, 0x6c, 0xa9, 0x98, 0x27, 0x68, 0x31, 0xe6, 0x84, 0xe0, 0x70, 0x44, 0x57, 0xd4, 0xcd,
	0x64, 0x96, 0xca, 0xd4, 0xdb, 0xd9, 0x03, 0x35, 0x98, 0x11, 0x13, 0x5e, 0x7e, 0x70, 0xb4, 0x06,
	0x30, 0x4c, 0x8e, 0x7e, 0xce, 0x20, 0x90, 0xcd, 0x74, 0x3a, 0x08, 0x2d, 0xa6, 0x2e, 0xd6, 0x20,
	0x83, 0xb3, 0xd3, 0xf1, 0x21, 0xf9, 0x97, 0x2d, 0xd6, 0x48, 0x78, 0x86, 0xf6, 0xaf, 0x2c, 0x5c,
	0x76, 0x39, 0x81, 0xa2, 0xe1, 0xa1, 0x28, 0x3c, 0x52, 0x12, 0xa8, 0x15, 0x77, 0x84, 0x7d, 0x40,
	0xf7, 0x64, 0xba, 0x93, 0x6d, 0x26, 0xc6, 0x33, 0xec, 0x73, 0xb0, 0x1b, 0xc7, 0x1a, 0xfd, 0x6d,
	0x4c, 0x10, 0xbb, 0xcb, 0xea, 0x96, 0x86, 0xf0, 0x3d, 0x40, 0x84, 0x99, 0xee, 0x7f, 0x16, 0x35,
	0x69, 0xea, 0x7d, 0xb6, 0xf5, 0x23, 0xea, 0xbd, 0xfe, 0x5d, 0x31, 0xb5, 0xb2, 0x34, 0xf3, 0x09,
	0xc5, 0x71, 0xbc, 0xec, 0x4f, 0x3f, 0xae, 0x4c, 0xe9, 0xab, 0xce, 0x92, 0x62, 0x4a, 0x37, 0xeb,
	0x62, 0x0d, 0x2c, 0x2a, 0xdd, 0xf6, 0x0c, 0xd5, 0xaa, 0x65, 0xd1, 0xe2, 0xe4, 0x5c, 0xe2, 0x13,
	0x4f, 0x0e, 0x4c, 0x2f, 0x70, 0xe1, 0x9d, 0x93, 0x6f, 0x84, 0x5c, 0x6f, 0x36, 0x91, 0xb3, 0x26,
	0x00, 0x5d, 0x43, 0x9c, 0xe6, 0x46, 0x27, 0x53, 0x92, 0xf6, 0x0b, 0x3b, 0x69, 0x90, 0x3f, 0x82,
	0x84, 0x78,
}

var unicastKey = []byte{
	0xde, 0xaf, 0xbe, 0xef, 0xca, 0xfe, 0xba, 0xbe, 0xde, 0xaf, 0xbe, 0xef, 0xca, 0xfe, 0xba, 0xbe,
}

func TestDecodeGeneralGloCiphering_Envelope(t *testing.T) {
	apdu, err := DecodeApdu(bytes.NewReader(encryptedEnvelope))
	if err != nil {
		t.Fatalf("DecodeApdu: %v", err)
	}
	env := apdu.GeneralGloCiphering
	if env == nil {
		t.Fatal("expected a GeneralGloCiphering envelope")
	}
	wantTitle := []byte{0x4b, 0x46, 0x4d, 0x10, 0x20, 0x01, 0x12, 0xa9}
	if !bytes.Equal(env.SystemTitle[:], wantTitle) {
		t.Errorf("system title = % x, want % x", env.SystemTitle, wantTitle)
	}
	if env.InvocationCounter != 0x0002bc66 {
		t.Errorf("invocation counter = %#x, want 0x0002bc66", env.InvocationCounter)
	}
	if !env.SecurityControl.Encrypted() {
		t.Error("expected Encrypted() true")
	}
	if len(env.Payload) != 336 {
		t.Errorf("payload length = %d, want 336", len(env.Payload))
	}

	plaintext, err := env.Decrypt(unicastKey, false)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if env.SecurityControl.Encrypted() {
		t.Error("expected Encrypted() false after decrypt")
	}

	inner := bytes.NewReader(plaintext)
	innerApdu, err := DecodeApdu(inner)
	if err != nil {
		t.Fatalf("re-decoding plaintext: %v", err)
	}
	if inner.Len() != 0 {
		t.Errorf("%d byte(s) left over after re-decoding plaintext", inner.Len())
	}
	if innerApdu.DataNotification == nil {
		t.Fatal("expected plaintext to decode to a DataNotification")
	}
	if innerApdu.DataNotification.LongInvokeIDAndPriority.InvokeID() != 0x02b5e4 {
		t.Errorf("invoke id = %#x, want 0x02b5e4", innerApdu.DataNotification.LongInvokeIDAndPriority.InvokeID())
	}
}

func TestProject_DecryptedNotification(t *testing.T) {
	apdu, err := DecodeApdu(bytes.NewReader(encryptedEnvelope))
	if err != nil {
		t.Fatalf("DecodeApdu: %v", err)
	}
	plaintext, err := apdu.GeneralGloCiphering.Decrypt(unicastKey, false)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	inner, err := DecodeApdu(bytes.NewReader(plaintext))
	if err != nil {
		t.Fatalf("re-decoding plaintext: %v", err)
	}

	m, err := Project(inner)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if m.Len() != 15 {
		t.Fatalf("map has %d entries, want 15", m.Len())
	}

	clock, ok := m.Get(ObisCode{A: 0, B: 0, C: 1, D: 0, E: 0, F: 0xFF})
	if !ok {
		t.Fatal("missing clock register 0-0:1.0.0*255")
	}
	if clock.Value().Tag != TagOctetString || clock.Unit() != nil {
		t.Errorf("clock register = %+v, want unscaled octet string", clock.Value())
	}

	// Voltage L1: LongUnsigned 2336 with scaler -1 and unit V.
	voltage, ok := m.Get(ObisCode{A: 1, B: 0, C: 32, D: 7, E: 0, F: 0xFF})
	if !ok {
		t.Fatal("missing register 1-0:32.7.0*255")
	}
	if voltage.Value().Tag != TagFloat32 || voltage.Value().Value.(float32) != 233.6 {
		t.Errorf("voltage = %+v, want Float32(233.6)", voltage.Value())
	}
	if voltage.Unit() == nil || *voltage.Unit() != UnitVolt {
		t.Errorf("voltage unit = %v, want Volt", voltage.Unit())
	}

	// Active energy import: DoubleLongUnsigned 5308437 with scaler 0 and unit Wh.
	energy, ok := m.Get(ObisCode{A: 1, B: 0, C: 1, D: 8, E: 0, F: 0xFF})
	if !ok {
		t.Fatal("missing register 1-0:1.8.0*255")
	}
	if energy.Value().Tag != TagFloat64 || energy.Value().Value.(float64) != 5308437 {
		t.Errorf("energy = %+v, want Float64(5308437)", energy.Value())
	}
	if energy.Unit() == nil || *energy.Unit() != UnitWattHour {
		t.Errorf("energy unit = %v, want Wh", energy.Unit())
	}

	all := m.All()
	for i := 1; i < len(all); i++ {
		if !all[i-1].ObisCode().Less(all[i].ObisCode()) {
			t.Fatalf("map not in ascending obis order at %d: %v then %v", i, all[i-1].ObisCode(), all[i].ObisCode())
		}
	}
}
