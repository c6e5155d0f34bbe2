package cosem

import "github.com/cybroslabs/dlms-mbus-go/base"

// SecurityControl is the general-glo-ciphering envelope's security-control
// byte: suite id in the low nibble, flag bits in the high nibble.
type SecurityControl byte

func (s SecurityControl) SuiteID() byte {
	return byte(s) & base.SecuritySuiteMask
}

func (s SecurityControl) WithSuiteID(id byte) SecurityControl {
	return SecurityControl(byte(s)&^base.SecuritySuiteMask | (id & base.SecuritySuiteMask))
}

func (s SecurityControl) Authenticated() bool {
	return byte(s)&base.SecurityAuthenticated != 0
}

func (s SecurityControl) WithAuthenticated(v bool) SecurityControl {
	return withBit(s, base.SecurityAuthenticated, v)
}

func (s SecurityControl) Encrypted() bool {
	return byte(s)&base.SecurityEncrypted != 0
}

func (s SecurityControl) WithEncrypted(v bool) SecurityControl {
	return withBit(s, base.SecurityEncrypted, v)
}

func (s SecurityControl) Broadcast() bool {
	return byte(s)&base.SecurityBroadcast != 0
}

func (s SecurityControl) WithBroadcast(v bool) SecurityControl {
	return withBit(s, base.SecurityBroadcast, v)
}

func (s SecurityControl) Compressed() bool {
	return byte(s)&base.SecurityCompressed != 0
}

func (s SecurityControl) WithCompressed(v bool) SecurityControl {
	return withBit(s, base.SecurityCompressed, v)
}

func withBit(s SecurityControl, mask byte, v bool) SecurityControl {
	if v {
		return SecurityControl(byte(s) | mask)
	}
	return SecurityControl(byte(s) &^ mask)
}
