package mbus

// Telegram is a single upstream M-Bus record. Only the long-frame variant
// carries a DLMS payload; the frame-count byte and other M-Bus framing
// detail are the concern of the upstream telegram framer and are not
// represented here.
type Telegram struct {
	// ControlInformation is the first byte of the long-frame's user data,
	// decoded by ParseControlInformation.
	ControlInformation byte
	// UserData is everything after the control-information byte.
	UserData []byte
}
