// Package hdlc adapts already-framed HDLC type-3 frames into a DLMS APDU
// byte stream by stripping and validating the 3-byte LLC header. Byte-level
// HDLC framing (flag bytes, bit stuffing, FCS) is consumed from an upstream
// library and is not implemented here.
package hdlc

// Frame is a single upstream HDLC type-3 information frame.
type Frame struct {
	Information []byte
	Segmented   bool
}
