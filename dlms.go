// Package dlms ties together M-Bus/HDLC reassembly, general-glo-ciphering
// decryption and COSEM APDU decoding into one entry point: hand it
// telegrams or frames, get back an ordered OBIS register map.
package dlms

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/cybroslabs/dlms-mbus-go/base"
	"github.com/cybroslabs/dlms-mbus-go/cosem"
	"github.com/cybroslabs/dlms-mbus-go/hdlc"
	"github.com/cybroslabs/dlms-mbus-go/mbus"
)

// Dlms decodes DLMS/COSEM telemetry under a single fixed AES-128 key.
type Dlms struct {
	key          []byte
	logger       *zap.SugaredLogger
	strictCipher bool
}

// Option configures a Dlms constructed by New.
type Option func(*Dlms)

// WithLogger attaches a structured logger. A nil logger (the default) is
// safe; log calls are skipped.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(d *Dlms) {
		d.logger = logger
	}
}

// WithStrictCipher selects tag-verified AES-128-GCM decryption instead of
// the default tag-less mode.
func WithStrictCipher(strict bool) Option {
	return func(d *Dlms) {
		d.strictCipher = strict
	}
}

const aesKeyLength = 16

// New constructs a Dlms bound to a 16-byte AES-128 key.
func New(key []byte, opts ...Option) (*Dlms, error) {
	if len(key) != aesKeyLength {
		return nil, base.NewInvalidFormat("AES key must be %d bytes, got %d", aesKeyLength, len(key))
	}
	d := &Dlms{key: append([]byte(nil), key...)}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Dlms) logf(template string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Debugf(template, args...)
}

// Decrypt reassembles a run of M-Bus telegrams into one APDU, decrypts it if
// it arrives as a general-glo-ciphering envelope, and projects the result
// into an ordered OBIS register map. It returns the telegrams not consumed
// by this call.
func (d *Dlms) Decrypt(telegrams []mbus.Telegram) ([]mbus.Telegram, *cosem.ObisMap, error) {
	link := &MBusLink{Telegrams: telegrams}
	m, err := d.DecryptLink(link)
	if err != nil {
		return nil, nil, err
	}
	return link.Telegrams, m, nil
}

// DecryptHDLC is Decrypt's counterpart for HDLC/LLC-framed transports.
// serverIsPeer selects which side's src_sap this codec expects from the
// frames supplied.
func (d *Dlms) DecryptHDLC(frames []hdlc.Frame, serverIsPeer bool) ([]hdlc.Frame, *cosem.ObisMap, error) {
	link := &HDLCLink{Frames: frames, PeerIsServer: serverIsPeer}
	m, err := d.DecryptLink(link)
	if err != nil {
		return nil, nil, err
	}
	return link.Frames, m, nil
}

// DecryptLink runs the full pipeline against any DataLink: reassemble one
// APDU payload, decode it (decrypting a general-glo-ciphering envelope when
// present) and project the resulting data-notification.
func (d *Dlms) DecryptLink(link DataLink) (*cosem.ObisMap, error) {
	payload, err := link.NextFrame()
	if err != nil {
		return nil, err
	}
	d.logf("reassembled %d byte apdu", len(payload))

	return d.decodeAndProject(payload)
}

// decodeAndProject decodes an APDU from payload, decrypting and re-decoding
// once if it is a general-glo-ciphering envelope, then projects the
// resulting data-notification into an OBIS register map.
func (d *Dlms) decodeAndProject(payload []byte) (*cosem.ObisMap, error) {
	outer := bytes.NewReader(payload)
	apdu, err := cosem.DecodeApdu(outer)
	if err != nil {
		return nil, err
	}
	if outer.Len() != 0 {
		return nil, base.NewInvalidFormat("%d byte(s) left unconsumed after apdu", outer.Len())
	}

	if apdu.GeneralGloCiphering != nil {
		d.logf("decrypting general-glo-ciphering envelope, strict=%v", d.strictCipher)
		plaintext, err := apdu.GeneralGloCiphering.Decrypt(d.key, d.strictCipher)
		if err != nil {
			return nil, err
		}

		inner := bytes.NewReader(plaintext)
		apdu, err = cosem.DecodeApdu(inner)
		if err != nil {
			return nil, err
		}
		if inner.Len() != 0 {
			return nil, base.NewInvalidFormat("%d byte(s) left unconsumed after decrypted apdu", inner.Len())
		}
	}

	return cosem.Project(apdu)
}
