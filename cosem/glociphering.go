package cosem

import (
	"io"

	"github.com/cybroslabs/dlms-mbus-go/base"
	"github.com/cybroslabs/dlms-mbus-go/ciphering"
)

// GeneralGloCiphering is a parsed general-glo-ciphering envelope.
type GeneralGloCiphering struct {
	SystemTitle       [8]byte
	SecurityControl   SecurityControl
	InvocationCounter uint32 // only meaningful when SecurityControl requires it
	Payload           []byte
}

const systemTitleTag = 0x08

// decodeGeneralGloCiphering reads the envelope grammar immediately after the
// 0xDB APDU tag byte has already been consumed by the caller.
//
// The payload length is computed as block length minus 5 regardless of
// whether the 4-byte invocation counter actually follows, which only
// produces a correct payload length when authentication or encryption is
// set (the only case general-glo-ciphering carries in practice).
func decodeGeneralGloCiphering(src io.Reader) (GeneralGloCiphering, error) {
	var tmp [12]byte

	tagByte, err := readU8(src, &tmp)
	if err != nil {
		return GeneralGloCiphering{}, err
	}
	if tagByte != systemTitleTag {
		return GeneralGloCiphering{}, base.NewInvalidFormat("expected system-title length tag 0x08, got %#02x", tagByte)
	}

	var envelope GeneralGloCiphering
	titleBytes, err := readOctets(src, 8)
	if err != nil {
		return GeneralGloCiphering{}, err
	}
	copy(envelope.SystemTitle[:], titleBytes)

	lenByte, err := readU8(src, &tmp)
	if err != nil {
		return GeneralGloCiphering{}, err
	}
	var blockLen int
	if lenByte == 0x82 {
		l, err := readU16(src, &tmp)
		if err != nil {
			return GeneralGloCiphering{}, err
		}
		blockLen = int(l)
	} else {
		blockLen = int(lenByte)
	}
	payloadLen := blockLen - 5
	if payloadLen < 0 {
		return GeneralGloCiphering{}, base.NewInvalidFormat("ciphertext block length too short: %d", blockLen)
	}

	sc, err := readU8(src, &tmp)
	if err != nil {
		return GeneralGloCiphering{}, err
	}
	envelope.SecurityControl = SecurityControl(sc)

	if envelope.SecurityControl.Authenticated() || envelope.SecurityControl.Encrypted() {
		ic, err := readU32(src, &tmp)
		if err != nil {
			return GeneralGloCiphering{}, err
		}
		envelope.InvocationCounter = ic
	}

	payload, err := readOctets(src, payloadLen)
	if err != nil {
		return GeneralGloCiphering{}, err
	}
	envelope.Payload = payload

	return envelope, nil
}

// Decrypt returns the plaintext payload. When the encryption bit is clear
// the payload is returned unchanged. When set, it is decrypted in place
// with AES-128-GCM using the tag-less mode by default, or the
// strict tag-verified mode when strict is true.
func (g *GeneralGloCiphering) Decrypt(key []byte, strict bool) ([]byte, error) {
	if !g.SecurityControl.Encrypted() {
		return g.Payload, nil
	}

	iv, err := ciphering.BuildIV(g.SystemTitle[:], g.InvocationCounter)
	if err != nil {
		return nil, err
	}

	var plaintext []byte
	if strict {
		plaintext, err = ciphering.DecryptStrict(key, iv, g.Payload)
	} else {
		plaintext, err = ciphering.Decrypt(key, iv, g.Payload)
	}
	if err != nil {
		return nil, err
	}

	g.SecurityControl = g.SecurityControl.WithEncrypted(false)
	g.Payload = plaintext
	return plaintext, nil
}
