// Package ciphering implements the AES-128-GCM primitives used to decrypt
// general-glo-ciphering envelopes. Both a tag-less mode (compatible with
// meters that omit the authentication tag) and a strict, tag-verified mode
// are exposed.
package ciphering

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/cybroslabs/dlms-mbus-go/base"
)

// BuildIV constructs the 12-byte GCM IV from an 8-byte system title and a
// 32-bit big-endian invocation counter.
func BuildIV(systemTitle []byte, invocationCounter uint32) ([]byte, error) {
	if len(systemTitle) != 8 {
		return nil, base.NewInvalidFormat("system title must be 8 bytes, got %d", len(systemTitle))
	}
	iv := make([]byte, base.GCMIVLength)
	copy(iv, systemTitle)
	iv[8] = byte(invocationCounter >> 24)
	iv[9] = byte(invocationCounter >> 16)
	iv[10] = byte(invocationCounter >> 8)
	iv[11] = byte(invocationCounter)
	return iv, nil
}

// Decrypt performs the tag-less decrypt: AES-CTR keyed with
// the same 12-byte IV GCM would use, equivalent to GCM's internal
// counter-mode data step without the GHASH/tag machinery. The ciphertext
// carries no trailing authentication tag.
func Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, base.NewDecryptionFailed(err, "creating AES cipher")
	}
	if len(iv) != base.GCMIVLength {
		return nil, base.NewInvalidFormat("IV must be %d bytes, got %d", base.GCMIVLength, len(iv))
	}

	// GCM's counter starts at J0||1 where J0 = IV||0^31||1 for a 96-bit IV;
	// the initial counter block fed to CTR is therefore IV followed by the
	// 4-byte big-endian value 2, not 1 (block 1 is reserved for the tag).
	counterBlock := make([]byte, aes.BlockSize)
	copy(counterBlock, iv)
	counterBlock[aes.BlockSize-1] = 2

	stream := cipher.NewCTR(block, counterBlock)
	plaintext := make([]byte, len(ciphertext))
	stream.XORKeyStream(plaintext, ciphertext)
	return plaintext, nil
}

// DecryptStrict performs tag-verified AES-128-GCM decryption: ciphertext
// must carry a trailing 12-byte authentication tag, empty additional
// authenticated data.
func DecryptStrict(key, iv, ciphertextWithTag []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, base.NewDecryptionFailed(err, "creating AES cipher")
	}
	aead, err := cipher.NewGCMWithTagSize(block, base.GCMTagLength)
	if err != nil {
		return nil, base.NewDecryptionFailed(err, "creating GCM AEAD")
	}
	if len(ciphertextWithTag) < base.GCMTagLength {
		return nil, base.NewInvalidFormat("ciphertext too short for authentication tag")
	}
	plaintext, err := aead.Open(nil, iv, ciphertextWithTag, nil)
	if err != nil {
		return nil, base.NewDecryptionFailed(err, "GCM tag verification failed")
	}
	return plaintext, nil
}
