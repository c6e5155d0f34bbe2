package cosem

import (
	"io"

	"github.com/cybroslabs/dlms-mbus-go/base"
)

// dateTimeWireLength is the fixed encoded size of a DateTime.
const dateTimeWireLength = 12

// LongInvokeIdAndPriority is the 32-bit invoke-id-and-priority field
// leading a DataNotification.
type LongInvokeIdAndPriority uint32

func (l LongInvokeIdAndPriority) HighPriority() bool {
	return l&(1<<31) != 0
}

func (l LongInvokeIdAndPriority) Confirmed() bool {
	return l&(1<<30) != 0
}

func (l LongInvokeIdAndPriority) BreakOnError() bool {
	return l&(1<<29) != 0
}

func (l LongInvokeIdAndPriority) SelfDescriptive() bool {
	return l&(1<<28) != 0
}

func (l LongInvokeIdAndPriority) InvokeID() uint32 {
	return uint32(l) & 0x00FFFFFF
}

// DataNotification is a decoded data-notification APDU (CosemTag 0x0F).
type DataNotification struct {
	LongInvokeIDAndPriority LongInvokeIdAndPriority
	DateTime                DateTime
	NotificationBody        Data
}

// Apdu is the union of APDU variants this codec recognises.
type Apdu struct {
	Tag                 base.CosemTag
	DataNotification    *DataNotification
	GeneralGloCiphering *GeneralGloCiphering
}

// DecodeApdu reads one APDU from src: a data-notification (0x0F) or a
// general-glo-ciphering envelope (0xDB). Any other tag is InvalidFormat,
// never a panic.
func DecodeApdu(src io.Reader) (Apdu, error) {
	var tmp [12]byte
	tagByte, err := readU8(src, &tmp)
	if err != nil {
		return Apdu{}, err
	}

	switch base.CosemTag(tagByte) {
	case base.TagDataNotification:
		dn, err := decodeDataNotification(src, &tmp)
		if err != nil {
			return Apdu{}, err
		}
		return Apdu{Tag: base.TagDataNotification, DataNotification: &dn}, nil
	case base.TagGeneralGloCiphering:
		env, err := decodeGeneralGloCiphering(src)
		if err != nil {
			return Apdu{}, err
		}
		return Apdu{Tag: base.TagGeneralGloCiphering, GeneralGloCiphering: &env}, nil
	default:
		return Apdu{}, base.NewInvalidFormat("unsupported APDU tag: %#02x", tagByte)
	}
}

func decodeDataNotification(src io.Reader, tmp *[12]byte) (DataNotification, error) {
	invokeID, err := readU32(src, tmp)
	if err != nil {
		return DataNotification{}, err
	}

	dtLen, err := readU8(src, tmp)
	if err != nil {
		return DataNotification{}, err
	}
	if dtLen != dateTimeWireLength {
		return DataNotification{}, base.NewInvalidFormat("DateTime length-prefix must be %d, got %d", dateTimeWireLength, dtLen)
	}
	dateTime, err := readDateTime(src, tmp)
	if err != nil {
		return DataNotification{}, err
	}

	body, err := decodeData(src, tmp, 0)
	if err != nil {
		return DataNotification{}, err
	}

	return DataNotification{
		LongInvokeIDAndPriority: LongInvokeIdAndPriority(invokeID),
		DateTime:                dateTime,
		NotificationBody:        body,
	}, nil
}
