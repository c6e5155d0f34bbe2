package base

// CosemTag identifies the top-level variant of an APDU.
type CosemTag byte

const (
	// TagDataNotification marks a data-notification APDU.
	TagDataNotification CosemTag = 0x0F
	// TagGeneralGloCiphering marks a general-glo-ciphering envelope.
	TagGeneralGloCiphering CosemTag = 0xDB
)

// Security control bit positions, per the general-glo-ciphering envelope's
// SecurityControl byte (low nibble = suite id, high nibble = flags).
const (
	SecuritySuiteMask     byte = 0x0F
	SecurityAuthenticated byte = 0x10
	SecurityEncrypted     byte = 0x20
	SecurityBroadcast     byte = 0x40
	SecurityCompressed    byte = 0x80
)

// GCM constants shared by the ciphering package and the envelope parser.
const (
	GCMIVLength  = 12
	GCMTagLength = 12
)
