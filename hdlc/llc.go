package hdlc

import "github.com/cybroslabs/dlms-mbus-go/base"

const (
	llcHeaderLength = 3
	llcDestSAP      = 0xE6
	llcSrcSAPServer = 0xE6
	llcSrcSAPClient = 0xE7
	llcControl      = 0x00
	llcBroadcastSAP = 0xFF
)

// NextFrame strips and validates the 3-byte LLC header from the first frame
// and concatenates Information fields of subsequent frames until a
// non-segmented frame is seen. peerIsServer selects which src_sap value is
// expected from the other side. allowBroadcastDest permits 0xFF in place of
// the usual dest_sap.
func NextFrame(frames []Frame, peerIsServer bool, allowBroadcastDest bool) (remaining []Frame, payload []byte, err error) {
	if len(frames) == 0 {
		return nil, nil, base.NewIncomplete("no frames available")
	}

	first := frames[0].Information
	if len(first) < llcHeaderLength {
		return nil, nil, base.NewIncompleteHint(llcHeaderLength-len(first), "frame too short for LLC header")
	}

	destSAP, srcSAP, control := first[0], first[1], first[2]
	if destSAP != llcDestSAP && !(allowBroadcastDest && destSAP == llcBroadcastSAP) {
		return nil, nil, base.NewInvalidFormat("invalid LLC dest_sap: %#02x", destSAP)
	}
	expectedSrc := byte(llcSrcSAPClient)
	if peerIsServer {
		expectedSrc = llcSrcSAPServer
	}
	if srcSAP != expectedSrc {
		return nil, nil, base.NewInvalidFormat("invalid LLC src_sap: %#02x", srcSAP)
	}
	if control != llcControl {
		return nil, nil, base.NewInvalidFormat("invalid LLC control byte: %#02x", control)
	}

	buffer := append([]byte(nil), first[llcHeaderLength:]...)
	segmented := frames[0].Segmented
	idx := 1
	for segmented {
		if idx >= len(frames) {
			return nil, nil, base.NewIncomplete("segmented HDLC transfer truncated")
		}
		buffer = append(buffer, frames[idx].Information...)
		segmented = frames[idx].Segmented
		idx++
	}

	return frames[idx:], buffer, nil
}
