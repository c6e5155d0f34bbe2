package dlms

import (
	"github.com/cybroslabs/dlms-mbus-go/hdlc"
	"github.com/cybroslabs/dlms-mbus-go/mbus"
)

// DataLink is the capability boundary over concrete link layers: one
// operation that reassembles the next complete APDU payload from the link's
// pending input, consuming the records it used. On error the pending input
// is left untouched, so an Incomplete caller can append more records and
// call again.
type DataLink interface {
	NextFrame() ([]byte, error)
}

// MBusLink reassembles APDUs from a pending run of M-Bus telegrams.
type MBusLink struct {
	Telegrams []mbus.Telegram
}

func (l *MBusLink) NextFrame() ([]byte, error) {
	remaining, payload, err := mbus.Reassemble(l.Telegrams)
	if err != nil {
		return nil, err
	}
	l.Telegrams = remaining
	return payload, nil
}

// HDLCLink reassembles APDUs from a pending run of HDLC type-3 frames.
// PeerIsServer selects which src_sap value is expected in the LLC header;
// AllowBroadcast permits 0xFF as dest_sap.
type HDLCLink struct {
	Frames         []hdlc.Frame
	PeerIsServer   bool
	AllowBroadcast bool
}

func (l *HDLCLink) NextFrame() ([]byte, error) {
	remaining, payload, err := hdlc.NextFrame(l.Frames, l.PeerIsServer, l.AllowBroadcast)
	if err != nil {
		return nil, err
	}
	l.Frames = remaining
	return payload, nil
}
