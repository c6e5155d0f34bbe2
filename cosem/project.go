package cosem

import "github.com/cybroslabs/dlms-mbus-go/base"

// Project walks a data-notification's body and builds the ordered register
// map it describes. The body must be a Structure, and the flat sequence of
// register items it holds must be consumed exactly;
// trailing or malformed items are a parse failure, not a partial result.
func Project(apdu Apdu) (*ObisMap, error) {
	if apdu.DataNotification == nil {
		return nil, base.NewInvalidFormat("obis projection requires a data-notification APDU")
	}
	body := apdu.DataNotification.NotificationBody
	if body.Tag != TagStructure {
		return nil, base.NewInvalidFormat("notification body must be a structure, got tag %d", body.Tag)
	}
	items, _ := body.Value.([]Data)

	var m ObisMap
	remaining := items
	for len(remaining) > 0 {
		reg, n, err := parseRegister(remaining)
		if err != nil {
			return nil, err
		}
		m.insert(reg)
		remaining = remaining[n:]
	}

	return &m, nil
}
