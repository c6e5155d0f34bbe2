package cosem

import (
	"io"

	"github.com/cybroslabs/dlms-mbus-go/base"
)

// Tag identifies the variant of a decoded Data value.
type Tag byte

const (
	TagNull               Tag = 0
	TagStructure          Tag = 2
	TagDoubleLong         Tag = 5
	TagDoubleLongUnsigned Tag = 6
	TagOctetString        Tag = 9
	TagUtf8String         Tag = 12
	TagInteger            Tag = 15
	TagLong               Tag = 16
	TagUnsigned           Tag = 17
	TagLongUnsigned       Tag = 18
	TagLong64             Tag = 20
	TagLong64Unsigned     Tag = 21
	TagEnum               Tag = 22
	TagFloat32            Tag = 23
	TagFloat64            Tag = 24
	TagDateTime           Tag = 25
	TagDate               Tag = 26
	TagTime               Tag = 27
)

// maxStructureDepth bounds recursive Structure nesting so
// adversarial input cannot exhaust the call stack.
const maxStructureDepth = 64

// Data is a decoded DLMS value: Tag identifies the variant and Value holds
// the corresponding Go representation (see the switch in decodeDataWithTag).
type Data struct {
	Tag   Tag
	Value any
}

// DecodeData reads a single Data value (with its leading tag byte) from src.
func DecodeData(src io.Reader) (Data, error) {
	var tmp [12]byte
	return decodeData(src, &tmp, 0)
}

func decodeData(src io.Reader, tmp *[12]byte, depth int) (Data, error) {
	tagByte, err := readU8(src, tmp)
	if err != nil {
		return Data{}, err
	}
	return decodeDataWithTag(src, Tag(tagByte), tmp, depth)
}

func decodeDataWithTag(src io.Reader, tag Tag, tmp *[12]byte, depth int) (Data, error) {
	switch tag {
	case TagNull:
		return Data{Tag: tag, Value: nil}, nil
	case TagStructure:
		if depth >= maxStructureDepth {
			return Data{}, base.NewInvalidFormat("structure nesting exceeds depth limit %d", maxStructureDepth)
		}
		count, err := readU8(src, tmp)
		if err != nil {
			return Data{}, err
		}
		items := make([]Data, 0, count)
		for i := 0; i < int(count); i++ {
			item, err := decodeData(src, tmp, depth+1)
			if err != nil {
				return Data{}, err
			}
			items = append(items, item)
		}
		return Data{Tag: tag, Value: items}, nil
	case TagOctetString:
		n, err := readU8(src, tmp)
		if err != nil {
			return Data{}, err
		}
		b, err := readOctets(src, int(n))
		if err != nil {
			return Data{}, err
		}
		return Data{Tag: tag, Value: b}, nil
	case TagUtf8String:
		n, err := readU8(src, tmp)
		if err != nil {
			return Data{}, err
		}
		b, err := readOctets(src, int(n))
		if err != nil {
			return Data{}, err
		}
		return Data{Tag: tag, Value: string(b)}, nil
	case TagInteger:
		v, err := readI8(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagLong:
		v, err := readI16(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagUnsigned:
		v, err := readU8(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagLongUnsigned:
		v, err := readU16(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagDoubleLong:
		v, err := readI32(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagDoubleLongUnsigned:
		v, err := readU32(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagLong64:
		v, err := readI64(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagLong64Unsigned:
		v, err := readU64(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagEnum:
		v, err := readU8(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagFloat32:
		v, err := readFloat32(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagFloat64:
		v, err := readFloat64(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagDateTime:
		v, err := readDateTime(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagDate:
		v, err := readDate(src, tmp)
		return Data{Tag: tag, Value: v}, err
	case TagTime:
		v, err := readTime(src, tmp)
		return Data{Tag: tag, Value: v}, err
	default:
		return Data{}, base.NewInvalidFormat("unsupported Data tag: %d", tag)
	}
}
