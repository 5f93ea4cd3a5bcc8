package atom

// An atom's handle is one uint64. The two low bits select the variant:
//
//	dynamic  ...id............................................ 00
//	inline   b6 b5 b4 b3 b2 b1 b0 len(4 bits) 00 01
//	static   index(32 bits) 0..........................0 10
//
// Dynamic ids are assigned by the interning table starting at 1, so a
// handle of 0 is never a valid atom.
const (
	dynamicTag uint64 = 0b00
	inlineTag  uint64 = 0b01
	staticTag  uint64 = 0b10
	tagMask    uint64 = 0b11

	// MaxInlineLen is the longest string stored inside the handle itself.
	MaxInlineLen = 7

	inlineLenShift  = 4
	inlineLenMask   = 0xf0
	staticShiftBits = 32
	dynamicShift    = 2
)

// Kind identifies which representation an atom uses.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindDynamic
	KindInline
	KindStatic
)

func (k Kind) String() string {
	switch k {
	case KindDynamic:
		return "dynamic"
	case KindInline:
		return "inline"
	case KindStatic:
		return "static"
	default:
		return "invalid"
	}
}

// KindOf decodes the variant of a packed handle.
func KindOf(data uint64) Kind {
	switch data & tagMask {
	case dynamicTag:
		if data == 0 {
			return KindInvalid
		}
		return KindDynamic
	case inlineTag:
		return KindInline
	case staticTag:
		return KindStatic
	default:
		return KindInvalid
	}
}

func packStatic(index uint32) uint64 {
	return staticTag | uint64(index)<<staticShiftBits
}

func unpackStatic(data uint64) uint32 {
	return uint32(data >> staticShiftBits)
}

// UnpackDynamicID returns the entry id encoded in a dynamic handle.
func UnpackDynamicID(data uint64) uint64 {
	return data >> dynamicShift
}

// packInline stores s (at most MaxInlineLen bytes) in the handle. Byte i
// lives in bits 8*(i+1)..8*(i+1)+7 regardless of host endianness.
func packInline(s string) uint64 {
	data := inlineTag | uint64(len(s))<<inlineLenShift
	for i := 0; i < len(s); i++ {
		data |= uint64(s[i]) << (8 * (i + 1))
	}
	return data
}

func packInlineBytes(b []byte) uint64 {
	data := inlineTag | uint64(len(b))<<inlineLenShift
	for i, c := range b {
		data |= uint64(c) << (8 * (i + 1))
	}
	return data
}

func inlineLen(data uint64) int {
	return int((data & inlineLenMask) >> inlineLenShift)
}

// appendInline appends the bytes of an inline handle to dst.
func appendInline(dst []byte, data uint64) []byte {
	n := inlineLen(data)
	for i := 0; i < n; i++ {
		dst = append(dst, byte(data>>(8*(i+1))))
	}
	return dst
}

// DecodeInline returns the string held by an inline handle, or false if
// data is not inline.
func DecodeInline(data uint64) (string, bool) {
	if data&tagMask != inlineTag {
		return "", false
	}
	var buf [MaxInlineLen]byte
	return string(appendInline(buf[:0], data)), true
}

// UnpackStaticIndex returns the table index of a static handle, or false if
// data is not static.
func UnpackStaticIndex(data uint64) (uint32, bool) {
	if data&tagMask != staticTag {
		return 0, false
	}
	return unpackStatic(data), true
}
