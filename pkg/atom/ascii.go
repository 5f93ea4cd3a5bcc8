package atom

// ToASCIILower returns the atom with ASCII letters lowered. Other bytes are
// left alone. When nothing changes the result is a clone of a.
func (a Atom[S]) ToASCIILower() Atom[S] {
	return a.mapASCII('A', 'Z', 'a'-'A')
}

// ToASCIIUpper returns the atom with ASCII letters raised.
func (a Atom[S]) ToASCIIUpper() Atom[S] {
	return a.mapASCII('a', 'z', -('a' - 'A'))
}

func (a Atom[S]) mapASCII(lo, hi byte, delta int) Atom[S] {
	s := a.String()
	first := -1
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= lo && c <= hi {
			first = i
			break
		}
	}
	if first < 0 {
		return a.Clone()
	}

	b := []byte(s)
	for i := first; i < len(b); i++ {
		if c := b[i]; c >= lo && c <= hi {
			b[i] = byte(int(c) + delta)
		}
	}
	// changing ASCII letters keeps the content valid UTF-8
	out, _ := FromBytes[S](b)
	return out
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func (a Atom[S]) EqualFold(b Atom[S]) bool {
	if a.data == b.data {
		return true
	}
	return equalFoldASCII(a.String(), b.String())
}

// EqualFoldString is EqualFold against a plain string.
func (a Atom[S]) EqualFoldString(s string) bool {
	return equalFoldASCII(a.String(), s)
}

func equalFoldASCII(x, y string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := 0; i < len(x); i++ {
		if lowerASCII(x[i]) != lowerASCII(y[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
