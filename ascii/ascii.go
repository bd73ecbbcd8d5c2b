// Package ascii provides ASCII control constants and character predicates.
package ascii

// Control and punctuation code points.
const (
	HT = 0x09
	LF = 0x0a
	VT = 0x0b
	FF = 0x0c
	CR = 0x0d

	SP = 0x20

	DoubleQuote = 0x22
	SingleQuote = 0x27
	Comma       = 0x2c
	BackQuote   = 0x60
)

// IsVisible reports whether ch is a printable non-space ASCII character.
func IsVisible(ch int) bool {
	return ch > SP && ch < 0x7f
}

// IsWhitespace reports whether ch is one of HT, LF, VT, FF, CR or SP.
func IsWhitespace(ch int) bool {
	return ch == SP || (ch >= HT && ch <= CR)
}

func IsLower(ch int) bool {
	return ch >= 'a' && ch <= 'z'
}

func IsUpper(ch int) bool {
	return ch >= 'A' && ch <= 'Z'
}

// ToLower maps upper case letters to lower case, anything else is returned unchanged.
func ToLower(ch int) int {
	if IsUpper(ch) {
		return ch + 'a' - 'A'
	}
	return ch
}

// ToUpper maps lower case letters to upper case, anything else is returned unchanged.
func ToUpper(ch int) int {
	if IsLower(ch) {
		return ch - 'a' + 'A'
	}
	return ch
}

// Fields splits s around runs of ASCII whitespace.
func Fields(s string) []string {
	var fields []string
	start := -1
	for i := 0; i < len(s); i++ {
		if IsWhitespace(int(s[i])) {
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}
