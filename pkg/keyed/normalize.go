package keyed

import "strings"

// Separator joins the words of a normalised key.
const Separator = '_'

// Normalize returns the canonical form of a key.
//
// A separator is inserted before every ASCII uppercase letter and before
// every run of ASCII digits, then the key is lowercased:
//
//	"something"      -> "something"
//	"somethingElse"  -> "something_else"
//	"YetAnother"     -> "yet_another"
//	"AndYetAnother2" -> "and_yet_another_2"
//
// No separator is inserted at the start of the key or directly after an
// existing one, so Normalize(Normalize(k)) == Normalize(k).
func Normalize(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	inDigits := false
	for i := 0; i < len(key); i++ {
		ch := key[i]
		isUpper := ch >= 'A' && ch <= 'Z'
		isDigit := ch >= '0' && ch <= '9'

		boundary := isUpper || (isDigit && !inDigits)
		if boundary && b.Len() > 0 && lastByte(&b) != Separator {
			b.WriteByte(Separator)
		}
		if isUpper {
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
		inDigits = isDigit
	}
	return b.String()
}

func lastByte(b *strings.Builder) byte {
	s := b.String()
	return s[len(s)-1]
}
