package neutral

import "strings"

// forbiddenPathChars are the characters FEMAP titles may contain that are
// not legal in a filesystem path on at least one of the platforms this
// pipeline targets.
const forbiddenPathChars = `<>:"/\|?*`

// pathPlaceholder replaces each forbidden character.
const pathPlaceholder = "_"

// SanitizeTitle replaces every character in forbiddenPathChars with
// pathPlaceholder so the result is safe to use as a path component.
// Sanitizing is idempotent: applying it twice is the same as applying it
// once, since the placeholder itself is never one of the forbidden
// characters.
func SanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenPathChars, r) {
			return '_'
		}
		return r
	}, title)
}
