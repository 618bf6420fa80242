package cache

import "strings"

// KeySeparator joins the key components. U+241F (symbol for unit separator)
// cannot appear in a language code and is vanishingly unlikely in chat text,
// so keys parse back unambiguously.
const KeySeparator = "␟"

// Key builds the cache key for a translation. The text is used exactly as
// given: case, punctuation, and whitespace variants all produce distinct keys.
func Key(sourceLang, targetLang, text string) string {
	return sourceLang + KeySeparator + targetLang + KeySeparator + text
}

// SplitKey decomposes a cache key into its components.
func SplitKey(key string) (sourceLang, targetLang, text string, ok bool) {
	parts := strings.SplitN(key, KeySeparator, 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
