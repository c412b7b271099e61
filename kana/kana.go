// Package kana converts pronunciations between katakana and hiragana for display.
package kana

// ToHiragana maps katakana ァ..ヶ onto their hiragana counterparts. Other runes,
// including the long vowel mark ー, are left unchanged.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// ToKatakana is the inverse of ToHiragana.
func ToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x3041 && r <= 0x3096 {
			runes[i] = r + 0x60
		}
	}
	return string(runes)
}

// Display renders a pronunciation in the requested script ("hiragana" or
// "katakana"). Anything else returns s as-is.
func Display(s, script string) string {
	switch script {
	case "hiragana":
		return ToHiragana(s)
	case "katakana":
		return ToKatakana(s)
	}
	return s
}
