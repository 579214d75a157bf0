package domain

import "unicode"

// LangHint is a coarse language classification of a message. It is an
// advisory signal only; the model makes the final language choice.
type LangHint string

const (
	LangRU   LangHint = "ru"
	LangTR   LangHint = "tr"
	LangBoth LangHint = "both"
)

// Turkish-specific letters that do not occur in Russian or plain Latin text.
var turkishLetters = map[rune]bool{
	'ı': true, 'ğ': true, 'ü': true, 'ş': true, 'ö': true, 'ç': true,
	'İ': true, 'Ğ': true, 'Ü': true, 'Ş': true, 'Ö': true, 'Ç': true,
}

// DetectLang classifies text by alphabet: Cyrillic only -> ru, Turkish
// letters only -> tr, anything else (mixed, Latin, digits) -> both.
func DetectLang(text string) LangHint {
	var cyr, tur bool
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			cyr = true
		}
		if turkishLetters[r] {
			tur = true
		}
		if cyr && tur {
			break
		}
	}
	switch {
	case cyr && !tur:
		return LangRU
	case tur && !cyr:
		return LangTR
	default:
		return LangBoth
	}
}
