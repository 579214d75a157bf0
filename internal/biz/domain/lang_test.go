package domain

import "testing"

func TestDetectLang(t *testing.T) {
	tests := []struct {
		name string
		text string
		want LangHint
	}{
		{"cyrillic only", "Здравствуйте, сколько стоит массаж?", LangRU},
		{"cyrillic uppercase", "СПАСИБО", LangRU},
		{"turkish letters", "Fiyatlar nedir, çalışıyor musunuz?", LangTR},
		{"turkish uppercase", "İYİ GÜNLER", LangTR},
		{"plain latin", "hello there", LangBoth},
		{"digits only", "12345", LangBoth},
		{"empty", "", LangBoth},
		{"mixed alphabets", "Merhaba şу, привет", LangBoth},
		{"latin with digits", "ok 10:30", LangBoth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLang(tt.text); got != tt.want {
				t.Errorf("DetectLang(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
