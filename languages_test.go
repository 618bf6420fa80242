package indictrans

import "testing"

func TestIsSupported(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"en", true},
		{"hi", true},
		{"ta", true},
		{"sat", true},
		{"brx", true},
		{"xx", false},
		{"EN", false}, // codes are lower-case
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsSupported(tt.code); got != tt.expected {
				t.Errorf("IsSupported(%q) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	lang, ok := Describe("hi")
	if !ok {
		t.Fatal("Describe(hi) should succeed")
	}
	if lang.DisplayName != "Hindi" {
		t.Errorf("DisplayName = %q, want %q", lang.DisplayName, "Hindi")
	}
	if lang.NativeName != "हिन्दी" {
		t.Errorf("NativeName = %q, want %q", lang.NativeName, "हिन्दी")
	}

	if _, ok := Describe("xx"); ok {
		t.Error("Describe(xx) should fail")
	}
}

func TestLanguages_Order(t *testing.T) {
	langs := Languages()

	if len(langs) < 23 {
		t.Fatalf("expected at least 23 languages, got %d", len(langs))
	}

	if langs[0].Code != "en" {
		t.Errorf("first language should be English, got %q", langs[0].Code)
	}

	// Remaining entries are alphabetical by code.
	for i := 2; i < len(langs); i++ {
		if langs[i-1].Code >= langs[i].Code {
			t.Errorf("languages out of order: %q before %q", langs[i-1].Code, langs[i].Code)
		}
	}
}

func TestLanguages_UniqueCodes(t *testing.T) {
	seen := make(map[string]bool)
	for _, lang := range Languages() {
		if seen[lang.Code] {
			t.Errorf("duplicate language code %q", lang.Code)
		}
		seen[lang.Code] = true

		for _, r := range lang.Code {
			if r >= 'A' && r <= 'Z' {
				t.Errorf("language code %q is not lower-case", lang.Code)
			}
		}
	}
}

func TestLanguages_ReturnsCopy(t *testing.T) {
	first := Languages()
	first[0].Code = "mutated"

	if Languages()[0].Code != "en" {
		t.Error("Languages() should return a copy, not the underlying slice")
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"ta", "Tamil"},
		{"bn", "Bengali"},
		{"unknown", "unknown"}, // fallback
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := LanguageName(tt.code); got != tt.expected {
				t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestSupportedCodes(t *testing.T) {
	codes := SupportedCodes()
	if len(codes) != len(Languages()) {
		t.Errorf("expected %d codes, got %d", len(Languages()), len(codes))
	}
	if codes[0] != "en" {
		t.Errorf("first code should be en, got %q", codes[0])
	}
}
