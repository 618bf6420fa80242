package indictrans

// Language describes one supported language.
type Language struct {
	Code        string // ISO 639 code, lower-case, unique
	DisplayName string // English display name
	NativeName  string // Name in the language's own script
}

// languages is the full catalog: English plus the 22 scheduled languages of
// India. English first, then alphabetical by code. Fixed at process start.
var languages = []Language{
	{Code: "en", DisplayName: "English", NativeName: "English"},
	{Code: "as", DisplayName: "Assamese", NativeName: "অসমীয়া"},
	{Code: "bn", DisplayName: "Bengali", NativeName: "বাংলা"},
	{Code: "brx", DisplayName: "Bodo", NativeName: "बड़ो"},
	{Code: "doi", DisplayName: "Dogri", NativeName: "डोगरी"},
	{Code: "gu", DisplayName: "Gujarati", NativeName: "ગુજરાતી"},
	{Code: "hi", DisplayName: "Hindi", NativeName: "हिन्दी"},
	{Code: "kn", DisplayName: "Kannada", NativeName: "ಕನ್ನಡ"},
	{Code: "kok", DisplayName: "Konkani", NativeName: "कोंकणी"},
	{Code: "ks", DisplayName: "Kashmiri", NativeName: "كٲشُر"},
	{Code: "mai", DisplayName: "Maithili", NativeName: "मैथिली"},
	{Code: "ml", DisplayName: "Malayalam", NativeName: "മലയാളം"},
	{Code: "mni", DisplayName: "Manipuri", NativeName: "ꯃꯩꯇꯩꯂꯣꯟ"},
	{Code: "mr", DisplayName: "Marathi", NativeName: "मराठी"},
	{Code: "ne", DisplayName: "Nepali", NativeName: "नेपाली"},
	{Code: "or", DisplayName: "Odia", NativeName: "ଓଡ଼ିଆ"},
	{Code: "pa", DisplayName: "Punjabi", NativeName: "ਪੰਜਾਬੀ"},
	{Code: "sa", DisplayName: "Sanskrit", NativeName: "संस्कृतम्"},
	{Code: "sat", DisplayName: "Santali", NativeName: "ᱥᱟᱱᱛᱟᱲᱤ"},
	{Code: "sd", DisplayName: "Sindhi", NativeName: "سنڌي"},
	{Code: "ta", DisplayName: "Tamil", NativeName: "தமிழ்"},
	{Code: "te", DisplayName: "Telugu", NativeName: "తెలుగు"},
	{Code: "ur", DisplayName: "Urdu", NativeName: "اردو"},
}

// languageIndex allows O(1) code lookups. Read-only after init.
var languageIndex = func() map[string]Language {
	index := make(map[string]Language, len(languages))
	for _, lang := range languages {
		index[lang.Code] = lang
	}
	return index
}()

// IsSupported reports whether code is a supported language code.
func IsSupported(code string) bool {
	_, ok := languageIndex[code]
	return ok
}

// Describe returns the descriptor for a language code.
func Describe(code string) (Language, bool) {
	lang, ok := languageIndex[code]
	return lang, ok
}

// Languages returns all supported languages in stable order, English first.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// SupportedCodes returns all supported language codes in stable order.
func SupportedCodes() []string {
	codes := make([]string, len(languages))
	for i, lang := range languages {
		codes[i] = lang.Code
	}
	return codes
}

// LanguageName returns the English display name for a language code.
// Falls back to the code itself if not found.
func LanguageName(code string) string {
	if lang, ok := languageIndex[code]; ok {
		return lang.DisplayName
	}
	return code
}
