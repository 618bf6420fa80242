package indictrans

// Request is a raw translation request as received from a caller.
type Request struct {
	Text       string // Text to translate
	SourceLang string // Source language code (e.g., "en")
	TargetLang string // Target language code (e.g., "hi")
}

// Response is the result of a successful translation.
type Response struct {
	TranslatedText  string  // The translated text
	SourceLang      string  // Source language code, echoed back
	TargetLang      string  // Target language code, echoed back
	DurationMs      float64 // Wall-clock time spent serving this call
	ServedFromCache bool    // Whether the result came from the cache
}

// BackendRequest is a validated, normalized request handed to a Backend.
// Text is trimmed; both language codes are known to the registry.
type BackendRequest struct {
	Text       string
	SourceLang string
	TargetLang string
}
