package indictrans

import "strings"

// MaxWords is the maximum number of whitespace-delimited words accepted in a request.
const MaxWords = 500

// Validate checks a raw request against the length and language rules.
// Rules are applied in order and the first failure wins. On success the
// returned request carries the trimmed text.
func Validate(req Request) (Request, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Request{}, NewValidationError("text cannot be empty")
	}
	if len(strings.Fields(text)) > MaxWords {
		return Request{}, NewValidationError("text exceeds maximum length")
	}
	if !IsSupported(req.SourceLang) {
		return Request{}, NewUnsupportedLanguageError("sourceLang", SupportedCodes())
	}
	if !IsSupported(req.TargetLang) {
		return Request{}, NewUnsupportedLanguageError("targetLang", SupportedCodes())
	}
	if req.SourceLang == req.TargetLang {
		return Request{}, NewValidationError("source and target language must differ")
	}

	req.Text = text
	return req, nil
}
