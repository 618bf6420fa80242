// Package indictrans orchestrates translation requests between English and
// the scheduled languages of India.
//
// The package validates incoming requests, serves repeated requests from a
// cache, and dispatches uncached requests to a pluggable translation backend
// (a local inference server or a hosted completion API) with bounded retry.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/arhrid/indic-translator-sub001"
//	    "github.com/arhrid/indic-translator-sub001/backend"
//	    "github.com/arhrid/indic-translator-sub001/cache"
//	)
//
//	func main() {
//	    // Create backend
//	    b := backend.NewOpenAIBackend(backend.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    // Create translator
//	    t := indictrans.New(b,
//	        indictrans.WithCache(cache.NewInMemoryCache(0, 0)),
//	    )
//
//	    // Translate
//	    resp, err := t.Translate(context.Background(), indictrans.Request{
//	        Text:       "Hello",
//	        SourceLang: "en",
//	        TargetLang: "hi",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(resp.TranslatedText) // नमस्ते
//	}
package indictrans
