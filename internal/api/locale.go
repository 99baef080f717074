package api

import (
	"net/http"

	"afyabuddy/internal/translate"
)

// requestLanguage resolves the response language from an explicit code, the
// lang query parameter, or the Accept-Language header, in that order.
func requestLanguage(r *http.Request, explicit string) string {
	if explicit == "" {
		explicit = r.URL.Query().Get("lang")
	}
	return translate.Match(explicit, r.Header.Get("Accept-Language"))
}
