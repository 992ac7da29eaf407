package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handlers: encode response: %v", err)
	}
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// filtersFromQuery normalizes query parameters into the canonical filter
// form: lowercased keys, trimmed values, first value wins.
func filtersFromQuery(values url.Values) map[string]string {
	filters := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		filters[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(vals[0])
	}
	return filters
}
