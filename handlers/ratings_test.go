package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sapirHafner/Library-management-project/service"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Requests below fail before any database access, so an empty Ledger is
// enough.
func ratingsRouter() http.Handler {
	h := &RatingsHandler{Ledger: &service.Ledger{}}
	r := chi.NewRouter()
	r.Post("/ratings/{id}/values", h.AppendValue)
	return r
}

func postValue(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ratingsRouter().ServeHTTP(rec, req)
	return rec
}

func TestAppendValue_RejectsOutOfRangeAndMalformed(t *testing.T) {
	path := "/ratings/" + primitive.NewObjectID().Hex() + "/values"

	tests := []struct {
		name string
		body string
	}{
		{"below range", `{"value": 0}`},
		{"above range", `{"value": 6}`},
		{"not an integer", `{"value": 4.5}`},
		{"wrong type", `{"value": "four"}`},
		{"missing field", `{"score": 4}`},
		{"not json", `value=4`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postValue(t, path, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestAppendValue_MalformedIDIsNotFound(t *testing.T) {
	rec := postValue(t, "/ratings/not-a-hex-id/values", `{"value": 4}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
