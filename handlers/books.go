package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sapirHafner/Library-management-project/models"
	"github.com/sapirHafner/Library-management-project/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BooksHandler struct {
	Catalog *service.Catalog
}

// bookRequest uses pointers so that a missing field is distinguishable
// from an empty one.
type bookRequest struct {
	Title         *string `json:"title"`
	Authors       *string `json:"authors"`
	ISBN          *string `json:"ISBN"`
	Genre         *string `json:"genre"`
	Publisher     *string `json:"publisher"`
	PublishedDate *string `json:"publishedDate"`
}

func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r.URL.Query())
	books, err := h.Catalog.QueryBooks(r.Context(), filters)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to list books")
		return
	}
	if len(books) == 0 && len(filters) > 0 {
		errorJSON(w, http.StatusNotFound, "no books match the query parameters")
		return
	}
	if books == nil {
		books = []models.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, "request body must be valid JSON")
		return
	}
	if msg, ok := missingField([]requiredField{
		{"title", req.Title}, {"ISBN", req.ISBN}, {"genre", req.Genre},
	}); !ok {
		errorJSON(w, http.StatusUnprocessableEntity, msg)
		return
	}
	book := &models.Book{Title: *req.Title, ISBN: *req.ISBN, Genre: *req.Genre}
	if req.PublishedDate != nil {
		book.PublishedDate = *req.PublishedDate
	}
	id, err := h.Catalog.CreateBook(r.Context(), book)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, "book not found")
		return
	}
	book, err := h.Catalog.GetBook(r.Context(), id)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// Update is a full replace: every book field must be present in the body.
func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusNotFound, "book not found")
		return
	}
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, "request body must be valid JSON")
		return
	}
	if msg, ok := missingField([]requiredField{
		{"title", req.Title}, {"authors", req.Authors}, {"ISBN", req.ISBN},
		{"publisher", req.Publisher}, {"publishedDate", req.PublishedDate}, {"genre", req.Genre},
	}); !ok {
		errorJSON(w, http.StatusUnprocessableEntity, msg)
		return
	}
	book := &models.Book{
		ID:            id,
		Title:         *req.Title,
		Authors:       *req.Authors,
		ISBN:          *req.ISBN,
		Genre:         *req.Genre,
		Publisher:     *req.Publisher,
		PublishedDate: *req.PublishedDate,
	}
	if err := h.Catalog.UpdateBook(r.Context(), id, book); err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id.Hex()})
}

func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "book not found")
		return
	}
	if err := h.Catalog.DeleteBook(r.Context(), id); err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": idStr})
}

type requiredField struct {
	name  string
	value *string
}

// missingField reports the first absent field in the order given, so the
// error message is deterministic when several are missing.
func missingField(fields []requiredField) (string, bool) {
	for _, f := range fields {
		if f.value == nil {
			return "missing '" + f.name + "' field in the request", false
		}
	}
	return "", true
}

func writeCatalogError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		errorJSON(w, http.StatusUnprocessableEntity, verr.Message)
	case errors.Is(err, service.ErrDuplicateISBN):
		errorJSON(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrNotFound):
		errorJSON(w, http.StatusNotFound, "book not found")
	case errors.Is(err, service.ErrNoMetadataMatch):
		errorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMetadataUnavailable):
		errorJSON(w, http.StatusInternalServerError, err.Error())
	default:
		errorJSON(w, http.StatusInternalServerError, "internal error")
	}
}
