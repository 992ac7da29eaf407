package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sapirHafner/Library-management-project/models"
	"github.com/sapirHafner/Library-management-project/service"
)

type LoansHandler struct {
	Desk *service.LoanDesk
}

type loanRequest struct {
	MemberName *string `json:"memberName"`
	ISBN       *string `json:"ISBN"`
	LoanDate   *string `json:"loanDate"`
}

func (h *LoansHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r.URL.Query())
	loans, err := h.Desk.QueryLoans(r.Context(), filters)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to list loans")
		return
	}
	if len(loans) == 0 && len(filters) > 0 {
		errorJSON(w, http.StatusNotFound, "no loans match the query parameters")
		return
	}
	if loans == nil {
		loans = []models.Loan{}
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoansHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, "request body must be valid JSON")
		return
	}
	if msg, ok := missingField([]requiredField{
		{"memberName", req.MemberName}, {"ISBN", req.ISBN}, {"loanDate", req.LoanDate},
	}); !ok {
		errorJSON(w, http.StatusUnprocessableEntity, msg)
		return
	}
	id, err := h.Desk.CreateLoan(r.Context(), *req.MemberName, *req.ISBN, *req.LoanDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberLoanLimit),
			errors.Is(err, service.ErrBookAlreadyLoaned),
			errors.Is(err, service.ErrBookNotFound):
			errorJSON(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrCatalogUnavailable):
			errorJSON(w, http.StatusInternalServerError, err.Error())
		default:
			errorJSON(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *LoansHandler) Get(w http.ResponseWriter, r *http.Request) {
	loan, err := h.Desk.GetLoan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "loan not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoansHandler) Delete(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")
	if err := h.Desk.DeleteLoan(r.Context(), loanID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "loan not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": loanID})
}
