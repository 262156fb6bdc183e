package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/obiajulu/fintrack-be/internal/api/respond"
	"github.com/obiajulu/fintrack-be/internal/services"
	"github.com/obiajulu/fintrack-be/internal/validation"
)

// TransactionHandler handles HTTP requests for ledger entries. Every route
// it serves sits behind the auth middleware.
type TransactionHandler struct {
	service services.TransactionServiceProvider
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(service services.TransactionServiceProvider) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// Create handles the request to create a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	values, err := validation.CreateTransaction().Validate(body)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	in := services.TransactionInput{
		Type:        values.String("type"),
		Amount:      values.Float("amount"),
		Currency:    values.String("currency"),
		Description: values.String("description"),
		Category:    values.String("category"),
		OccurredAt:  values.Time("occurredAt"),
	}

	tx, err := h.service.Create(r.Context(), caller.ID, in)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w, http.StatusCreated, "Transaction created", tx)
}

// List handles the request for one page of the caller's transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	query := map[string]any{}
	for _, name := range []string{"page", "limit", "sort"} {
		if v := r.URL.Query().Get(name); v != "" {
			query[name] = v
		}
	}
	values, err := validation.ListQuery().Validate(query)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	items, meta, err := h.service.List(r.Context(), caller.ID, services.ListQuery{
		Page:  values.String("page"),
		Limit: values.String("limit"),
		Sort:  values.String("sort"),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.List(w, "Transactions fetched", items, meta)
}

// Get handles the request for a single transaction by id.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	values, err := validation.IDParam().Validate(map[string]any{"id": chi.URLParam(r, "id")})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	tx, err := h.service.Get(r.Context(), caller.ID, values.String("id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w, http.StatusOK, "Transaction fetched", tx)
}

// Update handles a partial update of a single transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	params, err := validation.IDParam().Validate(map[string]any{"id": chi.URLParam(r, "id")})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	values, err := validation.UpdateTransaction().Validate(body)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	patch := services.TransactionPatch{}
	if values.Has("type") {
		v := values.String("type")
		patch.Type = &v
	}
	if values.Has("amount") {
		v := values.Float("amount")
		patch.Amount = &v
	}
	if values.Has("currency") {
		v := values.String("currency")
		patch.Currency = &v
	}
	if values.Has("description") {
		v := values.String("description")
		patch.Description = &v
	}
	if values.Has("category") {
		v := values.String("category")
		patch.Category = &v
	}
	if values.Has("occurredAt") {
		v := values.Time("occurredAt")
		patch.OccurredAt = &v
	}

	tx, err := h.service.Update(r.Context(), caller.ID, params.String("id"), patch)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w, http.StatusOK, "Transaction updated", tx)
}

// Delete handles the removal of a single transaction.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	values, err := validation.IDParam().Validate(map[string]any{"id": chi.URLParam(r, "id")})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	tx, err := h.service.Delete(r.Context(), caller.ID, values.String("id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Success(w, http.StatusOK, "Transaction deleted", tx)
}
