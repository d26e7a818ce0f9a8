package shopping

import (
	"errors"
	"net/http"

	"family-organizer/internal/domain/access"
	shoppingdomain "family-organizer/internal/domain/shopping"
	commonhandler "family-organizer/internal/transport/httpserver/handler/common"
	"family-organizer/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Shopping *shoppingdomain.Service
	log      logger.Logger
}

func New(shopping *shoppingdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Shopping: shopping, log: log}
}

type createItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
}

type updateItemRequest struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Quantity  *string `json:"quantity"`
	Completed *bool   `json:"completed"`
}

type listResponse struct {
	Pending    []shoppingdomain.ShoppingItem `json:"pending"`
	Completed  []shoppingdomain.ShoppingItem `json:"completed"`
	Categories []string                      `json:"categories"`
}

func (h *Handlers) ListItems(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionShopping, false); !ok {
		return
	}

	query := r.URL.Query()
	status := shoppingdomain.ItemStatus(query.Get("status"))
	switch status {
	case shoppingdomain.StatusAny, shoppingdomain.StatusPending, shoppingdomain.StatusCompleted:
	default:
		writeError(w, http.StatusBadRequest, "invalid_status", "status must be pending or completed")
		return
	}

	items := h.Shopping.List(r.Context(), shoppingdomain.ListFilter{
		Category: query.Get("category"),
		Query:    query.Get("q"),
		Status:   status,
	})

	response := listResponse{
		Pending:    make([]shoppingdomain.ShoppingItem, 0),
		Completed:  make([]shoppingdomain.ShoppingItem, 0),
		Categories: shoppingdomain.Categories,
	}
	for _, item := range items {
		if item.Completed {
			response.Completed = append(response.Completed, item)
		} else {
			response.Pending = append(response.Pending, item)
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionShopping, true)
	if !ok {
		return
	}

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	item, err := h.Shopping.Add(r.Context(), shoppingdomain.AddItemInput{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		AddedBy:  user.Name,
	})
	if err != nil {
		h.writeItemError(w, "shopping.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionShopping, true); !ok {
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	item, err := h.Shopping.Update(r.Context(), shoppingdomain.UpdateItemInput{
		ID:        chi.URLParam(r, "id"),
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Completed: req.Completed,
	})
	if err != nil {
		h.writeItemError(w, "shopping.update", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) ToggleItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionShopping, true); !ok {
		return
	}

	item, err := h.Shopping.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeItemError(w, "shopping.toggle", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := commonhandler.Authorize(w, r, access.CollectionShopping, true); !ok {
		return
	}

	if err := h.Shopping.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeItemError(w, "shopping.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AddFromMealPlans(w http.ResponseWriter, r *http.Request) {
	user, ok := commonhandler.Authorize(w, r, access.CollectionShopping, true)
	if !ok {
		return
	}

	items, err := h.Shopping.AddFromMealPlans(r.Context(), user.Name)
	if err != nil {
		h.writeItemError(w, "shopping.from_meal_plans", err)
		return
	}
	writeJSON(w, http.StatusCreated, items)
}

func (h *Handlers) writeItemError(w http.ResponseWriter, op string, err error) {
	if commonhandler.WriteValidationError(w, err) {
		return
	}
	if errors.Is(err, shoppingdomain.ErrItemNotFound) {
		writeError(w, http.StatusNotFound, "item_not_found", "shopping item not found")
		return
	}
	h.log.InternalError(op+": failed", err)
	commonhandler.WriteInternal(w)
}
