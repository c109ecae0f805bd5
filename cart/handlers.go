package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"garments/globals"
	"garments/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Carts *Registry
}

func NewHandler(carts *Registry) *Handler {
	return &Handler{Carts: carts}
}

func requestUserID(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

type lineItemRequest struct {
	ProductID     string `json:"productId"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
	Quantity      int    `json:"quantity"`
	Delta         int    `json:"delta"`
}

// AddItem merges into the cart and returns the fresh resolved discount.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req lineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("AddItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" || req.SelectedSize == "" || req.Quantity < 1 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resolved := h.Carts.ForUser(userID).AddItem(req.ProductID, req.SelectedSize, req.SelectedColor, req.Quantity)
	utils.RespondWithJSON(w, http.StatusCreated, resolved)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req lineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resolved := h.Carts.ForUser(userID).RemoveItem(req.ProductID, req.SelectedSize, req.SelectedColor)
	utils.RespondWithJSON(w, http.StatusOK, resolved)
}

func (h *Handler) AdjustQuantity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req lineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resolved := h.Carts.ForUser(userID).AdjustQuantity(req.ProductID, req.SelectedSize, req.SelectedColor, req.Delta)
	utils.RespondWithJSON(w, http.StatusOK, resolved)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resolved := h.Carts.ForUser(userID).Clear()
	utils.RespondWithJSON(w, http.StatusOK, resolved)
}

// GetCart returns the line items together with the resolved discount.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	svc := h.Carts.ForUser(userID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":    svc.Items(),
		"resolved": svc.Resolved(),
	})
}

func (h *Handler) GetResolvedDiscount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.Carts.ForUser(userID).Resolved())
}

func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	wishlisted := h.Carts.ForUser(userID).ToggleWishlist(ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"wishlisted": wishlisted})
}

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ids := h.Carts.ForUser(userID).Wishlist()
	if ids == nil {
		ids = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, ids)
}
