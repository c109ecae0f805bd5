package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"garments/cart"
	"garments/db"
	"garments/globals"
	"garments/models"
	"garments/promo"
	"garments/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Handler struct {
	Carts  *cart.Registry
	Lookup promo.Lookup
	Rules  promo.RuleSet
}

func NewHandler(carts *cart.Registry, lookup promo.Lookup, rules promo.RuleSet) *Handler {
	return &Handler{Carts: carts, Lookup: lookup, Rules: rules}
}

func requestUserID(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

// PlaceOrder checks out the user's whole cart. Order insertion and cart
// clearing happen inside the cart's checkout critical section, so no
// caller can see a placed order next to a non-empty cart.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	svc := h.Carts.ForUser(userID)
	order, err := svc.Checkout(func(items []models.PurchasedItem, resolved models.ResolvedDiscount) (models.Order, error) {
		fee := promo.ShippingFee(resolved.BaseTotal)
		o := Assemble(userID, items, req.ShippingAddress, resolved, fee)
		if _, err := db.OrderCollection.InsertOne(ctx, o); err != nil {
			return models.Order{}, err
		}
		return o, nil
	})
	if errors.Is(err, cart.ErrEmptyCart) {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Println("PlaceOrder insert error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// BuyNow places a single-item order without touching the cart.
func (h *Handler) BuyNow(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		ProductID       string                 `json:"productId"`
		SelectedSize    string                 `json:"selectedSize"`
		SelectedColor   string                 `json:"selectedColor"`
		Quantity        int                    `json:"quantity"`
		ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" || req.Quantity < 1 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	product, ok := h.Lookup.GetProduct(ctx, req.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	line := []models.CartLineItem{{
		ProductID:     req.ProductID,
		SelectedSize:  req.SelectedSize,
		SelectedColor: req.SelectedColor,
		Quantity:      req.Quantity,
	}}
	resolved := promo.Resolve(ctx, line, h.Lookup, h.Rules)

	items := []models.PurchasedItem{{
		ProductID:       req.ProductID,
		Name:            product.Name,
		SelectedSize:    req.SelectedSize,
		SelectedColor:   req.SelectedColor,
		Quantity:        req.Quantity,
		PriceAtPurchase: product.Price,
	}}

	order := Assemble(userID, items, req.ShippingAddress, resolved, promo.ShippingFee(resolved.BaseTotal))
	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("BuyNow insert error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders returns the user's order history, newest first.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("GetOrders error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var history []models.Order
	if err := cursor.All(ctx, &history); err != nil {
		http.Error(w, "Error reading order data", http.StatusInternalServerError)
		return
	}
	if len(history) == 0 {
		history = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, history)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, ok := h.loadOrder(ctx, ps.ByName("orderid"), userID)
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// CancelOrder applies the cancellation boundary. A blocked cancel is a
// no-op reported as applied=false, never an error.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a missing reason is fine.
	_ = json.NewDecoder(r.Body).Decode(&req)

	h.transition(w, r, ps.ByName("orderid"), func(o *models.Order) bool {
		return Cancel(o, req.Reason)
	})
}

// MarkOrderDelivered advances the order to Delivered and completes all
// tracking steps.
func (h *Handler) MarkOrderDelivered(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.transition(w, r, ps.ByName("orderid"), MarkDelivered)
}

// AdvanceOrder moves the order one fulfillment step forward.
func (h *Handler) AdvanceOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.transition(w, r, ps.ByName("orderid"), Advance)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, orderID string, apply func(*models.Order) bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, ok := h.loadOrder(ctx, orderID, userID)
	if !ok {
		// Missing orders are tolerated as a no-op, matching the rest of
		// the cart's absent-key semantics.
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"applied": false})
		return
	}

	if !apply(&order) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"applied": false, "order": order})
		return
	}

	if err := h.saveOrder(ctx, order); err != nil {
		log.Println("Order update error:", err)
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}

	BroadcastOrderUpdate(order)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"applied": true, "order": order})
}

func (h *Handler) loadOrder(ctx context.Context, orderID, userID string) (models.Order, bool) {
	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderId": orderID, "userId": userID}).Decode(&order)
	if err != nil {
		return models.Order{}, false
	}
	return order, true
}

func (h *Handler) saveOrder(ctx context.Context, order models.Order) error {
	_, err := db.OrderCollection.ReplaceOne(ctx, bson.M{"orderId": order.OrderID}, order)
	return err
}
