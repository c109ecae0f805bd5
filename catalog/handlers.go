package catalog

import (
	"context"
	"log"
	"net/http"
	"time"

	"garments/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// GetProducts returns the catalog, optional ?category= filter.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := h.Store.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		log.Println("GetProducts error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProductByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	product, ok := h.Store.GetProduct(ctx, ps.ByName("productid"))
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}
