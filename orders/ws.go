package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"garments/db"
	"garments/middleware"
	"garments/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

// subscriberClaims resolves the caller's identity from the Authorization
// header or, since browsers cannot set headers on a WebSocket dial, from
// a token query parameter.
func subscriberClaims(r *http.Request) (*middleware.Claims, error) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		if tok := r.URL.Query().Get("token"); tok != "" {
			tokenString = "Bearer " + tok
		}
	}
	return middleware.ValidateJWT(tokenString)
}

// TrackOrderWS streams status updates for one order to the client until
// it disconnects. Only the order's owner may subscribe.
func TrackOrderWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orderID := ps.ByName("orderid")

	claims, err := subscriberClaims(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	if db.OrderCollection == nil ||
		db.OrderCollection.FindOne(ctx, bson.M{"orderId": orderID, "userId": claims.UserID}).Decode(&order) != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[orderID] = append(subscribers[orderID], conn)
	mu.Unlock()

	for {
		// Keeps the connection alive until the client disconnects.
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	conns := subscribers[orderID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[orderID] = newList
	mu.Unlock()

	conn.Close()
}

// BroadcastOrderUpdate pushes the order's new status and tracking steps
// to every subscriber.
func BroadcastOrderUpdate(order models.Order) {
	payload, err := json.Marshal(map[string]any{
		"type":          "order_update",
		"orderId":       order.OrderID,
		"status":        order.Status,
		"trackingSteps": order.TrackingSteps,
	})
	if err != nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[order.OrderID]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err == nil {
			newList = append(newList, conn)
		} else {
			log.Println("Order ws write error:", err)
			conn.Close()
		}
	}
	subscribers[order.OrderID] = newList
}
