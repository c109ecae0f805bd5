package stylist

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"garments/utils"

	"github.com/julienschmidt/httprouter"
)

// Canned styling advice keyed by occasion, used when no external
// text-generation service is configured (or when it fails). The advice
// service is an external collaborator; the storefront only ever sees a
// single request/response text exchange.
var lookbook = map[string][]string{
	"casual": {
		"Pair the Oversized Street Tee with Slim Fit Jeans and white sneakers for an easy weekend look.",
		"A Classic Crew Tee under the Denim Trucker Jacket works in every season — keep the palette neutral.",
		"Roll the cuffs on your jeans and add the Zip Fleece Hoodie for a relaxed layered fit.",
	},
	"office": {
		"The Linen Resort Shirt tucked into dark jeans reads smart-casual without trying too hard.",
		"Stick to two colors max — a sky linen shirt over indigo denim keeps it clean.",
	},
	"festive": {
		"The Festive Silk Kurta in maroon with cream bottoms is a safe, sharp festival pairing.",
		"Layer the kurta with a plain stole and simple sandals — let the silk do the talking.",
	},
	"date": {
		"Denim jacket over a plain white tee is the classic for a reason. Add a clean pair of boots.",
		"Keep it simple: fitted black tee, slim jeans, and one accent piece.",
	},
}

var httpClient = &http.Client{Timeout: 15 * time.Second}

type adviceRequest struct {
	Occasion     string `json:"occasion"`
	StyleProfile string `json:"styleProfile"`
	Question     string `json:"question"`
}

// Advice answers a styling question, preferring the external service and
// falling back to the lookbook.
func Advice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if text, ok := remoteAdvice(req); ok {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"advice": text, "source": "stylist"})
		return
	}

	occasion := strings.ToLower(strings.TrimSpace(req.Occasion))
	options, ok := lookbook[occasion]
	if !ok {
		options = lookbook["casual"]
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"advice": options[rand.Intn(len(options))],
		"source": "lookbook",
	})
}

// remoteAdvice forwards the question to the configured text service.
func remoteAdvice(req adviceRequest) (string, bool) {
	endpoint := os.Getenv("STYLIST_API_URL")
	if endpoint == "" {
		return "", false
	}

	prompt := req.Question
	if prompt == "" {
		prompt = "Suggest an outfit for " + req.Occasion
	}
	if req.StyleProfile != "" {
		prompt += " (style profile: " + req.StyleProfile + ")"
	}

	body, _ := json.Marshal(map[string]string{"prompt": prompt})
	resp, err := httpClient.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Println("Stylist service error:", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("Stylist service status:", resp.StatusCode)
		return "", false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", false
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &out); err != nil || out.Text == "" {
		return "", false
	}
	return out.Text, true
}
