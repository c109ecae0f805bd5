package profile

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"garments/db"
	"garments/globals"
	"garments/models"
	"garments/rdx"
	"garments/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const profileCacheTTL = 5 * time.Minute

func requestUserID(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

func invalidateCachedProfile(userID string) {
	if err := rdx.RdxDel("profile:" + userID); err != nil && err != rdx.ErrUnavailable {
		log.Println("Profile cache invalidation error:", err)
	}
}

// GetProfile returns the current user's profile, redis-cached.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if cached, err := rdx.RdxGet("profile:" + userID); err == nil {
		var user models.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, user)
			return
		}
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	if data, err := json.Marshal(user); err == nil {
		if err := rdx.RdxSet("profile:"+userID, string(data), profileCacheTTL); err != nil && err != rdx.ErrUnavailable {
			log.Println("Profile cache write error:", err)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// EditProfile updates the named optional fields (mobile, style profile,
// email). Unknown fields in the payload are ignored.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Email        *string `json:"email"`
		Mobile       *string `json:"mobile"`
		StyleProfile *string `json:"styleProfile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	updates := bson.M{}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Mobile != nil {
		updates["mobile"] = *input.Mobile
	}
	if input.StyleProfile != nil {
		updates["styleprofile"] = *input.StyleProfile
	}
	if len(updates) == 0 {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, bson.M{"$set": updates}); err != nil {
		log.Println("EditProfile update error:", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	invalidateCachedProfile(userID)
	utils.SendResponse(w, http.StatusOK, nil, "Profile updated", nil)
}

// AddAddress appends a shipping address to the profile.
func AddAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var addr models.ShippingAddress
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if addr.FullName == "" || addr.Street == "" || addr.City == "" || addr.Pincode == "" {
		http.Error(w, "Missing required address fields", http.StatusBadRequest)
		return
	}

	if _, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$push": bson.M{"addresses": addr}},
	); err != nil {
		log.Println("AddAddress update error:", err)
		http.Error(w, "Failed to save address", http.StatusInternalServerError)
		return
	}

	invalidateCachedProfile(userID)
	utils.SendResponse(w, http.StatusCreated, addr, "Address added", nil)
}

// RemoveAddress deletes the address at the given index; out-of-range is
// a silent no-op.
func RemoveAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	idx, err := strconv.Atoi(ps.ByName("index"))
	if err != nil || idx < 0 || idx >= len(user.Addresses) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"applied": false})
		return
	}

	user.Addresses = append(user.Addresses[:idx], user.Addresses[idx+1:]...)
	if _, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"addresses": user.Addresses}},
	); err != nil {
		log.Println("RemoveAddress update error:", err)
		http.Error(w, "Failed to remove address", http.StatusInternalServerError)
		return
	}

	invalidateCachedProfile(userID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"applied": true})
}
