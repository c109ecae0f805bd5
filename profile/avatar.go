package profile

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"garments/db"
	"garments/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const avatarDir = "./static/avatars"

// EditAvatar accepts a multipart image, stores a 256px thumbnail and
// records its path on the profile.
func EditAvatar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "Avatar file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		http.Error(w, "Invalid image", http.StatusBadRequest)
		return
	}

	thumb := imaging.Fill(img, 256, 256, imaging.Center, imaging.Lanczos)

	if err := utils.EnsureDir(avatarDir); err != nil {
		log.Println("Avatar dir error:", err)
		http.Error(w, "Failed to store avatar", http.StatusInternalServerError)
		return
	}

	// Random suffix so a replaced avatar gets a fresh URL past any cache.
	path := filepath.Join(avatarDir, fmt.Sprintf("%s-%s.jpg", userID, utils.GenerateRandomString(8)))
	if err := imaging.Save(thumb, path); err != nil {
		log.Println("Avatar save error:", err)
		http.Error(w, "Failed to store avatar", http.StatusInternalServerError)
		return
	}

	if _, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"avatarpath": path}},
	); err != nil {
		log.Println("Avatar profile update error:", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	invalidateCachedProfile(userID)
	utils.SendResponse(w, http.StatusOK, map[string]string{"avatarPath": path}, "Avatar updated", nil)
}
