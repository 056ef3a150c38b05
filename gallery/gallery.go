package gallery

import (
	"context"
	"log"
	"net/http"
	"time"

	"inkpress/db"
	"inkpress/models"
	"inkpress/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetGalleryItems returns the showcase pieces, newest first.
func GetGalleryItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.GalleryCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetGalleryItems Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load gallery")
		return
	}
	defer cursor.Close(ctx)

	var items []models.GalleryItem
	if err := cursor.All(ctx, &items); err != nil {
		log.Println("GetGalleryItems cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load gallery")
		return
	}
	if len(items) == 0 {
		items = []models.GalleryItem{}
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}
