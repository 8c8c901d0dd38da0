package products

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"kirana/db"
	"kirana/models"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProducts handles GET /api/products with category/search filters,
// pagination and optional in-page sorting.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 12
	}

	filter := bson.M{}
	if category := q.Get("category"); category != "" && category != "all" {
		filter["category"] = bson.M{"$regex": category, "$options": "i"}
	}
	if search := q.Get("search"); search != "" {
		rx := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": rx},
			{"category": rx},
			{"description": rx},
		}
	}

	total, err := db.ProductCollection.CountDocuments(ctx, filter)
	if err != nil {
		log.Println("GetProducts count error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := db.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetProducts find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetProducts cursor error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	if list == nil {
		list = []models.Product{}
	}

	sortProducts(list, q.Get("sortBy"))

	utils.RespondWithJSON(w, http.StatusOK, models.ProductPage{
		Products: list,
		Pagination: models.Pagination{
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalProducts: total,
			HasNextPage:   page < totalPages,
			HasPrevPage:   page > 1,
		},
	})
}

// sortProducts orders the fetched page in place. Effective (offer)
// prices drive the price sorts.
func sortProducts(list []models.Product, sortBy string) {
	switch sortBy {
	case "price-low":
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EffectivePrice() < list[j].EffectivePrice()
		})
	case "price-high":
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EffectivePrice() > list[j].EffectivePrice()
		})
	case "name":
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
	}
}

// GetProduct handles GET /api/products/:id
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": ps.ByName("id")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching product")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct handles POST /api/products (admin only)
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if product.Name == "" || product.Price <= 0 || product.Stock < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or invalid fields")
		return
	}
	if product.OfferPrice != nil && *product.OfferPrice > product.Price {
		utils.RespondWithError(w, http.StatusBadRequest, "Offer price cannot exceed price")
		return
	}
	if !validCategory(product.Category) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown category")
		return
	}

	product.ProductID = "p" + utils.GenerateRandomString(10)
	if len(product.Images) == 0 && product.Image != "" {
		product.Images = []string{product.Image}
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct insert error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Error creating product")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id (admin only)
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var update bson.M
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	// Identity and timestamps are never client-writable.
	delete(update, "productid")
	delete(update, "_id")
	delete(update, "createdAt")
	update["updatedAt"] = time.Now()

	var product models.Product
	err := db.ProductCollection.FindOneAndUpdate(ctx,
		bson.M{"productid": ps.ByName("id")},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("UpdateProduct error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Error updating product")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id (admin only)
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product deleted successfully"})
}

func validCategory(c string) bool {
	for _, cat := range models.Categories {
		if c == cat {
			return true
		}
	}
	return false
}
