package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"kirana/db"
	"kirana/live"
	"kirana/models"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var svc *Service

// Init wires the package-level service against Mongo and the admin live
// feed. Called once from main; hub may be nil in tests.
func Init(hub *live.Hub) {
	var notify Notifier
	if hub != nil {
		notify = hub
	}
	svc = NewService(catalogStock{}, mongoStore{}, notify)
}

// PlaceOrder handles POST /api/orders
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	order, err := svc.Place(ctx, userID, req)
	if err != nil {
		if errors.Is(err, ErrEmptyOrder) {
			utils.RespondWithError(w, http.StatusBadRequest, "Order must contain items")
			return
		}
		log.Println("Order creation error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetMyOrders handles GET /api/orders, returning the caller's orders
// with item product references populated from the live catalog.
func GetMyOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Access denied")
		return
	}

	list, err := svc.store.FindByUser(ctx, userID)
	if err != nil {
		log.Println("GetMyOrders error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	populateProducts(ctx, list)
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetAllOrders handles GET /api/admin/orders (admin only), newest first
// with buyer name/email attached.
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := svc.store.FindAll(ctx)
	if err != nil {
		log.Println("GetAllOrders error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	populateBuyers(ctx, list)
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// CancelOrder handles PUT /api/orders/:id/cancel
func CancelOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := svc.Cancel(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Cancel failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// populateProducts attaches the current catalog document to each order
// item whose product still exists. Best effort: lookup failures leave
// the denormalized snapshot as the only data.
func populateProducts(ctx context.Context, list []models.Order) {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, order := range list {
		for _, item := range order.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return
	}

	cursor, err := db.ProductCollection.Find(ctx, bson.M{"productid": bson.M{"$in": ids}})
	if err != nil {
		log.Println("populateProducts find error:", err)
		return
	}
	defer cursor.Close(ctx)

	var catalog []models.Product
	if err := cursor.All(ctx, &catalog); err != nil {
		log.Println("populateProducts decode error:", err)
		return
	}
	byID := make(map[string]*models.Product, len(catalog))
	for i := range catalog {
		byID[catalog[i].ProductID] = &catalog[i]
	}

	for oi := range list {
		for ii := range list[oi].Items {
			list[oi].Items[ii].Product = byID[list[oi].Items[ii].ProductID]
		}
	}
}

func populateBuyers(ctx context.Context, list []models.Order) {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, order := range list {
		if !seen[order.UserID] {
			seen[order.UserID] = true
			ids = append(ids, order.UserID)
		}
	}
	if len(ids) == 0 {
		return
	}

	cursor, err := db.UserCollection.Find(ctx, bson.M{"userid": bson.M{"$in": ids}})
	if err != nil {
		log.Println("populateBuyers find error:", err)
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		log.Println("populateBuyers decode error:", err)
		return
	}
	byID := make(map[string]models.PublicUser, len(users))
	for _, u := range users {
		byID[u.UserID] = u.Public()
	}

	for i := range list {
		if pu, ok := byID[list[i].UserID]; ok {
			buyer := pu
			list[i].Buyer = &buyer
		}
	}
}
