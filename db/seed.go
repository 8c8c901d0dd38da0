package db

import (
	"context"
	"log"
	"time"

	"kirana/models"
	"kirana/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func offer(v float64) *float64 { return &v }

// SeedIfEmpty fills the catalog and creates the admin and demo accounts
// the first time the server starts against an empty database.
func SeedIfEmpty(ctx context.Context) error {
	count, err := ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Database already has %d products", count)
		return nil
	}

	log.Println("Initializing database with products...")

	now := time.Now()
	docs := make([]interface{}, 0, len(seedProducts))
	for _, p := range seedProducts {
		p.ProductID = "p" + utils.GenerateRandomString(10)
		if len(p.Images) == 0 {
			p.Images = []string{p.Image}
		}
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}
	if _, err := ProductCollection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Database initialized with %d products", len(docs))

	if err := seedUser(ctx, "Admin", "admin@grocerymart.com", "admin123", models.RoleAdmin); err != nil {
		return err
	}
	return seedUser(ctx, "Demo User", "demo@grocerymart.com", "demo123", models.RoleUser)
}

func seedUser(ctx context.Context, name, email, password, role string) error {
	err := UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = UserCollection.InsertOne(ctx, models.User{
		UserID:       "u" + utils.GenerateRandomString(10),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    time.Now(),
	})
	if err == nil {
		log.Printf("User created: %s (%s)", email, role)
	}
	return err
}

var seedProducts = []models.Product{
	// Vegetables
	{Name: "Fresh Tomatoes", Price: 40, OfferPrice: offer(35), Image: "https://images.unsplash.com/photo-1546470427-227e5f3a8f93?w=400&h=400&fit=crop", Stock: 100, Description: "Fresh juicy tomatoes", Category: "vegetables"},
	{Name: "Organic Carrots", Price: 30, OfferPrice: offer(25), Image: "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?w=400&h=400&fit=crop", Stock: 80, Description: "Organic carrots", Category: "vegetables"},
	{Name: "Fresh Spinach", Price: 25, OfferPrice: offer(20), Image: "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400&h=400&fit=crop", Stock: 60, Description: "Fresh spinach leaves", Category: "vegetables"},
	{Name: "Bell Peppers", Price: 60, OfferPrice: offer(50), Image: "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=400&h=400&fit=crop", Stock: 45, Description: "Colorful bell peppers", Category: "vegetables"},
	{Name: "Fresh Broccoli", Price: 80, OfferPrice: offer(70), Image: "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=400&h=400&fit=crop", Stock: 35, Description: "Fresh broccoli", Category: "vegetables"},
	{Name: "Red Onions", Price: 35, OfferPrice: offer(30), Image: "https://images.unsplash.com/photo-1618512496248-a07fe83aa8cb?w=400&h=400&fit=crop", Stock: 90, Description: "Fresh red onions", Category: "vegetables"},

	// Dairy
	{Name: "Fresh Milk", Price: 60, OfferPrice: offer(55), Image: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400&h=400&fit=crop", Stock: 50, Description: "Fresh whole milk", Category: "dairy"},
	{Name: "Greek Yogurt", Price: 120, OfferPrice: offer(100), Image: "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400&h=400&fit=crop", Stock: 30, Description: "Creamy Greek yogurt", Category: "dairy"},
	{Name: "Cheddar Cheese", Price: 200, OfferPrice: offer(180), Image: "https://images.unsplash.com/photo-1452195100486-9cc805987862?w=400&h=400&fit=crop", Stock: 25, Description: "Aged cheddar cheese", Category: "dairy"},
	{Name: "Fresh Butter", Price: 150, OfferPrice: offer(140), Image: "https://images.unsplash.com/photo-1589985270826-4b7bb135bc9d?w=400&h=400&fit=crop", Stock: 40, Description: "Creamy fresh butter", Category: "dairy"},
	{Name: "Cottage Cheese", Price: 80, OfferPrice: offer(75), Image: "https://images.unsplash.com/photo-1628088062854-d1870b4553da?w=400&h=400&fit=crop", Stock: 35, Description: "Fresh cottage cheese", Category: "dairy"},
	{Name: "Paneer", Price: 180, OfferPrice: offer(160), Image: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=400&fit=crop", Stock: 30, Description: "Fresh paneer", Category: "dairy"},

	// Fruits
	{Name: "Fresh Apples", Price: 120, OfferPrice: offer(100), Image: "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400&h=400&fit=crop", Stock: 70, Description: "Crisp fresh apples", Category: "fruits"},
	{Name: "Ripe Bananas", Price: 50, OfferPrice: offer(45), Image: "https://images.unsplash.com/photo-1603833665858-e61d17a86224?w=400&h=400&fit=crop", Stock: 85, Description: "Sweet ripe bananas", Category: "fruits"},
	{Name: "Fresh Oranges", Price: 80, OfferPrice: offer(70), Image: "https://images.unsplash.com/photo-1547514701-42782101795e?w=400&h=400&fit=crop", Stock: 60, Description: "Juicy oranges", Category: "fruits"},
	{Name: "Sweet Mangoes", Price: 150, OfferPrice: offer(130), Image: "https://images.unsplash.com/photo-1601493700631-2b16ec4b4716?w=400&h=400&fit=crop", Stock: 40, Description: "Sweet mangoes", Category: "fruits"},
	{Name: "Fresh Grapes", Price: 90, OfferPrice: offer(80), Image: "https://images.unsplash.com/photo-1599819177818-6f7c2e1d6e3b?w=400&h=400&fit=crop", Stock: 55, Description: "Sweet grapes", Category: "fruits"},
	{Name: "Strawberries", Price: 200, OfferPrice: offer(180), Image: "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400&h=400&fit=crop", Stock: 35, Description: "Fresh strawberries", Category: "fruits"},

	// Beverages
	{Name: "Orange Juice", Price: 80, OfferPrice: offer(70), Image: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400&h=400&fit=crop", Stock: 50, Description: "Fresh orange juice", Category: "beverages"},
	{Name: "Apple Juice", Price: 75, OfferPrice: offer(65), Image: "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400&h=400&fit=crop", Stock: 45, Description: "Fresh apple juice", Category: "beverages"},
	{Name: "Coconut Water", Price: 50, OfferPrice: offer(45), Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400&h=400&fit=crop", Stock: 60, Description: "Natural coconut water", Category: "beverages"},
	{Name: "Green Tea", Price: 120, OfferPrice: offer(110), Image: "https://images.unsplash.com/photo-1564890369478-c89ca6d9cde9?w=400&h=400&fit=crop", Stock: 70, Description: "Premium green tea", Category: "beverages"},
	{Name: "Coffee Beans", Price: 300, OfferPrice: offer(280), Image: "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=400&h=400&fit=crop", Stock: 50, Description: "Roasted coffee beans", Category: "beverages"},
	{Name: "Mineral Water", Price: 20, OfferPrice: offer(18), Image: "https://images.unsplash.com/photo-1548839140-29a749e1cf4d?w=400&h=400&fit=crop", Stock: 100, Description: "Pure mineral water", Category: "beverages"},

	// Grains
	{Name: "Basmati Rice", Price: 200, OfferPrice: offer(180), Image: "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400&h=400&fit=crop", Stock: 100, Description: "Premium basmati rice", Category: "grains"},
	{Name: "Whole Wheat Flour", Price: 80, OfferPrice: offer(75), Image: "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=400&h=400&fit=crop", Stock: 80, Description: "Whole wheat flour", Category: "grains"},
	{Name: "Oats", Price: 120, OfferPrice: offer(110), Image: "https://images.unsplash.com/photo-1574635542104-830a7c7c9e9d?w=400&h=400&fit=crop", Stock: 60, Description: "Rolled oats", Category: "grains"},
	{Name: "Quinoa", Price: 300, OfferPrice: offer(280), Image: "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400&h=400&fit=crop", Stock: 40, Description: "Organic quinoa", Category: "grains"},
	{Name: "Corn Flakes", Price: 150, OfferPrice: offer(140), Image: "https://images.unsplash.com/photo-1621939514649-280e2ee25f60?w=400&h=400&fit=crop", Stock: 60, Description: "Crispy corn flakes", Category: "grains"},
	{Name: "Pasta", Price: 120, OfferPrice: offer(110), Image: "https://images.unsplash.com/photo-1551462147-37bd170650dc?w=400&h=400&fit=crop", Stock: 70, Description: "Durum wheat pasta", Category: "grains"},
}
