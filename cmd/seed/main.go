// Command seed loads demo users, listings, and conversations into the
// database. It is idempotent: records are looked up by natural key before
// insertion, so running it twice changes nothing.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/varsitymarket/varsity-market-backend/internal/config"
	"github.com/varsitymarket/varsity-market-backend/internal/database"
	"github.com/varsitymarket/varsity-market-backend/internal/logging"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoPassword = "password123"

type demoUser struct {
	Email      string
	Name       string
	AvatarURL  string
	University string
	Phone      string
}

type demoProduct struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Condition   string
	Images      []string
	SellerEmail string
	University  string
}

var demoUsers = []demoUser{
	{"alice@uct.ac.za", "Alice Johnson", "https://picsum.photos/seed/alice/100/100", "University of Cape Town", "+27821234567"},
	{"bob@wits.ac.za", "Bob Williams", "https://picsum.photos/seed/bob/100/100", "Wits University", "+27831234567"},
	{"charlie@sun.ac.za", "Charlie Brown", "https://picsum.photos/seed/charlie/100/100", "Stellenbosch University", ""},
	{"diana@up.ac.za", "Diana Prince", "https://picsum.photos/seed/diana/100/100", "University of Pretoria", "+27841234567"},
}

var demoProducts = []demoProduct{
	{"Advanced Calculus Textbook", "Slightly used, no markings. 8th Edition. Essential for first-year engineering and science students. Includes access code (unscratched).", 750, "Textbooks", "Like New", []string{"https://picsum.photos/seed/calculus/600/400", "https://picsum.photos/seed/calculus2/600/400"}, "bob@wits.ac.za", "Wits University"},
	{"Noise-Cancelling Headphones", "Brand new in box. Sony WH-1000XM4 model. Unwanted gift. Amazing sound quality and noise cancellation, perfect for studying in noisy environments.", 1500, "Electronics", "New", []string{"https://picsum.photos/seed/headphones/600/400"}, "charlie@sun.ac.za", "Stellenbosch University"},
	{"Mini Fridge", "Perfect for a dorm room. Works great, keeps drinks and snacks cold. Small freezer compartment included. Model: KIC MiniCooler.", 500, "Appliances", "Good", []string{"https://picsum.photos/seed/fridge/600/400"}, "diana@up.ac.za", "University of Pretoria"},
	{"IKEA Desk Chair", "Comfortable and in good condition. Minor scuffs on the armrests but otherwise perfect. Adjustable height and tilt function.", 400, "Furniture", "Good", []string{"https://picsum.photos/seed/chair/600/400"}, "alice@uct.ac.za", "University of Cape Town"},
	{"University Hoodie", "Official university hoodie, size M. Worn twice. Super warm and comfortable. Selling because I bought the wrong size.", 250, "Clothing", "Like New", []string{"https://picsum.photos/seed/hoodie/600/400"}, "bob@wits.ac.za", "Wits University"},
	{"Organic Chemistry Textbook", "Essential for pre-meds. Includes solution manual. Covered in plastic, so it's in mint condition. 11th Edition by Paula Yurkanis Bruice.", 900, "Textbooks", "Like New", []string{"https://picsum.photos/seed/chem/600/400"}, "alice@uct.ac.za", "University of Cape Town"},
	{"Portable Bluetooth Speaker", "JBL Flip 5. Loud and clear sound, 12-hour battery life. Waterproof, so it's great for taking anywhere. Comes with charging cable.", 600, "Electronics", "Good", []string{"https://picsum.photos/seed/speaker/600/400"}, "diana@up.ac.za", "University of Pretoria"},
	{"Bookshelf", "Simple 3-shelf bookshelf. Easy to assemble. Made from light pine wood. Perfect for textbooks and decor. Dimensions: 120cm x 60cm x 30cm.", 200, "Furniture", "Good", []string{"https://picsum.photos/seed/bookshelf/600/400"}, "charlie@sun.ac.za", "Stellenbosch University"},
}

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	db := database.DB

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash demo password", "error", err)
		os.Exit(1)
	}

	users := make(map[string]models.User, len(demoUsers))
	for _, du := range demoUsers {
		user, err := seedUser(db, du, string(hash))
		if err != nil {
			slog.Error("failed to seed user", "email", du.Email, "error", err)
			os.Exit(1)
		}
		users[du.Email] = *user
	}
	slog.Info("users seeded", "count", len(users))

	products := make(map[string]models.Product, len(demoProducts))
	for i, dp := range demoProducts {
		product, err := seedProduct(db, dp, users[dp.SellerEmail].ID, i)
		if err != nil {
			slog.Error("failed to seed product", "title", dp.Title, "error", err)
			os.Exit(1)
		}
		products[dp.Title] = *product
	}
	slog.Info("products seeded", "count", len(products))

	if err := seedConversations(db, users, products); err != nil {
		slog.Error("failed to seed conversations", "error", err)
		os.Exit(1)
	}
	slog.Info("seed complete")
}

func seedUser(db *gorm.DB, du demoUser, passwordHash string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", du.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}

	user = models.User{
		ID:          uuid.New(),
		Email:       du.Email,
		Password:    passwordHash,
		Name:        du.Name,
		AvatarURL:   du.AvatarURL,
		University:  du.University,
		PhoneNumber: du.Phone,
		Role:        models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedProduct(db *gorm.DB, dp demoProduct, sellerID uuid.UUID, ordinal int) (*models.Product, error) {
	var product models.Product
	err := db.Where("title = ? AND seller_id = ?", dp.Title, sellerID).First(&product).Error
	if err == nil {
		return &product, nil
	}

	product = models.Product{
		ID:          uuid.New(),
		Title:       dp.Title,
		Description: dp.Description,
		Price:       dp.Price,
		Category:    dp.Category,
		Condition:   dp.Condition,
		ImageURLs:   dp.Images,
		SellerID:    sellerID,
		University:  dp.University,
		// Stagger creation times so newest-first ordering is visible.
		CreatedAt: time.Now().Add(-time.Duration(len(demoProducts)-ordinal) * time.Hour),
	}
	if err := db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func seedConversations(db *gorm.DB, users map[string]models.User, products map[string]models.Product) error {
	type thread struct {
		product string
		buyer   string
		texts   []string // alternating buyer, seller
	}

	threads := []thread{
		{
			product: "Advanced Calculus Textbook",
			buyer:   "alice@uct.ac.za",
			texts: []string{
				"Hi, is the calculus textbook still available?",
				"Yes, it is!",
				"Great! Could you do R650?",
			},
		},
		{
			product: "Noise-Cancelling Headphones",
			buyer:   "alice@uct.ac.za",
			texts: []string{
				"Hey! I'm interested in the headphones.",
				"Awesome, they are really good. Let me know if you have questions.",
			},
		},
	}

	for _, t := range threads {
		product, ok := products[t.product]
		if !ok {
			continue
		}
		buyer := users[t.buyer]

		var conv models.Conversation
		err := db.Where("product_id = ? AND buyer_id = ? AND seller_id = ?",
			product.ID, buyer.ID, product.SellerID).First(&conv).Error
		if err == nil {
			continue
		}

		conv = models.Conversation{
			ID:        uuid.New(),
			ProductID: product.ID,
			BuyerID:   buyer.ID,
			SellerID:  product.SellerID,
		}
		if err := db.Create(&conv).Error; err != nil {
			return err
		}

		base := time.Now().Add(-1 * time.Hour)
		for i, text := range t.texts {
			senderID := buyer.ID
			if i%2 == 1 {
				senderID = product.SellerID
			}
			msg := models.Message{
				ID:             uuid.New(),
				ConversationID: conv.ID,
				SenderID:       senderID,
				Text:           text,
				CreatedAt:      base.Add(time.Duration(i) * time.Minute),
			}
			if err := db.Create(&msg).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
