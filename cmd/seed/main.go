package main

import (
	"fmt"

	"stylefeed/internal/repo/persistent"
	"stylefeed/internal/usecase"
	"stylefeed/pkg/config"
	"stylefeed/pkg/database"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo creator with posts, products and a membership so the API is
// browsable right after boot. Safe to run once against an empty database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Creator{},
		&models.Membership{},
		&models.Post{},
		&models.Product{},
		&models.PostProduct{},
		&models.Event{},
	); err != nil {
		log.Error("Failed to migrate schema: %v", err)
		panic(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	user := &models.User{
		Email:    "demo@stylefeed.local",
		Username: "demo",
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		log.Error("Failed to seed user: %v", err)
		panic(err)
	}

	creator := &models.Creator{
		Slug: "suzzy",
		Name: "Suzzy",
		Bio:  "Daily outfit breakdowns and product picks.",
		Links: models.LinkList{
			{URL: "https://instagram.com/suzzy", Label: "Instagram"},
			{URL: "https://youtube.com/@suzzy", Label: "YouTube"},
		},
	}
	if err := db.Create(creator).Error; err != nil {
		log.Error("Failed to seed creator: %v", err)
		panic(err)
	}

	membership := &models.Membership{
		UserID:    user.ID,
		CreatorID: creator.ID,
		Role:      models.RoleOwner,
	}
	if err := db.Create(membership).Error; err != nil {
		log.Error("Failed to seed membership: %v", err)
		panic(err)
	}

	postRepo := persistent.NewPostRepository(db)
	entries := []models.ProductEntry{
		{Brand: "Nike", Name: "Air Max 97", Link: "https://shop.example/nike-air-max-97"},
		{Brand: "Zara", Name: "Oversized Blazer", Link: "https://shop.example/zara-blazer"},
	}
	post := &models.Post{
		AuthorCreatorID: creator.ID,
		Title:           "Fall layering fit check",
		CoverImage:      "covers/demo/fall-layering.jpg",
		Body:            "Three ways to style an oversized blazer.",
		Published:       true,
		Meta:            models.PostMeta{Products: entries},
	}
	if err := postRepo.Create(post); err != nil {
		log.Error("Failed to seed post: %v", err)
		panic(err)
	}

	products := make([]models.Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, models.Product{
			Slug:  usecase.DeriveProductSlug(e.Brand, e.Name, e.Link),
			Brand: e.Brand,
			Name:  e.Name,
			URL:   e.Link,
		})
	}
	if err := postRepo.ReplaceProducts(post.ID, products); err != nil {
		log.Error("Failed to seed products: %v", err)
		panic(err)
	}

	log.Info("Seeded creator %s with post %s", creator.Slug, post.ID)
	fmt.Println("Seed complete")
	fmt.Println("  demo login: demo@stylefeed.local / password123")
}
