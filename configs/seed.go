package configs

import (
	"log"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
		IsActive:  true,
	}
	return db.Create(&admin).Error
}

// Seed หมวดหมู่เริ่มต้นของ catalogue
func SeedCategories() error {
	db := DB()

	for _, name := range []string{
		"Food & Drink",
		"Fashion",
		"Electronics",
		"Home & Garden",
		"Arts & Crafts",
		"Services",
	} {
		db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name})
	}

	log.Println("✅ Categories seeded")
	return nil
}
