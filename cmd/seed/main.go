package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/salespulse/backend/auth"
	"github.com/salespulse/backend/database"
	"github.com/salespulse/backend/models"
)

// Predefined accounts for development and demos.
var seedUsers = []struct {
	Username string
	Password string
	Role     string
}{
	{Username: "admin", Password: "admin123", Role: models.RoleAdmin},
	{Username: "testuser", Password: "user123", Role: models.RoleUser},
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	if err := database.Connect(); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Close()

	fmt.Println("🌱 Seeding default users...")

	created := 0
	for _, seed := range seedUsers {
		var count int64
		if err := database.DB.Model(&models.User{}).Where("username = ?", seed.Username).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check user %q: %v", seed.Username, err)
		}
		if count > 0 {
			fmt.Printf("User '%s' already exists. Skipping.\n", seed.Username)
			continue
		}

		hash, err := auth.HashPassword(seed.Password)
		if err != nil {
			log.Fatalf("❌ Failed to hash password for %q: %v", seed.Username, err)
		}

		user := models.User{
			Username:     seed.Username,
			PasswordHash: hash,
			Role:         seed.Role,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			log.Fatalf("❌ Failed to create user %q: %v", seed.Username, err)
		}
		fmt.Printf("Added user: %s\n", user.Username)
		created++
	}

	fmt.Printf("✅ Seed complete, %d user(s) created\n", created)
}
