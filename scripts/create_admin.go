// Command create_admin provisions an admin account directly in the
// database, since no API endpoint creates admin users.
//
//	go run scripts/create_admin.go -email admin@example.com -password s3cret
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	FullName  string
	Age       int
	City      string
	Password  string `gorm:"not null"`
	IsAdmin   bool   `gorm:"default:false"`
	CreatedAt time.Time
}

func main() {
	email := flag.String("email", "admin@example.com", "Admin email address")
	password := flag.String("password", "", "Admin password (required)")
	fullName := flag.String("name", "Administrator", "Admin full name")
	age := flag.Int("age", 30, "Admin age")
	city := flag.String("city", "", "Admin city")
	dbPath := flag.String("db", "food.sqlite", "SQLite database path")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		log.Fatal("Failed to migrate users table:", err)
	}

	var existing User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		log.Fatalf("User %s already exists (id=%d)", *email, existing.ID)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := User{
		Email:    *email,
		FullName: *fullName,
		Age:      *age,
		City:     *city,
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Admin user created: %s (id=%d)\n", admin.Email, admin.ID)
}
