package configs

import (
	"log"

	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the back-office user once, from env.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{Name: "Admin", Email: email, Password: string(hashed), Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("admin seeded:", email)
	return nil
}

// SeedFoods loads a starter menu the first time the database is created.
func SeedFoods() error {
	db := DB()

	var count int64
	db.Model(&entity.Food{}).Count(&count)
	if count > 0 {
		return nil
	}

	foods := []entity.Food{
		{Name: "Pizza Margarita", Description: "Tomate, mozzarella y albahaca", Price: 9.8, Category: "Main course", ImageURL: "/images/pizza.jpg"},
		{Name: "Paella Valenciana", Description: "Arroz con pollo y verduras", Price: 12.5, Category: "Main course", ImageURL: "/images/paella.jpg"},
		{Name: "Ensalada Mixta", Description: "Lechuga, tomate, atún y huevo", Price: 6.0, Category: "Starter", ImageURL: "/images/ensalada.jpg"},
		{Name: "Crema Catalana", Description: "Postre tradicional con azúcar quemado", Price: 4.5, Category: "Dessert", ImageURL: "/images/crema.jpg"},
	}
	if err := db.Create(&foods).Error; err != nil {
		return err
	}
	log.Println("starter menu seeded:", len(foods), "dishes")
	return nil
}
