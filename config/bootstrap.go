package config

import (
	"context"
	"log"
	"os"
	"time"

	"roadwatch-be/models"
	"roadwatch-be/repository"
)

// EnsureDefaultSuperuser creates one staff account from ADMIN_USERNAME /
// ADMIN_EMAIL / ADMIN_PASSWORD when no staff user exists yet. It runs once
// at process start; a missing password or an unreachable store skips the
// seed without failing startup.
func EnsureDefaultSuperuser(users repository.UserRepository) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := users.CountStaff(ctx)
	if err != nil {
		log.Println("skip seeding superuser: store not reachable:", err)
		return nil
	}
	if count > 0 {
		log.Println("superuser already exists; skipping seed")
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("skip seeding superuser: ADMIN_PASSWORD not set")
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	admin := models.User{
		Username:  username,
		Email:     email,
		Password:  password,
		IsActive:  true,
		IsStaff:   true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := admin.HashPassword(); err != nil {
		return err
	}

	if _, err := users.Create(ctx, &admin); err != nil {
		return err
	}
	log.Printf("superuser %q created", username)
	return nil
}
