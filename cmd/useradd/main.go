// Comando useradd da de alta usuarios por fuera del API: el servicio no
// expone signup, los usuarios se aprovisionan con esta herramienta.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"dm-chat/internal/db"
	"dm-chat/internal/domain"
	"dm-chat/internal/repository"
)

func main() {
	username := flag.String("username", "", "username del nuevo usuario")
	password := flag.String("password", "", "password del nuevo usuario")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	var cfg struct {
		DatabaseURL string `env:"DATABASE_URL,required"`
		BcryptCost  int    `env:"BCRYPT_COST" envDefault:"10"`
	}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	users := repository.NewPgUserRepository(pool)
	id, err := users.Create(ctx, domain.User{
		Username:     *username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("created user %q with id %d\n", *username, id)
}
