package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ohsung-dev/community-api/config"
)

// Seeds one ACTIVE user and one post for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@community.dev"
	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (email, nickname, address, status, certification_code, last_login_at)
		VALUES ($1, $2, $3, 'ACTIVE', $4, $5)
		ON CONFLICT (email) DO UPDATE SET nickname = EXCLUDED.nickname
		RETURNING id
	`, email, "demo", "Seoul", uuid.NewString(), time.Now().UTC()).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s\n", userID, email)

	var postID int64
	err = db.QueryRow(`
		INSERT INTO posts (writer_id, content, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, "hello, world", time.Now().UTC()).Scan(&postID)
	if err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%d writer_id=%d\n", postID, userID)
}
