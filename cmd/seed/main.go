// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"glimpse/internal/config"
	"glimpse/internal/database"
	"glimpse/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	postsPerUser := flag.Int("posts", 3, "posts per user")
	commentsPerPost := flag.Int("comments", 2, "comments per post")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext passwords (fast, dev only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.PostsPerUser = *postsPerUser
	opts.CommentsPerPost = *commentsPerPost
	opts.SkipBcrypt = *skipBcrypt

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
