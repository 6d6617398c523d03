package seed

import (
	"fmt"
	"log"

	"glimpse/internal/models"

	"gorm.io/gorm"
)

// Seed wipes the database and populates it with demo users, posts, likes,
// and comments according to opts.
func Seed(db *gorm.DB, opts Options) error {
	log.Println("Starting database seeding...")

	if err := clearData(db); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	posts := make([]*models.Post, 0, opts.Users*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}
			posts = append(posts, post)
		}
	}
	log.Printf("Created %d posts", len(posts))

	comments := 0
	likes := 0
	for _, post := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			commenter := users[f.rand.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}

		// Each post gets likes from a random prefix of the user list. Per-user
		// uniqueness comes from iterating distinct users.
		for _, liker := range users[:f.rand.Intn(len(users)+1)] {
			if err := f.CreateLike(liker, post); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			likes++
		}
	}
	log.Printf("Created %d comments and %d likes", comments, likes)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	// Delete in dependency order to respect foreign keys.
	for _, table := range []string{"comments", "likes", "posts", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
