package seed

import (
	"fmt"
	"log"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo users, groups, posts, comments
// and a follow mesh.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes every seeded row. Children first so foreign keys hold
// on databases without cascading deletes enabled.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing database...")
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

var defaultGroups = []struct {
	Title string
	Slug  string
}{
	{"Technology", "tech"},
	{"Travel", "travel"},
	{"Cooking", "cooking"},
	{"Books", "books"},
	{"Music", "music"},
}

// Run seeds numUsers users and numPosts posts, plus groups, comments and
// follows. An admin account (admin / admin@yatube.local) is always created.
func (s *Seeder) Run(numUsers, numPosts int) error {
	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Username = "admin"
		u.Email = "admin@yatube.local"
		u.IsAdmin = true
	})
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}

	users := []*models.User{admin}
	for i := 1; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	groups := make([]*models.Group, 0, len(defaultGroups))
	for _, g := range defaultGroups {
		group, err := s.factory.CreateGroup(g.Title, g.Slug)
		if err != nil {
			return fmt.Errorf("creating group %q: %w", g.Slug, err)
		}
		groups = append(groups, group)
	}
	log.Printf("Created %d groups", len(groups))

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.r.Intn(len(users))]
		var group *models.Group
		// Roughly a third of posts go without a group.
		if s.factory.r.Intn(3) != 0 {
			group = groups[s.factory.r.Intn(len(groups))]
		}
		posts = append(posts, s.factory.BuildPost(author, group))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("creating posts: %w", err)
	}
	log.Printf("Created %d posts", len(posts))

	comments := 0
	for _, post := range posts {
		for c := s.factory.r.Intn(4); c > 0; c-- {
			author := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateComment(post, author); err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("Created %d comments", comments)

	follows := 0
	for _, user := range users {
		for n := s.factory.r.Intn(6); n > 0; n-- {
			author := users[s.factory.r.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			err := s.db.Create(&models.Follow{UserID: user.ID, AuthorID: author.ID}).Error
			if err != nil {
				// Duplicate pairs are expected with random picks.
				continue
			}
			follows++
		}
	}
	log.Printf("Created %d follows", follows)

	return nil
}
