package seeder

import (
	"context"
	"fmt"

	"career-bridge/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// DemoUsersSeeder provisions one account per role for local development.
// Passwords are only suitable for development environments.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "email", "password_hash", "role", "name", "phone", "avatar_url", "active"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Email    string
		Password string
		Role     string
		Name     string
	}{
		{Email: "admin@career-bridge.local", Password: "admin12345", Role: "admin", Name: "Portal Admin"},
		{Email: "employer@career-bridge.local", Password: "employer12345", Role: "employer", Name: "Acme Hiring"},
		{Email: "candidate@career-bridge.local", Password: "candidate12345", Role: "candidate", Name: "Jamie Candidate"},
	}

	for _, it := range items {
		hash, err := bcrypt.GenerateFromPassword([]byte(it.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO users (id, email, password_hash, role, name)
			VALUES (gen_random_uuid(), $1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING`,
			it.Email, string(hash), it.Role, it.Name,
		)
		if err != nil {
			return err
		}
	}

	// The demo employer gets a company profile so its postings render with
	// a company name in search results.
	_, err = tx.Exec(
		ctx,
		`INSERT INTO company_profiles (user_id, name, industry, size, description)
		SELECT id, 'Acme Corp', 'Technology', '51-200', 'Demo employer account'
		FROM users WHERE email = $1
		ON CONFLICT (user_id) DO NOTHING`,
		"employer@career-bridge.local",
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
