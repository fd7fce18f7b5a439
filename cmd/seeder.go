package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"maintenance", "assets", "software_licenses", "departments", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		cost := cfg.Security.BCryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), cost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		users := []struct {
			Email   string
			Company string
			Role    string
		}{
			{"admin@mail.com", "Acme Corp", "Admin"},
			{"viewer@mail.com", "Acme Corp", "Viewer"},
		}

		for _, u := range users {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Email)
				continue
			}

			if err := db.Exec(
				"INSERT INTO users (email, password_hash, company, role, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now())",
				u.Email, string(hash), u.Company, u.Role,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Println("Seeded user:", u.Email)
		}

		departments := []struct {
			Name     string
			Code     string
			Location string
		}{
			{"Information Technology", "IT", "HQ Floor 3"},
			{"Human Resources", "HR", "HQ Floor 2"},
			{"Finance", "FIN", "HQ Floor 2"},
			{"Operations", "OPS", "Warehouse"},
		}

		for _, d := range departments {
			var exists int
			row := db.Raw("SELECT 1 FROM departments WHERE code = ?", d.Code).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec(
				"INSERT INTO departments (name, code, location) VALUES (?, ?, ?)",
				d.Name, d.Code, d.Location,
			).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", d.Code, err)
			}
			fmt.Printf("Seeded department: %s (%s)\n", d.Name, d.Code)
		}

		fmt.Println("Seed data applied successfully")
	},
}
