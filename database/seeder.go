package database

import (
	"fmt"
	"log"

	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders populates the accounts a fresh install needs. Call once in
// main.go after InitDB succeeds. Every seeder is idempotent.
func RunSeeders(db *gorm.DB) {
	SeedAdmin(db)
	SeedFaculty(db)
	SeedSampleStudents(db)
}

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[SEEDER] bcrypt failed: %v", err)
	}
	return string(hash)
}

// SeedAdmin creates the default admin account.
func SeedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&model.UserProfile{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Admin exists, skipping.")
		return
	}

	admin := model.UserProfile{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: hashPassword("admin123"),
		FullName:     "Portal Administrator",
		Role:         model.RoleAdmin,
		Department:   "ADMIN",
		Email:        "admin@hicas.ac.in",
		MobileNumber: "9000000000",
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("[SEEDER] Failed to seed admin: %v", err)
	}
	log.Println("[SEEDER] Seeded admin account")
}

// SeedFaculty creates two faculty members per department so auto-assignment
// has somewhere to land during local runs.
func SeedFaculty(db *gorm.DB) {
	var count int64
	db.Model(&model.UserProfile{}).Where("role = ?", model.RoleFaculty).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Faculty exist, skipping.")
		return
	}

	departments := []string{"CSE", "IT", "BCA", "BCOM", "BBA", "BSC_AI"}
	var faculty []model.UserProfile
	for _, dept := range departments {
		for i := 1; i <= 2; i++ {
			faculty = append(faculty, model.UserProfile{
				ID:           uuid.New(),
				Username:     fmt.Sprintf("fac_%s_%d", dept, i),
				PasswordHash: hashPassword("faculty123"),
				FullName:     fmt.Sprintf("Prof. %s %d", dept, i),
				Role:         model.RoleFaculty,
				Department:   dept,
				Email:        fmt.Sprintf("fac.%s.%d@hicas.ac.in", dept, i),
				MobileNumber: fmt.Sprintf("98%08d", len(faculty)+1),
				IsActive:     true,
			})
		}
	}

	if err := db.Create(&faculty).Error; err != nil {
		log.Fatalf("[SEEDER] Failed to seed faculty: %v", err)
	}
	log.Printf("[SEEDER] Seeded %d faculty accounts", len(faculty))
}

// SeedSampleStudents creates a handful of students with valid registration
// numbers (replaces the old simulated-data scripts).
func SeedSampleStudents(db *gorm.DB) {
	var count int64
	db.Model(&model.UserProfile{}).Where("role = ?", model.RoleStudent).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Students exist, skipping.")
		return
	}

	type sample struct {
		regNo string
		name  string
		dept  string
		year  int
	}
	samples := []sample{
		{"82302530101", "Arjun Kumar", "CSE", 2},
		{"82302530102", "Priya Sharma", "CSE", 2},
		{"82302631103", "Rahul Nair", "IT", 1},
		{"82302435104", "Sneha Reddy", "BCA", 3},
		{"82302540105", "Vikram Iyer", "BCOM", 2},
	}

	var students []model.UserProfile
	for i, s := range samples {
		regNo := s.regNo
		year := s.year
		students = append(students, model.UserProfile{
			ID:             uuid.New(),
			Username:       regNo,
			PasswordHash:   hashPassword("student123"),
			FullName:       s.name,
			Role:           model.RoleStudent,
			RegisterNumber: &regNo,
			Department:     s.dept,
			YearOfStudy:    &year,
			Email:          fmt.Sprintf("%s@hicas.ac.in", regNo),
			MobileNumber:   fmt.Sprintf("97%08d", i+1),
			IsActive:       true,
		})
	}

	if err := db.Create(&students).Error; err != nil {
		log.Fatalf("[SEEDER] Failed to seed students: %v", err)
	}
	log.Printf("[SEEDER] Seeded %d sample students", len(students))
}
