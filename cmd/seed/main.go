package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"localhire/internal/config"
	"localhire/internal/db"
	"localhire/internal/model"
	"localhire/internal/repository"
)

const seedPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.Message{},
		&model.Experience{},
		&model.Story{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	if err := seed(context.Background(), gormDB); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed completed successfully")
}

func seed(ctx context.Context, gormDB *gorm.DB) error {
	users := repository.NewUserRepository(gormDB)
	companies := repository.NewCompanyRepository(gormDB)
	jobs := repository.NewJobRepository(gormDB)
	stories := repository.NewStoryRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seeker := &model.User{
		Email:        "ravi.kumar@example.com",
		PasswordHash: string(hash),
		FirstName:    "Ravi",
		LastName:     "Kumar",
		UserType:     model.UserTypeJobSeeker,
		Location:     "Pune",
		Bio:          "Licensed electrician with eight years of residential and commercial wiring experience.",
		Skills:       []string{"Electrical Wiring", "Circuit Repair", "Safety Inspection"},
	}
	employer := &model.User{
		Email:        "meera.shah@example.com",
		PasswordHash: string(hash),
		FirstName:    "Meera",
		LastName:     "Shah",
		UserType:     model.UserTypeEmployer,
		Location:     "Mumbai",
		Bio:          "Hiring manager at BrightSpark Services.",
	}
	for _, u := range []*model.User{seeker, employer} {
		if existing, err := users.FindByEmail(ctx, u.Email); err == nil {
			log.Printf("User %s already seeded", existing.Email)
			*u = *existing
			continue
		}
		if err := users.Create(ctx, u); err != nil {
			return err
		}
		log.Printf("Seeded user %s", u.Email)
	}

	company := &model.Company{
		Name:        "BrightSpark Services",
		Description: "Electrical maintenance and repair services across Maharashtra.",
		Location:    "Mumbai",
		Industry:    "Home Services",
		OwnerID:     &employer.ID,
	}
	if existing, err := companies.FindByOwner(ctx, employer.ID); err == nil && len(existing) > 0 {
		*company = existing[0]
		log.Printf("Company %s already seeded", company.Name)
	} else {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		log.Printf("Seeded company %s", company.Name)
	}

	demoJobs := []model.Job{
		{
			Title:       "Residential Electrician",
			Description: "Wiring, fixture installation, and fault diagnosis for housing societies.",
			Location:    "Pune",
			JobType:     model.JobTypeFullTime,
			SalaryMin:   intPtr(25000),
			SalaryMax:   intPtr(40000),
			Skills: []string{
				"Electrical Wiring", "Circuit Repair",
			},
			CompanyID:  &company.ID,
			EmployerID: &employer.ID,
		},
		{
			Title:       "Graphic Designer",
			Description: "Design marketing material for neighborhood businesses. Portfolio required.",
			Location:    "Mumbai",
			JobType:     model.JobTypeContract,
			SalaryMin:   intPtr(20000),
			SalaryMax:   intPtr(35000),
			Skills: []string{
				"Graphic Design", "Adobe Illustrator",
			},
			CompanyID:  &company.ID,
			EmployerID: &employer.ID,
		},
		{
			Title:       "Delivery Driver",
			Description: "Part-time delivery runs within the city. Two-wheeler license required.",
			Location:    "Pune",
			JobType:     model.JobTypePartTime,
			SalaryMin:   intPtr(12000),
			SalaryMax:   intPtr(18000),
			Skills: []string{
				"Driving",
			},
			CompanyID:  &company.ID,
			EmployerID: &employer.ID,
		},
	}
	existingJobs, err := jobs.FindByEmployer(ctx, employer.ID)
	if err != nil {
		return err
	}
	if len(existingJobs) > 0 {
		log.Printf("Jobs already seeded (%d found)", len(existingJobs))
	} else {
		for i := range demoJobs {
			if err := jobs.Create(ctx, &demoJobs[i]); err != nil {
				return err
			}
			log.Printf("Seeded job %s", demoJobs[i].Title)
		}
	}

	existingStories, err := stories.List(ctx)
	if err != nil {
		return err
	}
	if len(existingStories) == 0 {
		story := &model.Story{
			Name:    "Anita Deshmukh",
			Email:   "anita.deshmukh@example.com",
			Role:    "job_seeker",
			Title:   "From odd jobs to a full-time role",
			Content: "I found a steady electrician position in my own neighborhood within two weeks.",
		}
		if err := stories.Create(ctx, story); err != nil {
			return err
		}
		log.Printf("Seeded story from %s", story.Name)
	}

	return nil
}

func intPtr(v int) *int { return &v }
