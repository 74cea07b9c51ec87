// cmd/tools/seed/main.go

// Seeds a demo company with content sections and a set of job postings.
// Safe to re-run: an existing company slug is left untouched.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"careers-builder/internal/common/config"
	"careers-builder/internal/common/database"
	"careers-builder/internal/common/errors"
	"careers-builder/internal/common/logger"
	"careers-builder/internal/models"
	"careers-builder/internal/store"
)

func main() {
	slug := flag.String("slug", "acme", "Slug of the demo company to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pg.Close()

	ctx := context.Background()
	if err := pg.Migrate(ctx); err != nil {
		zapLog.Fatal("database migration failed", zap.Error(err))
	}

	stores := store.New(pg.GetDB())

	if existing, err := stores.Companies.GetBySlug(ctx, *slug); err == nil {
		zapLog.Info("Company already exists, nothing to do",
			zap.String("slug", existing.Slug), zap.String("id", existing.ID))
		return
	} else if !errors.IsNotFound(err) {
		zapLog.Fatal("company lookup failed", zap.Error(err))
	}

	company, err := stores.Companies.Create(ctx, demoCompany(*slug))
	if err != nil {
		zapLog.Fatal("company seed failed", zap.Error(err))
	}
	zapLog.Info("Company created", zap.String("slug", company.Slug), zap.String("id", company.ID))

	for _, job := range demoJobs(company.ID) {
		created, err := stores.Jobs.Create(ctx, job)
		if err != nil {
			zapLog.Fatal("job seed failed", zap.String("title", job.Title), zap.Error(err))
		}
		zapLog.Info("Job created", zap.String("title", created.Title), zap.String("id", created.ID))
	}

	zapLog.Info("Seed data created successfully")
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func demoCompany(slug string) *models.Company {
	return &models.Company{
		Slug:           slug,
		Name:           "ACME Corporation",
		Description:    strPtr("Leading technology company focused on innovation and growth"),
		LogoURL:        strPtr("https://via.placeholder.com/200x100/3b82f6/ffffff?text=ACME"),
		BannerURL:      strPtr("https://via.placeholder.com/1200x400/1e40af/ffffff?text=Join+Our+Team"),
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#1e40af",
		Sections: []models.Section{
			{
				Type:     "about",
				Title:    "About ACME",
				Content:  "We are a forward-thinking technology company dedicated to creating innovative solutions that make a difference in the world. Our team of passionate professionals works together to build products that our customers love.",
				Order:    1,
				IsActive: true,
			},
			{
				Type:     "benefits",
				Title:    "Why Work With Us",
				Content:  "• Competitive salary and equity\n• Comprehensive health insurance\n• Flexible work arrangements\n• Professional development opportunities\n• Modern office with great amenities\n• Team building events and activities",
				Order:    2,
				IsActive: true,
			},
			{
				Type:     "values",
				Title:    "Our Values",
				Content:  "Innovation: We constantly push boundaries and explore new possibilities.\n\nCollaboration: We believe in the power of working together.\n\nIntegrity: We do the right thing, even when no one is watching.\n\nExcellence: We strive for the highest quality in everything we do.",
				Order:    3,
				IsActive: true,
			},
			{
				Type:     "life",
				Title:    "Life at ACME",
				Content:  "At ACME, we believe work should be fulfilling and fun. Our office culture promotes creativity, learning, and work-life balance. From weekly team lunches to annual company retreats, we invest in building a strong community.",
				Order:    4,
				IsActive: true,
			},
		},
	}
}

func demoJobs(companyID string) []*models.Job {
	return []*models.Job{
		{
			CompanyID:    companyID,
			Title:        "Senior Software Engineer",
			Location:     "San Francisco, CA",
			Department:   strPtr("Engineering"),
			WorkType:     models.WorkTypeHybrid,
			Level:        strPtr(models.LevelSenior),
			SalaryMin:    intPtr(120000),
			SalaryMax:    intPtr(160000),
			Currency:     "USD",
			Description:  "We are looking for a Senior Software Engineer to join our core platform team. You will be responsible for designing and implementing scalable solutions that power our main product.",
			Requirements: []string{"5+ years of software development experience", "Strong proficiency in React, Node.js, and TypeScript", "Experience with cloud platforms (AWS, GCP, or Azure)", "Knowledge of database design and optimization", "Experience with microservices architecture"},
			Tags:         []string{"React", "Node.js", "TypeScript", "AWS", "Microservices"},
			IsActive:     true,
		},
		{
			CompanyID:    companyID,
			Title:        "Product Manager",
			Location:     "New York, NY",
			Department:   strPtr("Product"),
			WorkType:     models.WorkTypeOnSite,
			Level:        strPtr(models.LevelMid),
			SalaryMin:    intPtr(100000),
			SalaryMax:    intPtr(130000),
			Currency:     "USD",
			Description:  "Join our product team as a Product Manager and help shape the future of our platform. You will work closely with engineering, design, and business teams to deliver exceptional user experiences.",
			Requirements: []string{"3+ years of product management experience", "Strong analytical and problem-solving skills", "Experience with user research and data analysis", "Excellent communication and collaboration skills", "Technical background preferred"},
			Tags:         []string{"Product Management", "User Research", "Analytics", "Strategy"},
			IsActive:     true,
		},
		{
			CompanyID:    companyID,
			Title:        "UX Designer",
			Location:     "Remote",
			Department:   strPtr("Design"),
			WorkType:     models.WorkTypeRemote,
			Level:        strPtr(models.LevelMid),
			SalaryMin:    intPtr(80000),
			SalaryMax:    intPtr(110000),
			Currency:     "USD",
			Description:  "We are seeking a talented UX Designer to join our design team. You will be responsible for creating intuitive and engaging user experiences across our product suite.",
			Requirements: []string{"3+ years of UX design experience", "Proficiency in Figma, Sketch, or similar design tools", "Strong portfolio demonstrating user-centered design", "Experience with user research and usability testing", "Knowledge of design systems and accessibility"},
			Tags:         []string{"UX Design", "Figma", "User Research", "Design Systems"},
			IsActive:     true,
		},
		{
			CompanyID:    companyID,
			Title:        "Data Scientist",
			Location:     "Seattle, WA",
			Department:   strPtr("Data"),
			WorkType:     models.WorkTypeHybrid,
			Level:        strPtr(models.LevelSenior),
			SalaryMin:    intPtr(110000),
			SalaryMax:    intPtr(150000),
			Currency:     "USD",
			Description:  "Join our data science team to help us extract insights from our vast datasets and build machine learning models that drive business decisions.",
			Requirements: []string{"4+ years of data science experience", "Strong programming skills in Python and R", "Experience with machine learning frameworks", "Knowledge of SQL and data warehousing", "Advanced degree in quantitative field preferred"},
			Tags:         []string{"Python", "Machine Learning", "SQL", "Statistics"},
			IsActive:     true,
		},
		{
			CompanyID:    companyID,
			Title:        "Marketing Manager",
			Location:     "Austin, TX",
			Department:   strPtr("Marketing"),
			WorkType:     models.WorkTypeOnSite,
			Level:        strPtr(models.LevelMid),
			SalaryMin:    intPtr(70000),
			SalaryMax:    intPtr(95000),
			Currency:     "USD",
			Description:  "We are looking for a Marketing Manager to lead our digital marketing efforts and help grow our brand presence in the market.",
			Requirements: []string{"3+ years of marketing experience", "Experience with digital marketing channels", "Strong analytical and creative skills", "Knowledge of marketing automation tools", "Excellent written and verbal communication"},
			Tags:         []string{"Digital Marketing", "Content Marketing", "Analytics", "Brand"},
			IsActive:     true,
		},
		{
			CompanyID:    companyID,
			Title:        "DevOps Engineer",
			Location:     "Remote",
			Department:   strPtr("Engineering"),
			WorkType:     models.WorkTypeRemote,
			Level:        strPtr(models.LevelSenior),
			SalaryMin:    intPtr(100000),
			SalaryMax:    intPtr(140000),
			Currency:     "USD",
			Description:  "Join our DevOps team to help us build and maintain our cloud infrastructure, ensuring high availability and scalability of our services.",
			Requirements: []string{"4+ years of DevOps experience", "Strong knowledge of AWS, Docker, and Kubernetes", "Experience with CI/CD pipelines", "Knowledge of infrastructure as code", "Strong scripting skills (Bash, Python)"},
			Tags:         []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Infrastructure"},
			IsActive:     true,
		},
		{
			CompanyID:    companyID,
			Title:        "Sales Representative",
			Location:     "Chicago, IL",
			Department:   strPtr("Sales"),
			WorkType:     models.WorkTypeOnSite,
			Level:        strPtr(models.LevelEntry),
			SalaryMin:    intPtr(50000),
			SalaryMax:    intPtr(70000),
			Currency:     "USD",
			Description:  "We are seeking a motivated Sales Representative to join our growing sales team and help us expand our customer base.",
			Requirements: []string{"1+ years of sales experience", "Strong communication and interpersonal skills", "Goal-oriented and self-motivated", "Experience with CRM systems preferred", "Bachelor's degree preferred"},
			Tags:         []string{"Sales", "CRM", "Communication", "B2B"},
			IsActive:     true,
		},
		{
			CompanyID:    companyID,
			Title:        "Customer Success Manager",
			Location:     "Denver, CO",
			Department:   strPtr("Customer Success"),
			WorkType:     models.WorkTypeHybrid,
			Level:        strPtr(models.LevelMid),
			SalaryMin:    intPtr(65000),
			SalaryMax:    intPtr(85000),
			Currency:     "USD",
			Description:  "Join our customer success team to help our clients achieve their goals and ensure high satisfaction with our products and services.",
			Requirements: []string{"2+ years of customer success experience", "Strong problem-solving and communication skills", "Experience with customer support tools", "Technical background preferred", "Passion for helping customers succeed"},
			Tags:         []string{"Customer Success", "Support", "Account Management", "SaaS"},
			IsActive:     true,
		},
	}
}
