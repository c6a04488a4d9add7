package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/foodsafe/foodsafe-backend/internal/modules/account"
	"github.com/foodsafe/foodsafe-backend/internal/modules/auth"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"github.com/foodsafe/foodsafe-backend/internal/modules/certification"
	"github.com/foodsafe/foodsafe-backend/internal/modules/facility"
	"github.com/foodsafe/foodsafe-backend/internal/modules/inspection"
	"github.com/foodsafe/foodsafe-backend/internal/modules/labreport"
	"github.com/foodsafe/foodsafe-backend/internal/modules/manufacturing"
	"github.com/foodsafe/foodsafe-backend/internal/modules/onboarding"
	"github.com/foodsafe/foodsafe-backend/internal/modules/review"
	"github.com/foodsafe/foodsafe-backend/internal/modules/team"
	"github.com/foodsafe/foodsafe-backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	store := storage.NewBucketClient(
		os.Getenv("STORAGE_URL"),
		os.Getenv("STORAGE_BUCKET"),
		os.Getenv("STORAGE_KEY"),
	)
	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	businessRepo := business.NewPostgresRepository(db)
	businessService := business.NewService(businessRepo)

	accountRepo := account.NewPostgresRepository(db)
	accountService := account.NewService(accountRepo)

	authService := auth.NewService(businessRepo, businessService, accountRepo, jwtKey)
	auth.NewHandler(authService, accountService).RegisterRoutes(router)

	// ── Manufacturing records ───────────────────────────────
	manufacturingRepo := manufacturing.NewPostgresRepository(db)
	manufacturingService := manufacturing.NewService(manufacturingRepo)
	manufacturing.NewHandler(manufacturingService).RegisterRoutes(router)

	// ── Compliance records ──────────────────────────────────
	certificationRepo := certification.NewPostgresRepository(db)
	certification.NewHandler(certification.NewService(certificationRepo)).RegisterRoutes(router)

	labReportRepo := labreport.NewPostgresRepository(db)
	labreport.NewHandler(labreport.NewService(labReportRepo)).RegisterRoutes(router)

	teamRepo := team.NewPostgresRepository(db)
	team.NewHandler(team.NewService(teamRepo)).RegisterRoutes(router)

	facilityRepo := facility.NewPostgresRepository(db)
	facility.NewHandler(facility.NewService(facilityRepo, store)).RegisterRoutes(router)

	review.NewHandler(review.NewPostgresRepository(db)).RegisterRoutes(router)

	// ── Officer workflows ───────────────────────────────────
	inspectionRepo := inspection.NewPostgresRepository(db)
	inspection.NewHandler(inspection.NewService(inspectionRepo)).RegisterRoutes(router)

	// ── Protected: profile + onboarding ─────────────────────
	onboardingService := onboarding.NewService(businessRepo, teamRepo, facilityRepo, manufacturingRepo, store)
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireBearer(authService))
		business.NewHandler(businessService, manufacturingService).RegisterRoutes(r)
		onboarding.NewHandler(onboardingService).RegisterRoutes(r)
	})

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Food safety API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
