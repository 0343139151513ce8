package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/vetdesk/vetclinic-api/internal/config"
	adminHandler "github.com/vetdesk/vetclinic-api/internal/handler/admin"
	clientHandler "github.com/vetdesk/vetclinic-api/internal/handler/client"
	doctorHandler "github.com/vetdesk/vetclinic-api/internal/handler/doctor"
	managerHandler "github.com/vetdesk/vetclinic-api/internal/handler/manager"
	userHandler "github.com/vetdesk/vetclinic-api/internal/handler/user"
	"github.com/vetdesk/vetclinic-api/internal/middleware"
	"github.com/vetdesk/vetclinic-api/internal/repository/postgres"
	"github.com/vetdesk/vetclinic-api/internal/router"
	authService "github.com/vetdesk/vetclinic-api/internal/service/auth"
	catalogService "github.com/vetdesk/vetclinic-api/internal/service/catalog"
	doctorService "github.com/vetdesk/vetclinic-api/internal/service/doctor"
	medcardService "github.com/vetdesk/vetclinic-api/internal/service/medcard"
	petService "github.com/vetdesk/vetclinic-api/internal/service/pet"
	requestService "github.com/vetdesk/vetclinic-api/internal/service/request"
	"github.com/vetdesk/vetclinic-api/pkg/auth"
	"github.com/vetdesk/vetclinic-api/pkg/imagestore"
	"github.com/vetdesk/vetclinic-api/pkg/logger"
	"github.com/vetdesk/vetclinic-api/pkg/security"
)

// bcryptCost matches the work factor existing password hashes were created
// with.
const bcryptCost = 5

func main() {
	lg := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		lg.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		lg.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		lg.Fatal(err, "failed to synchronize schema")
	}

	images, err := imagestore.NewStore(cfg.Static.Dir)
	if err != nil {
		lg.Fatal(err, "failed to initialize image store")
	}

	userRepo := postgres.NewUserRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	postRepo := postgres.NewPostRepository(db)
	statusRepo := postgres.NewStatusRepository(db)
	petRepo := postgres.NewPetRepository(db)
	requestRepo := postgres.NewRequestRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	cardRepo := postgres.NewMedicineCardRepository(db)

	hasher := security.NewBcryptHasher(bcryptCost)
	tokens := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	authSvc := authService.NewService(userRepo, hasher, tokens)
	catalogSvc := catalogService.NewService(categoryRepo, serviceRepo, postRepo, statusRepo)
	doctorSvc := doctorService.NewService(doctorRepo, userRepo, postRepo, hasher)
	petSvc := petService.NewService(petRepo)
	requestSvc := requestService.NewService(
		requestRepo, appointmentRepo, petRepo, userRepo, doctorRepo, serviceRepo, statusRepo)
	cardSvc := medcardService.NewService(cardRepo, petRepo)

	authMW := middleware.NewAuthMiddleware(tokens)
	cache := middleware.NewResponseCache(time.Duration(cfg.Limits.CacheTTL) * time.Second)

	r := router.NewRouter(db, router.Config{
		RateLimit:  rate.Limit(cfg.Limits.RateRPS),
		RateBurst:  cfg.Limits.RateBurst,
		Timeout:    time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		CORSConfig: middleware.DefaultCORSConfig(),
		StaticDir:  cfg.Static.Dir,
	},
		userHandler.NewHandler(authSvc, authMW),
		adminHandler.NewHandler(catalogSvc, doctorSvc, authMW),
		clientHandler.NewHandler(petSvc, requestSvc, catalogSvc, doctorSvc, images, authMW, cache),
		doctorHandler.NewHandler(cardSvc, requestSvc, authMW),
		managerHandler.NewHandler(requestSvc, catalogSvc, authMW),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		lg.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Fatal(err, "server forced to shutdown")
	}

	lg.Info("server exited properly")
}
