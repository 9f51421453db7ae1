package v1

import (
	"log"

	"career-bridge/internal/config"
	"career-bridge/internal/database"
	"career-bridge/internal/delivery/http/handler"
	"career-bridge/internal/delivery/http/middleware"
	"career-bridge/internal/domain/user"
	"career-bridge/internal/infrastructure/cache"
	"career-bridge/internal/pkg/jwt"
	"career-bridge/internal/repository"
	"career-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers for the v1 API and
// mounts them on the given router. Route groups:
//
//	/auth                  public
//	/jobs, /categories...  public browse
//	/candidate/*           candidate role
//	/employer/*            employer role
//	/admin/*               admin role
func Register(r fiber.Router, cfg config.Config, db database.DB, cacheClient *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	savedJobRepo := repository.NewPostgresSavedJobRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	notificationRepo := repository.NewPostgresNotificationRepository(db)
	taxonomyRepo := repository.NewPostgresTaxonomyRepository(db)
	planRepo := repository.NewPostgresPlanRepository(db)
	statsRepo := repository.NewPostgresStatsRepository(db)

	var searchCache usecase.SearchCache
	if cacheClient != nil {
		searchCache = cacheClient
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, searchCache, logger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, notificationRepo, logger)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	profileUC := usecase.NewProfileUsecase(candidateRepo, companyRepo, cfg.Uploads.CVBaseURL)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	catalogUC := usecase.NewCatalogUsecase(taxonomyRepo, planRepo)
	adminUC := usecase.NewAdminUsecase(statsRepo, jobRepo, companyRepo, userRepo, notificationRepo, searchCache, logger)

	authHandler := handler.NewAuthHandler(authUC)
	jobHandler := handler.NewJobHandler(jobUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	savedJobHandler := handler.NewSavedJobHandler(savedJobUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	notificationHandler := handler.NewNotificationHandler(notificationUC)
	catalogHandler := handler.NewCatalogHandler(catalogUC)
	adminHandler := handler.NewAdminHandler(adminUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	jobHandler.RegisterPublicRoutes(r)
	catalogHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())
	notificationHandler.RegisterRoutes(protected)

	candidateGroup := protected.Group("/candidate", middleware.RequireRole(user.RoleCandidate))
	profileHandler.RegisterCandidateRoutes(candidateGroup)
	applicationHandler.RegisterCandidateRoutes(candidateGroup)
	savedJobHandler.RegisterRoutes(candidateGroup)

	employerGroup := protected.Group("/employer", middleware.RequireRole(user.RoleEmployer))
	profileHandler.RegisterEmployerRoutes(employerGroup)
	jobHandler.RegisterEmployerRoutes(employerGroup)
	applicationHandler.RegisterEmployerRoutes(employerGroup)

	adminGroup := protected.Group("/admin", middleware.RequireRole(user.RoleAdmin))
	adminHandler.RegisterRoutes(adminGroup)
}
