package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogusecases "helpdesk/internal/application/catalog/usecases"
	identityusecases "helpdesk/internal/application/identity/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	cataloghandlers "helpdesk/internal/interfaces/http/handlers/catalog"
	identityhandlers "helpdesk/internal/interfaces/http/handlers/identity"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
	"helpdesk/internal/shared/utils"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface against the given database handle.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS([]string{"*"}))

	tickethandlers.RegisterValidators()

	// Repositories
	ticketRepo := repository.NewTicketRepository(gormDB)
	historyRepo := repository.NewStatusHistoryRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	attachmentRepo := repository.NewAttachmentRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	priorityRepo := repository.NewPriorityRepository(gormDB)

	// Services
	txManager := db.NewTransactionManager(gormDB)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL(), cfg.Auth.RefreshTTL())
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	markdownService := markdown.NewService()

	// Ticket use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, historyRepo, categoryRepo, priorityRepo, txManager, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, userRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, historyRepo, userRepo, txManager, log)
	assignTechnicianUC := ticketusecases.NewAssignTechnicianUseCase(ticketRepo, historyRepo, userRepo, txManager, log)
	getHistoryUC := ticketusecases.NewGetHistoryUseCase(ticketRepo, historyRepo, userRepo, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, userRepo, log)
	listCommentsUC := ticketusecases.NewListCommentsUseCase(ticketRepo, commentRepo, userRepo, markdownService, log)
	addAttachmentUC := ticketusecases.NewAddAttachmentUseCase(ticketRepo, attachmentRepo, userRepo, log)
	getAttachmentUC := ticketusecases.NewGetAttachmentUseCase(ticketRepo, attachmentRepo, userRepo, log)
	listAttachmentsUC := ticketusecases.NewListAttachmentsUseCase(ticketRepo, attachmentRepo, userRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, userRepo, log)

	// Identity use cases
	registerUC := identityusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := identityusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	refreshTokenUC := identityusecases.NewRefreshTokenUseCase(jwtService, log)
	getCurrentUserUC := identityusecases.NewGetCurrentUserUseCase(userRepo, log)
	listTechniciansUC := identityusecases.NewListTechniciansUseCase(userRepo, log)
	assignRoleUC := identityusecases.NewAssignRoleUseCase(userRepo, log)

	// Catalog use cases
	createCategoryUC := catalogusecases.NewCreateCategoryUseCase(categoryRepo, userRepo, log)
	updateCategoryUC := catalogusecases.NewUpdateCategoryUseCase(categoryRepo, userRepo, log)
	deleteCategoryUC := catalogusecases.NewDeleteCategoryUseCase(categoryRepo, userRepo, log)
	listCategoriesUC := catalogusecases.NewListCategoriesUseCase(categoryRepo, log)
	createPriorityUC := catalogusecases.NewCreatePriorityUseCase(priorityRepo, userRepo, log)
	updatePriorityUC := catalogusecases.NewUpdatePriorityUseCase(priorityRepo, userRepo, log)
	deletePriorityUC := catalogusecases.NewDeletePriorityUseCase(priorityRepo, userRepo, log)
	listPrioritiesUC := catalogusecases.NewListPrioritiesUseCase(priorityRepo, log)

	// Handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, changeStatusUC,
		assignTechnicianUC, getHistoryUC, addCommentUC, listCommentsUC,
		addAttachmentUC, getAttachmentUC, listAttachmentsUC, deleteTicketUC,
	)
	authHandler := identityhandlers.NewAuthHandler(
		registerUC, loginUC, refreshTokenUC, getCurrentUserUC,
		listTechniciansUC, assignRoleUC,
	)
	catalogHandler := cataloghandlers.NewCatalogHandler(
		createCategoryUC, updateCategoryUC, deleteCategoryUC, listCategoriesUC,
		createPriorityUC, updatePriorityUC, deletePriorityUC, listPrioritiesUC,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimitMW := middleware.RateLimit(
		buildRateLimiter(cfg, log),
		cfg.Auth.RateLimitRequests,
		time.Duration(cfg.Auth.RateLimitWindow)*time.Second,
		log,
	)

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		RateLimit:      rateLimitMW,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{
		CatalogHandler: catalogHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// buildRateLimiter prefers redis when configured so limits hold across
// instances; otherwise counts stay in process memory.
func buildRateLimiter(cfg *config.Config, log logger.Interface) ratelimit.RateLimiter {
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Infow("using redis rate limiter", "addr", cfg.Redis.Address())
		return ratelimit.NewRedisRateLimiter(client)
	}
	return ratelimit.NewMemoryRateLimiter()
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
