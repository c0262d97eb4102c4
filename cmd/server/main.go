package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/partyhub/backend/internal/application/identity"
	lookupapp "github.com/partyhub/backend/internal/application/lookup"
	partyapp "github.com/partyhub/backend/internal/application/party"
	"github.com/partyhub/backend/internal/domain/identity"
	"github.com/partyhub/backend/internal/domain/lookup"
	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/infrastructure/auth"
	"github.com/partyhub/backend/internal/infrastructure/config"
	"github.com/partyhub/backend/internal/infrastructure/logger"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
	"github.com/partyhub/backend/internal/interfaces/http/handler"
	"github.com/partyhub/backend/internal/interfaces/http/middleware"
	"github.com/partyhub/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting PartyHub Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Audited stores. Every mutation writes a history row in the same
	// transaction as the entity write.
	personStore := persistence.NewAuditedStore(db, (*party.Person).HistoryRecord)
	orgStore := persistence.NewAuditedStore(db, (*party.Organization).HistoryRecord)
	passportStore := persistence.NewAuditedStore(db, (*party.Passport).HistoryRecord)
	partyRoleStore := persistence.NewAuditedStore(db, (*party.PartyRole).HistoryRecord)
	roleRelationshipStore := persistence.NewAuditedStore(db, (*party.RoleRelationship).HistoryRecord)
	communicationEventStore := persistence.NewAuditedStore(db, (*party.CommunicationEvent).HistoryRecord)
	communicationEventPurposeStore := persistence.NewAuditedStore(db, (*party.CommunicationEventPurpose).HistoryRecord)

	// Plain stores for entities without history bookkeeping
	userStore := persistence.NewPlainStore[identity.User](db)
	genderTypeStore := persistence.NewPlainStore[lookup.GenderType](db)
	maritalStatusTypeStore := persistence.NewPlainStore[lookup.MaritalStatusType](db)
	ethnicityTypeStore := persistence.NewPlainStore[lookup.EthnicityType](db)
	incomeRangeStore := persistence.NewPlainStore[lookup.IncomeRange](db)
	countryStore := persistence.NewPlainStore[lookup.Country](db)
	industryTypeStore := persistence.NewPlainStore[lookup.IndustryType](db)
	organizationTypeStore := persistence.NewPlainStore[lookup.OrganizationType](db)
	employeeCountRangeStore := persistence.NewPlainStore[lookup.EmployeeCountRange](db)
	roleTypeStore := persistence.NewPlainStore[lookup.RoleType](db)
	relationshipTypeStore := persistence.NewPlainStore[lookup.RelationshipType](db)
	priorityTypeStore := persistence.NewPlainStore[lookup.PriorityType](db)
	roleRelationshipStatusTypeStore := persistence.NewPlainStore[lookup.RoleRelationshipStatusType](db)
	contactMechanismTypeStore := persistence.NewPlainStore[lookup.ContactMechanismType](db)
	communicationEventStatusTypeStore := persistence.NewPlainStore[lookup.CommunicationEventStatusType](db)
	communicationEventPurposeTypeStore := persistence.NewPlainStore[lookup.CommunicationEventPurposeType](db)

	// History tables are read through plain stores as well; nothing
	// ever mutates them through the API.
	personHistoryStore := persistence.NewPlainStore[party.PersonHistory](db)
	orgHistoryStore := persistence.NewPlainStore[party.OrganizationHistory](db)
	passportHistoryStore := persistence.NewPlainStore[party.PassportHistory](db)
	partyRoleHistoryStore := persistence.NewPlainStore[party.PartyRoleHistory](db)
	roleRelationshipHistoryStore := persistence.NewPlainStore[party.RoleRelationshipHistory](db)
	communicationEventHistoryStore := persistence.NewPlainStore[party.CommunicationEventHistory](db)
	communicationEventPurposeHistoryStore := persistence.NewPlainStore[party.CommunicationEventPurposeHistory](db)

	// Identity services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userStore, personStore, orgStore, jwtService)
	userService := identityapp.NewUserService(userStore)

	// Party services
	personService := partyapp.NewPersonService(personStore)
	orgService := partyapp.NewOrganizationService(orgStore)
	passportService := partyapp.NewPassportService(passportStore)
	partyRoleService := partyapp.NewPartyRoleService(partyRoleStore)
	roleRelationshipService := partyapp.NewRoleRelationshipService(roleRelationshipStore, partyRoleStore)
	communicationEventService := partyapp.NewCommunicationEventService(communicationEventStore, roleRelationshipStore)
	communicationEventPurposeService := partyapp.NewCommunicationEventPurposeService(communicationEventPurposeStore, communicationEventStore)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	personHandler := handler.NewPersonHandler(personService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	passportHandler := handler.NewPassportHandler(passportService)
	partyRoleHandler := handler.NewPartyRoleHandler(partyRoleService)
	roleRelationshipHandler := handler.NewRoleRelationshipHandler(roleRelationshipService)
	communicationEventHandler := handler.NewCommunicationEventHandler(communicationEventService)
	communicationEventPurposeHandler := handler.NewCommunicationEventPurposeHandler(communicationEventPurposeService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. JWT - Authenticate everything past the public endpoints
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// JWT authentication. The default skip list covers the login and
	// registration endpoints plus the health check.
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Health check endpoint
	engine.GET("/health", healthHandler(db, log))

	// Role gates shared by the route groups below
	adminOnly := middleware.RequireRoles(identity.RoleAdmin)
	basetypeAdminOnly := middleware.RequireRoles(identity.RoleBasetypeAdmin)
	hrAdminOnly := middleware.RequireRoles(identity.RoleHRAdmin)
	orgAdminOnly := middleware.RequireRoles(identity.RoleOrganizationAdmin)
	partyUserOnly := middleware.RequireRoles(identity.RoleOrganizationUser, identity.RolePersonUser)
	historyReaders := middleware.RequireRoles(identity.RoleHRAdmin, identity.RoleOrganizationAdmin)

	r := router.NewRouter(engine)

	// Authentication endpoints
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	r.Register(authRoutes)

	// Principal logins live under their entity prefix but outside the
	// role-gated CRUD groups
	personAuthRoutes := router.NewDomainGroup("person-auth", "/persons")
	personAuthRoutes.POST("/login", authHandler.PersonLogin)
	r.Register(personAuthRoutes)

	orgAuthRoutes := router.NewDomainGroup("organization-auth", "/organizations")
	orgAuthRoutes.POST("/login", authHandler.OrganizationLogin)
	r.Register(orgAuthRoutes)

	// Any authenticated caller can ask for its current role
	sessionRoutes := router.NewDomainGroup("session", "/currentrole")
	sessionRoutes.GET("", authHandler.CurrentRole)
	r.Register(sessionRoutes)

	// Platform user management
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.Use(adminOnly)
	userRoutes.POST("", userHandler.Create)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/me", userHandler.Me)
	userRoutes.GET("/:id", userHandler.Get)
	userRoutes.PUT("/:id", userHandler.Update)
	userRoutes.DELETE("/:id", userHandler.Delete)
	r.Register(userRoutes)

	// Lookup tables
	r.Register(crudGroup("gender-types", "/gender_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(genderTypeStore), func(d lookup.Description) lookup.GenderType {
			return lookup.GenderType{Description: d}
		})))
	r.Register(crudGroup("marital-status-types", "/marital_status_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(maritalStatusTypeStore), func(d lookup.Description) lookup.MaritalStatusType {
			return lookup.MaritalStatusType{Description: d}
		})))
	r.Register(crudGroup("ethnicity-types", "/ethnicity_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(ethnicityTypeStore), func(d lookup.Description) lookup.EthnicityType {
			return lookup.EthnicityType{Description: d}
		})))
	r.Register(crudGroup("income-ranges", "/income_ranges", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(incomeRangeStore), func(d lookup.Description) lookup.IncomeRange {
			return lookup.IncomeRange{Description: d}
		})))
	r.Register(crudGroup("countries", "/countries", basetypeAdminOnly,
		handler.NewCountryHandler(lookupapp.NewService(countryStore))))
	r.Register(crudGroup("industry-types", "/industry_types", basetypeAdminOnly,
		handler.NewIndustryTypeHandler(lookupapp.NewService(industryTypeStore))))
	r.Register(crudGroup("organization-types", "/organization_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(organizationTypeStore), func(d lookup.Description) lookup.OrganizationType {
			return lookup.OrganizationType{Description: d}
		})))
	r.Register(crudGroup("employee-count-ranges", "/employee_count_ranges", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(employeeCountRangeStore), func(d lookup.Description) lookup.EmployeeCountRange {
			return lookup.EmployeeCountRange{Description: d}
		})))
	r.Register(crudGroup("role-types", "/role_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(roleTypeStore), func(d lookup.Description) lookup.RoleType {
			return lookup.RoleType{Description: d}
		})))
	r.Register(crudGroup("relationship-types", "/relationship_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(relationshipTypeStore), func(d lookup.Description) lookup.RelationshipType {
			return lookup.RelationshipType{Description: d}
		})))
	r.Register(crudGroup("priority-types", "/priority_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(priorityTypeStore), func(d lookup.Description) lookup.PriorityType {
			return lookup.PriorityType{Description: d}
		})))
	r.Register(crudGroup("role-relationship-status-types", "/role_relationship_status_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(roleRelationshipStatusTypeStore), func(d lookup.Description) lookup.RoleRelationshipStatusType {
			return lookup.RoleRelationshipStatusType{Description: d}
		})))
	r.Register(crudGroup("contact-mechanism-types", "/contact_mechanism_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(contactMechanismTypeStore), func(d lookup.Description) lookup.ContactMechanismType {
			return lookup.ContactMechanismType{Description: d}
		})))
	r.Register(crudGroup("communication-event-status-types", "/communication_event_status_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(communicationEventStatusTypeStore), func(d lookup.Description) lookup.CommunicationEventStatusType {
			return lookup.CommunicationEventStatusType{Description: d}
		})))
	r.Register(crudGroup("communication-event-purpose-types", "/communication_event_purpose_types", basetypeAdminOnly,
		handler.NewDescriptionHandler(lookupapp.NewService(communicationEventPurposeTypeStore), func(d lookup.Description) lookup.CommunicationEventPurposeType {
			return lookup.CommunicationEventPurposeType{Description: d}
		})))

	// HR-managed entities
	r.Register(crudGroup("persons", "/persons", hrAdminOnly, personHandler))
	r.Register(crudGroup("passports", "/passports", hrAdminOnly, passportHandler))

	// Organization management
	r.Register(crudGroup("organizations", "/organizations", orgAdminOnly, orgHandler))

	// Party-owned entities. Every operation in these groups is scoped
	// to the records reachable from the caller's party.
	r.Register(crudGroup("party-roles", "/party_role", partyUserOnly, partyRoleHandler))
	r.Register(crudGroup("role-relationships", "/role_relationship", partyUserOnly, roleRelationshipHandler))
	r.Register(crudGroup("communication-events", "/communication_event", partyUserOnly, communicationEventHandler))
	r.Register(crudGroup("communication-event-purposes", "/communication_event_purpose", partyUserOnly, communicationEventPurposeHandler))

	// History tables, read-only. HR and organization histories stay with
	// their owning admin role; histories of party-owned entities are open
	// to both admin roles.
	r.Register(historyGroup("person-history", "/person_history", hrAdminOnly,
		handler.NewHistoryHandler(partyapp.NewHistoryService[party.PersonHistory](personHistoryStore))))
	r.Register(historyGroup("organization-history", "/organization_history", orgAdminOnly,
		handler.NewHistoryHandler(partyapp.NewHistoryService[party.OrganizationHistory](orgHistoryStore))))
	r.Register(historyGroup("passport-history", "/passport_history", hrAdminOnly,
		handler.NewHistoryHandler(partyapp.NewHistoryService[party.PassportHistory](passportHistoryStore))))
	r.Register(historyGroup("party-role-history", "/party_role_history", historyReaders,
		handler.NewHistoryHandler(partyapp.NewHistoryService[party.PartyRoleHistory](partyRoleHistoryStore))))
	r.Register(historyGroup("role-relationship-history", "/role_relationship_history", historyReaders,
		handler.NewHistoryHandler(partyapp.NewHistoryService[party.RoleRelationshipHistory](roleRelationshipHistoryStore))))
	r.Register(historyGroup("communication-event-history", "/communication_event_history", historyReaders,
		handler.NewHistoryHandler(partyapp.NewHistoryService[party.CommunicationEventHistory](communicationEventHistoryStore))))
	r.Register(historyGroup("communication-event-purpose-history", "/communication_event_purpose_history", historyReaders,
		handler.NewHistoryHandler(partyapp.NewHistoryService[party.CommunicationEventPurposeHistory](communicationEventPurposeHistoryStore))))

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// crudHandler is the method set every entity handler in this API
// exposes.
type crudHandler interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// readHandler is the method set of read-only handlers.
type readHandler interface {
	Get(c *gin.Context)
	List(c *gin.Context)
}

// crudGroup builds a role-gated domain group with the standard CRUD
// route layout.
func crudGroup(name, prefix string, gate gin.HandlerFunc, h crudHandler) *router.DomainGroup {
	g := router.NewDomainGroup(name, prefix)
	g.Use(gate)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return g
}

// historyGroup builds a role-gated read-only domain group.
func historyGroup(name, prefix string, gate gin.HandlerFunc, h readHandler) *router.DomainGroup {
	g := router.NewDomainGroup(name, prefix)
	g.Use(gate)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	return g
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
