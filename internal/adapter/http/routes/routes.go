package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "autopaint_quotation/docs" // generated by swag init
	"autopaint_quotation/internal/adapter/http/handlers"
	"autopaint_quotation/internal/adapter/persistence/repository"
	"autopaint_quotation/internal/adapter/persistence/session"
	"autopaint_quotation/internal/domain/pricing"
	"autopaint_quotation/internal/infrastructure/config"
	"autopaint_quotation/internal/infrastructure/database"
	"autopaint_quotation/internal/infrastructure/metrics"
	"autopaint_quotation/internal/usecase"
	"autopaint_quotation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	ReferenceData *handlers.ReferenceDataHandler
	Wizard        *handlers.WizardHandler
	Quotation     *handlers.QuotationHandler
}

// Run wires the stores selected by cfg and serves until SIGINT/SIGTERM.
func Run(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)
	h, closeStores, err := buildHandlers(ctx, cfg, m)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer closeStores()

	router := NewRouter(h, m)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[http][server] listening addr=%s store=%s sessions=%s", cfg.Addr(), cfg.StoreDriver, cfg.SessionDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http][server] shutdown failed err=%v", err)
	}
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(h Handlers, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReferenceDataRoutes(v1, h.ReferenceData)
	addWizardRoutes(v1, h.Wizard)
	addQuotationRoutes(v1, h.Quotation)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, m *metrics.Metrics) (Handlers, func(), error) {
	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				log.Printf("[http][server] close failed err=%v", err)
			}
		}
	}

	var (
		refRepo       interfaces.IReferenceDataRepository
		customerRepo  interfaces.ICustomerRepository
		quotationRepo interfaces.IQuotationRepository
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			return Handlers{}, nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, sqlDB.Close)
		}
		if err := repository.MigratePostgres(db); err != nil {
			closeAll()
			return Handlers{}, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		refRepo = repository.NewReferenceDataPostgresRepository(db)
		customerRepo = repository.NewCustomerPostgresRepository(db)
		quotationRepo = repository.NewQuotationPostgresRepository(db)
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Handlers{}, nil, err
		}
		customers := repository.NewCustomerDynamoRepository(ddb)
		refRepo = repository.NewReferenceDataDynamoRepository(ddb)
		customerRepo = customers
		quotationRepo = repository.NewQuotationDynamoRepository(ddb, customers)
	}

	var store interfaces.IWizardSessionStore
	switch cfg.SessionDriver {
	case config.SessionDriverRedis:
		rc, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			closeAll()
			return Handlers{}, nil, err
		}
		closers = append(closers, rc.Close)
		store = session.NewRedisStore(rc, cfg.SessionTTL)
	default:
		store = session.NewMemoryStore(cfg.SessionTTL)
	}

	sink := pricing.MultiSink{metrics.LogSink{}, m}
	refData := usecase.NewReferenceDataUseCase(refRepo, sink, cfg.ReferenceDataTTL)
	quotations := usecase.NewQuotationUseCase(customerRepo, quotationRepo, m)
	wizards := usecase.NewWizardUseCase(store, refData, quotations)

	return Handlers{
		ReferenceData: handlers.NewReferenceDataHandler(refData),
		Wizard:        handlers.NewWizardHandler(wizards),
		Quotation:     handlers.NewQuotationHandler(quotations, refData),
	}, closeAll, nil
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(m.Middleware())
}
