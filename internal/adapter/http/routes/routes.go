package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "gera_wallet/docs" // swag generated
	"gera_wallet/internal/adapter/http/handlers"
	"gera_wallet/internal/adapter/http/middleware"
	"gera_wallet/internal/adapter/persistence/repository"
	"gera_wallet/internal/config"
	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/infrastructure/database"
	"gera_wallet/internal/infrastructure/images"
	"gera_wallet/internal/infrastructure/passkit"
	"gera_wallet/internal/usecase"
	"gera_wallet/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the service from cfg and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	passUseCase, err := newPassUseCase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	router := NewRouter(handlers.NewCardHandler(passUseCase, logger), logger, cfg.MaxBodyBytes)
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", "http://localhost"+srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every public route. Card request bodies
// above maxBodyBytes are refused.
func NewRouter(cardHandler *handlers.CardHandler, logger *zap.Logger, maxBodyBytes int64) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)
	addCardRoutes(router, cardHandler, maxBodyBytes)

	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.NotFound)
	return router
}

func newPassUseCase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*usecase.PassUseCase, error) {
	signer, err := passkit.NewSigner(cfg.Certificate, cfg.PrivateKey, cfg.Passphrase, cfg.WWDRCertificate)
	if err != nil {
		return nil, err
	}
	cert := signer.Certificate()
	logger.Info("pass signer ready",
		zap.String("subject", cert.Subject.CommonName),
		zap.Time("not_after", cert.NotAfter),
	)
	if time.Now().After(cert.NotAfter) {
		logger.Warn("pass certificate expired; wallets will reject new passes", zap.Time("not_after", cert.NotAfter))
	}

	assets, err := passkit.LoadAssets(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("load pass assets: %w", err)
	}
	if _, ok := assets["icon.png"]; !ok {
		logger.Warn("icon.png missing from pass assets; wallets reject passes without it", zap.String("dir", cfg.AssetsDir))
	}

	repo, err := newPassRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("pass store ready", zap.String("backend", cfg.StoreBackend))

	fetcher := images.NewHTTPFetcher(images.FetcherConfig{
		MaxBytes:        cfg.ImageMaxBytes,
		ResponseTimeout: cfg.ImageResponseTimeout,
		Deadline:        cfg.ImageDeadline,
	}, logger)

	template := entities.PassTemplate{
		PassTypeIdentifier: cfg.PassTypeIdentifier,
		TeamIdentifier:     cfg.TeamIdentifier,
		OrganizationName:   cfg.OrganizationName,
		Description:        cfg.Description,
		LogoText:           cfg.LogoText,
	}

	return usecase.NewPassUseCase(
		repo,
		fetcher,
		images.NewThumbnailRenderer(cfg.ImageMaxPixels),
		passkit.NewPackager(signer, assets),
		template,
		usecase.NewFieldMapper(cfg.ContactEmail),
		logger,
	), nil
}

func newPassRepository(ctx context.Context, cfg *config.Config) (interfaces.IPassRepository, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			return nil, err
		}
		return repository.NewPassRedisRepository(client, cfg.StoreTTL), nil
	case config.StoreBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return repository.NewPassDynamoRepository(ddb, cfg.PassesTable, cfg.StoreTTL), nil
	default:
		return repository.NewPassMemoryRepository(cfg.StoreCapacity)
	}
}
