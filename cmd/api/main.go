package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/auth"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/billing"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/chantier"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/crm"
	appdevis "github.com/madenm/BTPAPPMuss-sub002/internal/application/devis"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/planning"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/usecase"
	infraai "github.com/madenm/BTPAPPMuss-sub002/internal/infrastructure/ai"
	infrapdf "github.com/madenm/BTPAPPMuss-sub002/internal/infrastructure/pdf"
	"github.com/madenm/BTPAPPMuss-sub002/internal/infrastructure/postgres"
	httpRouter "github.com/madenm/BTPAPPMuss-sub002/internal/interfaces/http"
	"github.com/madenm/BTPAPPMuss-sub002/pkg/config"
	"github.com/madenm/BTPAPPMuss-sub002/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	chantierRepo := postgres.NewChantierRepository(pool)
	devisRepo := postgres.NewDevisRepository(pool)
	factureRepo := postgres.NewFactureRepository(pool)
	planningRepo := postgres.NewPlanningRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	clientUC := crm.NewClientUseCase(clientRepo)
	chantierUC := chantier.NewUseCase(chantierRepo, clientRepo)
	devisUC := appdevis.NewUseCase(devisRepo, clientRepo, chantierRepo)
	factureUC := billing.NewFactureUseCase(factureRepo, clientRepo)

	// Conversion devis → facture : numérotation et copie des lignes dans une
	// même transaction via le TxRunner.
	convertUC := billing.NewConvertDevisUseCase(txRunner, devisRepo)

	// PDF : rendu A4 une page des devis et factures
	pdfGenerator := infrapdf.NewGofpdfGenerator()
	pdfUC := billing.NewPDFUseCase(factureRepo, devisRepo, companyRepo, clientRepo, pdfGenerator)

	planningUC := planning.NewUseCase(planningRepo, chantierRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	estimationUC := usecase.NewEstimationUseCase(anthropicSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BTP App API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		ClientUC:     clientUC,
		ChantierUC:   chantierUC,
		DevisUC:      devisUC,
		ConvertUC:    convertUC,
		FactureUC:    factureUC,
		PDFUC:        pdfUC,
		PlanningUC:   planningUC,
		EstimationUC: estimationUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
