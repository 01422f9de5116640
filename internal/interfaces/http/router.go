// Package http contient les handlers Fiber, le routeur et les middlewares
// d'authentification et d'autorisation.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/auth"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/billing"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/chantier"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/crm"
	appdevis "github.com/madenm/BTPAPPMuss-sub002/internal/application/devis"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/planning"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/usecase"
	"github.com/madenm/BTPAPPMuss-sub002/internal/domain/entity"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	ClientUC     *crm.ClientUseCase
	ChantierUC   *chantier.UseCase
	DevisUC      *appdevis.UseCase
	ConvertUC    *billing.ConvertDevisUseCase
	FactureUC    *billing.FactureUseCase
	PDFUC        *billing.PDFUseCase
	PlanningUC   *planning.UseCase
	EstimationUC *usecase.EstimationUseCase
	JWTSecret    string
}

// Router enregistre les routes de l'API.
//
// Lecture : tout rôle authentifié. Mutations : admin et chef_chantier, sauf
// la gestion des rôles (admin seul).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	gestion := RequireRole(entity.RoleAdmin, entity.RoleChefChantier)
	adminSeul := RequireRole(entity.RoleAdmin)

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Company : la création est publique (point d'entrée avant inscription),
	// le reste est protégé.
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Post("/company", companyHandler.Create)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Équipe
	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/auth/team", authHandler.ListTeam)
	protected.Put("/auth/team/:id/role", adminSeul, authHandler.UpdateRole)

	// Profil entreprise
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", gestion, companyHandler.Update)

	// CRM
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", gestion, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", gestion, clientHandler.Update)
	clients.Delete("/:id", gestion, clientHandler.Delete)

	// Chantiers
	chantiers := protected.Group("/chantiers")
	chantierHandler := NewChantierHandler(deps.ChantierUC)
	chantiers.Post("/", gestion, chantierHandler.Create)
	chantiers.Get("/", chantierHandler.List)
	chantiers.Get("/:id", chantierHandler.GetByID)
	chantiers.Put("/:id", gestion, chantierHandler.Update)
	chantiers.Delete("/:id", gestion, chantierHandler.Delete)

	// Devis
	devisGroup := protected.Group("/devis")
	devisHandler := NewDevisHandler(deps.DevisUC, deps.ConvertUC, deps.PDFUC)
	devisGroup.Post("/parse-description", gestion, devisHandler.ParseDescription)
	devisGroup.Post("/", gestion, devisHandler.Create)
	devisGroup.Get("/", devisHandler.List)
	devisGroup.Get("/:id", devisHandler.GetByID)
	devisGroup.Put("/:id/status", gestion, devisHandler.UpdateStatus)
	devisGroup.Post("/:id/convert", gestion, devisHandler.Convert)
	devisGroup.Get("/:id/pdf", devisHandler.DownloadPDF)

	// Factures
	factures := protected.Group("/factures")
	factureHandler := NewFactureHandler(deps.FactureUC, deps.PDFUC)
	factures.Post("/", gestion, factureHandler.Create)
	factures.Get("/", factureHandler.List)
	factures.Get("/:id", factureHandler.GetByID)
	factures.Put("/:id/status", gestion, factureHandler.UpdateStatus)
	factures.Get("/:id/pdf", factureHandler.DownloadPDF)

	// Planning (lecture et écriture pour toute l'équipe)
	planningGroup := protected.Group("/planning")
	planningHandler := NewPlanningHandler(deps.PlanningUC)
	planningGroup.Post("/", planningHandler.Create)
	planningGroup.Get("/", planningHandler.List)
	planningGroup.Put("/:id", planningHandler.Update)
	planningGroup.Delete("/:id", planningHandler.Delete)

	// IA
	aiGroup := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.EstimationUC)
	aiGroup.Post("/estimate", gestion, aiHandler.Estimate)
}
