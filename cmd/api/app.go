package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/controller"
	"github.com/quintadosovos/erp-avicola/internal/adapter/api/route"
	"github.com/quintadosovos/erp-avicola/internal/adapter/repository"
	"github.com/quintadosovos/erp-avicola/internal/config"
	"github.com/quintadosovos/erp-avicola/internal/domain/checkout"
	"github.com/quintadosovos/erp-avicola/internal/domain/payroll"
	"github.com/quintadosovos/erp-avicola/internal/infrastructure/storage"
	"github.com/quintadosovos/erp-avicola/pkg/assistant"
	"github.com/quintadosovos/erp-avicola/pkg/auth"
	"github.com/quintadosovos/erp-avicola/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	config *config.Config
	logger logger.Logger
	router *gin.Engine

	jwtService *auth.JWTService

	authController      *controller.AuthController
	productController   *controller.ProductController
	cartController      *controller.CartController
	checkoutController  *controller.CheckoutController
	employeeController  *controller.EmployeeController
	userController      *controller.UserController
	ledgerController    *controller.LedgerController
	accountController   *controller.AccountController
	categoryController  *controller.CategoryController
	assistantController *controller.AssistantController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(cfg *config.Config) (*App, error) {
	l := logger.NewLogger(cfg.Logging.Level)

	// Armazenamento local em snapshots JSON
	store, err := storage.NewStore(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("erro ao preparar o armazenamento: %w", err)
	}

	seed := repository.EmptySeed()
	if cfg.Storage.Seed {
		seed, err = repository.DefaultSeed()
		if err != nil {
			return nil, fmt.Errorf("erro ao montar os dados iniciais: %w", err)
		}
	}

	// Criar repositórios
	productRepo, err := repository.NewProductRepository(store, seed.Products)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar produtos: %w", err)
	}
	employeeRepo, err := repository.NewEmployeeRepository(store, seed.Employees)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar funcionários: %w", err)
	}
	userRepo, err := repository.NewUserRepository(store, seed.Users)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar usuários: %w", err)
	}
	ledgerRepo, err := repository.NewLedgerRepository(store)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar o livro-caixa: %w", err)
	}
	accountRepo, err := repository.NewAccountRepository(store, seed.Accounts)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar contas correntes: %w", err)
	}
	categoryRepo, err := repository.NewCategoryRepository(store, seed.Categories)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar categorias: %w", err)
	}
	invoiceSeq, err := repository.NewInvoiceSequence(store)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar a sequência de faturas: %w", err)
	}
	cartRepo := repository.NewCartRepository()
	chatRepo := repository.NewChatRepository()

	// Criar serviços de domínio
	checkoutSvc := checkout.NewService(productRepo, ledgerRepo, invoiceSeq, l)
	payrollSvc := payroll.NewService(employeeRepo, ledgerRepo, l)

	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)
	if err != nil {
		return nil, err
	}

	// O assistente é opcional: sem chave de API a loja responde com a
	// mensagem padrão de indisponibilidade
	var assistantClient *assistant.Client
	if cfg.Assistant.APIKey != "" {
		assistantClient, err = assistant.NewClient(assistant.Config{
			APIKey:    cfg.Assistant.APIKey,
			Model:     cfg.Assistant.Model,
			MaxTokens: cfg.Assistant.MaxTokens,
			Timeout:   cfg.Assistant.Timeout,
		}, l, chatRepo)
		if err != nil {
			return nil, err
		}
	} else {
		l.Warn("assistente de compras desabilitado: chave de API não configurada")
	}

	// Criar controllers
	authController := controller.NewAuthController(userRepo, jwtService, l)
	productController := controller.NewProductController(productRepo, l)
	cartController := controller.NewCartController(cartRepo, productRepo, checkoutSvc, l)
	checkoutController := controller.NewCheckoutController(productRepo, checkoutSvc, l)
	employeeController := controller.NewEmployeeController(employeeRepo, payrollSvc, l)
	userController := controller.NewUserController(userRepo, l)
	ledgerController := controller.NewLedgerController(ledgerRepo, l)
	accountController := controller.NewAccountController(accountRepo, l)
	categoryController := controller.NewCategoryController(categoryRepo, l)
	assistantController := controller.NewAssistantController(assistantClient, productRepo, l)

	// Configurar router
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS liberado para a loja servida em outro domínio
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	return &App{
		config:              cfg,
		logger:              l,
		router:              router,
		jwtService:          jwtService,
		authController:      authController,
		productController:   productController,
		cartController:      cartController,
		checkoutController:  checkoutController,
		employeeController:  employeeController,
		userController:      userController,
		ledgerController:    ledgerController,
		accountController:   accountController,
		categoryController:  categoryController,
		assistantController: assistantController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, a.jwtService, a.authController)
	route.RegisterProductRoutes(api, a.jwtService, a.productController)
	route.RegisterCartRoutes(api, a.cartController)
	route.RegisterPOSRoutes(api, a.jwtService, a.checkoutController)
	route.RegisterEmployeeRoutes(api, a.jwtService, a.employeeController)
	route.RegisterUserRoutes(api, a.jwtService, a.userController)
	route.RegisterLedgerRoutes(api, a.jwtService, a.ledgerController)
	route.RegisterAccountRoutes(api, a.jwtService, a.accountController)
	route.RegisterCategoryRoutes(api, a.jwtService, a.categoryController)
	route.RegisterAssistantRoutes(api, a.assistantController)
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("servidor iniciado", "addr", addr)
	return server.ListenAndServe()
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}
