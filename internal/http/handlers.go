package http

import (
	"context"
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"

	"banking-backoffice/internal/banking"
	"banking-backoffice/internal/config"
)

//go:embed schemas/*.json
var schemaFS embed.FS

type Authenticator interface {
	Login(ctx context.Context, c banking.Credentials) (*banking.LoginResponse, error)
}

type Registrar interface {
	Register(ctx context.Context, r banking.Registration) (*banking.RegisterResponse, error)
}

type Transferrer interface {
	Transfer(ctx context.Context, r banking.TransferRequest) (*banking.TransferResponse, error)
}

type LedgerReader interface {
	Recent(ctx context.Context, userID, accountID uint) (*banking.LedgerResponse, error)
	Monthly(ctx context.Context, userID, accountID uint, month, year int) (*banking.LedgerResponse, error)
	Mortgage(ctx context.Context, userID, accountID uint) (*banking.LedgerResponse, error)
}

type AccountReader interface {
	Balance(ctx context.Context, userID, accountID uint) (*banking.BalanceResponse, error)
	SearchPayees(ctx context.Context, userID uint, prefix string) (*banking.PayeeResponse, error)
}

type SessionParser interface {
	Parse(token string) (*banking.Claims, error)
}

// Deps are the services the router dispatches to.
type Deps struct {
	Auth      Authenticator
	Registrar Registrar
	Transfers Transferrer
	Ledger    LedgerReader
	Accounts  AccountReader
	Sessions  SessionParser
	Logger    *slog.Logger
}

type Server struct {
	cfg            *config.Config
	deps           Deps
	logger         *slog.Logger
	registerSchema *gojsonschema.Schema
	transferSchema *gojsonschema.Schema
}

func NewServer(cfg *config.Config, deps Deps) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(cors(cfg))
	r.Use(logging(deps.Logger))
	r.Use(timeout(cfg.RequestTimeout))

	s := &Server{
		cfg:            cfg,
		deps:           deps,
		logger:         deps.Logger,
		registerSchema: loadSchema("register.json"),
		transferSchema: loadSchema("transfer.json"),
	}

	// Auth
	r.POST("/v1/auth/login", s.authLogin)
	r.POST("/v1/auth/register", s.authRegister)

	// Protected Routes (User Token)
	authorized := r.Group("/v1")
	authorized.Use(AuthMiddleware(deps.Sessions))
	{
		authorized.POST("/transfers", s.createTransfer)
		authorized.GET("/accounts/:id/balance", s.accountBalance)
		authorized.GET("/accounts/:id/transactions/recent", s.recentTransactions)
		authorized.GET("/accounts/:id/transactions/monthly", s.monthlyTransactions)
		authorized.GET("/accounts/:id/transactions/mortgage", s.mortgageTransactions)
		authorized.GET("/payees", s.searchPayees)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

// loadSchema compiles an embedded schema; a broken schema is a build defect.
func loadSchema(name string) *gojsonschema.Schema {
	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(err)
	}
	return schema
}

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func logging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString(ctxRequestID),
		)
	}
}
