package bootstrap

import (
	"database/sql"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/pc-part-finder/go-partfinder-backend/internal/api/http"
	"github.com/pc-part-finder/go-partfinder-backend/internal/api/middleware"
	"github.com/pc-part-finder/go-partfinder-backend/internal/auth"
	authhttp "github.com/pc-part-finder/go-partfinder-backend/internal/auth/http"
	authmw "github.com/pc-part-finder/go-partfinder-backend/internal/auth/middleware"
	authrepo "github.com/pc-part-finder/go-partfinder-backend/internal/auth/repository"
	authservice "github.com/pc-part-finder/go-partfinder-backend/internal/auth/service"
	"github.com/pc-part-finder/go-partfinder-backend/internal/catalog"
	cataloghttp "github.com/pc-part-finder/go-partfinder-backend/internal/catalog/http"
	checkouthttp "github.com/pc-part-finder/go-partfinder-backend/internal/checkout/http"
	checkoutrepo "github.com/pc-part-finder/go-partfinder-backend/internal/checkout/repository"
	checkoutservice "github.com/pc-part-finder/go-partfinder-backend/internal/checkout/service"
	ledgerhttp "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/http"
	ledgerrepo "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/repository"
	ledgerservice "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/service"
	ledgersync "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/sync"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string

	DB         *pgxpool.Pool // health checks only; nil when no database is configured
	SQLDB      *sql.DB       // profile and order repositories; nil disables them
	Redis      *redis.Client
	AuthClient *fbauth.Client // nil enables the dev header identity
	Catalog    *catalog.Catalog
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = dep.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-User-Id", "X-Request-Id")
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	if dep.AuthClient != nil {
		api.Use(authmw.FirebaseAuthMiddleware(dep.AuthClient))
	} else {
		api.Use(auth.OptionalUser())
	}

	notifier := ledgersync.NewNotifier(dep.Redis)
	repo := ledgerrepo.NewLedgerRepository(dep.Redis, notifier)
	ledgerSvc := ledgerservice.NewLedgerService(repo, dep.Catalog)
	ledgerHandler := ledgerhttp.New(ledgerSvc, notifier)

	ledgerHandler.RegisterProjects(api.Group("/projects"))
	ledgerHandler.RegisterCart(api.Group("/cart"))

	cataloghttp.New(dep.Catalog).Register(api.Group("/parts"))

	var orders *checkoutrepo.OrderRepository
	if dep.SQLDB != nil {
		orders = checkoutrepo.NewOrderRepository(dep.SQLDB)

		userRepo := authrepo.NewUserRepository(dep.SQLDB)
		authhttp.New(authservice.NewAuthService(userRepo)).Register(api.Group("/auth"))
	}

	checkoutSvc := checkoutservice.NewCheckoutService(ledgerSvc, orders)
	checkouthttp.New(checkoutSvc).Register(api)

	return r
}
