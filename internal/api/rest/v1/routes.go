package v1

import (
	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RouterOptions tunes the middleware stack built by NewRouter
type RouterOptions struct {
	// ForceHTTPS redirects plain HTTP requests to HTTPS
	ForceHTTPS bool
}

// NewRouter builds the gin engine serving the accounts API with its middleware stack.
func NewRouter(accountService accounts.AccountService, log logger.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		Recovery(log),
		RequestID(),
		AccessLog(log),
		SecurityHeaders(opts.ForceHTTPS),
		CORS(),
	)

	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)

	SetupRoutes(r, accountService, log)
	return r
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, accountService accounts.AccountService, log logger.Logger) {
	r.GET(IndexPath, Index)
	r.GET(HealthPath, Health)

	accountHandler := NewAccountHandler(accountService, log)
	r.POST(AccountsPath, accountHandler.Create)
	r.GET(AccountsPath, accountHandler.List)
	r.GET(AccountPath, accountHandler.GetByID)
	r.PUT(AccountPath, accountHandler.Update)
	r.DELETE(AccountPath, accountHandler.DeleteByID)
}
