package v1

// Service identity reported by the index endpoint
const (
	ServiceName    = "Account REST API Service"
	ServiceVersion = "1.0"
)

// Route paths
const (
	IndexPath    = "/"
	HealthPath   = "/health"
	AccountsPath = "/accounts"
	AccountPath  = AccountsPath + "/:id"
)
