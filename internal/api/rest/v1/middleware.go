package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id of a request
const RequestIDHeader = "X-Request-ID"

// ContentSecurityPolicy is sent with every response
const ContentSecurityPolicy = "default-src 'self'; object-src 'none'"

// SecurityHeaders sets the browser hardening headers on every response and,
// when forceHTTPS is set, redirects plain HTTP requests to HTTPS.
func SecurityHeaders(forceHTTPS bool) gin.HandlerFunc {
	return secure.New(secure.Config{
		SSLRedirect:             forceHTTPS,
		SSLProxyHeaders:         map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:              31536000,
		STSIncludeSubdomains:    true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		BrowserXssFilter:        true,
		ContentSecurityPolicy:   ContentSecurityPolicy,
		ReferrerPolicy:          "strict-origin-when-cross-origin",
	})
}

// CORS allows any origin to call the API. The allow-origin header is sent on
// every response, with or without an Origin request header.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Location", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})

	return func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		handler(ctx)
	}
}

// RequestID echoes the caller's request id or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(RequestIDHeader, requestID)
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}

// AccessLog writes one record per request once it has been served
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		record := fmt.Sprintf("%s %s %d %s request_id=%s",
			ctx.Request.Method,
			ctx.Request.URL.Path,
			ctx.Writer.Status(),
			time.Since(start),
			ctx.GetString(RequestIDHeader),
		)
		switch status := ctx.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error(record, " errors=", ctx.Errors.String())
		case status >= http.StatusBadRequest:
			log.Warn(record)
		default:
			log.Info(record)
		}
	}
}

// Recovery turns panics into the 500 error JSON
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error("Recovered from panic: ", recovered)
		abortWithError(ctx, http.StatusInternalServerError, "an internal error occurred")
	})
}
