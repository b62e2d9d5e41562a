package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/httputil"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// JSONMediaType is the only media type account bodies are accepted in
const JSONMediaType = "application/json"

// AccountHandler defines the interface for handling account-related operations
type AccountHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type accountHandler struct {
	accountService accounts.AccountService
	logger         logger.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService accounts.AccountService, logger logger.Logger) AccountHandler {
	return &accountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Create handles the POST request creating an account
// @Summary Create an account
// @Tags Account
// @Accept json
// @Produce json
// @Param requestBody body AccountRequest true "Account data"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /accounts [post]
func (handler *accountHandler) Create(ctx *gin.Context) {
	handler.logger.Info("Request to create an Account")

	if !handler.checkContentType(ctx) {
		return
	}

	account, ok := handler.bindAccount(ctx)
	if !ok {
		return
	}

	created, err := handler.accountService.Create(ctx, account)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}

	ctx.Header("Location", accountURL(ctx, created.ID))
	ctx.JSON(http.StatusCreated, NewAccountResponse(created))
}

// List handles the GET request listing accounts
// @Summary List accounts
// @Tags Account
// @Produce json
// @Param name query string false "Exact account name"
// @Param email query string false "Exact account email"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "id, name, email or date_joined"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {array} AccountResponse
// @Failure 400 {object} ErrorResponse
// @Router /accounts [get]
func (handler *accountHandler) List(ctx *gin.Context) {
	handler.logger.Info("Request to list Accounts")

	query := accounts.NewAccountQuery()
	query.Name = ctx.Query("name")
	query.Email = ctx.Query("email")

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	paging := []struct {
		name   string
		target *int
	}{
		{"limit", &query.Limit},
		{"offset", &query.Offset},
	}
	for _, param := range paging {
		value := ctx.Query(param.name)
		if len(value) == 0 {
			continue
		}
		n, err := httputil.ParseNonNegativeInt(param.name, value)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		*param.target = n
	}

	accountList, err := handler.accountService.List(ctx, query)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}

	listResponse := make([]AccountResponse, 0, len(accountList))
	for _, account := range accountList {
		listResponse = append(listResponse, NewAccountResponse(account))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request reading a single account
// @Summary Read an account
// @Tags Account
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{id} [get]
func (handler *accountHandler) GetByID(ctx *gin.Context) {
	rawID := ctx.Param("id")
	handler.logger.Info("Request to read Account with id ", rawID)

	account, found := handler.lookup(ctx, rawID)
	if !found {
		return
	}

	ctx.JSON(http.StatusOK, NewAccountResponse(account))
}

// Update handles the PUT request replacing an account's attributes
// @Summary Update an account
// @Tags Account
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param requestBody body AccountRequest true "Account data"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /accounts/{id} [put]
func (handler *accountHandler) Update(ctx *gin.Context) {
	rawID := ctx.Param("id")
	handler.logger.Info("Request to update Account with id ", rawID)

	// an unknown account is reported before anything about the body
	existing, found := handler.lookup(ctx, rawID)
	if !found {
		return
	}

	if !handler.checkContentType(ctx) {
		return
	}

	changes, ok := handler.bindAccount(ctx)
	if !ok {
		return
	}

	updated, err := handler.accountService.Update(ctx, existing.ID, changes)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewAccountResponse(updated))
}

// DeleteByID handles the DELETE request removing an account
// @Summary Delete an account
// @Tags Account
// @Param id path int true "Account ID"
// @Success 204
// @Router /accounts/{id} [delete]
func (handler *accountHandler) DeleteByID(ctx *gin.Context) {
	rawID := ctx.Param("id")
	handler.logger.Info("Request to delete Account with id ", rawID)

	// ids that cannot exist are already deleted
	if accountID, err := parseAccountID(rawID); err == nil {
		if err := handler.accountService.DeleteByID(ctx, accountID); err != nil {
			abortWithServiceError(ctx, err)
			return
		}
	}

	ctx.Status(http.StatusNoContent)
}

func (handler *accountHandler) lookup(ctx *gin.Context, rawID string) (*accounts.Account, bool) {
	notFound := fmt.Sprintf("Account with id %s could not be found", rawID)

	accountID, err := parseAccountID(rawID)
	if err != nil {
		abortWithError(ctx, http.StatusNotFound, notFound)
		return nil, false
	}

	account, err := handler.accountService.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			abortWithError(ctx, http.StatusNotFound, notFound)
		} else {
			abortWithServiceError(ctx, err)
		}
		return nil, false
	}

	return account, true
}

func (handler *accountHandler) checkContentType(ctx *gin.Context) bool {
	if ctx.ContentType() == JSONMediaType {
		return true
	}

	handler.logger.Error("Invalid Content-Type: ", ctx.GetHeader("Content-Type"))
	abortWithError(ctx, http.StatusUnsupportedMediaType, "Content-Type must be "+JSONMediaType)
	return false
}

func (handler *accountHandler) bindAccount(ctx *gin.Context) (*accounts.Account, bool) {
	var request AccountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid account data: %v", err))
		return nil, false
	}

	account, err := request.ToDomain()
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return account, true
}

// parseAccountID accepts ids that fit a signed 64-bit column
func parseAccountID(rawID string) (uint, error) {
	id, err := strconv.ParseUint(rawID, 10, 63)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// accountURL builds the absolute URL of an account from the incoming request
func accountURL(ctx *gin.Context, accountID uint) string {
	return fmt.Sprintf("%s%s/%d", baseURL(ctx), AccountsPath, accountID)
}

func baseURL(ctx *gin.Context) string {
	scheme := "http"
	if ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + ctx.Request.Host
}
