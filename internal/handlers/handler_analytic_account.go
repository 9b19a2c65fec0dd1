package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/SscSPs/analytic_margin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// analyticAccountHandler handles HTTP requests related to analytic accounts.
type analyticAccountHandler struct {
	analyticAccountService portssvc.AnalyticAccountSvcFacade
}

func newAnalyticAccountHandler(svc portssvc.AnalyticAccountSvcFacade) *analyticAccountHandler {
	return &analyticAccountHandler{analyticAccountService: svc}
}

// RegisterAnalyticAccountRoutes registers routes related to analytic accounts.
func RegisterAnalyticAccountRoutes(rg *gin.RouterGroup, svc portssvc.AnalyticAccountSvcFacade) {
	h := newAnalyticAccountHandler(svc)

	accounts := rg.Group("/analytic-accounts")
	{
		accounts.POST("", h.createAnalyticAccount)
		accounts.GET("", h.listAnalyticAccounts)
		accounts.POST("/recompute", h.recomputeAll)
		accounts.GET("/:id", h.getAnalyticAccount)
		accounts.PUT("/:id", h.updateAnalyticAccount)
		accounts.DELETE("/:id", h.deleteAnalyticAccount)
		accounts.GET("/:id/summary", h.getAnalyticAccountSummary)
		accounts.GET("/:id/margin", h.getMargin)
		accounts.POST("/:id/recompute", h.recomputeAccount)
	}
}

// createAnalyticAccount godoc
// @Summary Create an analytic account
// @Description Creates an analytic account. Currency defaults from the company, then from configuration.
// @Tags analytic-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAnalyticAccountRequest true "Analytic account details"
// @Success 201 {object} dto.AnalyticAccountResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown company"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate code"
// @Failure 500 {object} map[string]string "Failed to create analytic account"
// @Security BearerAuth
// @Router /analytic-accounts [post]
func (h *analyticAccountHandler) createAnalyticAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAnalyticAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAnalyticAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger.Info("Received request to create analytic account", slog.String("name", req.Name))
	account, err := h.analyticAccountService.CreateAnalyticAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create analytic account")
		return
	}

	logger.Info("Analytic account created", slog.Int64("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAnalyticAccountResponse(account))
}

// listAnalyticAccounts godoc
// @Summary List analytic accounts
// @Tags analytic-accounts
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Param   sale_order_id query int false "Only accounts linked to this sales order"
// @Param   active_only query bool false "Only active accounts"
// @Success 200 {object} dto.ListAnalyticAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list analytic accounts"
// @Security BearerAuth
// @Router /analytic-accounts [get]
func (h *analyticAccountHandler) listAnalyticAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAnalyticAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAnalyticAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, err := h.analyticAccountService.ListAnalyticAccounts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "list analytic accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListAnalyticAccountsResponse{
		Accounts: dto.ToListAnalyticAccountResponse(accounts),
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

// getAnalyticAccount godoc
// @Summary Get an analytic account
// @Tags analytic-accounts
// @Produce  json
// @Param   id path int true "Analytic account ID"
// @Success 200 {object} dto.AnalyticAccountResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analytic account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve analytic account"
// @Security BearerAuth
// @Router /analytic-accounts/{id} [get]
func (h *analyticAccountHandler) getAnalyticAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	account, err := h.analyticAccountService.GetAnalyticAccount(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve analytic account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnalyticAccountResponse(account))
}

// updateAnalyticAccount godoc
// @Summary Update an analytic account
// @Description Updates the editable fields and recomputes the derived ones.
// @Tags analytic-accounts
// @Accept  json
// @Produce  json
// @Param   id path int true "Analytic account ID"
// @Param   account body dto.UpdateAnalyticAccountRequest true "Fields to update"
// @Success 200 {object} dto.AnalyticAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analytic account not found"
// @Failure 500 {object} map[string]string "Failed to update analytic account"
// @Security BearerAuth
// @Router /analytic-accounts/{id} [put]
func (h *analyticAccountHandler) updateAnalyticAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAnalyticAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAnalyticAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("account_id", accountID))
	account, err := h.analyticAccountService.UpdateAnalyticAccount(c.Request.Context(), accountID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update analytic account")
		return
	}

	logger.Info("Analytic account updated")
	c.JSON(http.StatusOK, dto.ToAnalyticAccountResponse(account))
}

// deleteAnalyticAccount godoc
// @Summary Delete an analytic account
// @Tags analytic-accounts
// @Param   id path int true "Analytic account ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analytic account not found"
// @Failure 500 {object} map[string]string "Failed to delete analytic account"
// @Security BearerAuth
// @Router /analytic-accounts/{id} [delete]
func (h *analyticAccountHandler) deleteAnalyticAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.analyticAccountService.DeleteAnalyticAccount(c.Request.Context(), accountID, userID); err != nil {
		respondServiceError(c, logger, err, "delete analytic account")
		return
	}

	logger.Info("Analytic account deleted", slog.Int64("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// getAnalyticAccountSummary godoc
// @Summary Get an analytic account summary
// @Description Stored figures plus the display names of the linked sales order, customer and salesperson.
// @Tags analytic-accounts
// @Produce  json
// @Param   id path int true "Analytic account ID"
// @Success 200 {object} dto.AnalyticAccountSummary
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analytic account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve summary"
// @Security BearerAuth
// @Router /analytic-accounts/{id}/summary [get]
func (h *analyticAccountHandler) getAnalyticAccountSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.analyticAccountService.GetAnalyticAccountSummary(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getMargin godoc
// @Summary Get the profitability of an analytic account
// @Tags analytic-accounts
// @Produce  json
// @Param   id path int true "Analytic account ID"
// @Success 200 {object} dto.MarginResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analytic account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve margin"
// @Security BearerAuth
// @Router /analytic-accounts/{id}/margin [get]
func (h *analyticAccountHandler) getMargin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	account, err := h.analyticAccountService.GetAnalyticAccount(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve margin")
		return
	}
	c.JSON(http.StatusOK, dto.ToMarginResponse(account))
}

// recomputeAll godoc
// @Summary Recompute every analytic account
// @Description Re-runs the linker, aggregator and margin calculator over all accounts.
// @Tags analytic-accounts
// @Produce  json
// @Success 200 {object} dto.RecomputeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to recompute analytic accounts"
// @Security BearerAuth
// @Router /analytic-accounts/recompute [post]
func (h *analyticAccountHandler) recomputeAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.analyticAccountService.RecomputeAll(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "recompute analytic accounts")
		return
	}

	logger.Info("Recomputed analytic accounts", slog.Int("evaluated", result.Evaluated), slog.Int("updated", result.Updated))
	c.JSON(http.StatusOK, result)
}

// recomputeAccount godoc
// @Summary Recompute one analytic account
// @Tags analytic-accounts
// @Produce  json
// @Param   id path int true "Analytic account ID"
// @Success 200 {object} dto.AnalyticAccountResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analytic account not found"
// @Failure 500 {object} map[string]string "Failed to recompute analytic account"
// @Security BearerAuth
// @Router /analytic-accounts/{id}/recompute [post]
func (h *analyticAccountHandler) recomputeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.analyticAccountService.RecomputeAccount(c.Request.Context(), accountID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "recompute analytic account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnalyticAccountResponse(account))
}
