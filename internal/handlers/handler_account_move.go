package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/SscSPs/analytic_margin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountMoveHandler handles HTTP requests related to journal entries and invoices.
type accountMoveHandler struct {
	accountMoveService portssvc.AccountMoveSvcFacade
}

func newAccountMoveHandler(svc portssvc.AccountMoveSvcFacade) *accountMoveHandler {
	return &accountMoveHandler{accountMoveService: svc}
}

// RegisterAccountMoveRoutes registers routes related to journal entries.
func RegisterAccountMoveRoutes(rg *gin.RouterGroup, svc portssvc.AccountMoveSvcFacade) {
	h := newAccountMoveHandler(svc)

	moves := rg.Group("/account-moves")
	{
		moves.POST("", h.createAccountMove)
		moves.GET("", h.listAccountMoves)
		moves.GET("/:id", h.getAccountMove)
		moves.DELETE("/:id", h.deleteAccountMove)
		moves.POST("/:id/post", h.postAccountMove)
		moves.POST("/:id/cancel", h.cancelAccountMove)
		moves.POST("/:id/reset", h.resetAccountMove)
		moves.POST("/:id/lines", h.addAccountMoveLine)
	}

	lines := rg.Group("/account-move-lines")
	{
		lines.PUT("/:lineID", h.updateAccountMoveLine)
		lines.DELETE("/:lineID", h.deleteAccountMoveLine)
	}
}

// createAccountMove godoc
// @Summary Create a draft journal entry
// @Description Creates a draft entry or invoice with its items. Draft items count towards analytic totals but not margins.
// @Tags account-moves
// @Accept  json
// @Produce  json
// @Param   move body dto.CreateAccountMoveRequest true "Journal entry with items"
// @Success 201 {object} dto.AccountMoveResponse
// @Failure 400 {object} map[string]string "Invalid input or malformed distribution"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create journal entry"
// @Security BearerAuth
// @Router /account-moves [post]
func (h *accountMoveHandler) createAccountMove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccountMove", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger.Info("Received request to create journal entry", slog.String("move_type", string(req.MoveType)), slog.Int("line_count", len(req.Lines)))
	move, err := h.accountMoveService.CreateAccountMove(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create journal entry")
		return
	}

	logger.Info("Journal entry created", slog.Int64("move_id", move.MoveID))
	c.JSON(http.StatusCreated, dto.ToAccountMoveResponse(move))
}

// listAccountMoves godoc
// @Summary List journal entries
// @Tags account-moves
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAccountMovesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list journal entries"
// @Security BearerAuth
// @Router /account-moves [get]
func (h *accountMoveHandler) listAccountMoves(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListAccountMoves", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	moves, err := h.accountMoveService.ListAccountMoves(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "list journal entries")
		return
	}

	resp := dto.ListAccountMovesResponse{Moves: make([]dto.AccountMoveResponse, len(moves)), Limit: params.Limit, Offset: params.Offset}
	for i := range moves {
		resp.Moves[i] = dto.ToAccountMoveResponse(&moves[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getAccountMove godoc
// @Summary Get a journal entry with its items
// @Tags account-moves
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} dto.AccountMoveResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /account-moves/{id} [get]
func (h *accountMoveHandler) getAccountMove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	moveID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	move, err := h.accountMoveService.GetAccountMove(c.Request.Context(), moveID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountMoveResponse(move))
}

// deleteAccountMove godoc
// @Summary Delete a journal entry
// @Description Only draft or cancelled entries can be deleted.
// @Tags account-moves
// @Param   id path int true "Journal entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid id or entry is posted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to delete journal entry"
// @Security BearerAuth
// @Router /account-moves/{id} [delete]
func (h *accountMoveHandler) deleteAccountMove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	moveID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountMoveService.DeleteAccountMove(c.Request.Context(), moveID, userID); err != nil {
		respondServiceError(c, logger, err, "delete journal entry")
		return
	}
	logger.Info("Journal entry deleted", slog.Int64("move_id", moveID))
	c.Status(http.StatusNoContent)
}

type moveTransition func(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error)

// transition runs a state change on the entry named by the id path parameter.
func (h *accountMoveHandler) transition(c *gin.Context, action string, fn moveTransition) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	moveID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	move, err := fn(c.Request.Context(), moveID, userID)
	if err != nil {
		respondServiceError(c, logger, err, action)
		return
	}
	logger.Info("Journal entry state changed", slog.Int64("move_id", moveID), slog.String("state", string(move.State)))
	c.JSON(http.StatusOK, dto.ToAccountMoveResponse(move))
}

// postAccountMove godoc
// @Summary Post a draft journal entry
// @Description Posting requires at least one item and equal debit and credit totals.
// @Tags account-moves
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} dto.AccountMoveResponse
// @Failure 400 {object} map[string]string "Entry not draft, empty or unbalanced"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /account-moves/{id}/post [post]
func (h *accountMoveHandler) postAccountMove(c *gin.Context) {
	h.transition(c, "post journal entry", h.accountMoveService.PostAccountMove)
}

// cancelAccountMove godoc
// @Summary Cancel a draft journal entry
// @Tags account-moves
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} dto.AccountMoveResponse
// @Failure 400 {object} map[string]string "Entry not draft"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to cancel journal entry"
// @Security BearerAuth
// @Router /account-moves/{id}/cancel [post]
func (h *accountMoveHandler) cancelAccountMove(c *gin.Context) {
	h.transition(c, "cancel journal entry", h.accountMoveService.CancelAccountMove)
}

// resetAccountMove godoc
// @Summary Reset a posted or cancelled journal entry to draft
// @Tags account-moves
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} dto.AccountMoveResponse
// @Failure 400 {object} map[string]string "Entry already draft"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to reset journal entry"
// @Security BearerAuth
// @Router /account-moves/{id}/reset [post]
func (h *accountMoveHandler) resetAccountMove(c *gin.Context) {
	h.transition(c, "reset journal entry", h.accountMoveService.ResetAccountMoveToDraft)
}

// addAccountMoveLine godoc
// @Summary Add an item to a draft journal entry
// @Tags account-moves
// @Accept  json
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Param   line body dto.AccountMoveLineRequest true "Journal item"
// @Success 201 {object} dto.AccountMoveLineResponse
// @Failure 400 {object} map[string]string "Invalid input or entry not draft"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to add journal item"
// @Security BearerAuth
// @Router /account-moves/{id}/lines [post]
func (h *accountMoveHandler) addAccountMoveLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	moveID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AccountMoveLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAccountMoveLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	line, err := h.accountMoveService.AddAccountMoveLine(c.Request.Context(), moveID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "add journal item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountMoveLineResponse(line))
}

// updateAccountMoveLine godoc
// @Summary Update an item of a draft journal entry
// @Tags account-moves
// @Accept  json
// @Produce  json
// @Param   lineID path int true "Journal item ID"
// @Param   line body dto.UpdateAccountMoveLineRequest true "Fields to update"
// @Success 200 {object} dto.AccountMoveLineResponse
// @Failure 400 {object} map[string]string "Invalid input or entry not draft"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal item not found"
// @Failure 500 {object} map[string]string "Failed to update journal item"
// @Security BearerAuth
// @Router /account-move-lines/{lineID} [put]
func (h *accountMoveHandler) updateAccountMoveLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lineID, ok := parseIDParam(c, "lineID")
	if !ok {
		return
	}
	var req dto.UpdateAccountMoveLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccountMoveLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	line, err := h.accountMoveService.UpdateAccountMoveLine(c.Request.Context(), lineID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update journal item")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountMoveLineResponse(line))
}

// deleteAccountMoveLine godoc
// @Summary Delete an item of a draft journal entry
// @Tags account-moves
// @Param   lineID path int true "Journal item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid id or entry not draft"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal item not found"
// @Failure 500 {object} map[string]string "Failed to delete journal item"
// @Security BearerAuth
// @Router /account-move-lines/{lineID} [delete]
func (h *accountMoveHandler) deleteAccountMoveLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lineID, ok := parseIDParam(c, "lineID")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountMoveService.DeleteAccountMoveLine(c.Request.Context(), lineID, userID); err != nil {
		respondServiceError(c, logger, err, "delete journal item")
		return
	}
	c.Status(http.StatusNoContent)
}
