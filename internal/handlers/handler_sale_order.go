package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/SscSPs/analytic_margin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleOrderHandler handles HTTP requests related to sales orders and their lines.
type saleOrderHandler struct {
	saleOrderService portssvc.SaleOrderSvcFacade
}

func newSaleOrderHandler(svc portssvc.SaleOrderSvcFacade) *saleOrderHandler {
	return &saleOrderHandler{saleOrderService: svc}
}

// RegisterSaleOrderRoutes registers routes related to sales orders.
func RegisterSaleOrderRoutes(rg *gin.RouterGroup, svc portssvc.SaleOrderSvcFacade) {
	h := newSaleOrderHandler(svc)

	orders := rg.Group("/sale-orders")
	{
		orders.POST("", h.createSaleOrder)
		orders.GET("", h.listSaleOrders)
		orders.GET("/:id", h.getSaleOrder)
		orders.PUT("/:id", h.updateSaleOrder)
		orders.DELETE("/:id", h.deleteSaleOrder)
		orders.POST("/:id/lines", h.addSaleOrderLine)
	}

	lines := rg.Group("/sale-order-lines")
	{
		lines.PUT("/:lineID", h.updateSaleOrderLine)
		lines.DELETE("/:lineID", h.deleteSaleOrderLine)
	}
}

// createSaleOrder godoc
// @Summary Create a sales order
// @Description Creates a sales order with its lines and re-evaluates the analytic accounts they distribute onto.
// @Tags sale-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateSaleOrderRequest true "Sales order with lines"
// @Success 201 {object} dto.SaleOrderResponse
// @Failure 400 {object} map[string]string "Invalid input, unknown customer or malformed distribution"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create sales order"
// @Security BearerAuth
// @Router /sale-orders [post]
func (h *saleOrderHandler) createSaleOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSaleOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger.Info("Received request to create sales order", slog.String("name", req.Name), slog.Int("line_count", len(req.Lines)))
	order, err := h.saleOrderService.CreateSaleOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create sales order")
		return
	}

	logger.Info("Sales order created", slog.Int64("sale_order_id", order.SaleOrderID))
	c.JSON(http.StatusCreated, dto.ToSaleOrderResponse(order))
}

// listSaleOrders godoc
// @Summary List sales orders
// @Tags sale-orders
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListSaleOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list sales orders"
// @Security BearerAuth
// @Router /sale-orders [get]
func (h *saleOrderHandler) listSaleOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListSaleOrders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.saleOrderService.ListSaleOrders(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "list sales orders")
		return
	}

	resp := dto.ListSaleOrdersResponse{SaleOrders: make([]dto.SaleOrderResponse, len(orders)), Limit: params.Limit, Offset: params.Offset}
	for i := range orders {
		resp.SaleOrders[i] = dto.ToSaleOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getSaleOrder godoc
// @Summary Get a sales order with its lines
// @Tags sale-orders
// @Produce  json
// @Param   id path int true "Sales order ID"
// @Success 200 {object} dto.SaleOrderResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sales order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sales order"
// @Security BearerAuth
// @Router /sale-orders/{id} [get]
func (h *saleOrderHandler) getSaleOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.saleOrderService.GetSaleOrder(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve sales order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleOrderResponse(order))
}

// updateSaleOrder godoc
// @Summary Update a sales order header
// @Description A customer or salesperson change is copied onto every analytic account linked to the order.
// @Tags sale-orders
// @Accept  json
// @Produce  json
// @Param   id path int true "Sales order ID"
// @Param   order body dto.UpdateSaleOrderRequest true "Header fields to update"
// @Success 200 {object} dto.SaleOrderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sales order not found"
// @Failure 500 {object} map[string]string "Failed to update sales order"
// @Security BearerAuth
// @Router /sale-orders/{id} [put]
func (h *saleOrderHandler) updateSaleOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSaleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSaleOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.saleOrderService.UpdateSaleOrder(c.Request.Context(), orderID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update sales order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleOrderResponse(order))
}

// deleteSaleOrder godoc
// @Summary Delete a sales order
// @Description Deletes the order and its lines; linked analytic accounts are re-evaluated.
// @Tags sale-orders
// @Param   id path int true "Sales order ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sales order not found"
// @Failure 500 {object} map[string]string "Failed to delete sales order"
// @Security BearerAuth
// @Router /sale-orders/{id} [delete]
func (h *saleOrderHandler) deleteSaleOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.saleOrderService.DeleteSaleOrder(c.Request.Context(), orderID, userID); err != nil {
		respondServiceError(c, logger, err, "delete sales order")
		return
	}
	logger.Info("Sales order deleted", slog.Int64("sale_order_id", orderID))
	c.Status(http.StatusNoContent)
}

// addSaleOrderLine godoc
// @Summary Add a line to a sales order
// @Tags sale-orders
// @Accept  json
// @Produce  json
// @Param   id path int true "Sales order ID"
// @Param   line body dto.SaleOrderLineRequest true "Line details"
// @Success 201 {object} dto.SaleOrderLineResponse
// @Failure 400 {object} map[string]string "Invalid input or malformed distribution"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sales order not found"
// @Failure 500 {object} map[string]string "Failed to add sales order line"
// @Security BearerAuth
// @Router /sale-orders/{id}/lines [post]
func (h *saleOrderHandler) addSaleOrderLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SaleOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddSaleOrderLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	line, err := h.saleOrderService.AddSaleOrderLine(c.Request.Context(), orderID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "add sales order line")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleOrderLineResponse(line))
}

// updateSaleOrderLine godoc
// @Summary Update a sales order line
// @Description Accounts referenced by the old or the new distribution are re-evaluated.
// @Tags sale-orders
// @Accept  json
// @Produce  json
// @Param   lineID path int true "Sales order line ID"
// @Param   line body dto.UpdateSaleOrderLineRequest true "Fields to update"
// @Success 200 {object} dto.SaleOrderLineResponse
// @Failure 400 {object} map[string]string "Invalid input or malformed distribution"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Line not found"
// @Failure 500 {object} map[string]string "Failed to update sales order line"
// @Security BearerAuth
// @Router /sale-order-lines/{lineID} [put]
func (h *saleOrderHandler) updateSaleOrderLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lineID, ok := parseIDParam(c, "lineID")
	if !ok {
		return
	}
	var req dto.UpdateSaleOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSaleOrderLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	line, err := h.saleOrderService.UpdateSaleOrderLine(c.Request.Context(), lineID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update sales order line")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleOrderLineResponse(line))
}

// deleteSaleOrderLine godoc
// @Summary Delete a sales order line
// @Tags sale-orders
// @Param   lineID path int true "Sales order line ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Line not found"
// @Failure 500 {object} map[string]string "Failed to delete sales order line"
// @Security BearerAuth
// @Router /sale-order-lines/{lineID} [delete]
func (h *saleOrderHandler) deleteSaleOrderLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lineID, ok := parseIDParam(c, "lineID")
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.saleOrderService.DeleteSaleOrderLine(c.Request.Context(), lineID, userID); err != nil {
		respondServiceError(c, logger, err, "delete sales order line")
		return
	}
	c.Status(http.StatusNoContent)
}
