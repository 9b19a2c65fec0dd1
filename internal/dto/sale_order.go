package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleOrderLineRequest defines a sales-order line on creation.
type SaleOrderLineRequest struct {
	Description          string                      `json:"description" binding:"required,max=500"`
	Quantity             decimal.Decimal             `json:"quantity"`
	PriceUnit            decimal.Decimal             `json:"priceUnit"`
	AnalyticDistribution domain.AnalyticDistribution `json:"analyticDistribution" binding:"omitempty,analytic_distribution"`
}

// CreateSaleOrderRequest defines the data needed to create a sales order with its lines.
type CreateSaleOrderRequest struct {
	Name          string                 `json:"name" binding:"required,max=255"`
	PartnerID     int64                  `json:"partnerID" binding:"required,gt=0"`
	SalespersonID *int64                 `json:"salespersonID" binding:"omitempty,gt=0"`
	CompanyID     *int64                 `json:"companyID" binding:"omitempty,gt=0"`
	State         domain.SaleOrderState  `json:"state" binding:"omitempty,oneof=draft sale cancel"`
	Lines         []SaleOrderLineRequest `json:"lines" binding:"dive"`
}

// UpdateSaleOrderRequest defines the header fields allowed for updating a sales order.
type UpdateSaleOrderRequest struct {
	Name             *string                `json:"name" binding:"omitempty,max=255"`
	PartnerID        *int64                 `json:"partnerID" binding:"omitempty,gt=0"`
	SalespersonID    *int64                 `json:"salespersonID" binding:"omitempty,gt=0"`
	ClearSalesperson bool                   `json:"clearSalesperson"`
	State            *domain.SaleOrderState `json:"state" binding:"omitempty,oneof=draft sale cancel"`
}

// UpdateSaleOrderLineRequest defines the fields allowed for updating a sales-order line.
type UpdateSaleOrderLineRequest struct {
	Description               *string                      `json:"description" binding:"omitempty,max=500"`
	Quantity                  *decimal.Decimal             `json:"quantity"`
	PriceUnit                 *decimal.Decimal             `json:"priceUnit"`
	AnalyticDistribution      *domain.AnalyticDistribution `json:"analyticDistribution" binding:"omitempty,analytic_distribution"`
	ClearAnalyticDistribution bool                         `json:"clearAnalyticDistribution"`
}

// ListParams defines limit/offset query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// SaleOrderLineResponse defines the data returned for a sales-order line.
type SaleOrderLineResponse struct {
	LineID               int64           `json:"lineID"`
	SaleOrderID          int64           `json:"saleOrderID"`
	Description          string          `json:"description"`
	Quantity             decimal.Decimal `json:"quantity"`
	PriceUnit            decimal.Decimal `json:"priceUnit"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	AnalyticDistribution json.RawMessage `json:"analyticDistribution,omitempty" swaggertype:"object"`
}

// SaleOrderResponse defines the data returned for a sales order.
type SaleOrderResponse struct {
	SaleOrderID   int64                   `json:"saleOrderID"`
	Name          string                  `json:"name"`
	PartnerID     int64                   `json:"partnerID"`
	SalespersonID *int64                  `json:"salespersonID"`
	CompanyID     *int64                  `json:"companyID"`
	State         domain.SaleOrderState   `json:"state"`
	Lines         []SaleOrderLineResponse `json:"lines"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy string                  `json:"lastUpdatedBy"`
}

// ListSaleOrdersResponse wraps a page of sales order headers.
type ListSaleOrdersResponse struct {
	SaleOrders []SaleOrderResponse `json:"saleOrders"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// ToSaleOrderLineResponse converts a domain.SaleOrderLine to its response DTO.
func ToSaleOrderLineResponse(line *domain.SaleOrderLine) SaleOrderLineResponse {
	return SaleOrderLineResponse{
		LineID:               line.LineID,
		SaleOrderID:          line.SaleOrderID,
		Description:          line.Description,
		Quantity:             line.Quantity,
		PriceUnit:            line.PriceUnit,
		Subtotal:             line.Subtotal(),
		AnalyticDistribution: line.RawDistribution,
	}
}

// ToSaleOrderResponse converts a domain.SaleOrder and its loaded lines to the response DTO.
func ToSaleOrderResponse(order *domain.SaleOrder) SaleOrderResponse {
	lines := make([]SaleOrderLineResponse, len(order.Lines))
	for i := range order.Lines {
		lines[i] = ToSaleOrderLineResponse(&order.Lines[i])
	}
	return SaleOrderResponse{
		SaleOrderID:   order.SaleOrderID,
		Name:          order.Name,
		PartnerID:     order.PartnerID,
		SalespersonID: order.SalespersonID,
		CompanyID:     order.CompanyID,
		State:         order.State,
		Lines:         lines,
		CreatedAt:     order.CreatedAt,
		CreatedBy:     order.CreatedBy,
		LastUpdatedAt: order.LastUpdatedAt,
		LastUpdatedBy: order.LastUpdatedBy,
	}
}
