package dto

import "github.com/SscSPs/analytic_margin_app/internal/core/domain"

// CreateCompanyRequest defines the data needed to create a company.
type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
}

// CreatePartnerRequest defines the data needed to create a partner.
type CreatePartnerRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"omitempty,email"`
}

// CreateUserRequest defines the data needed to create an internal user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Login string `json:"login" binding:"required,max=255"`
}

// ListCompaniesResponse wraps the list of companies.
type ListCompaniesResponse struct {
	Companies []domain.Company `json:"companies"`
}

// ListPartnersResponse wraps a page of partners.
type ListPartnersResponse struct {
	Partners []domain.Partner `json:"partners"`
}

// ListUsersResponse wraps a page of users.
type ListUsersResponse struct {
	Users []domain.User `json:"users"`
}
