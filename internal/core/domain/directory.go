package domain

// Company owns analytic accounts and supplies their default currency.
type Company struct {
	CompanyID    int64  `json:"companyID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	AuditFields
}

// Partner is a customer or supplier.
type Partner struct {
	PartnerID int64  `json:"partnerID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AuditFields
}

// User is an internal user; sales orders reference one as salesperson.
type User struct {
	UserID int64  `json:"userID"`
	Name   string `json:"name"`
	Login  string `json:"login"`
	AuditFields
}
