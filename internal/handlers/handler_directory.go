package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/SscSPs/analytic_margin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// directoryHandler handles companies, partners and users.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

// RegisterDirectoryRoutes registers routes for companies, partners and users.
func RegisterDirectoryRoutes(rg *gin.RouterGroup, svc portssvc.DirectorySvcFacade) {
	h := &directoryHandler{directoryService: svc}

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.GET("/:id", h.getCompany)
	}
	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:id", h.getPartner)
	}
	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
	}
}

// createCompany godoc
// @Summary Create a company
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} domain.Company
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create company"
// @Security BearerAuth
// @Router /companies [post]
func (h *directoryHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	company, err := h.directoryService.CreateCompany(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create company")
		return
	}
	c.JSON(http.StatusCreated, company)
}

// listCompanies godoc
// @Summary List companies
// @Tags directory
// @Produce  json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list companies"
// @Security BearerAuth
// @Router /companies [get]
func (h *directoryHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companies, err := h.directoryService.ListCompanies(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ListCompaniesResponse{Companies: companies})
}

// getCompany godoc
// @Summary Get a company
// @Tags directory
// @Produce  json
// @Param   id path int true "Company ID"
// @Success 200 {object} domain.Company
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *directoryHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	company, err := h.directoryService.GetCompany(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve company")
		return
	}
	c.JSON(http.StatusOK, company)
}

// createPartner godoc
// @Summary Create a partner
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} domain.Partner
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create partner"
// @Security BearerAuth
// @Router /partners [post]
func (h *directoryHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePartner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	partner, err := h.directoryService.CreatePartner(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create partner")
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// listPartners godoc
// @Summary List partners
// @Tags directory
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListPartnersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /partners [get]
func (h *directoryHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	partners, err := h.directoryService.ListPartners(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "list partners")
		return
	}
	c.JSON(http.StatusOK, dto.ListPartnersResponse{Partners: partners})
}

// getPartner godoc
// @Summary Get a partner
// @Tags directory
// @Produce  json
// @Param   id path int true "Partner ID"
// @Success 200 {object} domain.Partner
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Partner not found"
// @Security BearerAuth
// @Router /partners/{id} [get]
func (h *directoryHandler) getPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	partner, err := h.directoryService.GetPartner(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve partner")
		return
	}
	c.JSON(http.StatusOK, partner)
}

// createUser godoc
// @Summary Create an internal user
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} domain.User
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Login already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *directoryHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.directoryService.CreateUser(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// listUsers godoc
// @Summary List internal users
// @Tags directory
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users [get]
func (h *directoryHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	users, err := h.directoryService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "list users")
		return
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: users})
}

// getUser godoc
// @Summary Get an internal user
// @Tags directory
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *directoryHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.directoryService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve user")
		return
	}
	c.JSON(http.StatusOK, user)
}
