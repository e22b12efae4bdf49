package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pasale_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/SscSPs/pasale_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	store    portssvc.ExpenseSvc
	grouping string
	loc      *time.Location
}

func registerExpenseRoutes(rg *gin.RouterGroup, store portssvc.ExpenseSvc, grouping string, loc *time.Location) {
	h := &expenseHandler{store: store, grouping: grouping, loc: loc}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/summary", h.getExpenseBreakdown)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Expense id already exists"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.store.AddExpense(c.Request.Context(), req.ToDomain(h.loc))
	if err != nil {
		respondWithError(c, logger, err, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense, dto.NewPresenter(c.Query("lang"), h.grouping, h.loc)))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses newest first, optionally narrowed by date, category, necessity and search text
// @Tags expenses
// @Produce  json
// @Param   dateFrom query string false "First day, YYYY-MM-DD"
// @Param   dateTo query string false "Last day (inclusive), YYYY-MM-DD"
// @Param   category query string false "Category, or all"
// @Param   necessity query string false "all, necessary or unnecessary"
// @Param   search query string false "Case-insensitive substring of the description or category"
// @Param   lang query string false "Display language (en or np)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	params, filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	expenses := h.store.ListExpenses(c.Request.Context(), filter)
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses, dto.NewPresenter(params.Lang, h.grouping, h.loc)))
}

// getExpenseBreakdown godoc
// @Summary Expense breakdown
// @Description Totals the filtered expenses overall, necessary against unnecessary, and per category
// @Tags expenses
// @Produce  json
// @Param   dateFrom query string false "First day, YYYY-MM-DD"
// @Param   dateTo query string false "Last day (inclusive), YYYY-MM-DD"
// @Param   category query string false "Category, or all"
// @Param   necessity query string false "all, necessary or unnecessary"
// @Param   search query string false "Case-insensitive substring of the description or category"
// @Param   lang query string false "Display language (en or np)"
// @Success 200 {object} dto.ExpenseBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /expenses/summary [get]
func (h *expenseHandler) getExpenseBreakdown(c *gin.Context) {
	params, filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	b := h.store.ExpenseBreakdown(c.Request.Context(), filter)
	c.JSON(http.StatusOK, dto.ToExpenseBreakdownResponse(b, dto.NewPresenter(params.Lang, h.grouping, h.loc)))
}

func (h *expenseHandler) bindFilter(c *gin.Context) (dto.ListExpensesParams, domain.ExpenseFilter, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, domain.ExpenseFilter{}, false
	}
	filter, err := services.ParseExpenseFilter(params.DateFrom, params.DateTo, params.Category, params.Necessity, params.Search, h.loc)
	if err != nil {
		respondWithError(c, logger, err, "Invalid expense filter")
		return params, filter, false
	}
	return params, filter, true
}
