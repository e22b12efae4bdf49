package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/SscSPs/pasale_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	store    portssvc.StoreSvcFacade
	grouping string
	loc      *time.Location
}

func newTransactionHandler(store portssvc.StoreSvcFacade, grouping string, loc *time.Location) *transactionHandler {
	return &transactionHandler{store: store, grouping: grouping, loc: loc}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, store portssvc.StoreSvcFacade, grouping string, loc *time.Location) {
	h := newTransactionHandler(store, grouping, loc)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

func (h *transactionHandler) presenter(c *gin.Context) dto.Presenter {
	return dto.NewPresenter(c.Query("lang"), h.grouping, h.loc)
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Stores a transaction at the head of the list and emits a notification. Item totals and the amount are recomputed from items.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Param   lang query string false "Display language (en or np)"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Transaction id already exists"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create transaction", slog.String("type", string(req.Type)))

	created, err := h.store.AddTransaction(c.Request.Context(), req.ToDomain(h.loc))
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created, h.presenter(c)))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   lang query string false "Display language (en or np)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	tx, err := h.store.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx, h.presenter(c)))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first, one page at a time, optionally narrowed by date range, type and description
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   dateFrom query string false "First day, YYYY-MM-DD"
// @Param   dateTo query string false "Last day (inclusive), YYYY-MM-DD"
// @Param   type query string false "all or a transaction type such as selling"
// @Param   search query string false "Case-insensitive description substring"
// @Param   lang query string false "Display language (en or np)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := services.ParseTransactionFilter(params.DateFrom, params.DateTo, params.Type, params.Search, h.loc)
	if err != nil {
		respondWithError(c, logger, err, "Invalid transaction filter")
		return
	}

	txs, next, err := h.store.ListTransactions(c.Request.Context(), filter, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Debug("Transactions listed", slog.Int("count", len(txs)))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txs, next, dto.NewPresenter(params.Lang, h.grouping, h.loc)))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Merges the given fields onto an existing transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", id))

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, found, err := h.store.UpdateTransaction(c.Request.Context(), id, req.ToPatch(h.loc))
	if err != nil {
		respondWithError(c, logger, err, "Failed to update transaction")
		return
	}
	if !found {
		logger.Warn("Transaction not found for update")
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated, h.presenter(c)))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", id))

	if !h.store.DeleteTransaction(c.Request.Context(), id) {
		logger.Warn("Transaction not found for delete")
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	logger.Info("Transaction deleted")
	c.Status(http.StatusNoContent)
}
