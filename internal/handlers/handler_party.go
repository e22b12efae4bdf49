package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/core/services"
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/SscSPs/pasale_ledger/internal/export"
	"github.com/SscSPs/pasale_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles party CRUD and the per-party ledger.
type partyHandler struct {
	store    portssvc.PartySvc
	ledger   portssvc.LedgerService
	grouping string
	loc      *time.Location
}

func newPartyHandler(store portssvc.PartySvc, ledger portssvc.LedgerService, grouping string, loc *time.Location) *partyHandler {
	return &partyHandler{store: store, ledger: ledger, grouping: grouping, loc: loc}
}

// registerPartyRoutes registers routes related to parties and their ledgers.
func registerPartyRoutes(rg *gin.RouterGroup, store portssvc.PartySvc, ledger portssvc.LedgerService, grouping string, loc *time.Location) {
	h := newPartyHandler(store, ledger, grouping, loc)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
		parties.PUT("/:id", h.updateParty)
		parties.GET("/:id/summary", h.getPartySummary)
		parties.GET("/:id/ledger", h.getPartyLedger)
		parties.GET("/:id/ledger/export", h.exportPartyLedger)
	}
}

func (h *partyHandler) presenter(c *gin.Context) dto.Presenter {
	return dto.NewPresenter(c.Query("lang"), h.grouping, h.loc)
}

// createParty godoc
// @Summary Create or replace a party
// @Description Adds a customer or supplier. Posting an existing id replaces it.
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	party, err := h.store.AddParty(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to create party")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party, h.presenter(c)))
}

// listParties godoc
// @Summary List parties
// @Tags parties
// @Produce  json
// @Success 200 {array} dto.PartyResponse
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	parties := h.store.ListParties(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListPartyResponse(parties, h.presenter(c)))
}

// getParty godoc
// @Summary Get a party by ID
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("party_id", c.Param("id")))

	party, err := h.store.GetParty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party, h.presenter(c)))
}

// updateParty godoc
// @Summary Update a party
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Party details"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("party_id", id))

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, found, err := h.store.UpdateParty(c.Request.Context(), req.ToDomain(id))
	if err != nil {
		respondWithError(c, logger, err, "Failed to update party")
		return
	}
	if !found {
		logger.Warn("Party not found for update")
		c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(updated, h.presenter(c)))
}

// getPartySummary godoc
// @Summary Summarise a party's transactions
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartySummaryResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id}/summary [get]
func (h *partyHandler) getPartySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("party_id", c.Param("id")))

	summary, err := h.store.PartySummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to summarise party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartySummaryResponse(summary, h.presenter(c)))
}

// getPartyLedger godoc
// @Summary Get a party ledger
// @Description Chronological running-balance ledger of a party. Every given filter must match.
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   dateFrom query string false "First day (YYYY-MM-DD)"
// @Param   dateTo query string false "Last day, inclusive (YYYY-MM-DD)"
// @Param   type query string false "all, selling, purchase or expense"
// @Param   search query string false "Case-insensitive description search"
// @Param   lang query string false "Display language (en or np)"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id}/ledger [get]
func (h *partyHandler) getPartyLedger(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("party_id", id))

	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for PartyLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, err := services.ParseLedgerFilter(params.DateFrom, params.DateTo, params.Type, params.Search, h.loc)
	if err != nil {
		respondWithError(c, logger, err, "Invalid ledger filter")
		return
	}

	ledger, err := h.ledger.PartyLedger(c.Request.Context(), id, filter)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger, dto.NewPresenter(params.Lang, h.grouping, h.loc)))
}

// exportPartyLedger godoc
// @Summary Download a party ledger
// @Description Same filters as the ledger endpoint, written as XLSX (default) or CSV
// @Tags parties
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce  text/csv
// @Param   id path string true "Party ID"
// @Param   format query string false "xlsx or csv" default(xlsx)
// @Param   dateFrom query string false "First day (YYYY-MM-DD)"
// @Param   dateTo query string false "Last day, inclusive (YYYY-MM-DD)"
// @Param   type query string false "all, selling, purchase or expense"
// @Param   search query string false "Case-insensitive description search"
// @Param   lang query string false "Header and date language (en or np)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid filter or format"
// @Failure 404 {object} map[string]string "Party not found"
// @Router /parties/{id}/ledger/export [get]
func (h *partyHandler) exportPartyLedger(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("party_id", id))

	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	format, err := export.ParseFormat(params.Format)
	if err != nil {
		respondWithError(c, logger, err, "Invalid export format")
		return
	}
	filter, err := services.ParseLedgerFilter(params.DateFrom, params.DateTo, params.Type, params.Search, h.loc)
	if err != nil {
		respondWithError(c, logger, err, "Invalid ledger filter")
		return
	}

	ledger, err := h.ledger.PartyLedger(c.Request.Context(), id, filter)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build ledger")
		return
	}

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename("ledger_"+ledger.Party.Name)))
	if err := export.WriteLedger(c.Writer, *ledger, format, dto.NewPresenter(params.Lang, h.grouping, h.loc).Lang, h.loc); err != nil {
		// headers may already be sent
		logger.Error("Failed to write ledger export", slog.String("error", err.Error()))
		_ = c.Error(err)
		return
	}
	logger.Info("Ledger exported", slog.String("format", string(format)), slog.Int("entries", len(ledger.Entries)))
}
