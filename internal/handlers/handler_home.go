package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description Reports that the API is up and how many records the store holds.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(store portssvc.SnapshotSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := store.Snapshot(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"message":       "Pasale ledger API v1",
			"transactions":  len(s.Transactions),
			"parties":       len(s.Parties),
			"expenses":      len(s.Expenses),
			"notifications": len(s.Notifications),
		})
	}
}
