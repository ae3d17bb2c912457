package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/bookkeeper/internal/apperrors"
	"github.com/SscSPs/bookkeeper/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeper/internal/core/ports/services"
	"github.com/SscSPs/bookkeeper/internal/dto"
	"github.com/SscSPs/bookkeeper/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	bookkeeping portssvc.LedgerReaderSvc
}

func registerLedgerRoutes(rg *gin.RouterGroup, svc portssvc.LedgerReaderSvc) {
	h := &ledgerHandler{bookkeeping: svc}

	rg.GET("/ledger/:accountName", h.getLedger)
	rg.GET("/accounts", h.listAccounts)
	rg.GET("/accounts/:accountName/type", h.getAccountType)
}

// getLedger returns the running-balance ledger of one account.
// Unknown accounts give an empty ledger with status 200.
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountName := c.Param("accountName")

	entries, err := h.bookkeeping.ViewLedger(c.Request.Context(), accountName)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(accountName, entries))
}

func (h *ledgerHandler) listAccounts(c *gin.Context) {
	known := domain.KnownAccounts()
	resp := make([]dto.AccountTypeResponse, len(known))
	for i, k := range known {
		resp[i] = dto.ToAccountTypeResponse(k)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ledgerHandler) getAccountType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("accountName")

	accountType, ok := domain.ClassifyAccount(name)
	if !ok {
		respondWithError(c, logger, fmt.Errorf("%w: account %q has no classification", apperrors.ErrNotFound, name), "Failed to classify account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountTypeResponse(domain.AccountClassification{Name: name, Type: accountType}))
}
