package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/bookkeeper/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeper/internal/core/ports/services"
	"github.com/SscSPs/bookkeeper/internal/dto"
	"github.com/SscSPs/bookkeeper/internal/middleware"
	"github.com/SscSPs/bookkeeper/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for recording and listing transactions.
type transactionHandler struct {
	bookkeeping portssvc.BookkeepingSvcFacade
}

func newTransactionHandler(svc portssvc.BookkeepingSvcFacade) *transactionHandler {
	return &transactionHandler{bookkeeping: svc}
}

// registerTransactionRoutes registers the journal routes.
func registerTransactionRoutes(rg *gin.RouterGroup, svc portssvc.BookkeepingSvcFacade) {
	h := newTransactionHandler(svc)

	rg.POST("/transactions", h.createTransaction)
	rg.GET("/journal", h.listJournal)
}

// createTransaction records one balanced transaction.
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := req.ToDomain()
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}

	stored, err := h.bookkeeping.AddTransaction(c.Request.Context(), txn)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", stored.ID()))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*stored))
}

// listJournal returns all transactions, or only those touching ?account=.
// ?limit= and ?pageToken= page through the result in recorded order.
func (h *transactionHandler) listJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account := c.Query("account")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit: " + raw})
			return
		}
		limit = n
	}

	var (
		txns []domain.Transaction
		err  error
	)
	if account == "" {
		txns, err = h.bookkeeping.ListJournal(c.Request.Context())
	} else {
		txns, err = h.bookkeeping.ListJournalByAccount(c.Request.Context(), account)
	}
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journal")
		return
	}

	page, next, err := pagination.Page(txns, limit, c.Query("pageToken"))
	if err != nil {
		logger.Warn("Invalid page token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := dto.ToJournalResponse(page)
	resp.NextPageToken = next
	c.JSON(http.StatusOK, resp)
}
