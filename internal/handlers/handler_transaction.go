package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/debugger-rana/library-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler exposes the loan ledger: issue, return, fine payment and listings.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	pageSize           int
	now                func() time.Time
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, pageSize int) *transactionHandler {
	return &transactionHandler{transactionService: ts, pageSize: pageSize, now: time.Now}
}

func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, pageSize int) {
	h := newTransactionHandler(ts, pageSize)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.GET("/active", h.listActiveIssues)
		txns.GET("/:id", h.getTransaction)
		txns.POST("/issue", h.issueItem)
		txns.PUT("/:id/return", h.returnItem)
		txns.PUT("/:id/pay-fine", h.payFine)
	}
}

// issueItem godoc
// @Summary Issue an item to a member
// @Description Lends one copy. The due date must fall within 15 days of the issue date (default now).
// @Tags transactions
// @Accept json
// @Produce json
// @Param issue body dto.IssueItemRequest true "Loan details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or loan period"
// @Failure 404 {object} ErrorResponse "Item or member not found"
// @Failure 422 {object} ErrorResponse "No copies available or membership inactive"
// @Failure 500 {object} ErrorResponse "Failed to issue item"
// @Security BearerAuth
// @Router /transactions/issue [post]
func (h *transactionHandler) issueItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IssueItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	issuerID, ok := actorID(c)
	if !ok {
		return
	}

	if req.IssueDate == nil {
		req.IssueDate = dto.NewDate(h.now())
	}
	if err := domain.ValidateLoanPeriod(req.IssueDate.Time, req.DueDate.Time); err != nil {
		handleError(c, err, "Invalid loan period")
		return
	}

	txn, err := h.transactionService.IssueItem(c.Request.Context(), req, issuerID)
	if err != nil {
		handleError(c, err, "Failed to issue item")
		return
	}

	logger.Info("Item issued", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// returnItem godoc
// @Summary Return an issued item
// @Description Closes the loan and computes the fine at 5 per started day late.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param body body dto.ReturnItemRequest false "Return details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Already returned"
// @Failure 500 {object} ErrorResponse "Failed to return item"
// @Security BearerAuth
// @Router /transactions/{id}/return [put]
func (h *transactionHandler) returnItem(c *gin.Context) {
	var req dto.ReturnItemRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request format", err)
			return
		}
	}
	returnerID, ok := actorID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.ReturnItem(c.Request.Context(), c.Param("id"), req, returnerID)
	if err != nil {
		handleError(c, err, "Failed to return item")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// payFine godoc
// @Summary Record fine payment
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param body body dto.PayFineRequest true "Payment flag"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id}/pay-fine [put]
func (h *transactionHandler) payFine(c *gin.Context) {
	var req dto.PayFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	updaterID, ok := actorID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.PayFine(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		handleError(c, err, "Failed to record fine payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first with an opaque nextToken for the following page.
// @Tags transactions
// @Produce json
// @Param status query string false "issued, returned or overdue"
// @Param memberID query string false "Member ID"
// @Param itemID query string false "Item ID"
// @Param limit query int false "Limit" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	params.Limit = pageLimit(c, params.Limit, h.pageSize)

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		handleError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listActiveIssues godoc
// @Summary List open loans
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /transactions/active [get]
func (h *transactionHandler) listActiveIssues(c *gin.Context) {
	txns, err := h.transactionService.ListActiveIssues(c.Request.Context())
	if err != nil {
		handleError(c, err, "Failed to list active issues")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}
