package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"natal-api/internal/models"
	"natal-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles balance, readings and payments
type AccountHandler struct {
	ledger   LedgerService
	readings ReadingService
}

// LedgerService interface for dependency injection
type LedgerService interface {
	Summary(ctx context.Context, uid int64) (service.AccountSummary, error)
	CreateInvoice(ctx context.Context, uid int64, code string) (service.Invoice, error)
	PreCheckout(uid int64, payload string) error
	ConfirmPayment(ctx context.Context, uid int64, payload string, amount int) (int, error)
}

// ReadingService interface for dependency injection
type ReadingService interface {
	Deep(ctx context.Context, uid int64, baseText string) (service.Reading, error)
}

// ReadingRequest carries the chart text to expand
type ReadingRequest struct {
	BaseText string `json:"base_text" binding:"required"`
}

// InsufficientBalanceResponse is returned with 402
type InsufficientBalanceResponse struct {
	Error     string `json:"error" example:"insufficient balance"`
	NextPrice int    `json:"next_price" example:"300"`
}

// InvoiceRequest selects a package
type InvoiceRequest struct {
	UserID  int64  `json:"uid" binding:"required"`
	Package string `json:"package" binding:"required" example:"deep1"`
}

// PaymentRequest references an invoice payload
type PaymentRequest struct {
	UserID  int64  `json:"uid" binding:"required"`
	Payload string `json:"payload" binding:"required" example:"deep1_7_1700000000"`
	Amount  int    `json:"amount"`
}

// BalanceResponse is the result of a confirmed payment
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(ledger LedgerService, readings ReadingService) *AccountHandler {
	return &AccountHandler{ledger: ledger, readings: readings}
}

func userID(c *gin.Context) (int64, bool) {
	uid, err := strconv.ParseInt(c.Param("uid"), 10, 64)
	if err != nil {
		badRequest(c, "invalid user id")
		return 0, false
	}
	return uid, true
}

// Account handles GET /accounts/:uid requests
//
//	@Summary	Account summary
//	@Tags		accounts
//	@Produce	json
//	@Param		uid	path		int	true	"User id"
//	@Success	200	{object}	service.AccountSummary
//	@Failure	400	{object}	ErrorResponse
//	@Router		/accounts/{uid} [get]
func (h *AccountHandler) Account(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	sum, err := h.ledger.Summary(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sum)
}

// Reading handles POST /accounts/:uid/readings requests
//
//	@Summary		Extended reading
//	@Description	Charges one reading and expands the chart text. Pending readings are charged.
//	@Tags			accounts
//	@Accept			json
//	@Produce		json
//	@Param			uid		path		int				true	"User id"
//	@Param			request	body		ReadingRequest	true	"Chart text"
//	@Success		200		{object}	service.Reading
//	@Failure		400		{object}	ErrorResponse
//	@Failure		402		{object}	InsufficientBalanceResponse
//	@Router			/accounts/{uid}/readings [post]
func (h *AccountHandler) Reading(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req ReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing required field 'base_text'")
		return
	}

	reading, err := h.readings.Deep(c.Request.Context(), uid, req.BaseText)
	if errors.Is(err, models.ErrInsufficientBalance) {
		c.AbortWithStatusJSON(http.StatusPaymentRequired, InsufficientBalanceResponse{
			Error:     models.ErrInsufficientBalance.Error(),
			NextPrice: reading.Charge.NextPrice,
		})
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

// Invoice handles POST /payments/invoices requests
//
//	@Summary	Create an invoice
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		InvoiceRequest	true	"Package"
//	@Success	201		{object}	service.Invoice
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/payments/invoices [post]
func (h *AccountHandler) Invoice(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing required fields 'uid' and 'package'")
		return
	}

	inv, err := h.ledger.CreateInvoice(c.Request.Context(), req.UserID, req.Package)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inv)
}

// PreCheckout handles POST /payments/precheckout requests
//
//	@Summary	Validate a payment before charging
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		request	body	PaymentRequest	true	"Payload"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/payments/precheckout [post]
func (h *AccountHandler) PreCheckout(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing required fields 'uid' and 'payload'")
		return
	}

	if err := h.ledger.PreCheckout(req.UserID, req.Payload); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Confirm handles POST /payments/confirm requests
//
//	@Summary	Confirm a successful payment
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		PaymentRequest	true	"Payload"
//	@Success	200		{object}	BalanceResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/payments/confirm [post]
func (h *AccountHandler) Confirm(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "missing required fields 'uid' and 'payload'")
		return
	}

	balance, err := h.ledger.ConfirmPayment(c.Request.Context(), req.UserID, req.Payload, req.Amount)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}
