package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"banking-backoffice/internal/banking"
)

type transferRequest struct {
	AccountID          uint            `json:"accountId" binding:"required"`
	PayeeAccountNumber string          `json:"payeeAccountNumber" binding:"required,numeric,len=16"`
	TransferAmount     decimal.Decimal `json:"transferAmount"`
	Remarks            string          `json:"remarks" binding:"max=255"`
}

type monthlyQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=1"`
}

// POST /v1/transfers
// An insufficient balance comes back as 200 with status FAILURE.
func (s *Server) createTransfer(c *gin.Context) {
	var input transferRequest
	if !s.bindJSON(c, s.transferSchema, &input) {
		return
	}

	resp, err := s.deps.Transfers.Transfer(c.Request.Context(), banking.TransferRequest{
		UserID:             userID(c),
		AccountID:          input.AccountID,
		PayeeAccountNumber: input.PayeeAccountNumber,
		Amount:             input.TransferAmount,
		Remarks:            input.Remarks,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /v1/accounts/:id/transactions/recent
func (s *Server) recentTransactions(c *gin.Context) {
	id, ok := s.accountParam(c)
	if !ok {
		return
	}
	resp, err := s.deps.Ledger.Recent(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /v1/accounts/:id/transactions/monthly?month=&year=
func (s *Server) monthlyTransactions(c *gin.Context) {
	id, ok := s.accountParam(c)
	if !ok {
		return
	}
	var q monthlyQuery
	if !s.bindQuery(c, &q) {
		return
	}
	resp, err := s.deps.Ledger.Monthly(c.Request.Context(), userID(c), id, q.Month, q.Year)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /v1/accounts/:id/transactions/mortgage
func (s *Server) mortgageTransactions(c *gin.Context) {
	id, ok := s.accountParam(c)
	if !ok {
		return
	}
	resp, err := s.deps.Ledger.Mortgage(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) accountParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		s.badRequest(c, []FieldError{{Field: "id", Message: "must be a positive integer"}})
		return 0, false
	}
	return uint(id), true
}
