package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type payeeQuery struct {
	AccountNumber string `form:"accountNumber" binding:"required,numeric,min=4,max=16"`
}

// GET /v1/accounts/:id/balance
func (s *Server) accountBalance(c *gin.Context) {
	id, ok := s.accountParam(c)
	if !ok {
		return
	}
	resp, err := s.deps.Accounts.Balance(c.Request.Context(), userID(c), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /v1/payees?accountNumber=
func (s *Server) searchPayees(c *gin.Context) {
	var q payeeQuery
	if !s.bindQuery(c, &q) {
		return
	}
	resp, err := s.deps.Accounts.SearchPayees(c.Request.Context(), userID(c), q.AccountNumber)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
