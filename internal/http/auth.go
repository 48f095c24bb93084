package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"banking-backoffice/internal/banking"
)

type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Phone        string `json:"phone" binding:"required,numeric"`
	EmailAddress string `json:"emailAddress" binding:"omitempty,email"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	DOB          string `json:"dob" binding:"required"`
	PanNumber    string `json:"panNumber"`
	PinCode      string `json:"pinCode" binding:"omitempty,numeric"`
}

// POST /v1/auth/login
func (s *Server) authLogin(c *gin.Context) {
	var input loginRequest
	if !s.bindJSON(c, nil, &input) {
		return
	}

	resp, err := s.deps.Auth.Login(c.Request.Context(), banking.Credentials{
		UserName: input.UserName,
		Password: input.Password,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	if !resp.OK() {
		resp.StatusCode = http.StatusUnauthorized
		c.JSON(http.StatusUnauthorized, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /v1/auth/register
func (s *Server) authRegister(c *gin.Context) {
	var input registerRequest
	if !s.bindJSON(c, s.registerSchema, &input) {
		return
	}

	resp, err := s.deps.Registrar.Register(c.Request.Context(), banking.Registration{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		EmailAddress: input.EmailAddress,
		Address1:     input.Address1,
		Address2:     input.Address2,
		DOB:          input.DOB,
		PanNumber:    input.PanNumber,
		PinCode:      input.PinCode,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	resp.StatusCode = http.StatusCreated
	c.JSON(http.StatusCreated, resp)
}
