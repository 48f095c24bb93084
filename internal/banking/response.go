package banking

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

const (
	MsgLoginSuccess        = "Login successful"
	MsgLoginFailure        = "Invalid username or password"
	MsgRegisterSuccess     = "User registered successfully"
	MsgTransferSuccess     = "Fund transferred successfully"
	MsgInsufficientBalance = "Insufficient balance, the minimum balance must be maintained"
	MsgRecordsFound        = "Records found"
	MsgNoRecords           = "No records found"
	MsgBalanceFound        = "Balance retrieved"
)

// Response is the envelope every operation returns. Operation results embed it
// so the fields sit at the top level of the JSON body.
type Response struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func success(msg string) Response {
	return Response{Status: StatusSuccess, Message: msg, StatusCode: 200}
}

func failure(msg string) Response {
	return Response{Status: StatusFailure, Message: msg}
}

// OK reports whether the envelope carries the success token.
func (r Response) OK() bool { return r.Status == StatusSuccess }

type LoginResponse struct {
	Response
	AccountID     uint   `json:"accountId,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountType   string `json:"accountType,omitempty"`
	UserName      string `json:"userName,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Token         string `json:"token,omitempty"`
}

// RegisterResponse carries the generated login name and the plaintext password.
// The password is never stored or returned again.
type RegisterResponse struct {
	Response
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type TransferResponse struct {
	Response
	TransactionID string `json:"transactionId,omitempty"`
}

// TransactionSummary is a ledger row seen from the queried account.
// Balance is only set by the mortgage report.
type TransactionSummary struct {
	PayeeName         string           `json:"payeeName"`
	Remarks           string           `json:"remarks"`
	AccountNumber     string           `json:"accountNumber"`
	TransactionType   string           `json:"transactionType"`
	TransactionDate   time.Time        `json:"transactionDate"`
	TransactionAmount decimal.Decimal  `json:"transactionAmount"`
	Balance           *decimal.Decimal `json:"balance,omitempty"`
}

type LedgerResponse struct {
	Response
	Transactions []TransactionSummary `json:"transactions"`
}

type BalanceResponse struct {
	Response
	AccountID      uint            `json:"accountId"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	Balance        decimal.Decimal `json:"balance"`
	MinimumBalance decimal.Decimal `json:"minimumBalance"`
}

type Payee struct {
	AccountID     uint   `json:"accountId"`
	AccountType   string `json:"accountType"`
	AccountNumber string `json:"accountNumber"`
	PayeeName     string `json:"payeeName"`
}

type PayeeResponse struct {
	Response
	Payees []Payee `json:"payees"`
}
