package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Flow is the direction of money for a statement row.
type Flow string

const (
	FlowDebit   Flow = "Debit"
	FlowCredit  Flow = "Credit"
	FlowUnknown Flow = ""
)

// Statement row types with a known flow.
const (
	TypeCardPayment = "CARD_PAYMENT"
	TypeATM         = "ATM"
	TypeExchange    = "EXCHANGE"
	TypeTransfer    = "TRANSFER"
	TypeTopUp       = "TOPUP"
	TypeCardRefund  = "CARD_REFUND"
	TypeReward      = "REWARD"
)

var typeFlows = map[string]Flow{
	TypeCardPayment: FlowDebit,
	TypeATM:         FlowDebit,
	TypeExchange:    FlowDebit,
	TypeTransfer:    FlowCredit,
	TypeTopUp:       FlowCredit,
	TypeCardRefund:  FlowCredit,
	TypeReward:      FlowCredit,
}

// FlowForType looks up the flow of a statement type. Unknown types return
// FlowUnknown and false.
func FlowForType(t string) (Flow, bool) {
	flow, ok := typeFlows[strings.TrimSpace(t)]
	return flow, ok
}

// KnownTypes lists the types with a defined flow.
func KnownTypes() []string {
	return []string{TypeCardPayment, TypeATM, TypeExchange, TypeTransfer, TypeTopUp, TypeCardRefund, TypeReward}
}

func (f Flow) String() string {
	if f == FlowUnknown {
		return "Unknown"
	}
	return string(f)
}

func (f Flow) IsKnown() bool {
	return f == FlowDebit || f == FlowCredit
}

// Transaction is one statement row. It lives in the session only.
type Transaction struct {
	Row           int             `json:"row"`
	CompletedDate time.Time       `json:"completed_date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Flow          Flow            `json:"flow"`
	Category      string          `json:"category"`
}

// SignedAmount is the amount as it moves the balance: debits negative,
// credits positive, unknown flows zero.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Flow {
	case FlowDebit:
		return t.Amount.Abs().Neg()
	case FlowCredit:
		return t.Amount.Abs()
	default:
		return decimal.Zero
	}
}

func (t Transaction) IsUncategorised() bool {
	return t.Category == "" || t.Category == UncategorisedCategory
}
