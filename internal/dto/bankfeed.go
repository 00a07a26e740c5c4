package dto

// BankFeedLinkRequest starts a bank connection.
type BankFeedLinkRequest struct {
	InstitutionID string `json:"institutionId" validate:"required"`
	RedirectURL   string `json:"redirectUrl" validate:"required,url"`
}

type BankFeedLinkResponse struct {
	ConnectionID     string `json:"connectionId"`
	AuthorisationURL string `json:"authorisationUrl"`
}

type BankFeedImportRequest struct {
	ConnectionID string `json:"connectionId" validate:"required"`
}

// Bank Account Data API payloads

type BankConnectionRequest struct {
	InstitutionID string `json:"institution_id"`
	Redirect      string `json:"redirect"`
}

type BankConnection struct {
	ID               string   `json:"id"`
	Status           string   `json:"status,omitempty"`
	AuthorisationURL string   `json:"authorisation_url"`
	Accounts         []string `json:"accounts,omitempty"`
}

type BankAccountsResponse struct {
	Accounts []BankAccount `json:"accounts"`
}

type BankAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type BankTransactionsResponse struct {
	Transactions BankTransactions `json:"transactions"`
}

type BankTransactions struct {
	Booked  []BankTransaction `json:"booked"`
	Pending []BankTransaction `json:"pending"`
}

type BankTransaction struct {
	TransactionID                     string     `json:"transactionId"`
	BookingDate                       string     `json:"bookingDate"`
	ValueDate                         string     `json:"valueDate"`
	TransactionAmount                 BankAmount `json:"transactionAmount"`
	RemittanceInformationUnstructured string     `json:"remittanceInformationUnstructured"`
	CreditorName                      string     `json:"creditorName"`
	DebtorName                        string     `json:"debtorName"`
	ProprietaryBankTransactionCode    string     `json:"proprietaryBankTransactionCode"`
}

type BankAmount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// BankErrorResponse is the error body of the Bank Account Data API.
type BankErrorResponse struct {
	Summary    string `json:"summary"`
	Detail     string `json:"detail"`
	StatusCode int    `json:"status_code"`
}
