package model

// LoanDateLayout keeps the dd/mm/yyyy presentation format the original data
// files use.
const LoanDateLayout = "02/01/2006"

// Loan records a user borrowing a title (emprestimos.json). Returned flips
// one way; loans are never deleted.
type Loan struct {
	Login    string `json:"usuario"`
	Title    string `json:"titulo"`
	Date     string `json:"data"`
	Returned bool   `json:"entregue"`
}
