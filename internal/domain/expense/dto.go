package expense

type AddRequest struct {
	Title    string   `json:"title" validate:"required,max=120"`
	Category Category `json:"category"`
	// Amount is a decimal string such as "1250.50".
	Amount   string `json:"amount" validate:"required"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
	// SpentOn is YYYY-MM-DD; empty means today.
	SpentOn string `json:"spent_on" validate:"omitempty,datetime=2006-01-02"`
}
