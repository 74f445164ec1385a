package sos

type dispatchInput struct {
	UserID int `path:"user_id"`
	Body   struct {
		Latitude  *float64 `json:"latitude,omitempty" nullable:"true"`
		Longitude *float64 `json:"longitude,omitempty" nullable:"true"`
		_         struct{} `json:"-" additionalProperties:"true"`
	} `nameHint:"SosDispatchRequest"`
}

type dispatchOutput struct {
	Body DispatchResponse
}

type DispatchResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	AlertID         string `json:"alert_id" format:"uuid"`
	TotalContacts   int    `json:"total_contacts"`
	SuccessfulSends int    `json:"successful_sends"`
	FailedSends     int    `json:"failed_sends"`
}
