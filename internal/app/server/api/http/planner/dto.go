package planner

import "safetrip/internal/app/server/api/http/request"

type tripInput struct {
	Body struct {
		Days     request.Text `json:"days,omitempty"`
		Place    string       `json:"place,omitempty"`
		Budget   request.Text `json:"budget,omitempty"`
		Activity string       `json:"activity,omitempty"`
		_        struct{}     `json:"-" additionalProperties:"true"`
	} `nameHint:"PlannerTripRequest"`
}

type tripOutput struct {
	Body TripResponse
}

type TripResponse struct {
	Status   string `json:"status"`
	TripPlan any    `json:"trip_plan" doc:"Parsed plan, or the model's raw text when it is not JSON"`
}

type routesInput struct {
	Body struct {
		Source      string   `json:"source,omitempty"`
		Destination string   `json:"destination,omitempty"`
		_           struct{} `json:"-" additionalProperties:"true"`
	} `nameHint:"PlannerRoutesRequest"`
}

type routesOutput struct {
	Body RoutesResponse
}

type RoutesResponse struct {
	Status string `json:"status"`
	Routes []any  `json:"routes"`
}

type suggestionsInput struct {
	Body struct {
		Interests string       `json:"interests,omitempty"`
		Budget    request.Text `json:"budget,omitempty"`
		Duration  request.Text `json:"duration,omitempty"`
		Travelers request.Text `json:"travelers,omitempty"`
		_         struct{}     `json:"-" additionalProperties:"true"`
	} `nameHint:"PlannerSuggestionsRequest"`
}

type suggestionsOutput struct {
	Body SuggestionsResponse
}

type SuggestionsResponse struct {
	Status      string `json:"status"`
	Suggestions []any  `json:"suggestions"`
}

type translateInput struct {
	Body struct {
		SourceText string   `json:"sourceText,omitempty"`
		SourceLang string   `json:"sourceLang,omitempty"`
		TargetLang string   `json:"targetLang,omitempty"`
		_          struct{} `json:"-" additionalProperties:"true"`
	} `nameHint:"PlannerTranslateRequest"`
}

type translateOutput struct {
	Body TranslateResponse
}

type TranslateResponse struct {
	Status         string `json:"status"`
	TranslatedText string `json:"translatedText"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
}
