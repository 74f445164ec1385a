package planner

type TripRequest struct {
	Days     string `json:"days" validate:"required"`
	Place    string `json:"place" validate:"required"`
	Budget   string `json:"budget" validate:"required"`
	Activity string `json:"activity" validate:"required"`
}

type RoutesRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// SuggestionsRequest fields fall back to defaults when empty.
type SuggestionsRequest struct {
	Interests string `json:"interests"`
	Budget    string `json:"budget"`
	Duration  string `json:"duration"`
	Travelers string `json:"travelers"`
}

type TranslateRequest struct {
	SourceText string `json:"sourceText"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

type Translation struct {
	Text       string
	SourceLang string
	TargetLang string
}
