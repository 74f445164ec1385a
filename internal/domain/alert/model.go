package alert

import "safetrip/internal/infrastructure/news"

// Analysis is the model's safety reading of the headlines as the model
// returned it. The prompt asks for analysis, alerts and precautions; their
// shapes are not enforced.
type Analysis map[string]any

type Report struct {
	Location string
	News     []news.Entry
	Analysis Analysis
}

func fallbackAnalysis(location string) Analysis {
	return Analysis{
		"analysis":    "Analysis currently unavailable for " + location + ".",
		"alerts":      []string{"No specific alerts at this time."},
		"precautions": []string{"Stay updated with local news."},
	}
}
