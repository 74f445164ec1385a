package alert

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"safetrip/internal/infrastructure/llm"
	"safetrip/internal/infrastructure/news"
)

const systemPrompt = `You are a travel safety expert. Analyze the news and provide safety recommendations.
Return response in valid JSON format with fields: analysis (string), alerts (array), precautions (array).`

const userPrompt = `Based on these recent news headlines from %s:
%s

Provide:
1. A brief safety analysis
2. Key alerts or warnings
3. Recommended precautions`

type Servicer interface {
	ForLocation(ctx context.Context, location string) (Report, error)
}

type Service struct {
	news news.Fetcher
	llm  llm.Completer
	log  *slog.Logger
}

func NewService(fetcher news.Fetcher, completer llm.Completer, log *slog.Logger) *Service {
	return &Service{
		news: fetcher,
		llm:  completer,
		log:  log.With("component", "alert_service"),
	}
}

// ForLocation gathers recent headlines and asks the model to assess them.
// An answer that is not a JSON object degrades to a canned analysis;
// transport failures of either upstream fail the whole call.
func (s *Service) ForLocation(ctx context.Context, location string) (Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Report{}, ErrLocationRequired
	}

	entries, err := s.news.Headlines(ctx, location)
	if err != nil {
		s.log.Error("news fetch failed", "location", location, "error", err)
		return Report{}, ErrProcessing
	}
	if entries == nil {
		entries = []news.Entry{}
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}

	reply, err := s.llm.Complete(ctx, systemPrompt, fmt.Sprintf(userPrompt, location, strings.Join(titles, "\n")))
	if err != nil {
		s.log.Error("safety analysis failed", "location", location, "error", err)
		return Report{}, ErrProcessing
	}

	analysis, ok := llm.Decode(reply).(map[string]any)
	if !ok {
		s.log.Warn("safety analysis is not a JSON object, using fallback", "location", location)
		analysis = fallbackAnalysis(location)
	}

	return Report{Location: location, News: entries, Analysis: analysis}, nil
}
