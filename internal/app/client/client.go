package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"golang.org/x/exp/slog"

	"safetrip/internal/app/client/config"
)

var ErrNotLoggedIn = errors.New("not logged in, run `safetrip login` first")

// Cache is the offline store the App falls back to.
type Cache interface {
	Save(ctx context.Context, userID int, dataType string, payload []byte) error
	Load(ctx context.Context, userID int, dataType string) (CacheEntry, error)
	Clear(ctx context.Context, userID int) error
	Close() error
}

// Result is a server reply, or the cached copy when the server could not be reached.
type Result struct {
	Payload []byte
	Entry   *CacheEntry // set when Payload came from the offline cache
}

// Stale reports whether the payload came from the offline cache.
func (r Result) Stale() bool { return r.Entry != nil }

// Decode unmarshals the payload into v.
func (r Result) Decode(v any) error {
	return json.Unmarshal(r.Payload, v)
}

type App struct {
	config  *config.Config
	log     *slog.Logger
	http    *httpClient
	cache   Cache
	session *Session
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	cache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, log, NewHTTPClient(cfg, log), cache), nil
}

func newApp(cfg *config.Config, log *slog.Logger, http *httpClient, cache Cache) *App {
	app := &App{
		config: cfg,
		log:    log,
		http:   http,
		cache:  cache,
	}

	session, err := loadSession(cfg.SessionPath)
	if err != nil {
		log.Warn("could not read saved session", "error", err)
	}
	if session != nil {
		app.session = session
		http.SetToken(session.Token)
	}
	return app
}

func (a *App) Close() error {
	return a.cache.Close()
}

// Session returns the logged in user or ErrNotLoggedIn.
func (a *App) Session() (*Session, error) {
	if a.session == nil {
		return nil, ErrNotLoggedIn
	}
	return a.session, nil
}

func (a *App) HealthCheck(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, req RegisterRequest) (int, error) {
	return a.http.Register(ctx, req)
}

// Login stores the session on disk so later commands are authenticated.
func (a *App) Login(ctx context.Context, email, password string) (*Session, error) {
	session, err := a.http.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := saveSession(a.config.SessionPath, &session); err != nil {
		return nil, err
	}
	a.session = &session
	a.http.SetToken(session.Token)
	return a.session, nil
}

// Logout revokes the token when the server is reachable and always forgets
// it locally.
func (a *App) Logout(ctx context.Context) error {
	if a.session == nil {
		return ErrNotLoggedIn
	}
	if err := a.http.Logout(ctx); err != nil {
		a.log.Warn("server logout failed", "error", err)
	}
	a.session = nil
	a.http.SetToken("")
	if err := os.Remove(a.config.SessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (a *App) LostFoundItems(ctx context.Context) (Result, error) {
	return a.cached(ctx, CacheLostFound, a.http.ListLostFound)
}

func (a *App) ReportItem(ctx context.Context, item NewLostFoundItem) (LostFoundItem, error) {
	s, err := a.Session()
	if err != nil {
		return LostFoundItem{}, err
	}
	item.UserID = s.UserID
	return a.http.AddLostFound(ctx, item)
}

func (a *App) UpdateItem(ctx context.Context, upd LostFoundUpdate) (LostFoundItem, error) {
	return a.http.UpdateLostFound(ctx, upd)
}

func (a *App) DeleteItem(ctx context.Context, reportID int) error {
	return a.http.DeleteLostFound(ctx, reportID)
}

func (a *App) LovedOnes(ctx context.Context) (Result, error) {
	s, err := a.Session()
	if err != nil {
		return Result{}, err
	}
	return a.cached(ctx, CacheLovedOnes, func(ctx context.Context) ([]byte, error) {
		return a.http.ListLovedOnes(ctx, s.UserID)
	})
}

func (a *App) AddLovedOne(ctx context.Context, name, email string) (Result, error) {
	s, err := a.Session()
	if err != nil {
		return Result{}, err
	}
	payload, err := a.http.AddLovedOne(ctx, s.UserID, name, email)
	if err != nil {
		return Result{}, err
	}
	a.store(ctx, CacheLovedOnes, payload)
	return Result{Payload: payload}, nil
}

func (a *App) SendSOS(ctx context.Context, lat, lng float64) (SOSResult, error) {
	s, err := a.Session()
	if err != nil {
		return SOSResult{}, err
	}
	return a.http.SendSOS(ctx, s.UserID, lat, lng)
}

func (a *App) GenerateTrip(ctx context.Context, req TripRequest) (Result, error) {
	return a.cached(ctx, CacheTripPlan, func(ctx context.Context) ([]byte, error) {
		return a.http.GenerateTrip(ctx, req)
	})
}

func (a *App) TransportRoutes(ctx context.Context, source, destination string) (Result, error) {
	return a.cached(ctx, CacheRoutes, func(ctx context.Context) ([]byte, error) {
		return a.http.TransportRoutes(ctx, source, destination)
	})
}

func (a *App) Suggestions(ctx context.Context, req SuggestionsRequest) (Result, error) {
	return a.cached(ctx, CacheSuggestions, func(ctx context.Context) ([]byte, error) {
		return a.http.Suggestions(ctx, req)
	})
}

func (a *App) Translate(ctx context.Context, text, from, to string) (Translation, error) {
	return a.http.Translate(ctx, text, from, to)
}

func (a *App) LocationAlerts(ctx context.Context, location string) (Result, error) {
	return a.cached(ctx, CacheAlerts, func(ctx context.Context) ([]byte, error) {
		return a.http.LocationAlerts(ctx, location)
	})
}

func (a *App) Expenses(ctx context.Context) (Result, error) {
	if _, err := a.Session(); err != nil {
		return Result{}, err
	}
	return a.cached(ctx, CacheExpenses, a.http.ListExpenses)
}

func (a *App) AddExpense(ctx context.Context, e NewExpense) (Expense, error) {
	if _, err := a.Session(); err != nil {
		return Expense{}, err
	}
	return a.http.AddExpense(ctx, e)
}

func (a *App) DeleteExpense(ctx context.Context, id int) error {
	if _, err := a.Session(); err != nil {
		return err
	}
	return a.http.DeleteExpense(ctx, id)
}

func (a *App) ExpenseSummary(ctx context.Context) ([]ExpenseSummary, error) {
	if _, err := a.Session(); err != nil {
		return nil, err
	}
	return a.http.ExpenseSummary(ctx)
}

// Offline returns the cached payload for dataType without contacting the server.
func (a *App) Offline(ctx context.Context, dataType string) (CacheEntry, error) {
	return a.cache.Load(ctx, a.cacheUser(), dataType)
}

// cached calls fetch and keeps its reply. When the server is unreachable the
// last stored reply is returned instead.
func (a *App) cached(ctx context.Context, dataType string, fetch func(context.Context) ([]byte, error)) (Result, error) {
	payload, err := fetch(ctx)
	if err == nil {
		a.store(ctx, dataType, payload)
		return Result{Payload: payload}, nil
	}
	if !errors.Is(err, ErrUnreachable) {
		return Result{}, err
	}

	entry, cacheErr := a.cache.Load(ctx, a.cacheUser(), dataType)
	if cacheErr != nil {
		a.log.Debug("no offline copy", "type", dataType, "error", cacheErr)
		return Result{}, err
	}
	a.log.Debug("serving offline copy", "type", dataType, "updated_at", entry.UpdatedAt)
	return Result{Payload: entry.Payload, Entry: &entry}, nil
}

func (a *App) store(ctx context.Context, dataType string, payload []byte) {
	if err := a.cache.Save(ctx, a.cacheUser(), dataType, payload); err != nil {
		a.log.Warn("could not update offline cache", "type", dataType, "error", err)
	}
}

// cacheUser keys anonymous data (lost and found, AI answers before login) under 0.
func (a *App) cacheUser() int {
	if a.session == nil {
		return 0
	}
	return a.session.UserID
}

func loadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

func saveSession(path string, s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
