package sos

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"safetrip/internal/domain/lovedone"
	"safetrip/internal/domain/user"
	"safetrip/internal/infrastructure/events"
	"safetrip/internal/infrastructure/geocoding"
	"safetrip/internal/infrastructure/mail"
	"safetrip/internal/metrics"
	"safetrip/internal/validation"
)

type Servicer interface {
	Dispatch(ctx context.Context, userID int, req Request) (Result, error)
}

type UserFinder interface {
	Get(ctx context.Context, id int) (user.User, error)
}

type ContactLister interface {
	ListByUser(ctx context.Context, userID int) ([]lovedone.LovedOne, error)
}

type Service struct {
	users     UserFinder
	contacts  ContactLister
	geocoder  geocoding.ReverseGeocoder
	mailer    mail.Sender
	publisher events.Publisher
	log       *slog.Logger
}

func NewService(
	users UserFinder,
	contacts ContactLister,
	geocoder geocoding.ReverseGeocoder,
	mailer mail.Sender,
	publisher events.Publisher,
	log *slog.Logger,
) *Service {
	return &Service{
		users:     users,
		contacts:  contacts,
		geocoder:  geocoder,
		mailer:    mailer,
		publisher: publisher,
		log:       log.With("component", "sos_service"),
	}
}

// Dispatch mails every emergency contact of the user. It succeeds when at
// least one message was accepted by the relay.
func (s *Service) Dispatch(ctx context.Context, userID int, req Request) (Result, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	contacts, err := s.contacts.ListByUser(ctx, userID)
	if err != nil {
		return Result{}, fmt.Errorf("list contacts: %w", err)
	}
	if len(contacts) == 0 {
		return Result{}, ErrNoContacts
	}

	if req.Latitude == nil || req.Longitude == nil {
		return Result{}, ErrMissingCoordinates
	}
	if err := validation.Struct(req); err != nil {
		return Result{}, ErrInvalidCoordinates
	}
	lat, lng := *req.Latitude, *req.Longitude

	alertID := uuid.NewString()
	log := s.log.With("alert_id", alertID, "user_id", userID)

	place, err := s.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		log.Warn("reverse geocoding failed, sending coordinates only", "error", err)
		place = nil
	}

	data := newMessageData(alertID, u, lat, lng, place)
	html, err := renderHTML(data)
	if err != nil {
		return Result{}, err
	}
	msg := mail.Message{
		Subject:   subject(u.Name),
		Text:      plainBody(data),
		HTML:      html,
		Reference: alertID,
	}

	res := Result{AlertID: alertID, TotalContacts: len(contacts)}
	for _, c := range contacts {
		msg.To = c.Email
		if err := s.mailer.Send(ctx, msg); err != nil {
			res.Failed++
			metrics.SOSEmailsTotal.WithLabelValues("failure").Inc()
			log.Error("failed to send sos email", "to", c.Email, "error", err)
			continue
		}
		res.Successful++
		metrics.SOSEmailsTotal.WithLabelValues("success").Inc()
	}

	if res.Successful == 0 {
		return res, ErrAllFailed
	}

	log.Info("sos dispatched", "sent", res.Successful, "failed", res.Failed)
	s.publish(ctx, userID, lat, lng, res)

	return res, nil
}

func (s *Service) publish(ctx context.Context, userID int, lat, lng float64, res Result) {
	err := s.publisher.Publish(ctx, events.Event{
		ID:         res.AlertID,
		Type:       events.TypeSOSDispatched,
		Key:        strconv.Itoa(userID),
		OccurredAt: time.Now().UTC(),
		Payload: map[string]any{
			"user_id":          userID,
			"latitude":         lat,
			"longitude":        lng,
			"total_contacts":   res.TotalContacts,
			"successful_sends": res.Successful,
			"failed_sends":     res.Failed,
		},
	})
	if err != nil {
		s.log.Warn("failed to publish sos event", "alert_id", res.AlertID, "error", err)
	}
}
