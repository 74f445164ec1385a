package sos

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"safetrip/internal/domain/lovedone"
	"safetrip/internal/domain/user"
	"safetrip/internal/infrastructure/events"
	"safetrip/internal/infrastructure/geocoding"
	"safetrip/internal/infrastructure/mail"
)

type MockUsers struct{ mock.Mock }

func (m *MockUsers) Get(ctx context.Context, id int) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockContacts struct{ mock.Mock }

func (m *MockContacts) ListByUser(ctx context.Context, userID int) ([]lovedone.LovedOne, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]lovedone.LovedOne)
	return out, args.Error(1)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Reverse(ctx context.Context, lat, lng float64) (*geocoding.Place, error) {
	args := m.Called(ctx, lat, lng)
	place, _ := args.Get(0).(*geocoding.Place)
	return place, args.Error(1)
}

type MockSender struct{ mock.Mock }

func (m *MockSender) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, e events.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockPublisher) Close() error { return nil }

type fixture struct {
	users     *MockUsers
	contacts  *MockContacts
	geocoder  *MockGeocoder
	mailer    *MockSender
	publisher *MockPublisher
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		users:     new(MockUsers),
		contacts:  new(MockContacts),
		geocoder:  new(MockGeocoder),
		mailer:    new(MockSender),
		publisher: new(MockPublisher),
	}
	f.service = NewService(f.users, f.contacts, f.geocoder, f.mailer, f.publisher, slog.Default())
	return f
}

func coords(lat, lng float64) Request { return Request{Latitude: &lat, Longitude: &lng} }

var traveller = user.User{ID: 1, Name: "Kavya", Phone: "+91 90000 00001", Email: "kavya@example.com"}

func threeContacts() []lovedone.LovedOne {
	return []lovedone.LovedOne{
		{ID: 1, UserID: 1, Name: "Mom", Email: "mom@example.com"},
		{ID: 2, UserID: 1, Name: "Dad", Email: "dad@example.com"},
		{ID: 3, UserID: 1, Name: "Sis", Email: "sis@example.com"},
	}
}

func TestService_Dispatch_AllDelivered(t *testing.T) {
	f := newFixture()
	f.users.On("Get", mock.Anything, 1).Return(traveller, nil)
	f.contacts.On("ListByUser", mock.Anything, 1).Return(threeContacts(), nil)
	f.geocoder.On("Reverse", mock.Anything, 12.9716, 77.5946).
		Return(&geocoding.Place{Address: "MG Road, Bengaluru", Nearby: "Shanthala Nagar"}, nil)

	var sent []mail.Message
	f.mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(1).(mail.Message))
	}).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.TypeSOSDispatched && e.Key == "1"
	})).Return(nil)

	res, err := f.service.Dispatch(context.Background(), 1, coords(12.9716, 77.5946))
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalContacts)
	assert.Equal(t, 3, res.Successful)
	assert.Equal(t, 0, res.Failed)
	assert.NotEmpty(t, res.AlertID)

	require.Len(t, sent, 3)
	assert.Equal(t, []string{"mom@example.com", "dad@example.com", "sis@example.com"},
		[]string{sent[0].To, sent[1].To, sent[2].To})

	msg := sent[0]
	assert.Equal(t, "❗ EMERGENCY SOS Alert from Kavya", msg.Subject)
	assert.Equal(t, res.AlertID, msg.Reference)
	assert.Contains(t, msg.Text, "Location: MG Road, Bengaluru")
	assert.Contains(t, msg.Text, "Maps Link: https://www.google.com/maps?q=12.9716,77.5946")
	assert.Contains(t, msg.Text, "Contact: +91 90000 00001 | kavya@example.com")
	assert.Contains(t, msg.HTML, "Near: Shanthala Nagar")
	assert.Contains(t, msg.HTML, `href="https://www.google.com/maps?q=12.9716,77.5946"`)

	f.publisher.AssertExpectations(t)
}

func TestService_Dispatch_PartialFailure(t *testing.T) {
	f := newFixture()
	f.users.On("Get", mock.Anything, 1).Return(traveller, nil)
	f.contacts.On("ListByUser", mock.Anything, 1).Return(threeContacts(), nil)
	f.geocoder.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("quota"))
	f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m mail.Message) bool { return m.To == "dad@example.com" })).
		Return(errors.New("mailbox full"))
	f.mailer.On("Send", mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	res, err := f.service.Dispatch(context.Background(), 1, coords(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, 1, res.Failed)
}

func TestService_Dispatch_AllFailed(t *testing.T) {
	f := newFixture()
	f.users.On("Get", mock.Anything, 1).Return(traveller, nil)
	f.contacts.On("ListByUser", mock.Anything, 1).Return(threeContacts(), nil)
	f.geocoder.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return(nil, geocoding.ErrNoResults)
	f.mailer.On("Send", mock.Anything, mock.Anything).Return(mail.ErrNotConfigured)

	res, err := f.service.Dispatch(context.Background(), 1, coords(28.6139, 77.209))
	assert.Equal(t, ErrAllFailed, err)
	assert.Equal(t, 3, res.Failed)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestService_Dispatch_NoGeocodeUsesCoordinates(t *testing.T) {
	f := newFixture()
	f.users.On("Get", mock.Anything, 1).Return(traveller, nil)
	f.contacts.On("ListByUser", mock.Anything, 1).Return(threeContacts()[:1], nil)
	f.geocoder.On("Reverse", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	var msg mail.Message
	f.mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		msg = args.Get(1).(mail.Message)
	}).Return(nil)

	_, err := f.service.Dispatch(context.Background(), 1, coords(28.6139, 77.209))
	require.NoError(t, err)
	assert.Contains(t, msg.Text, "Location: 28.6139, 77.209")
	assert.True(t, strings.Contains(msg.HTML, "28.6139, 77.209"))
}

func TestService_Dispatch_Preconditions(t *testing.T) {
	lat := 10.0

	tests := []struct {
		name     string
		userErr  error
		contacts []lovedone.LovedOne
		req      Request
		wantErr  error
	}{
		{name: "unknown user", userErr: user.ErrNotFound, req: coords(1, 1), wantErr: user.ErrNotFound},
		{name: "no contacts checked before coordinates", req: Request{}, wantErr: ErrNoContacts},
		{name: "missing longitude", contacts: threeContacts(), req: Request{Latitude: &lat}, wantErr: ErrMissingCoordinates},
		{name: "out of range", contacts: threeContacts(), req: coords(91, 10), wantErr: ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.users.On("Get", mock.Anything, 1).Return(traveller, tt.userErr)
			f.contacts.On("ListByUser", mock.Anything, 1).Return(tt.contacts, nil).Maybe()

			_, err := f.service.Dispatch(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestMapsLink(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps?q=19.076,72.8777", MapsLink(19.076, 72.8777))
	assert.Equal(t, "https://www.google.com/maps?q=-33.8688,151.2093", MapsLink(-33.8688, 151.2093))
}
