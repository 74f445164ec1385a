package lostfound

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"safetrip/internal/domain/user"
	"safetrip/internal/infrastructure/events"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, item *Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, reportID int) (Item, error) {
	args := m.Called(ctx, reportID)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, item Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, reportID int) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]Item)
	return items, args.Error(1)
}

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) Get(ctx context.Context, id int) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, e events.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockPublisher) Close() error { return nil }

func strPtr(s string) *string { return &s }

func newTestService() (*Service, *MockRepository, *MockUsers, *MockPublisher) {
	repo := new(MockRepository)
	users := new(MockUsers)
	pub := new(MockPublisher)
	return NewService(repo, users, pub, slog.Default()), repo, users, pub
}

func TestService_Add(t *testing.T) {
	service, repo, users, pub := newTestService()
	reported := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

	users.On("Get", mock.Anything, 4).Return(user.User{ID: 4}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*lostfound.Item")).
		Run(func(args mock.Arguments) {
			item := args.Get(1).(*Item)
			item.ReportID = 11
			item.ReportDate = reported
		}).Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.TypeLostFoundReported && e.Key == "11" && e.ID != ""
	})).Return(nil)

	item, err := service.Add(context.Background(), CreateRequest{
		UserID:          4,
		Location:        " Howrah Station ",
		ItemDescription: "Blue backpack",
		Status:          StatusFound,
		DateFound:       strPtr("2026-05-01T18:20:00.000Z"),
	})
	require.NoError(t, err)

	assert.Equal(t, 11, item.ReportID)
	assert.Equal(t, "Howrah Station", item.Location)
	assert.Equal(t, reported, item.ReportDate)
	require.NotNil(t, item.DateFound)
	assert.Equal(t, "2026-05-01", *FormatDate(item.DateFound))

	repo.AssertExpectations(t)
	users.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestService_Add_PublishFailureIgnored(t *testing.T) {
	service, repo, users, pub := newTestService()

	users.On("Get", mock.Anything, 1).Return(user.User{ID: 1}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := service.Add(context.Background(), CreateRequest{UserID: 1, Location: "Pune", ItemDescription: "Wallet", Status: StatusLost})
	assert.NoError(t, err)
}

func TestService_Add_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      CreateRequest
		userErr  error
		wantErr  error
		callUser bool
	}{
		{
			name:    "invalid status",
			req:     CreateRequest{UserID: 1, Location: "Goa", ItemDescription: "Phone", Status: "Stolen"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "missing location",
			req:     CreateRequest{UserID: 1, ItemDescription: "Phone", Status: StatusLost},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad date",
			req:     CreateRequest{UserID: 1, Location: "Goa", ItemDescription: "Phone", Status: StatusFound, DateFound: strPtr("yesterday")},
			wantErr: ErrInvalidDate,
		},
		{
			name:     "unknown user",
			req:      CreateRequest{UserID: 99, Location: "Goa", ItemDescription: "Phone", Status: StatusLost},
			userErr:  user.ErrNotFound,
			wantErr:  user.ErrNotFound,
			callUser: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, users, _ := newTestService()
			if tt.callUser {
				users.On("Get", mock.Anything, tt.req.UserID).Return(user.User{}, tt.userErr)
			}

			_, err := service.Add(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update_PartialFields(t *testing.T) {
	service, repo, _, _ := newTestService()
	existing := Item{ReportID: 3, UserID: 1, Location: "Agra", ItemDescription: "Camera", Status: StatusLost}

	repo.On("Get", mock.Anything, 3).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(item Item) bool {
		return item.Status == StatusRecovered && item.Location == "Agra" && item.ItemDescription == "Camera"
	})).Return(nil)

	status := StatusRecovered
	item, err := service.Update(context.Background(), UpdateRequest{ReportID: 3, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, StatusRecovered, item.Status)
	assert.Equal(t, "Agra", item.Location)

	repo.AssertExpectations(t)
}

func TestService_Update_ClearsDateFound(t *testing.T) {
	service, repo, _, _ := newTestService()
	found := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	repo.On("Get", mock.Anything, 3).Return(Item{ReportID: 3, Status: StatusFound, DateFound: &found}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(item Item) bool { return item.DateFound == nil })).Return(nil)

	item, err := service.Update(context.Background(), UpdateRequest{ReportID: 3, DateFound: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, item.DateFound)
}

func TestService_Update_NotFound(t *testing.T) {
	service, repo, _, _ := newTestService()
	repo.On("Get", mock.Anything, 8).Return(Item{}, ErrNotFound)

	_, err := service.Update(context.Background(), UpdateRequest{ReportID: 8})
	assert.Equal(t, ErrNotFound, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	service, repo, _, _ := newTestService()
	repo.On("Get", mock.Anything, 3).Return(Item{ReportID: 3, Status: StatusLost}, nil)

	status := Status("Gone")
	_, err := service.Update(context.Background(), UpdateRequest{ReportID: 3, Status: &status})
	assert.Equal(t, ErrInvalidStatus, err)
}

func TestService_Update_MissingReportID(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.Update(context.Background(), UpdateRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	service, repo, _, _ := newTestService()

	repo.On("Delete", mock.Anything, 1).Return(nil)
	repo.On("Delete", mock.Anything, 2).Return(ErrNotFound)
	repo.On("Delete", mock.Anything, 3).Return(errors.New("timeout"))

	assert.NoError(t, service.Delete(context.Background(), 1))
	assert.Equal(t, ErrNotFound, service.Delete(context.Background(), 2))
	assert.ErrorContains(t, service.Delete(context.Background(), 3), "timeout")
}

func TestService_List(t *testing.T) {
	service, repo, _, _ := newTestService()
	repo.On("List", mock.Anything).Return(nil, nil)

	items, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

type memRepository struct {
	next  int
	items map[int]Item
}

func (r *memRepository) Create(_ context.Context, item *Item) error {
	r.next++
	item.ReportID = r.next
	item.ReportDate = time.Now().UTC()
	r.items[item.ReportID] = *item
	return nil
}

func (r *memRepository) Get(_ context.Context, id int) (Item, error) {
	item, ok := r.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return item, nil
}

func (r *memRepository) Update(_ context.Context, item Item) error {
	if _, ok := r.items[item.ReportID]; !ok {
		return ErrNotFound
	}
	r.items[item.ReportID] = item
	return nil
}

func (r *memRepository) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memRepository) List(context.Context) ([]Item, error) {
	var out []Item
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

// A report created through Add shows up in List and can be moved to Recovered.
func TestService_RoundTrip(t *testing.T) {
	users := new(MockUsers)
	users.On("Get", mock.Anything, 2).Return(user.User{ID: 2}, nil)
	service := NewService(&memRepository{items: map[int]Item{}}, users, events.Noop{}, slog.Default())
	ctx := context.Background()

	created, err := service.Add(ctx, CreateRequest{UserID: 2, Location: "Delhi", ItemDescription: "Passport", Status: StatusLost})
	require.NoError(t, err)

	items, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])

	status := StatusRecovered
	updated, err := service.Update(ctx, UpdateRequest{ReportID: created.ReportID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, StatusRecovered, updated.Status)
	assert.Equal(t, "Passport", updated.ItemDescription)

	items, err = service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusRecovered, items[0].Status)

	require.NoError(t, service.Delete(ctx, created.ReportID))
	assert.Equal(t, ErrNotFound, service.Delete(ctx, created.ReportID))
}
