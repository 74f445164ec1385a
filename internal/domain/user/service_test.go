package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) (int, error) {
	args := m.Called(ctx, u)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Name:     "Asha Rao",
		Email:    "Asha@Example.com ",
		Phone:    "+91 98200 00000",
		Password: "s3cret",
		UserType: TypeTraveler,
	}
}

func newService(repo Repository) *Service {
	return NewService(repo, NewRequestValidator(), slog.Default())
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Email == "asha@example.com" &&
			u.Type == TypeTraveler &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")) == nil
	})).Return(7, nil)

	id, err := service.Register(context.Background(), validRegister())
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidUserType(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	req := validRegister()
	req.UserType = "Admin"

	_, err := service.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidUserType)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(0, ErrEmailTaken)

	_, err := service.Register(context.Background(), validRegister())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_EdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *RegisterRequest)
		expectError bool
	}{
		{name: "valid", mutate: func(*RegisterRequest) {}},
		{name: "community member", mutate: func(r *RegisterRequest) { r.UserType = TypeCommunity }},
		{name: "empty name", mutate: func(r *RegisterRequest) { r.Name = "   " }, expectError: true},
		{name: "bad email", mutate: func(r *RegisterRequest) { r.Email = "asha" }, expectError: true},
		{name: "empty phone", mutate: func(r *RegisterRequest) { r.Phone = "" }, expectError: true},
		{name: "short password", mutate: func(r *RegisterRequest) { r.Password = "abc" }, expectError: true},
		{name: "password over bcrypt limit", mutate: func(r *RegisterRequest) { r.Password = strings.Repeat("p", 73) }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newService(mockRepo)

			req := validRegister()
			tt.mutate(&req)

			if !tt.expectError {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(1, nil)
			}

			_, err := service.Register(context.Background(), req)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := User{ID: 3, Email: "asha@example.com", Password: string(hash), Type: TypeTraveler}

	mockRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(stored, nil)

	u, err := service.Authenticate(context.Background(), LoginRequest{Email: " ASHA@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, stored, u)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(User{}, ErrNotFound)

	_, err := service.Authenticate(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "x"})
	assert.Equal(t, ErrNotFound, err)
}

func TestService_Authenticate_InvalidPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(User{ID: 1, Password: string(hash)}, nil)

	_, err = service.Authenticate(context.Background(), LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.Equal(t, ErrInvalidAuth, err)
}

func TestService_Authenticate_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(User{}, errors.New("connection refused"))

	_, err := service.Authenticate(context.Background(), LoginRequest{Email: "asha@example.com", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestService_Authenticate_EmptyCredentials(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	_, err := service.Authenticate(context.Background(), LoginRequest{})
	assert.Equal(t, ErrInvalidAuth, err)
	mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestService_Get(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, 5).Return(User{ID: 5, Name: "Ravi"}, nil)
	mockRepo.On("FindByID", mock.Anything, 6).Return(User{}, ErrNotFound)

	u, err := service.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", u.Name)

	_, err = service.Get(context.Background(), 6)
	assert.ErrorIs(t, err, ErrNotFound)
}
