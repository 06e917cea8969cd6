package user

import (
	"context"
	"testing"

	"gamelounge/models"
	"gamelounge/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestRegister(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), "new@example.com", "secret123", "Faith Wanjiru", "+254700000002")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new@example.com", resp.User["email"])
	assert.Equal(t, "Faith Wanjiru", resp.User["name"])

	// The stored hash must verify against the plaintext password.
	created := repo.Calls[1].Arguments.Get(1).(*models.User)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))

	// The token must carry the new user's identity.
	claims, err := utils.ExtractUserClaims(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "new@example.com", claims.Email)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := &DefaultUserService{Repo: new(MockUserRepository)}

	_, err := svc.Register(context.Background(), "new@example.com", "", "Faith", "+254700000002")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "taken@example.com").Return(&models.User{ID: "user-1"}, nil)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(context.Background(), "taken@example.com", "secret123", "Faith", "+254700000002")
	assert.ErrorIs(t, err, ErrUserExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "brian@example.com").Return(&models.User{
		ID:           "user-1",
		Email:        "brian@example.com",
		Name:         "Brian Kiprotich",
		PasswordHash: string(hashed),
	}, nil)
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Login(context.Background(), "brian@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User["id"])
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "brian@example.com").Return(&models.User{
		ID:           "user-1",
		Email:        "brian@example.com",
		PasswordHash: string(hashed),
	}, nil)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Login(context.Background(), "brian@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
