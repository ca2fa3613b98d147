package service

import (
	"testing"

	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, testConfig())

	users.On("FindByEmail", "a@b.co").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.MatchedBy(func(u *model.User) bool {
		if u.Role != model.RoleCandidate || u.Password == "secret123" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*model.User).ID = 1
	}).Return(nil)

	resp, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	users.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, testConfig())

	users.On("FindByEmail", "a@b.co").Return(&model.User{ID: 1, Email: "a@b.co"}, nil)

	_, err := svc.Register(dto.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secret123"})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, testConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	users.On("FindByEmail", "a@b.co").Return(&model.User{ID: 1, Email: "a@b.co", Password: string(hash)}, nil)

	_, err := svc.Login(dto.LoginRequest{Email: "a@b.co", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, testConfig())

	users.On("FindByEmail", "ghost@b.co").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(dto.LoginRequest{Email: "ghost@b.co", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_IssuesParseableToken(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, testConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("FindByEmail", "admin@b.co").Return(&model.User{
		ID: 9, Name: "Admin", Email: "admin@b.co", Password: string(hash), Role: model.RoleAdmin,
	}, nil)

	resp, err := svc.Login(dto.LoginRequest{Email: "admin@b.co", Password: "secret123"})

	require.NoError(t, err)
	claims, err := ParseToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(&model.User{ID: 1, Role: model.RoleAdmin}, "secret-a")
	require.NoError(t, err)

	_, err = ParseToken(token, "secret-b")

	assert.Error(t, err)
}
