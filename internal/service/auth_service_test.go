package service

import (
	"testing"
	"time"

	"traveldiary-be/internal/entities"
	"traveldiary-be/internal/jwt"
	"traveldiary-be/internal/models"
	"traveldiary-be/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users  map[string]*entities.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User), nextID: 1}
}

func (r *fakeUserRepo) Create(name, username, passwordHash string) (*entities.User, error) {
	if _, exists := r.users[username]; exists {
		return nil, repository.ErrDuplicateUsername
	}
	user := &entities.User{
		ID:           r.nextID,
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.nextID++
	r.users[username] = user
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entities.User, error) {
	user, exists := r.users[username]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(id int) (*entities.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newAuthFixture() (AuthService, *fakeUserRepo, *jwt.JWTService) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, jwtService), repo, jwtService
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	err := svc.Register(&models.RegisterRequest{Name: "Alice", Username: "alice", Password: "hunter2"})
	require.NoError(t, err)

	user := repo.users["alice"]
	require.NotNil(t, user)
	require.NotEqual(t, "hunter2", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthFixture()

	require.NoError(t, svc.Register(&models.RegisterRequest{Name: "Alice", Username: "alice", Password: "hunter2"}))

	err := svc.Register(&models.RegisterRequest{Name: "Impostor", Username: "alice", Password: "other"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(&models.LoginRequest{Username: "nobody", Password: "x"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	require.NoError(t, svc.Register(&models.RegisterRequest{Name: "Alice", Username: "alice", Password: "hunter2"}))

	_, err := svc.Login(&models.LoginRequest{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidPassword)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc, repo, jwtService := newAuthFixture()

	require.NoError(t, svc.Register(&models.RegisterRequest{Name: "Alice", Username: "alice", Password: "hunter2"}))

	resp, err := svc.Login(&models.LoginRequest{Username: "alice", Password: "hunter2"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, repo.users["alice"].ID, claims.UserID)
	require.Equal(t, "alice", claims.Username)
}
