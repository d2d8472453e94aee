package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dm-chat/internal/domain"
)

type mockUserRepo struct {
	nextID     int64
	byID       map[int64]domain.User
	byUsername map[string]int64
	err        error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:       make(map[int64]domain.User),
		byUsername: make(map[string]int64),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	user.ID = m.nextID
	m.byID[user.ID] = user
	m.byUsername[user.Username] = user.ID
	return user.ID, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	user, ok := m.byID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	id, ok := m.byUsername[username]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func seedUser(t *testing.T, repo *mockUserRepo, username, password string) int64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	id, err := repo.Create(context.Background(), domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return id
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newMockUserRepo()
	id := seedUser(t, repo, "alice", "pw1")
	svc := NewAuthService(zap.NewNop(), repo)

	user, err := svc.Authenticate(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != id || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "alice", "pw1")
	svc := NewAuthService(zap.NewNop(), repo)

	_, err := svc.Authenticate(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	repo := newMockUserRepo()
	seedUser(t, repo, "alice", "pw1")
	svc := NewAuthService(zap.NewNop(), repo)

	// Mismo error para usuario inexistente y password incorrecto.
	_, err := svc.Authenticate(context.Background(), "bob", "pw1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_BlankCredentials(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(zap.NewNop(), repo)

	if _, err := svc.Authenticate(context.Background(), "", "pw1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for blank username, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for blank password, got %v", err)
	}
}

func TestAuthService_Authenticate_RepoFailure(t *testing.T) {
	repo := newMockUserRepo()
	repo.err = errors.New("connection refused")
	svc := NewAuthService(zap.NewNop(), repo)

	_, err := svc.Authenticate(context.Background(), "alice", "pw1")
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("storage failure must not map to ErrInvalidCredentials")
	}
	if err == nil {
		t.Fatalf("expected error")
	}
}
