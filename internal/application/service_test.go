package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahadian/member-portal/internal/domain/entity"
	"github.com/rahadian/member-portal/internal/domain/repository"
	"github.com/rahadian/member-portal/internal/session"
	"github.com/rahadian/member-portal/pkg/helpers"
)

type fakeRepo struct {
	users     []*entity.User
	createErr error
}

func (f *fakeRepo) Create(_ context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo) FindAllByEmail(_ context.Context, email string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateRoleByName(_ context.Context, name string, role entity.Role) error {
	found := false
	for _, u := range f.users {
		if u.Name == name {
			u.Role = role
			found = true
		}
	}
	if !found {
		return repository.ErrNotFound
	}
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]*entity.User, error) {
	return f.users, nil
}

type fakeStore struct {
	records map[string]*session.Record
	ttls    map[string]time.Duration
	putErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]*session.Record{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Get(_ context.Context, id string) (*session.Record, error) {
	return f.records[id], nil
}

func (f *fakeStore) Put(_ context.Context, id string, rec *session.Record, ttl time.Duration) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.records[id] = rec
	f.ttls[id] = ttl
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(repo *fakeRepo, store *fakeStore) *Service {
	return NewService(repo, store, quietLogger(), 24*time.Hour)
}

func seedUser(t *testing.T, repo *fakeRepo, name, email, password string, role entity.Role) {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	repo.users = append(repo.users, &entity.User{Name: name, Email: email, Password: hash, Role: role})
}

func TestSignUpCreatesUserAndSession(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStore()
	svc := newTestService(repo, store)

	sid, err := svc.SignUp(context.Background(), "alice", "a@b.com", "pw12345")
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	require.Len(t, repo.users, 1)
	u := repo.users[0]
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEqual(t, "pw12345", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "pw12345"))

	rec := store.records[sid]
	require.NotNil(t, rec)
	assert.True(t, rec.HasIdentity())
	assert.Equal(t, "alice", rec.Name)
	// Signup never verified a password, so the session carries an
	// identity but is not marked authenticated.
	assert.False(t, rec.Authenticated)
	assert.Equal(t, 24*time.Hour, store.ttls[sid])
}

func TestSignUpDuplicateEmail(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStore()
	svc := newTestService(repo, store)
	seedUser(t, repo, "alice", "a@b.com", "pw12345", entity.RoleUser)

	sid, err := svc.SignUp(context.Background(), "bob", "a@b.com", "other123")
	require.ErrorIs(t, err, ErrDuplicateUser)
	assert.Empty(t, sid)
	assert.Len(t, repo.users, 1)
	assert.Empty(t, store.records)
}

func TestSignUpInsertFailureCreatesNoSession(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("insert failed")}
	store := newFakeStore()
	svc := newTestService(repo, store)

	_, err := svc.SignUp(context.Background(), "alice", "a@b.com", "pw12345")
	require.Error(t, err)
	assert.Empty(t, store.records)
}

func TestLoginSuccess(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStore()
	svc := newTestService(repo, store)
	seedUser(t, repo, "alice", "a@b.com", "pw12345", entity.RoleAdmin)

	sid, err := svc.Login(context.Background(), "a@b.com", "pw12345")
	require.NoError(t, err)

	rec := store.records[sid]
	require.NotNil(t, rec)
	assert.True(t, rec.Authenticated)
	assert.Equal(t, "alice", rec.Name)
	assert.Equal(t, entity.RoleAdmin, rec.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), rec.ExpiresAt, time.Minute)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStore()
	svc := newTestService(repo, store)
	seedUser(t, repo, "alice", "a@b.com", "pw12345", entity.RoleUser)

	_, err := svc.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Empty(t, store.records)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStore()
	svc := newTestService(repo, store)

	_, err := svc.Login(context.Background(), "nobody@b.com", "pw12345")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLoginAmbiguousEmailFailsLikeUnknown(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStore()
	svc := newTestService(repo, store)
	seedUser(t, repo, "alice", "a@b.com", "pw12345", entity.RoleUser)
	seedUser(t, repo, "alice2", "a@b.com", "pw12345", entity.RoleUser)

	_, err := svc.Login(context.Background(), "a@b.com", "pw12345")
	// Same externally-visible error as a missing record; nothing leaks
	// about which case occurred.
	require.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Empty(t, store.records)
}

func TestPromoteThenLoginCarriesAdminRole(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStore()
	svc := newTestService(repo, store)
	seedUser(t, repo, "alice", "a@b.com", "pw12345", entity.RoleUser)

	require.NoError(t, svc.SetRole(context.Background(), "alice", entity.RoleAdmin))

	sid, err := svc.Login(context.Background(), "a@b.com", "pw12345")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, store.records[sid].Role)
}

func TestSetRoleUnknownName(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, newFakeStore())

	err := svc.SetRole(context.Background(), "ghost", entity.RoleAdmin)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLogoutDeletesSession(t *testing.T) {
	repo := &fakeRepo{}
	store := newFakeStore()
	svc := newTestService(repo, store)
	seedUser(t, repo, "alice", "a@b.com", "pw12345", entity.RoleUser)

	sid, err := svc.Login(context.Background(), "a@b.com", "pw12345")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sid))
	assert.Nil(t, store.records[sid])

	// Missing session is not an error.
	require.NoError(t, svc.Logout(context.Background(), ""))
}
