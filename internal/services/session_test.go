package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/kvstore"
	"github.com/dmitrijs2005/storefront/internal/models"
)

func loadAccounts(t *testing.T, store kvstore.Store) []models.StoredAccount {
	t.Helper()
	var accounts []models.StoredAccount
	raw := rawKey(t, store, KeyAccounts)
	if raw == nil {
		return nil
	}
	require.NoError(t, json.Unmarshal(raw, &accounts))
	return accounts
}

func TestSignup_ActivatesIdentityAndPersists(t *testing.T) {
	store := kvstore.NewMemoryStore()
	rec := &recorder{}
	s := newSession(t, store, WithNotifier(rec), WithIDGenerator(sequentialIDs()))

	res, err := s.Signup(context.Background(), "Ana", "ana@x.com", "pw1")
	require.NoError(t, err)
	require.True(t, res.OK)

	want := models.Identity{ID: "user-0001", Name: "Ana", Email: "ana@x.com"}
	assert.Equal(t, want, *res.Identity)
	assert.Equal(t, want, *s.Current())
	assert.Equal(t, StateAuthenticated, s.State())

	assert.JSONEq(t, `{"id":"user-0001","name":"Ana","email":"ana@x.com"}`, string(rawKey(t, store, KeyCurrentUser)))
	assert.Equal(t, []models.StoredAccount{{ID: "user-0001", Name: "Ana", Email: "ana@x.com", Password: "pw1"}}, loadAccounts(t, store))
	assert.Equal(t, toast{"Signup successful", "Welcome, Ana!", false}, rec.last())
}

func TestSignup_DuplicateEmailRejected(t *testing.T) {
	store := kvstore.NewMemoryStore()
	rec := &recorder{}
	s := newSession(t, store, WithNotifier(rec))
	first := signup(t, s, "Ana", "ana@x.com", "pw1")
	before := rawKey(t, store, KeyAccounts)

	res, err := s.Signup(context.Background(), "Other", "ana@x.com", "pw2")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "Email already in use", res.Message)
	assert.Nil(t, res.Identity)

	assert.Equal(t, before, rawKey(t, store, KeyAccounts))
	assert.Equal(t, first, *s.Current(), "a failed signup leaves the session alone")
	assert.Equal(t, toast{"Signup failed", "Email already in use", true}, rec.last())
}

func TestSignup_EmailComparisonIsCaseSensitive(t *testing.T) {
	store := kvstore.NewMemoryStore()
	s := newSession(t, store)
	signup(t, s, "Ana", "ana@x.com", "pw1")
	signup(t, s, "Ana Upper", "Ana@x.com", "pw2")

	assert.Len(t, loadAccounts(t, store), 2)
}

func TestSignup_MissingCredentials(t *testing.T) {
	store := kvstore.NewMemoryStore()
	s := newSession(t, store)

	res, err := s.Signup(context.Background(), "Ana", "", "pw")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Nil(t, rawKey(t, store, KeyAccounts))
}

func TestSignup_AtomicOnWriteFailure(t *testing.T) {
	store := newFlakyStore()
	store.failUpdate = true
	s := newSession(t, store)

	_, err := s.Signup(context.Background(), "Ana", "ana@x.com", "pw1")
	require.ErrorIs(t, err, errDiskFull)

	assert.Nil(t, s.Current())
	assert.Nil(t, rawKey(t, store, KeyAccounts))
	assert.Nil(t, rawKey(t, store, KeyCurrentUser))
}

func TestSignup_MalformedAccountsTreatedAsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), KeyAccounts, []byte(`{"not":"a list"}`)))
	s := newSession(t, store)

	signup(t, s, "Ana", "ana@x.com", "pw1")
	assert.Len(t, loadAccounts(t, store), 1)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		ok       bool
	}{
		{"correct", "ana@x.com", "pw1", true},
		{"wrong password", "ana@x.com", "pw2", false},
		{"unknown email", "bob@x.com", "pw1", false},
		{"email case differs", "ANA@x.com", "pw1", false},
		{"empty password", "ana@x.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kvstore.NewMemoryStore()
			rec := &recorder{}
			s := newSession(t, store, WithNotifier(rec))
			ana := signup(t, s, "Ana", "ana@x.com", "pw1")
			require.NoError(t, s.Logout(context.Background()))

			res, err := s.Login(context.Background(), tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, res.OK)

			if !tt.ok {
				assert.Equal(t, "Invalid email or password", res.Message)
				assert.Nil(t, s.Current())
				assert.Nil(t, rawKey(t, store, KeyCurrentUser))
				assert.Equal(t, toast{"Login failed", "Invalid email or password", true}, rec.last())
				return
			}
			assert.Equal(t, ana, *res.Identity)
			assert.Equal(t, ana, *s.Current())
			assert.NotContains(t, string(rawKey(t, store, KeyCurrentUser)), "password")
			assert.Equal(t, toast{"Login successful", "Welcome back, Ana!", false}, rec.last())
		})
	}
}

func TestLogin_FailureKeepsCurrentIdentity(t *testing.T) {
	s := newSession(t, kvstore.NewMemoryStore())
	ana := signup(t, s, "Ana", "ana@x.com", "pw1")

	res, err := s.Login(context.Background(), "ana@x.com", "nope")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, ana, *s.Current())
}

func TestLogin_SkipsAccountsWithoutID(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), KeyAccounts,
		[]byte(`[{"name":"Ghost","email":"g@x.com","password":"pw"}]`)))
	s := newSession(t, store)

	res, err := s.Login(context.Background(), "g@x.com", "pw")
	require.NoError(t, err)
	assert.False(t, res.OK)
}

func TestLogout_KeepsAccounts(t *testing.T) {
	store := kvstore.NewMemoryStore()
	rec := &recorder{}
	s := newSession(t, store, WithNotifier(rec))
	signup(t, s, "Ana", "ana@x.com", "pw1")
	signup(t, s, "Bob", "bob@x.com", "pw2")
	before := rawKey(t, store, KeyAccounts)

	require.NoError(t, s.Logout(context.Background()))

	assert.Nil(t, s.Current())
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Nil(t, rawKey(t, store, KeyCurrentUser))
	assert.Equal(t, before, rawKey(t, store, KeyAccounts))
	assert.Equal(t, "Logged out", rec.last().Title)
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *models.Identity
	}{
		{"absent", "", nil},
		{"valid", `{"id":"user-1","name":"Ana","email":"ana@x.com"}`, &models.Identity{ID: "user-1", Name: "Ana", Email: "ana@x.com"}},
		{"corrupt json", `{"id":`, nil},
		{"missing id", `{"name":"Ana"}`, nil},
		{"wrong shape", `["user-1"]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kvstore.NewMemoryStore()
			if tt.raw != "" {
				require.NoError(t, store.Set(context.Background(), KeyCurrentUser, []byte(tt.raw)))
			}
			s, err := NewSessionStore(store)
			require.NoError(t, err)

			require.NoError(t, s.Restore(context.Background()))
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestSubscribe_ReplaysAndFollowsTransitions(t *testing.T) {
	s := newSession(t, kvstore.NewMemoryStore())
	var seen []string
	err := s.Subscribe(context.Background(), func(_ context.Context, id *models.Identity) error {
		if id == nil {
			seen = append(seen, "none")
		} else {
			seen = append(seen, id.Name)
		}
		return nil
	})
	require.NoError(t, err)

	signup(t, s, "Ana", "ana@x.com", "pw1")
	require.NoError(t, s.Logout(context.Background()))
	_, err = s.Login(context.Background(), "ana@x.com", "bad")
	require.NoError(t, err)
	_, err = s.Login(context.Background(), "ana@x.com", "pw1")
	require.NoError(t, err)

	assert.Equal(t, []string{"none", "Ana", "none", "Ana"}, seen)
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	s := newSession(t, kvstore.NewMemoryStore())
	signup(t, s, "Ana", "ana@x.com", "pw1")

	s.Current().Name = "Mallory"
	assert.Equal(t, "Ana", s.Current().Name)
}

func TestLatency_HonorsContext(t *testing.T) {
	s := newSession(t, kvstore.NewMemoryStore(), WithLatency(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Login(ctx, "ana@x.com", "pw1")
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Signup(ctx, "Ana", "ana@x.com", "pw1")
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s.Current())
}

func TestLatency_Delays(t *testing.T) {
	s := newSession(t, kvstore.NewMemoryStore(), WithLatency(20*time.Millisecond))

	start := time.Now()
	signup(t, s, "Ana", "ana@x.com", "pw1")
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestPasswordScheme_Hashed(t *testing.T) {
	for _, scheme := range []string{PasswordBcrypt, PasswordArgon2} {
		t.Run(scheme, func(t *testing.T) {
			store := kvstore.NewMemoryStore()
			s := newSession(t, store, WithPasswordScheme(scheme))
			signup(t, s, "Ana", "ana@x.com", "pw1")
			require.NoError(t, s.Logout(context.Background()))

			accounts := loadAccounts(t, store)
			require.Len(t, accounts, 1)
			assert.NotEqual(t, "pw1", accounts[0].Password)

			res, err := s.Login(context.Background(), "ana@x.com", "pw1")
			require.NoError(t, err)
			assert.True(t, res.OK)

			res, err = s.Login(context.Background(), "ana@x.com", "pw2")
			require.NoError(t, err)
			assert.False(t, res.OK)
		})
	}
}

func TestPasswordScheme_Argon2RejectsPlainStoredPassword(t *testing.T) {
	store := kvstore.NewMemoryStore()
	signup(t, newSession(t, store), "Ana", "ana@x.com", "pw1")

	s := newSession(t, store, WithPasswordScheme(PasswordArgon2))
	require.NoError(t, s.Logout(context.Background()))
	res, err := s.Login(context.Background(), "ana@x.com", "pw1")
	require.NoError(t, err)
	assert.False(t, res.OK)
}

func TestPasswordScheme_Unknown(t *testing.T) {
	_, err := NewSessionStore(kvstore.NewMemoryStore(), WithPasswordScheme("rot13"))
	require.ErrorIs(t, err, common.ErrUnknownPasswordScheme)
}

func TestSession_SurvivesRestartOnSQLite(t *testing.T) {
	ctx := context.Background()
	store, err := kvstore.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	first := newSession(t, store)
	ana := signup(t, first, "Ana", "ana@x.com", "pw1")

	second := newSession(t, store)
	assert.Equal(t, ana, *second.Current())
}
