package services

import (
  "context"
  "testing"
  "time"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/requestdata"
  "github.com/yungbote/lumin-backend/internal/store"
  "github.com/yungbote/lumin-backend/internal/types"
)

// userStore is an in-memory store.Store for auth tests.
type userStore struct {
  memStore
  users map[string]*types.User
}

func newUserStore() *userStore {
  return &userStore{users: map[string]*types.User{}}
}

func (s *userStore) CreateUser(ctx context.Context, user *types.User) error {
  if _, ok := s.users[user.Username]; ok {
    return store.ErrUserExists
  }
  s.users[user.Username] = user
  return nil
}

func (s *userStore) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
  u, ok := s.users[username]
  if !ok {
    return nil, store.ErrUserNotFound
  }
  return u, nil
}

func newTestAuthService(t *testing.T, st store.Store, ttl time.Duration) AuthService {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("logger.New: %v", err)
  }
  return NewAuthService(log, st, "test-secret", ttl)
}

func TestRegisterThenLogin(t *testing.T) {
  ctx := context.Background()
  svc := newTestAuthService(t, newUserStore(), 0)

  regToken, err := svc.RegisterUser(ctx, "alice", "pw1")
  if err != nil {
    t.Fatalf("RegisterUser: %v", err)
  }
  if regToken == "" {
    t.Fatalf("register returned empty token")
  }

  loginToken, err := svc.LoginUser(ctx, "alice", "pw1")
  if err != nil {
    t.Fatalf("LoginUser: %v", err)
  }

  ctx2, err := svc.SetContextFromToken(ctx, loginToken)
  if err != nil {
    t.Fatalf("SetContextFromToken: %v", err)
  }
  rd := requestdata.GetRequestData(ctx2)
  if rd == nil || rd.Username != "alice" {
    t.Fatalf("request data = %+v, want alice", rd)
  }
}

func TestRegisterValidation(t *testing.T) {
  ctx := context.Background()
  st := newUserStore()
  svc := newTestAuthService(t, st, 0)

  cases := []struct {
    name     string
    username string
    password string
    wantErr  error
  }{
    {name: "missing_username", username: "", password: "pw", wantErr: ErrMissingFields},
    {name: "missing_password", username: "alice", password: "", wantErr: ErrMissingFields},
    {name: "whitespace_username", username: "   ", password: "pw", wantErr: ErrMissingFields},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if _, err := svc.RegisterUser(ctx, tc.username, tc.password); err != tc.wantErr {
        t.Fatalf("RegisterUser = %v, want %v", err, tc.wantErr)
      }
    })
  }

  if _, err := svc.RegisterUser(ctx, "alice", "pw1"); err != nil {
    t.Fatalf("RegisterUser: %v", err)
  }
  if _, err := svc.RegisterUser(ctx, "alice", "pw2"); err != store.ErrUserExists {
    t.Fatalf("duplicate RegisterUser = %v, want ErrUserExists", err)
  }
}

func TestLoginRejectsBadCredentials(t *testing.T) {
  ctx := context.Background()
  svc := newTestAuthService(t, newUserStore(), 0)
  if _, err := svc.RegisterUser(ctx, "alice", "pw1"); err != nil {
    t.Fatalf("RegisterUser: %v", err)
  }

  if _, err := svc.LoginUser(ctx, "alice", "wrong"); err != ErrInvalidCredentials {
    t.Fatalf("LoginUser wrong password = %v, want ErrInvalidCredentials", err)
  }
  if _, err := svc.LoginUser(ctx, "nobody", "pw1"); err != ErrInvalidCredentials {
    t.Fatalf("LoginUser unknown user = %v, want ErrInvalidCredentials", err)
  }
}

func TestTokenVerification(t *testing.T) {
  ctx := context.Background()
  st := newUserStore()
  svc := newTestAuthService(t, st, 0)
  token, err := svc.RegisterUser(ctx, "alice", "pw1")
  if err != nil {
    t.Fatalf("RegisterUser: %v", err)
  }

  if _, err := svc.SetContextFromToken(ctx, "not-a-token"); err == nil {
    t.Fatalf("garbage token verified")
  }

  other := newTestAuthService(t, st, 0).(*authService)
  other.jwtSecretKey = "different-secret"
  if _, err := other.SetContextFromToken(ctx, token); err == nil {
    t.Fatalf("token signed with another secret verified")
  }
}

func TestExpiredTokenRejected(t *testing.T) {
  ctx := context.Background()
  svc := newTestAuthService(t, newUserStore(), -time.Minute)
  token, err := svc.RegisterUser(ctx, "alice", "pw1")
  if err != nil {
    t.Fatalf("RegisterUser: %v", err)
  }
  if _, err := svc.SetContextFromToken(ctx, token); err == nil {
    t.Fatalf("expired token verified")
  }
}

func TestHashPasswordIsDeterministicSHA256(t *testing.T) {
  // Known vector: sha256("pw1")
  if got := hashPassword("pw1"); got != hashPassword("pw1") {
    t.Fatalf("hash not deterministic")
  }
  if len(hashPassword("pw1")) != 64 {
    t.Fatalf("hash length = %d, want 64 hex chars", len(hashPassword("pw1")))
  }
  if hashPassword("pw1") == hashPassword("pw2") {
    t.Fatalf("distinct passwords collided")
  }
}
