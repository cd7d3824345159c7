package services

import (
  "context"
  "crypto/sha256"
  "encoding/hex"
  "errors"
  "fmt"
  "strings"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"

  "github.com/yungbote/lumin-backend/internal/logger"
  "github.com/yungbote/lumin-backend/internal/requestdata"
  "github.com/yungbote/lumin-backend/internal/store"
  "github.com/yungbote/lumin-backend/internal/types"
)

var (
  ErrMissingFields      = errors.New("username and password are required")
  ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
  RegisterUser(ctx context.Context, username, password string) (string, error)
  LoginUser(ctx context.Context, username, password string) (string, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type JWTClaims struct {
  ID       string `json:"id"`
  Username string `json:"username"`
  jwt.RegisteredClaims
}

type authService struct {
  log          *logger.Logger
  store        store.Store
  jwtSecretKey string
  accessTTL    time.Duration
}

func NewAuthService(baseLog *logger.Logger, st store.Store, jwtSecretKey string, accessTTL time.Duration) AuthService {
  return &authService{
    log:          baseLog.With("service", "AuthService"),
    store:        st,
    jwtSecretKey: jwtSecretKey,
    accessTTL:    accessTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, username, password string) (string, error) {
  username = strings.TrimSpace(username)
  if username == "" || password == "" {
    return "", ErrMissingFields
  }
  user := &types.User{
    ID:           uuid.New(),
    Username:     username,
    PasswordHash: hashPassword(password),
    CreatedAt:    time.Now().UTC(),
  }
  if err := as.store.CreateUser(ctx, user); err != nil {
    return "", err
  }
  as.log.Info("Registered user", "username", username, "user_id", user.ID)
  return as.signToken(user)
}

func (as *authService) LoginUser(ctx context.Context, username, password string) (string, error) {
  username = strings.TrimSpace(username)
  user, err := as.store.GetUserByUsername(ctx, username)
  if errors.Is(err, store.ErrUserNotFound) {
    return "", ErrInvalidCredentials
  }
  if err != nil {
    return "", fmt.Errorf("load user: %w", err)
  }
  if user.PasswordHash != hashPassword(password) {
    return "", ErrInvalidCredentials
  }
  return as.signToken(user)
}

func (as *authService) signToken(user *types.User) (string, error) {
  claims := JWTClaims{
    ID:       user.ID.String(),
    Username: user.Username,
    RegisteredClaims: jwt.RegisteredClaims{
      IssuedAt: jwt.NewNumericDate(time.Now()),
    },
  }
  if as.accessTTL != 0 {
    claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(as.accessTTL))
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return ctx, fmt.Errorf("Failed to parse token: %w", err)
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, fmt.Errorf("Invalid or expired JWT token")
  }
  userID, err := uuid.Parse(claims.ID)
  if err != nil {
    return ctx, fmt.Errorf("Invalid user id in token: %w", err)
  }
  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      userID,
    Username:    claims.Username,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

// hashPassword mirrors the stored credential format: hex-encoded SHA-256.
func hashPassword(password string) string {
  sum := sha256.Sum256([]byte(password))
  return hex.EncodeToString(sum[:])
}
