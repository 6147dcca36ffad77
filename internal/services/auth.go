package services

import (
  "context"
  "fmt"
  "time"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/repos"
  "github.com/neuroscale/neuroscale-site/internal/session"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type AuthService interface {
  Login(ctx context.Context, email, password string) (string, *types.User, error)
  ParseToken(tokenString string) (*session.Session, error)
  BootstrapAdmin(ctx context.Context, email, password, name string) error
}

type authService struct {
  log          *logger.Logger
  userRepo     repos.UserRepo
  jwtSecretKey string
  accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, userRepo repos.UserRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    log:          serviceLog,
    userRepo:     userRepo,
    jwtSecretKey: jwtSecretKey,
    accessTTL:    accessTTL,
  }
}

func (as *authService) Login(ctx context.Context, email, password string) (string, *types.User, error) {
  if email == "" || password == "" {
    return "", nil, fmt.Errorf("Email and password are required")
  }
  user, err := as.userRepo.GetByEmail(ctx, nil, email)
  if err != nil {
    return "", nil, fmt.Errorf("Error retrieving user by email: %w", err)
  }
  if user == nil {
    return "", nil, fmt.Errorf("Invalid email or password")
  }
  if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
    return "", nil, fmt.Errorf("Invalid email or password")
  }

  now := time.Now()
  claims := jwt.MapClaims{
    "sub":   user.ID.String(),
    "email": user.Email,
    "iat":   now.Unix(),
    "exp":   now.Add(as.accessTTL).Unix(),
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    return "", nil, fmt.Errorf("Failed to sign access token: %w", err)
  }
  return signed, user, nil
}

func (as *authService) ParseToken(tokenString string) (*session.Session, error) {
  token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("Unexpected signing method: %v", t.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil || !token.Valid {
    return nil, fmt.Errorf("Invalid token")
  }
  claims, ok := token.Claims.(jwt.MapClaims)
  if !ok {
    return nil, fmt.Errorf("Invalid token claims")
  }
  sub, _ := claims["sub"].(string)
  userID, err := uuid.Parse(sub)
  if err != nil {
    return nil, fmt.Errorf("Invalid subject claim")
  }
  email, _ := claims["email"].(string)
  return &session.Session{UserID: userID, Email: email}, nil
}

// BootstrapAdmin creates the first admin from the environment when the user
// table is empty, so a fresh deployment can log in without manual SQL.
func (as *authService) BootstrapAdmin(ctx context.Context, email, password, name string) error {
  if email == "" || password == "" {
    return nil
  }
  count, err := as.userRepo.Count(ctx, nil)
  if err != nil {
    return fmt.Errorf("Failed to count users: %w", err)
  }
  if count > 0 {
    return nil
  }
  hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
  if err != nil {
    return fmt.Errorf("Failed to hash bootstrap password: %w", err)
  }
  if name == "" {
    name = "Admin"
  }
  _, err = as.userRepo.Create(ctx, nil, &types.User{
    Name:     name,
    Email:    email,
    Password: string(hashed),
  })
  if err != nil {
    return fmt.Errorf("Failed to create bootstrap admin: %w", err)
  }
  as.log.Info("Bootstrap admin created", "email", email)
  return nil
}
