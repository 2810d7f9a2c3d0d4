package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nevoyage/internal/domain/entity"
	"nevoyage/internal/domain/repository"
	"nevoyage/pkg/errors"
	"nevoyage/pkg/utils"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtSecret string, jwtExpirySeconds int64) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: time.Duration(jwtExpirySeconds) * time.Second,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// Login exchanges credentials for a signed token. Unknown email and wrong
// password return the same error so accounts can't be enumerated.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, errors.Unauthorized("Invalid email or password", nil)
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, errors.Internal("Failed to issue token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (uc *AuthUseCase) issueToken(user *entity.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID.Hex(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(uc.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.jwtSecret))
}
