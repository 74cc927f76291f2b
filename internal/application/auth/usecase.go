package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
	"github.com/mercadito-app/mercadito-api/pkg/jwt"
)

// TokenConfig parámetros de emisión de tokens JWT.
type TokenConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutos
}

// UseCase implementa registro y login de usuarios.
type UseCase struct {
	userRepo repository.UserRepository
	token    TokenConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, token TokenConfig) *UseCase {
	return &UseCase{userRepo: userRepo, token: token}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleVendedor, entity.RoleComprador:
		return true
	}
	return false
}

// Register da de alta un usuario. El rol por defecto es comprador; el registro
// público no permite crear admins.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleComprador
	}
	if !validRole(role) || role == entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		StoreID:      in.StoreID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica las credenciales y emite un token JWT con userID, storeID y rol.
// Devuelve ErrUnauthorized tanto para email inexistente como para contraseña
// incorrecta, sin distinguir entre ambos.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.token.Secret, user.ID, user.StoreID, user.Role, uc.token.Issuer, uc.token.Expiration)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		StoreID:   u.StoreID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
