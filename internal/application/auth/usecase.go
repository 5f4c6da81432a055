package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	"github.com/jhoicas/Mercado-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// OTPConfig parámetros del código de un solo uso.
type OTPConfig struct {
	Length      int
	TTLMinutes  int
	MaxAttempts int
}

// AuthUseCase casos de uso de autenticación por teléfono + OTP.
// El código nunca se persiste en claro: solo su hash bcrypt.
type AuthUseCase struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	sender   OTPSender
	jwtCfg   JWTConfig
	otpCfg   OTPConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, otpRepo repository.OTPRepository, sender OTPSender, jwtCfg JWTConfig, otpCfg OTPConfig) *AuthUseCase {
	if otpCfg.Length <= 0 {
		otpCfg.Length = 6
	}
	if otpCfg.TTLMinutes <= 0 {
		otpCfg.TTLMinutes = 5
	}
	if otpCfg.MaxAttempts <= 0 {
		otpCfg.MaxAttempts = 5
	}
	return &AuthUseCase{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		sender:   sender,
		jwtCfg:   jwtCfg,
		otpCfg:   otpCfg,
		now:      time.Now,
	}
}

// RequestOTP genera un código nuevo para el teléfono, invalida los anteriores
// y lo entrega vía sender. La respuesta nunca incluye el código.
func (uc *AuthUseCase) RequestOTP(in dto.RequestOTPRequest) (*dto.RequestOTPResponse, error) {
	code, err := uc.generateCode()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := uc.otpRepo.InvalidateByPhone(in.Phone); err != nil {
		return nil, err
	}
	now := uc.now()
	otp := &entity.OTPCode{
		ID:        uuid.New().String(),
		Phone:     in.Phone,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(time.Duration(uc.otpCfg.TTLMinutes) * time.Minute),
		CreatedAt: now,
	}
	if err := uc.otpRepo.Create(otp); err != nil {
		return nil, err
	}
	if err := uc.sender.Send(in.Phone, code); err != nil {
		return nil, err
	}
	return &dto.RequestOTPResponse{Phone: in.Phone, ExpiresAt: otp.ExpiresAt}, nil
}

// VerifyOTP valida el código contra el hash vigente. Si es correcto lo consume,
// crea el usuario en el primer login (rol customer) y emite el JWT.
func (uc *AuthUseCase) VerifyOTP(in dto.VerifyOTPRequest) (*dto.LoginResponse, error) {
	otp, err := uc.otpRepo.GetActiveByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return nil, domain.ErrOTPInvalid
	}
	if otp.Expired(uc.now()) {
		return nil, domain.ErrOTPExpired
	}
	if otp.Attempts >= uc.otpCfg.MaxAttempts {
		return nil, domain.ErrOTPMaxAttempts
	}
	if err := bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(in.Code)); err != nil {
		if err := uc.otpRepo.IncrementAttempts(otp.ID); err != nil {
			return nil, err
		}
		return nil, domain.ErrOTPInvalid
	}
	if err := uc.otpRepo.MarkConsumed(otp.ID); err != nil {
		return nil, err
	}

	user, err := uc.findOrCreateUser(in.Phone, in.Name)
	if err != nil {
		return nil, err
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) findOrCreateUser(phone, name string) (*entity.User, error) {
	user, err := uc.userRepo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	now := uc.now()
	user = &entity.User{
		ID:        uuid.New().String(),
		Phone:     phone,
		Name:      name,
		Role:      entity.RoleCustomer,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// generateCode produce un código numérico aleatorio de la longitud configurada.
func (uc *AuthUseCase) generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < uc.otpCfg.Length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", uc.otpCfg.Length, n), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Phone:     u.Phone,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
