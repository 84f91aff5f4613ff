package services

import (
	"crypto/rsa"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dnstock/realty-backend/internal/config"
	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/middleware"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

// refreshTokenType marks refresh tokens so an access token can never be
// replayed against the refresh endpoint.
const refreshTokenType = "refresh"

// ---------------------------------------------------------------------
// AuthService interface
// ---------------------------------------------------------------------

type AuthService interface {
	Register(rc *repositories.RequestContext, req dtos.RegisterUserRequest) (*models.User, error)
	Login(rc *repositories.RequestContext, email, password string) (*models.User, string, string, error)
	Refresh(rc *repositories.RequestContext, refreshTokenString string) (string, string, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type authService struct {
	privateKey    *rsa.PrivateKey
	publicKey     *rsa.PublicKey
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	userRepo      repositories.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo repositories.UserRepository) AuthService {
	return &authService{
		privateKey:    cfg.RSAPrivateKey,
		publicKey:     cfg.RSAPublicKey,
		issuer:        cfg.TokenIssuer,
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
		userRepo:      userRepo,
	}
}

func (s *authService) Register(rc *repositories.RequestContext, req dtos.RegisterUserRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByEmail(rc, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(rc, repositories.Fields{
		"name":     req.Name,
		"email":    req.Email,
		"password": hash,
	})
}

func (s *authService) Login(rc *repositories.RequestContext, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(rc, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, "", "", utils.ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", "", utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", "", utils.ErrInactiveUser
	}

	access, err := s.generateToken(user.ID, s.accessExpiry, "")
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.generateToken(user.ID, s.refreshExpiry, refreshTokenType)
	if err != nil {
		return nil, "", "", err
	}

	return user, access, refresh, nil
}

// Refresh re-issues both tokens from a valid refresh token. Tokens are
// stateless; revocation happens by disabling the user record.
func (s *authService) Refresh(rc *repositories.RequestContext, refreshTokenString string) (string, string, error) {
	tok, err := middleware.ValidateToken(refreshTokenString, s.publicKey, s.issuer)
	if err != nil {
		utils.Logger.WithError(err).Warn("Rejected refresh token")
		return "", "", utils.ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", utils.ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != refreshTokenType {
		return "", "", utils.ErrInvalidToken
	}

	userID, err := middleware.SubjectID(tok)
	if err != nil {
		return "", "", utils.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(rc, userID)
	if err != nil {
		return "", "", utils.ErrInvalidToken
	}
	if !user.IsActive {
		return "", "", utils.ErrInactiveUser
	}

	access, err := s.generateToken(user.ID, s.accessExpiry, "")
	if err != nil {
		return "", "", err
	}
	refresh, err := s.generateToken(user.ID, s.refreshExpiry, refreshTokenType)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *authService) generateToken(userID int64, expiry time.Duration, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": strconv.FormatInt(userID, 10),
		"exp": time.Now().Add(expiry).Unix(),
		"iat": time.Now().Unix(),
		"jti": uuid.NewString(),
	}
	if tokenType != "" {
		claims["typ"] = tokenType
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(s.privateKey)
}
