package services

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnstock/realty-backend/internal/config"
	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

// fakeUserRepo serves a fixed set of users keyed by id and email.
type fakeUserRepo struct {
	byID    map[int64]*models.User
	byEmail map[string]*models.User
	created []repositories.Fields
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byID:    map[int64]*models.User{},
		byEmail: map[string]*models.User{},
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(rc *repositories.RequestContext, id int64) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(rc *repositories.RequestContext, email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(rc *repositories.RequestContext, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) Create(rc *repositories.RequestContext, payload repositories.Fields) (*models.User, error) {
	r.created = append(r.created, payload)
	u := &models.User{
		Resource: models.Resource{ID: int64(len(r.byID) + 1), IsActive: true},
		Name:     payload["name"].(string),
		Email:    payload["email"].(string),
		Password: payload["password"].(string),
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *fakeUserRepo) Update(rc *repositories.RequestContext, payload repositories.Fields, id int64) (*models.User, error) {
	return r.GetByID(rc, id)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &config.Config{
		RSAPrivateKey:      key,
		RSAPublicKey:       &key.PublicKey,
		TokenIssuer:        config.TokenIssuer,
		AccessTokenExpiry:  time.Minute,
		RefreshTokenExpiry: time.Hour,
	}
}

func testUser(t *testing.T, id int64, email, password string, active bool) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		Resource: models.Resource{ID: id, IsActive: active},
		Name:     "Test Manager",
		Email:    email,
		Password: hash,
	}
}

func parseClaims(t *testing.T, cfg *config.Config, tokenString string) jwt.MapClaims {
	t.Helper()
	tok, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return cfg.RSAPublicKey, nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)
	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestLoginIssuesTokenPair(t *testing.T) {
	cfg := testConfig(t)
	svc := NewAuthService(cfg, newFakeUserRepo(testUser(t, 7, "m@example.com", "hunter2good", true)))

	user, access, refresh, err := svc.Login(nil, "m@example.com", "hunter2good")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	accessClaims := parseClaims(t, cfg, access)
	assert.Equal(t, "7", accessClaims["sub"])
	assert.Equal(t, cfg.TokenIssuer, accessClaims["iss"])
	assert.Nil(t, accessClaims["typ"])

	refreshClaims := parseClaims(t, cfg, refresh)
	assert.Equal(t, "7", refreshClaims["sub"])
	assert.Equal(t, "refresh", refreshClaims["typ"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(testConfig(t), newFakeUserRepo(testUser(t, 7, "m@example.com", "hunter2good", true)))

	_, _, _, err := svc.Login(nil, "m@example.com", "not-the-password")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(testConfig(t), newFakeUserRepo())

	_, _, _, err := svc.Login(nil, "nobody@example.com", "whatever123")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginDisabledUser(t *testing.T) {
	svc := NewAuthService(testConfig(t), newFakeUserRepo(testUser(t, 7, "m@example.com", "hunter2good", false)))

	_, _, _, err := svc.Login(nil, "m@example.com", "hunter2good")
	assert.ErrorIs(t, err, utils.ErrInactiveUser)
}

func TestRefreshReissuesBothTokens(t *testing.T) {
	cfg := testConfig(t)
	svc := NewAuthService(cfg, newFakeUserRepo(testUser(t, 7, "m@example.com", "hunter2good", true)))

	_, _, refresh, err := svc.Login(nil, "m@example.com", "hunter2good")
	require.NoError(t, err)

	access2, refresh2, err := svc.Refresh(nil, refresh)
	require.NoError(t, err)

	accessClaims := parseClaims(t, cfg, access2)
	assert.Equal(t, "7", accessClaims["sub"])
	assert.Nil(t, accessClaims["typ"])

	refreshClaims := parseClaims(t, cfg, refresh2)
	assert.Equal(t, "refresh", refreshClaims["typ"])
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := NewAuthService(testConfig(t), newFakeUserRepo(testUser(t, 7, "m@example.com", "hunter2good", true)))

	_, access, _, err := svc.Login(nil, "m@example.com", "hunter2good")
	require.NoError(t, err)

	_, _, err = svc.Refresh(nil, access)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewAuthService(testConfig(t), newFakeUserRepo())

	_, _, err := svc.Refresh(nil, "not.a.token")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestRefreshRejectsDisabledUser(t *testing.T) {
	user := testUser(t, 7, "m@example.com", "hunter2good", true)
	repo := newFakeUserRepo(user)
	svc := NewAuthService(testConfig(t), repo)

	_, _, refresh, err := svc.Login(nil, "m@example.com", "hunter2good")
	require.NoError(t, err)

	user.IsActive = false
	_, _, err = svc.Refresh(nil, refresh)
	assert.ErrorIs(t, err, utils.ErrInactiveUser)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(t), repo)

	user, err := svc.Register(nil, dtos.RegisterUserRequest{
		Name:     "New Manager",
		Email:    "new@example.com",
		Password: "plaintext-pass",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext-pass", user.Password)
	assert.True(t, utils.CheckPasswordHash("plaintext-pass", user.Password))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(testConfig(t), newFakeUserRepo(testUser(t, 7, "taken@example.com", "hunter2good", true)))

	_, err := svc.Register(nil, dtos.RegisterUserRequest{
		Name:     "Imposter",
		Email:    "taken@example.com",
		Password: "whatever123",
	})
	assert.ErrorIs(t, err, utils.ErrEmailExists)
}
