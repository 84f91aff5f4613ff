package config

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/pem"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dnstock/realty-backend/utils"
)

type Config struct {
	AppName            string
	AppPort            string
	DBUrl              string
	RSAPrivateKey      *rsa.PrivateKey
	RSAPublicKey       *rsa.PublicKey
	TokenIssuer        string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	CORSAllowedOrigins []string
	SeedDemoData       bool
}

const (
	AppName     = "realty-backend"
	TokenIssuer = "Realty"

	AccessTokenExpiry  = 15 * time.Minute
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

func LoadConfig() *Config {
	//----------------------------------------------------------------------
	// Load environment variables.
	//----------------------------------------------------------------------
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	//----------------------------------------------------------------------
	// Parse the RSA signing key pair (base64-encoded PEM).
	//----------------------------------------------------------------------
	privateKeyBase64 := os.Getenv("RSA_PRIVATE_KEY_BASE64")
	if privateKeyBase64 == "" {
		utils.Logger.Fatal("RSA_PRIVATE_KEY_BASE64 env var is missing")
	}
	privateKeyPEM, err := base64.StdEncoding.DecodeString(privateKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 private key")
	}
	block, _ := pem.Decode(privateKeyPEM)
	if block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for private key")
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}

	publicKeyBase64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if publicKeyBase64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	publicKeyPEM, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 public key")
	}
	block, _ = pem.Decode(publicKeyPEM)
	if block == nil {
		utils.Logger.Fatal("Failed to decode PEM block for public key")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	//----------------------------------------------------------------------
	// Optional knobs.
	//----------------------------------------------------------------------
	corsOrigins := []string{"*"}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	seedDemoData := os.Getenv("SEED_DEMO_DATA") == "true"

	return &Config{
		AppName:            AppName,
		AppPort:            appPort,
		DBUrl:              dbURL,
		RSAPrivateKey:      privateKey,
		RSAPublicKey:       publicKey,
		TokenIssuer:        TokenIssuer,
		AccessTokenExpiry:  AccessTokenExpiry,
		RefreshTokenExpiry: RefreshTokenExpiry,
		CORSAllowedOrigins: corsOrigins,
		SeedDemoData:       seedDemoData,
	}
}
