package authenticating

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/partner-revenue-api/infrastructure/repository"
	"github.com/vfg2006/partner-revenue-api/internal/config"
	"github.com/vfg2006/partner-revenue-api/internal/domain"
	"github.com/vfg2006/partner-revenue-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 20 * time.Minute

var pinPattern = regexp.MustCompile(`^\d{6}$`)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Authenticator interface {
	LoginWithPIN(ctx context.Context, pin string) (*domain.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
	ExpireSession(ctx context.Context, adminID string) error
}

type Service struct {
	sessionRepo repository.SessionRepository
	pinHashes   map[string]string
	secret      []byte
	sessionTTL  time.Duration
	now         func() time.Time
}

func NewService(sessionRepo repository.SessionRepository, cfg *config.Config) *Service {
	ttl := cfg.Auth.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	if len(cfg.Auth.PINHashes) == 0 {
		logrus.Warn("Nenhum PIN de admin configurado em ADMIN_PINS, login indisponível")
	}

	return &Service{
		sessionRepo: sessionRepo,
		pinHashes:   cfg.Auth.PINHashes,
		secret:      []byte(cfg.Auth.Secret),
		sessionTTL:  ttl,
		now:         time.Now,
	}
}

// LoginWithPIN identifica o admin pelo PIN e abre uma nova sessão,
// substituindo a anterior.
func (s *Service) LoginWithPIN(ctx context.Context, pin string) (*domain.LoginResponse, error) {
	pin = strings.TrimSpace(pin)
	if !pinPattern.MatchString(pin) {
		return nil, NewAuthError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, "O PIN deve ter 6 dígitos")
	}

	adminID, ok := s.matchPIN(pin)
	if !ok {
		logrus.Warn("Tentativa de login com PIN inválido")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "PIN incorreto")
	}

	now := s.now().UTC()
	session := &domain.AdminSession{
		AdminID:      adminID,
		SessionToken: uuid.NewString(),
		ExpiresAt:    now.Add(s.sessionTTL),
		CreatedAt:    now,
	}

	if err := s.sessionRepo.UpsertSession(ctx, session); err != nil {
		logrus.WithFields(logrus.Fields{
			"admin_id": adminID,
			"error":    err.Error(),
		}).Error("Erro ao gravar sessão do admin")
		return nil, NewAdminAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, adminID, "Erro ao abrir sessão")
	}

	token, err := s.generateJWT(session)
	if err != nil {
		return nil, NewAdminAuthError(ErrGenerateToken, apiErrors.ErrInternalServer, adminID, "Erro ao gerar token de autenticação")
	}

	logrus.WithField("admin_id", adminID).Info("Admin autenticado com PIN")

	return &domain.LoginResponse{
		Token:     token,
		AdminID:   adminID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Service) matchPIN(pin string) (string, bool) {
	adminIDs := make([]string, 0, len(s.pinHashes))
	for adminID := range s.pinHashes {
		adminIDs = append(adminIDs, adminID)
	}
	sort.Strings(adminIDs)

	for _, adminID := range adminIDs {
		if bcrypt.CompareHashAndPassword([]byte(s.pinHashes[adminID]), []byte(pin)) == nil {
			return adminID, true
		}
	}
	return "", false
}

func (s *Service) generateJWT(session *domain.AdminSession) (string, error) {
	claims := domain.Claims{
		AdminID:   session.AdminID,
		SessionID: session.SessionToken,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken valida a assinatura do token e confere se ele ainda é a sessão ativa do admin
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.AdminID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	session, err := s.sessionRepo.GetSession(ctx, claims.AdminID)
	if err != nil {
		return nil, NewAdminAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, claims.AdminID, "Erro ao consultar sessão")
	}
	if session == nil || session.SessionToken != claims.SessionID {
		return nil, NewAdminAuthError(ErrSessionNotFound, apiErrors.ErrInvalidToken, claims.AdminID, "Sessão encerrada")
	}
	if session.Expired(s.now()) {
		return nil, NewAdminAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, claims.AdminID, "Sessão expirada")
	}

	return claims, nil
}

// ExpireSession encerra a sessão ativa do admin (logout)
func (s *Service) ExpireSession(ctx context.Context, adminID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, adminID); err != nil {
		return NewAdminAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, adminID, "Erro ao encerrar sessão")
	}

	logrus.WithField("admin_id", adminID).Info("Sessão do admin encerrada")
	return nil
}
