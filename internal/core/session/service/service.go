package sessionapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	sessionEntity "socialfeed/internal/core/session"
	sessionPort "socialfeed/internal/ports/session"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const issuer = "socialfeed"

// SessionService issues and checks session tokens. A token is an HS256 JWT
// whose jti points at a record in the session repository, so a token is only
// honoured while its record exists.
type SessionService struct {
	SessionRepository sessionPort.SessionRepository
	jwtKey            []byte
	ttl               time.Duration
	logger            *zap.Logger
	now               func() time.Time
}

func NewSessionService(repo sessionPort.SessionRepository, jwtKey []byte, ttl time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		SessionRepository: repo,
		jwtKey:            jwtKey,
		ttl:               ttl,
		logger:            logger,
		now:               time.Now,
	}
}

// Start opens a session for userID and returns the signed token.
func (s *SessionService) Start(ctx context.Context, userID string) (*sessionPort.Token, error) {
	now := s.now()
	sess := &sessionEntity.Session{
		ID:        uuid.Must(uuid.NewV4()).String(),
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.SessionRepository.Save(ctx, sess, s.ttl); err != nil {
		return nil, fmt.Errorf("could not store session: %w", err)
	}

	claims := &jwt.StandardClaims{
		Id:        sess.ID,
		Subject:   userID,
		Issuer:    issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: sess.ExpiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("could not sign session token: %w", err)
	}

	s.logger.Info("session started", zap.String("userID", userID), zap.String("sessionID", sess.ID))
	return &sessionPort.Token{
		Value:     signed,
		UserID:    userID,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// Resolve returns the user id behind a token. Bad signatures, expired
// tokens and revoked sessions all yield ErrInvalidSession.
func (s *SessionService) Resolve(ctx context.Context, token string) (string, error) {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", sessionPort.ErrInvalidSession, err)
	}

	sess, err := s.SessionRepository.Find(ctx, claims.Id)
	if err != nil {
		if errors.Is(err, sessionPort.ErrSessionNotFound) {
			return "", fmt.Errorf("%w: %v", sessionPort.ErrInvalidSession, err)
		}
		return "", fmt.Errorf("could not load session: %w", err)
	}
	if sess.UserID != claims.Subject {
		return "", fmt.Errorf("%w: subject mismatch", sessionPort.ErrInvalidSession)
	}
	return sess.UserID, nil
}

// End revokes the session behind token. Unparseable tokens have nothing to
// revoke and are ignored.
func (s *SessionService) End(ctx context.Context, token string) error {
	claims := &jwt.StandardClaims{}
	parser := &jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(token, claims, s.keyFunc); err != nil || claims.Id == "" {
		return nil
	}

	if err := s.SessionRepository.Delete(ctx, claims.Id); err != nil {
		return fmt.Errorf("could not delete session: %w", err)
	}
	s.logger.Info("session ended", zap.String("userID", claims.Subject), zap.String("sessionID", claims.Id))
	return nil
}

func (s *SessionService) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return s.jwtKey, nil
}
