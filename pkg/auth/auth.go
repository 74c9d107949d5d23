package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	connect_go "github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/LondonBrew/configs"
)

type SubjectKey struct{}

var (
	ErrMissingToken = errors.New("authorization header not found")
	ErrBadFormat    = errors.New("authorization format must be Bearer {token}")
	ErrInvalidToken = errors.New("invalid token")
)

type Manager struct {
	conf   *configs.Config
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, logger: logger}
}

// GrpcAuthInterceptor requires a valid bearer token on every procedure except
// the public ones.
func (a *Manager) GrpcAuthInterceptor(publicProcedures ...string) connect_go.UnaryInterceptorFunc {
	public := make(map[string]struct{}, len(publicProcedures))
	for _, procedure := range publicProcedures {
		public[procedure] = struct{}{}
	}

	return func(next connect_go.UnaryFunc) connect_go.UnaryFunc {
		return func(ctx context.Context, req connect_go.AnyRequest) (connect_go.AnyResponse, error) {
			if _, found := public[req.Spec().Procedure]; found {
				return next(ctx, req)
			}

			subject, err := a.authenticate(req.Header())
			if err != nil {
				return nil, connect_go.NewError(connect_go.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, SubjectKey{}, subject)

			return next(ctx, req)
		}
	}
}

func (a *Manager) authenticate(header http.Header) (string, error) {
	if len(a.conf.Auth.SecretKey) == 0 {
		a.logger.Error("no secret key configured, rejecting request")

		return "", fmt.Errorf("%w: authentication is not configured", ErrInvalidToken)
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return "", ErrInvalidToken
	}

	if len(a.conf.Auth.Audience) > 0 && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		a.logger.Error("token has wrong audience", zap.Any("claims", claims))

		return "", fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}

	if len(a.conf.Auth.Domain) > 0 && !claims.VerifyIssuer(a.conf.Auth.Domain, true) {
		a.logger.Error("token has wrong issuer", zap.Any("claims", claims))

		return "", fmt.Errorf("%w: issuer mismatch", ErrInvalidToken)
	}

	subject, found := claims["sub"].(string)
	if !found || len(subject) == 0 {
		a.logger.Error("unable to get subject from token", zap.Any("claims", claims))

		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return subject, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, ErrMissingToken
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, ErrBadFormat
	}

	return &token, nil
}
