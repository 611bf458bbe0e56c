package actor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/pickup-inventory/application/actor"
	"github.com/muhammadheryan/pickup-inventory/cmd/config"
	redismocks "github.com/muhammadheryan/pickup-inventory/mocks/repository/redis"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims actor.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claims(subject, jti string, ttl time.Duration) actor.Claims {
	return actor.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Role: "cashier",
	}
}

func TestActorApp_ValidateToken(t *testing.T) {
	tests := []struct {
		name     string
		token    func(t *testing.T) string
		mockCall func(m *redismocks.Repository)
		want     model.Actor
		wantErr  bool
	}{
		{
			name:  "success",
			token: func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("12", "jti-1", time.Hour)) },
			mockCall: func(m *redismocks.Repository) {
				m.On("GetSession", mock.Anything, "jti-1").Return(uint64(12), nil).Once()
			},
			want: model.Actor{UserID: 12, Role: "cashier"},
		},
		{
			name:  "error: session belongs to another user",
			token: func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("12", "jti-1", time.Hour)) },
			mockCall: func(m *redismocks.Repository) {
				m.On("GetSession", mock.Anything, "jti-1").Return(uint64(13), nil).Once()
			},
			wantErr: true,
		},
		{
			name:  "error: session gone",
			token: func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("12", "jti-1", time.Hour)) },
			mockCall: func(m *redismocks.Repository) {
				m.On("GetSession", mock.Anything, "jti-1").Return(uint64(0), errors.New("redis: nil")).Once()
			},
			wantErr: true,
		},
		{
			name:    "error: wrong secret",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte("other"), claims("12", "jti-1", time.Hour)) },
			wantErr: true,
		},
		{
			name:    "error: other algorithm",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS512, []byte(secret), claims("12", "jti-1", time.Hour)) },
			wantErr: true,
		},
		{
			name:    "error: expired",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("12", "jti-1", -time.Minute)) },
			wantErr: true,
		},
		{
			name:    "error: missing jti",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("12", "", time.Hour)) },
			wantErr: true,
		},
		{
			name:    "error: subject is not a user id",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claims("admin", "jti-1", time.Hour)) },
			wantErr: true,
		},
		{
			name:    "error: garbage",
			token:   func(t *testing.T) string { return "not-a-token" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(redisRepo)
			}
			app := actor.NewActorApp(&config.Config{Auth: config.AuthConfig{JWTSecret: secret}}, redisRepo)

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
