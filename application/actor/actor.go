package actor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/pickup-inventory/cmd/config"
	"github.com/muhammadheryan/pickup-inventory/model"
	redisrepo "github.com/muhammadheryan/pickup-inventory/repository/redis"
)

// Claims are issued by the session service. Role is carried through to the actor untouched.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// ActorApp turns a bearer token into the actor reference recorded on orders and movements.
// It only resolves identity; it never authorizes.
type ActorApp interface {
	ValidateToken(ctx context.Context, tokenString string) (model.Actor, error)
}

type actorAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewActorApp(config *config.Config, redisRepo redisrepo.Repository) ActorApp {
	return &actorAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *actorAppImpl) ValidateToken(ctx context.Context, tokenString string) (model.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Actor{}, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return model.Actor{}, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return model.Actor{}, fmt.Errorf("invalid user id in token")
	}

	if claims.ID == "" {
		return model.Actor{}, fmt.Errorf("token missing jti")
	}

	// the session service keeps one key per live token
	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return model.Actor{}, fmt.Errorf("invalid or expired session")
	}
	if sessionUserID != userID {
		return model.Actor{}, fmt.Errorf("token does not match user session")
	}

	return model.Actor{UserID: userID, Role: claims.Role}, nil
}
