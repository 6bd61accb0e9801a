package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	autherror "github.com/AhapraxAhmed/mockrithm/internal/errors"
	authconstant "github.com/AhapraxAhmed/mockrithm/pkg/constant"
)

const (
	tokenTypeIdentity = "identity"
	tokenTypeSession  = "session"
)

type identityClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
}

// JWTProvider keeps credentials in the identities collection (bcrypt hashes)
// and signs both token kinds with HS256. Identity tokens and session
// artifacts use separate secrets so neither can stand in for the other.
type JWTProvider struct {
	store          domain.DocumentStore
	identitySecret string
	sessionSecret  string
	clock          clockwork.Clock
}

func NewJWTProvider(store domain.DocumentStore, identitySecret, sessionSecret string, clock clockwork.Clock) *JWTProvider {
	return &JWTProvider{
		store:          store,
		identitySecret: identitySecret,
		sessionSecret:  sessionSecret,
		clock:          clock,
	}
}

func (p *JWTProvider) CreateIdentity(ctx context.Context, email, password, name string) (*Identity, error) {
	existing, err := p.LookupByEmail(ctx, email)
	if err != nil && err != autherror.ErrIdentityNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uid := uuid.NewString()
	fields := map[string]any{
		"email":        email,
		"name":         name,
		"passwordHash": string(hashed),
		"createdAt":    p.clock.Now().Format(time.RFC3339Nano),
	}
	if err := p.store.Set(ctx, domain.CollectionIdentities, uid, fields); err != nil {
		return nil, err
	}

	return &Identity{SubjectID: uid, Email: email}, nil
}

func (p *JWTProvider) Authenticate(ctx context.Context, email, password string) (string, *Identity, error) {
	ident, err := p.LookupByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	fields, err := p.store.Get(ctx, domain.CollectionIdentities, ident.SubjectID)
	if err != nil {
		return "", nil, err
	}
	if fields == nil {
		return "", nil, autherror.ErrIdentityNotFound
	}

	hash := domain.FieldString(fields, "passwordHash")
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", nil, autherror.ErrInvalidCredentials
	}

	token, err := p.sign(ident, tokenTypeIdentity, p.identitySecret, authconstant.IdentityTokenTTL)
	if err != nil {
		return "", nil, err
	}

	return token, ident, nil
}

func (p *JWTProvider) VerifyIdentityToken(ctx context.Context, token string) (*Identity, error) {
	ident, err := p.verify(token, tokenTypeIdentity, p.identitySecret)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	return ident, nil
}

func (p *JWTProvider) LookupByEmail(ctx context.Context, email string) (*Identity, error) {
	docs, err := p.store.Query(ctx, domain.Query{
		Collection: domain.CollectionIdentities,
		Filters:    []domain.Filter{{Field: "email", Op: "==", Value: email}},
		Limit:      1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, autherror.ErrIdentityNotFound
	}

	return &Identity{
		SubjectID: docs[0].Key,
		Email:     domain.FieldString(docs[0].Fields, "email"),
	}, nil
}

func (p *JWTProvider) IssueSessionArtifact(ctx context.Context, identityToken string, ttl time.Duration) (string, error) {
	ident, err := p.VerifyIdentityToken(ctx, identityToken)
	if err != nil {
		return "", err
	}

	return p.sign(ident, tokenTypeSession, p.sessionSecret, ttl)
}

func (p *JWTProvider) VerifySessionArtifact(ctx context.Context, value string) (*Identity, error) {
	ident, err := p.verify(value, tokenTypeSession, p.sessionSecret)
	if err != nil {
		return nil, autherror.ErrInvalidSession
	}

	return ident, nil
}

func (p *JWTProvider) DeleteIdentity(ctx context.Context, subjectID string) error {
	return p.store.Delete(ctx, domain.CollectionIdentities, subjectID)
}

func (p *JWTProvider) sign(ident *Identity, tokenType, secret string, ttl time.Duration) (string, error) {
	now := p.clock.Now()

	claims := identityClaims{
		Email:     ident.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.SubjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (p *JWTProvider) verify(value, wantType, secret string) (*Identity, error) {
	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(p.clock.Now))

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}

	return &Identity{SubjectID: claims.Subject, Email: claims.Email}, nil
}
