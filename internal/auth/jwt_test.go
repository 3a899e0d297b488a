package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/radelytskyi20/TaskManagement/internal/config"
	"github.com/radelytskyi20/TaskManagement/internal/infra/core"
	"github.com/radelytskyi20/TaskManagement/internal/model"
)

func testProvider() *JwtProvider {
	return NewJwtProvider(config.JWTOptions{
		Issuer:         "taskmgmt-test",
		Audience:       "taskmgmt-api",
		SecretKey:      "unit-test-secret",
		ExpiresMinutes: 10,
	})
}

func TestJwtIssueAndParse(t *testing.T) {
	p := testProvider()
	u := &model.User{ID: "u1", UserName: "alice", Email: "alice@example.com"}

	token, jti, expiresAt, err := p.Issue(u)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if jti == "" {
		t.Fatal("expected a jti")
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("token already expired: %v", expiresAt)
	}

	claims, err := p.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "u1" || claims.Name != "alice" || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID != jti {
		t.Fatalf("jti mismatch: issued %q, parsed %q", jti, claims.ID)
	}
}

func TestJwtParseRejectsForeignSignature(t *testing.T) {
	p := testProvider()
	other := NewJwtProvider(config.JWTOptions{
		Issuer: "taskmgmt-test", Audience: "taskmgmt-api",
		SecretKey: "another-secret", ExpiresMinutes: 10,
	})

	token, _, _, err := other.Issue(&model.User{ID: "u1", UserName: "alice"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := p.Parse(token); err == nil {
		t.Fatal("expected signature verification failure")
	}
}

func TestJwtStartRequiresSecret(t *testing.T) {
	p := NewJwtProvider(config.JWTOptions{})
	if err := p.Start(context.Background()); err == nil {
		t.Fatal("expected start to fail without a secret key")
	}
}

// memTokenStore is the minimal in-process revocation store for middleware tests
type memTokenStore struct {
	*core.BaseComponent
	revoked map[string]struct{}
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{
		BaseComponent: core.NewBaseComponent("token_store_mem"),
		revoked:       map[string]struct{}{},
	}
}

func (s *memTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	s.revoked[jti] = struct{}{}
	return nil
}

func (s *memTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	p := testProvider()
	token, _, _, err := p.Issue(&model.User{ID: "u1", UserName: "alice", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	var got Identity
	var seen bool
	h := Middleware(p, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, seen = IdentityFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !seen || got.UserID != "u1" || got.UserName != "alice" {
		t.Fatalf("identity not attached: %+v", got)
	}
}

func TestMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	p := testProvider()
	h := Middleware(p, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a valid token")
	}))

	for _, header := range []string{"", "Bearer garbage", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestMiddlewareRejectsRevokedToken(t *testing.T) {
	p := testProvider()
	tokens := newMemTokenStore()
	token, jti, _, err := p.Issue(&model.User{ID: "u1", UserName: "alice"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if err := tokens.Revoke(context.Background(), jti, time.Minute); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	h := Middleware(p, tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a revoked token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", rec.Code)
	}
}
