package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/radelytskyi20/TaskManagement/internal/infra/core"

	"github.com/radelytskyi20/TaskManagement/internal/auth"
	bizConfig "github.com/radelytskyi20/TaskManagement/internal/config"
	bizConsts "github.com/radelytskyi20/TaskManagement/internal/consts"
	"github.com/radelytskyi20/TaskManagement/internal/model"
)

// stubUserDao implements dao.UserDao over an in-memory slice
type stubUserDao struct {
	*core.BaseComponent
	users []*model.User
}

func newStubUserDao(seed ...*model.User) *stubUserDao {
	return &stubUserDao{
		BaseComponent: core.NewBaseComponent("dao_user_stub"),
		users:         seed,
	}
}

func (s *stubUserDao) Create(ctx context.Context, u *model.User) error {
	s.users = append(s.users, u)
	return nil
}

func (s *stubUserDao) Get(ctx context.Context, id string) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserDao) GetByUserName(ctx context.Context, name string) (*model.User, error) {
	for _, u := range s.users {
		if u.UserName == name {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserDao) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// stubTokenStore records revoked jti values
type stubTokenStore struct {
	*core.BaseComponent
	revoked map[string]time.Duration
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{
		BaseComponent: core.NewBaseComponent("token_store_stub"),
		revoked:       map[string]time.Duration{},
	}
}

func (s *stubTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	s.revoked[jti] = ttl
	return nil
}

func (s *stubTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

func testJwtProvider() *auth.JwtProvider {
	return auth.NewJwtProvider(bizConfig.JWTOptions{
		Issuer:         "taskmgmt-test",
		Audience:       "taskmgmt-api",
		SecretKey:      "unit-test-secret",
		ExpiresMinutes: 10,
	})
}

func strictValidator() *auth.PasswordValidator {
	return auth.NewPasswordValidator(bizConfig.PasswordComplexityOptions{
		MinimumLength:           8,
		RequireUppercase:        true,
		RequireLowercase:        true,
		RequireDigit:            true,
		RequireSpecialCharacter: true,
	})
}

func newUserServiceWith(da *stubUserDao, tokens auth.TokenStore) *userServiceImpl {
	svc := NewUserService(strictValidator()).(*userServiceImpl)
	svc.UserDao = da
	svc.JWT = testJwtProvider()
	svc.Tokens = tokens
	return svc
}

func TestUserServiceRegisterDuplicateUsername(t *testing.T) {
	da := newStubUserDao(&model.User{ID: "u1", UserName: "alice", Email: "alice@example.com"})
	svc := newUserServiceWith(da, nil)

	res, err := svc.Register(context.Background(), RegisterInput{
		UserName: "alice", Email: "other@example.com", Password: "Str0ng!pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded() || res.Errors[0] != bizConsts.ErrUsernameTaken {
		t.Fatalf("expected username conflict, got %+v", res)
	}
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	da := newStubUserDao(&model.User{ID: "u1", UserName: "alice", Email: "alice@example.com"})
	svc := newUserServiceWith(da, nil)

	res, err := svc.Register(context.Background(), RegisterInput{
		UserName: "bob", Email: "alice@example.com", Password: "Str0ng!pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded() || res.Errors[0] != bizConsts.ErrEmailTaken {
		t.Fatalf("expected email conflict, got %+v", res)
	}
}

func TestUserServiceRegisterWeakPassword(t *testing.T) {
	svc := newUserServiceWith(newStubUserDao(), nil)

	res, err := svc.Register(context.Background(), RegisterInput{
		UserName: "bob", Email: "bob@example.com", Password: "short",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded() {
		t.Fatal("expected password validation failure")
	}
	// short, no uppercase, no digit, no special
	if len(res.Errors) != 4 {
		t.Fatalf("expected 4 complexity errors, got %v", res.Errors)
	}
}

func TestUserServiceRegisterAndLogin(t *testing.T) {
	da := newStubUserDao()
	svc := newUserServiceWith(da, nil)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterInput{
		UserName: "bob", Email: "bob@example.com", Password: "Str0ng!pass",
	})
	if err != nil || !res.Succeeded() {
		t.Fatalf("register failed: res=%+v err=%v", res, err)
	}
	if len(da.users) != 1 {
		t.Fatalf("expected one stored user, got %d", len(da.users))
	}
	if da.users[0].PasswordHash == "Str0ng!pass" || da.users[0].PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}

	login, err := svc.Login(ctx, LoginInput{Identifier: "bob", Password: "Str0ng!pass"})
	if err != nil || !login.Succeeded() {
		t.Fatalf("login failed: res=%+v err=%v", login, err)
	}
	if login.Payload.Token == "" {
		t.Fatal("expected a token on successful login")
	}
	if login.Payload.User.UserName != "bob" {
		t.Fatalf("unexpected user payload: %+v", login.Payload.User)
	}

	claims, err := svc.JWT.Parse(login.Payload.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != da.users[0].ID || claims.Name != "bob" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestUserServiceLoginByEmail(t *testing.T) {
	hash, err := auth.HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	da := newStubUserDao(&model.User{ID: "u1", UserName: "alice", Email: "alice@example.com", PasswordHash: hash})
	svc := newUserServiceWith(da, nil)

	login, err := svc.Login(context.Background(), LoginInput{Identifier: "alice@example.com", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !login.Succeeded() {
		t.Fatalf("login by email failed: %v", login.Errors)
	}
	if login.Payload.User.UserName != "alice" {
		t.Fatalf("unexpected user payload: %+v", login.Payload.User)
	}
}

func TestUserServiceLoginFailures(t *testing.T) {
	hash, err := auth.HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	da := newStubUserDao(&model.User{ID: "u1", UserName: "alice", Email: "a@example.com", PasswordHash: hash})
	svc := newUserServiceWith(da, nil)
	ctx := context.Background()

	res, err := svc.Login(ctx, LoginInput{Identifier: "nobody", Password: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded() || res.Errors[0] != bizConsts.ErrUserNotFound {
		t.Fatalf("expected user-not-found, got %+v", res)
	}

	res, err = svc.Login(ctx, LoginInput{Identifier: "alice", Password: "wrong"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded() || res.Errors[0] != bizConsts.ErrBadPassword {
		t.Fatalf("expected invalid-password, got %+v", res)
	}
}

func TestUserServiceLogoutRevokesToken(t *testing.T) {
	tokens := newStubTokenStore()
	svc := newUserServiceWith(newStubUserDao(), tokens)

	id := auth.Identity{UserID: "u1", JTI: "jti-1", ExpiresAt: time.Now().Add(5 * time.Minute)}
	res, err := svc.Logout(context.Background(), id)
	if err != nil || !res.Succeeded() {
		t.Fatalf("logout failed: res=%+v err=%v", res, err)
	}
	if _, ok := tokens.revoked["jti-1"]; !ok {
		t.Fatal("expected jti to be revoked")
	}
}

func TestUserServiceLogoutWithoutStore(t *testing.T) {
	svc := newUserServiceWith(newStubUserDao(), nil)
	res, err := svc.Logout(context.Background(), auth.Identity{JTI: "jti-1"})
	if err != nil || !res.Succeeded() {
		t.Fatalf("logout without revocation store must succeed: res=%+v err=%v", res, err)
	}
}
