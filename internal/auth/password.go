package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/radelytskyi20/TaskManagement/internal/config"
	"github.com/radelytskyi20/TaskManagement/internal/model"
)

// 密码校验错误文案, 对外返回, 不要随意改动
const (
	ErrPasswordTooShort    = "Password is too short."
	ErrPasswordNoUppercase = "Password requires uppercase letter."
	ErrPasswordNoLowercase = "Password requires lowercase letter."
	ErrPasswordNoDigit     = "Password requires digit."
	ErrPasswordNoSpecial   = "Password requires special character."
)

// PasswordValidator 按复杂度配置校验明文密码, 收集全部不满足项
type PasswordValidator struct {
	opts config.PasswordComplexityOptions
}

func NewPasswordValidator(opts config.PasswordComplexityOptions) *PasswordValidator {
	return &PasswordValidator{opts: opts}
}

// Validate 返回包含所有失败原因的 Result, 全部通过时 Succeeded 为 true
func (v *PasswordValidator) Validate(password string) model.Result {
	var errs []string

	if len(password) < v.opts.MinimumLength {
		errs = append(errs, ErrPasswordTooShort)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if v.opts.RequireUppercase && !hasUpper {
		errs = append(errs, ErrPasswordNoUppercase)
	}
	if v.opts.RequireLowercase && !hasLower {
		errs = append(errs, ErrPasswordNoLowercase)
	}
	if v.opts.RequireDigit && !hasDigit {
		errs = append(errs, ErrPasswordNoDigit)
	}
	if v.opts.RequireSpecialCharacter && !hasSpecial {
		errs = append(errs, ErrPasswordNoSpecial)
	}

	if len(errs) > 0 {
		return model.FailResult(errs...)
	}
	return model.OkResult()
}

// HashPassword 生成 bcrypt 哈希, cost 使用默认值
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword 校验明文与哈希是否匹配
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
