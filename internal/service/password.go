// File: internal/service/password.go
package service

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// passwordSymbols 密碼政策允許的符號集合
const passwordSymbols = "@$!%*#?&"

// emailPattern 基本 email 格式：local@domain.tld，TLD 2–4 字母
var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)

// ValidatePassword 檢查密碼政策：至少 14 字元，需含字母、數字與
// 符號（限 @$!%*#?&），且不得出現集合以外的字元
func ValidatePassword(password string) bool {
	if len(password) < 14 {
		return false
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit && hasSymbol
}

// ValidateEmail 檢查 email 是否符合基本格式
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
// bcrypt 每次產生隨機 salt 並內嵌於哈希中，驗證不需額外狀態
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
