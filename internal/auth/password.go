package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost - cost bcrypt для новых хешей
const PasswordCost = 10

// MinPasswordLength - минимальная длина пароля при регистрации
const MinPasswordLength = 6

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
