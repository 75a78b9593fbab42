package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword 用bcrypt生成密码哈希,数据库里只存哈希不存明文
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword 校验明文密码与存储的哈希是否匹配,不匹配时返回错误
func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
