package auth

import "golang.org/x/crypto/bcrypt"

const hashCost = 10

// HashPassword хэширует пароль bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(bytes), err
}

// ComparePassword сверяет пароль с хэшем, nil при совпадении
func ComparePassword(hashedPassword, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}
