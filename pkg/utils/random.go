package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает короткий уникальный ID сущности (12 символов hex).
// Полноценный UUID здесь избыточен: сущностей в симуляции единицы.
func GenerateID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
