package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// BuildGraphKey строит ключ кэша для документа графа курорта
func BuildGraphKey(slug string) string {
	return fmt.Sprintf("graph:%s", slug)
}

// QuickHash быстрый хеш для произвольных данных
func QuickHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ShortHash короткий хеш (16 символов)
func ShortHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
