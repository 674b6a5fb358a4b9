package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL メールアドレスからGravatarのアバターURLを導出する
// Gravatarの仕様に従い、前後の空白を除去して小文字化したアドレスの
// MD5ハッシュをURLに埋め込む
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(hash[:]))
}
