// internal/inventory/validate.go
//
// 格式層級驗證：console 層在呼叫 Store 之前使用，
// 放在領域套件內以便不經任何 I/O 即可測試。

package inventory

import "strings"

// ValidateTitle 拒絕空白標題；合法時原樣回傳。
func ValidateTitle(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrInvalidTitle
	}
	return s, nil
}

// NormalizeAuthor 要求至少兩個以空白分隔的字詞（名與姓），
// 並以單一空白重新串接，去除多餘空白。單名作者不被接受。
func NormalizeAuthor(s string) (string, error) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return "", ErrInvalidAuthor
	}
	return strings.Join(parts, " "), nil
}

// ValidateID 拒絕空白 ID；合法時原樣回傳，不做 trim，以符合完全比對查詢。
func ValidateID(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrInvalidID
	}
	return s, nil
}
