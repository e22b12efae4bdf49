package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const tokenPrefix = "after"

// DefaultLimit and MaxLimit bound page sizes.
const (
	DefaultLimit = 20
	MaxLimit     = 200
)

// ErrInvalidToken is returned for tokens that cannot be decoded or no longer
// point at a record.
var ErrInvalidToken = errors.New("invalid pagination token")

// EncodeToken creates a base64 encoded token pointing after the record with lastID.
func EncodeToken(lastID string) string {
	tokenStr := fmt.Sprintf("%s|%s", tokenPrefix, lastID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into the last seen id.
func DecodeToken(token string) (string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w (base64 decode): %v", ErrInvalidToken, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != tokenPrefix || parts[1] == "" {
		return "", fmt.Errorf("%w (split)", ErrInvalidToken)
	}
	return parts[1], nil
}

// ClampLimit applies the default and maximum page size.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Page returns up to limit items following the record named by token, in the
// order given, and the token for the next page ("" when there is none).
func Page[T any](items []T, idOf func(T) string, limit int, token string) ([]T, string, error) {
	limit = ClampLimit(limit)

	start := 0
	if token != "" {
		lastID, err := DecodeToken(token)
		if err != nil {
			return nil, "", err
		}
		start = -1
		for i, item := range items {
			if idOf(item) == lastID {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, "", fmt.Errorf("%w: record %q no longer exists", ErrInvalidToken, lastID)
		}
	}

	end := start + limit
	if end >= len(items) {
		return items[start:], "", nil
	}
	return items[start:end], EncodeToken(idOf(items[end-1])), nil
}
