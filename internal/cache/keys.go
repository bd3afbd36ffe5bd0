package cache

import "strings"

const (
	GlobalKeyPrefix = "trivia"

	NamespaceRateLimit = "ratelimit"
)

// GenerateKey builds a namespaced Redis key: trivia:<namespace>:<identifier>.
// If paramsKey are provided, they are joined by "_" and appended.
func GenerateKey(namespace, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, namespace, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// NamespacePattern matches every key in namespace, for SCAN.
func NamespacePattern(namespace string) string {
	return strings.Join([]string{GlobalKeyPrefix, namespace, "*"}, ":")
}

// RateLimitKey is the counter key for one limiter client key (usually an IP).
func RateLimitKey(clientKey string) string {
	return GenerateKey(NamespaceRateLimit, clientKey)
}
