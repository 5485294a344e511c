package cache

import (
	"fmt"
	"strings"
)

const keyPrefix = "apt-trade"

// TransactionKey is the cache key for one district's deals in one month.
func TransactionKey(regionCode, period string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, regionCode, period)
}

// ParseTransactionKey splits a key built by TransactionKey.
func ParseTransactionKey(key string) (regionCode, period string, ok bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 3 || parts[0] != keyPrefix {
		return "", "", false
	}
	return parts[1], parts[2], true
}
