package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Repository caches serialized calculation results. Implementations are
// fail-open: a miss and an unavailable backend look the same to callers.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Key builds a deterministic cache key from a calculator name and its raw
// inputs. Inputs are serialized in sorted field order so equivalent requests
// collide on the same key.
func Key(calculator string, inputs map[string]any) string {
	fields := make([]string, 0, len(inputs))
	for name := range inputs {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var b strings.Builder
	for _, name := range fields {
		encoded, err := json.Marshal(inputs[name])
		if err != nil {
			encoded = []byte(fmt.Sprintf("%v", inputs[name]))
		}
		fmt.Fprintf(&b, "%s=%s;", name, encoded)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("calc:%s:%s", calculator, hex.EncodeToString(sum[:16]))
}
