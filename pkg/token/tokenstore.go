package tokenstore

import (
	"sync"
	"time"

	"github.com/Dr-Min/TalKR-Add-DB/pkg/cache"
)

// In-memory revocation store for logged-out JWTs, keyed by jti. Entries expire
// with the token lifetime, so the store stays bounded without explicit
// cleanup. A restart forgets revocations; acceptable for 24h tokens.

const revocationTTL = 24 * time.Hour

var (
	once    sync.Once
	revoked *cache.Cache
)

func store() *cache.Cache {
	once.Do(func() { revoked = cache.New(0) })
	return revoked
}

func RevokeToken(jti string) {
	if jti == "" {
		return
	}
	store().Set(jti, struct{}{}, revocationTTL)
}

func IsRevoked(jti string) bool {
	if jti == "" {
		return false
	}
	_, ok := store().Get(jti)
	return ok
}
