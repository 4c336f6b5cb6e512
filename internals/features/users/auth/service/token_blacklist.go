// file: internals/features/users/auth/service/token_blacklist.go
package service

import (
	"sync"
	"time"
)

// TokenBlacklist: token yang sudah logout, ditahan sampai exp aslinya.
// In-memory saja: restart mengosongkan blacklist, tapi juga
// mengganti seluruh registry, jadi tidak ada yang bocor.
type TokenBlacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Time // raw token → kapan boleh dibuang
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{tokens: make(map[string]time.Time)}
}

func (b *TokenBlacklist) Add(rawToken string, keepUntil time.Time) {
	if rawToken == "" {
		return
	}
	b.mu.Lock()
	b.tokens[rawToken] = keepUntil
	b.mu.Unlock()
}

func (b *TokenBlacklist) Contains(rawToken string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	until, ok := b.tokens[rawToken]
	if !ok {
		return false
	}
	if time.Now().After(until) {
		// sudah lewat exp: token ditolak parser JWT juga, bersihkan saja
		delete(b.tokens, rawToken)
		return false
	}
	return true
}

// Sweep buang entry yang sudah lewat exp; return jumlah yang dibuang.
func (b *TokenBlacklist) Sweep() int {
	now := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()
	removed := 0
	for tok, until := range b.tokens {
		if now.After(until) {
			delete(b.tokens, tok)
			removed++
		}
	}
	return removed
}

func (b *TokenBlacklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tokens)
}
