// Package auth holds the credential checks used in front of every protected route.
package auth

import "crypto/subtle"

// Verifier decides whether a presented API key is allowed in.
type Verifier interface {
	Verify(key string) bool
}

// KeySet is a fixed set of accepted API keys. A service with a single shared secret
// is a KeySet of one.
type KeySet struct {
	keys [][]byte
}

var _ Verifier = (*KeySet)(nil)

// NewKeySet builds a KeySet from keys. Empty keys are dropped so that a missing header
// can never match.
func NewKeySet(keys ...string) *KeySet {
	s := &KeySet{keys: make([][]byte, 0, len(keys))}
	for _, k := range keys {
		if k == "" {
			continue
		}
		s.keys = append(s.keys, []byte(k))
	}
	return s
}

// Verify reports whether key is a member of the set. Every member is compared in
// constant time.
func (s *KeySet) Verify(key string) bool {
	if key == "" {
		return false
	}
	presented := []byte(key)
	matched := 0
	for _, k := range s.keys {
		matched |= subtle.ConstantTimeCompare(presented, k)
	}
	return matched == 1
}
