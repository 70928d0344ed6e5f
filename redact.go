package siftlog

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Redactor wraps a sink and scrubs registered secrets from record
// messages before they are written. Every occurrence of a secret is
// replaced with [REDACTED:<digest>], where the digest is a short
// blake2b fingerprint of the secret, so repeated occurrences stay
// correlatable without being exposed.
type Redactor struct {
	inner    Sink
	replacer *strings.Replacer
}

// NewRedactor returns a sink wrapper scrubbing the given secrets.
// Empty secrets are ignored.
func NewRedactor(inner Sink, secrets ...string) *Redactor {
	pairs := make([]string, 0, 2*len(secrets))
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		sum := blake2b.Sum256([]byte(secret))
		pairs = append(pairs, secret, "[REDACTED:"+hex.EncodeToString(sum[:4])+"]")
	}
	return &Redactor{inner: inner, replacer: strings.NewReplacer(pairs...)}
}

// Write scrubs the message and forwards the record to the wrapped
// sink.
func (s *Redactor) Write(r Record) {
	r.Message = s.replacer.Replace(r.Message)
	s.inner.Write(r)
}
