package auth

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies bearer tokens carrying the administrator user ID.
type Strategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

// Options tune token issuing.
type Options struct {
	TTL    time.Duration
	Issuer string
	Now    func() time.Time
}

const (
	defaultTTL    = 24 * time.Hour
	defaultIssuer = "gymkeeper"
)

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	if o.Issuer == "" {
		o.Issuer = defaultIssuer
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
