package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a parsed or freshly signed bearer token issued by the identity
// service. The "sub" claim carries the numeric account id.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form.
	SignedString string `json:"-"`

	// UserID caches the parsed subject.
	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim as a base-10 account id.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("read token subject: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject is not an account id: %w", err)
	}
	return id, nil
}

func (t *Token) String() string {
	return t.SignedString
}
