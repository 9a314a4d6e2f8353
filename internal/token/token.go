package token

import (
	"errors"
	"strconv"
	"strings"
)

const (
	MinTokenID = 1
	MaxTokenID = 10000
)

var (
	ErrEmptyTokenID   = errors.New("empty token id, please try again")
	ErrInvalidTokenID = errors.New("invalid token id, please try again")
)

// TokenID identifies one WonderPals NFT.
type TokenID int

// ParseTokenID validates user input as typed into the token id field.
func ParseTokenID(s string) (TokenID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyTokenID
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0, ErrInvalidTokenID
	}
	id := TokenID(n)
	if !id.Valid() {
		return 0, ErrInvalidTokenID
	}
	return id, nil
}

func (id TokenID) Valid() bool {
	return id >= MinTokenID && id <= MaxTokenID
}

func (id TokenID) String() string {
	return strconv.Itoa(int(id))
}
