// Package models defines the client-side records shared by the session store,
// the credential service and the storage scopes.
package models

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/voyage/internal/common"
)

// User is the profile of the authenticated traveller. Avatar is either an
// http(s) URL or a file:// locator for an image picked from local disk.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// storedUser mirrors User with pointer fields so that missing required keys
// can be told apart from empty strings.
type storedUser struct {
	ID     *string `json:"id"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// EncodeUser serializes u into the layout kept under the "user" storage key.
func EncodeUser(u User) ([]byte, error) {
	return json.Marshal(u)
}

// DecodeUser parses a stored record. Invalid JSON or a missing id, name or
// email yields an error wrapping common.ErrMalformedRecord.
func DecodeUser(data []byte) (*User, error) {
	var raw storedUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedRecord, err)
	}

	switch {
	case raw.ID == nil:
		return nil, fmt.Errorf("%w: missing id", common.ErrMalformedRecord)
	case raw.Name == nil:
		return nil, fmt.Errorf("%w: missing name", common.ErrMalformedRecord)
	case raw.Email == nil:
		return nil, fmt.Errorf("%w: missing email", common.ErrMalformedRecord)
	}

	u := &User{ID: *raw.ID, Name: *raw.Name, Email: *raw.Email}
	if raw.Avatar != nil {
		u.Avatar = *raw.Avatar
	}
	return u, nil
}
