// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is the bearer token issued by the remote authority.
//
// It carries no expiry: the client learns that a Credential is no longer
// valid only when an authenticated call answers 401. A renewed Credential
// replaces the previous one entirely.
type Credential struct {
	Token string `json:"token"`
}

// IsEmpty reports whether c holds no token.
func (c Credential) IsEmpty() bool {
	return c.Token == ""
}

// AuthRequest is the body of POST /authenticate.
type AuthRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// AuthResponse is the body returned by a successful POST /authenticate.
type AuthResponse struct {
	IDToken string `json:"id_token"`
}
