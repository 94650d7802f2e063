// Package account contains the user profile aggregate and roles. Profiles
// authenticate against a stored bcrypt hash and carry the role that gates
// access to client and management endpoints.
package account
