package account

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// ErrProfileIsNotConstructed is returned when a Profile instance was not
// created through the NewProfile or RestoreProfile factory methods.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")

// Profile is a registered user of the service. The email is stored lowercased
// and serves as the login; passwordHash is a bcrypt hash and is never exposed
// through the API.
type Profile struct {
	id           kernel.UUID
	email        string
	fullName     string
	phone        string
	companyName  string
	role         Role
	passwordHash string
	isActive     bool
	createdAt    time.Time

	isConstructed bool
}

// NewProfileParams carries the attributes of a new profile.
type NewProfileParams struct {
	ID           kernel.UUID
	Email        string
	FullName     string
	Phone        string
	CompanyName  string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// NewProfile creates an active profile after validating all invariants.
func NewProfile(p NewProfileParams) (*Profile, error) {
	profile := &Profile{
		phone:         strings.TrimSpace(p.Phone),
		companyName:   strings.TrimSpace(p.CompanyName),
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		profile.setID(p.ID),
		profile.setEmail(p.Email),
		profile.setFullName(p.FullName),
		profile.setRole(p.Role),
		profile.setPasswordHash(p.PasswordHash),
		profile.setCreatedAt(p.CreatedAt),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

// RestoreProfile rebuilds a profile from persistence, including its active flag.
func RestoreProfile(p NewProfileParams, isActive bool) (*Profile, error) {
	profile, err := NewProfile(p)
	if err != nil {
		return nil, err
	}
	profile.isActive = isActive
	return profile, nil
}

// Validate ensures the profile was created through a factory method.
func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

// IsEqual compares two profiles by their unique identifiers.
func (p *Profile) IsEqual(other *Profile) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the profile's unique identifier.
func (p *Profile) ID() kernel.UUID { return p.id }

// Email returns the lowercased login email.
func (p *Profile) Email() string { return p.email }

// FullName returns the user's display name.
func (p *Profile) FullName() string { return p.fullName }

// Phone returns the contact phone, possibly empty.
func (p *Profile) Phone() string { return p.phone }

// CompanyName returns the optional company name.
func (p *Profile) CompanyName() string { return p.companyName }

// Role returns the profile's role.
func (p *Profile) Role() Role { return p.role }

// PasswordHash returns the stored bcrypt hash.
func (p *Profile) PasswordHash() string { return p.passwordHash }

// IsActive reports whether the profile may sign in.
func (p *Profile) IsActive() bool { return p.isActive }

// CreatedAt returns the registration time.
func (p *Profile) CreatedAt() time.Time { return p.createdAt }

// UpdateContact replaces the profile's display name and contact details.
func (p *Profile) UpdateContact(fullName, phone, companyName string) error {
	if err := p.setFullName(fullName); err != nil {
		return err
	}
	p.phone = strings.TrimSpace(phone)
	p.companyName = strings.TrimSpace(companyName)
	return nil
}

// ChangePasswordHash replaces the stored bcrypt hash.
func (p *Profile) ChangePasswordHash(hash string) error {
	return p.setPasswordHash(hash)
}

// Deactivate blocks the profile from signing in.
func (p *Profile) Deactivate() {
	p.isActive = false
}

// Activate allows the profile to sign in again.
func (p *Profile) Activate() {
	p.isActive = true
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	p.email = email
	return nil
}

func (p *Profile) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if len(fullName) < 2 {
		return errs.NewValueIsRequiredError("fullName")
	}
	p.fullName = fullName
	return nil
}

func (p *Profile) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Profile) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	p.passwordHash = hash
	return nil
}

func (p *Profile) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
