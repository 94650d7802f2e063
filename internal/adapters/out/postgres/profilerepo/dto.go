// Package profilerepo persists user profiles.
package profilerepo

import (
	"time"

	"github.com/google/uuid"

	"cargotrack/internal/core/domain/model/account"
	"cargotrack/internal/core/domain/model/kernel"
)

// ProfileDTO is the database representation of a user profile.
type ProfileDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:256"`
	FullName     string    `gorm:"size:256"`
	Phone        string    `gorm:"size:32"`
	CompanyName  string    `gorm:"size:256"`
	Role         string    `gorm:"size:32"`
	PasswordHash string    `gorm:"size:128"`
	IsActive     bool
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "profiles".
func (ProfileDTO) TableName() string {
	return "profiles"
}

func fromDomain(p *account.Profile) ProfileDTO {
	return ProfileDTO{
		ID:           p.ID().Bytes(),
		Email:        p.Email(),
		FullName:     p.FullName(),
		Phone:        p.Phone(),
		CompanyName:  p.CompanyName(),
		Role:         p.Role().String(),
		PasswordHash: p.PasswordHash(),
		IsActive:     p.IsActive(),
		CreatedAt:    p.CreatedAt(),
	}
}

func toDomain(dto ProfileDTO) (*account.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreProfile(account.NewProfileParams{
		ID:           id,
		Email:        dto.Email,
		FullName:     dto.FullName,
		Phone:        dto.Phone,
		CompanyName:  dto.CompanyName,
		Role:         role,
		PasswordHash: dto.PasswordHash,
		CreatedAt:    dto.CreatedAt,
	}, dto.IsActive)
}
