package company

import (
	"time"

	"github.com/google/uuid"
)

type Tier string

const (
	TierBasic      Tier = "basic"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

func (t Tier) Valid() bool {
	switch t {
	case TierBasic, TierPro, TierEnterprise:
		return true
	}
	return false
}

type Profile struct {
	UserID      uuid.UUID
	Name        string
	TaxCode     string
	Industry    string
	Size        string
	Address     string
	Description string
	Verified    bool
	VerifiedAt  *time.Time
	Tier        Tier
	Benefits    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
