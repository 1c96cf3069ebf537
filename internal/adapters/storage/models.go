package storage

import "time"

// HostProfileModel is the GORM model for the host_profiles table
type HostProfileModel struct {
	AuthMethod   string `gorm:"not null;default:'password';check:auth_method IN ('password','key','agent')"`
	CreatedAt    time.Time
	Host         string     `gorm:"not null"`
	IdentityFile string     `gorm:"not null;default:''"`
	LastUsedAt   *time.Time `gorm:"default:null;index:idx_last_used_at"`
	Name         string     `gorm:"primaryKey"`
	Port         int        `gorm:"not null;default:22"`
	UpdatedAt    time.Time
	Username     string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (HostProfileModel) TableName() string { return "host_profiles" }
