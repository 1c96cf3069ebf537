package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/paths"
	"github.com/renato0307/shellbridge/internal/ports"
)

// SQLiteRepository implements ports.HostRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.HostRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (creating if needed) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&HostProfileModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate host profile schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements HostProfileReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, name string) (*domain.HostProfile, error) {
	var model HostProfileModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrHostProfileNotFound, name)
		}
		return nil, err
	}

	profile := hostProfileModelToDomain(model)
	return &profile, nil
}

// List implements HostProfileReader.List, most recently used first
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.HostProfile, error) {
	var models []HostProfileModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Order("last_used_at IS NULL, last_used_at DESC, name ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.HostProfile, 0, len(models))
	for _, m := range models {
		profiles = append(profiles, hostProfileModelToDomain(m))
	}
	return profiles, nil
}

// Add implements HostProfileWriter.Add
func (r *SQLiteRepository) Add(ctx context.Context, profile domain.HostProfile) error {
	model := domainToHostProfileModel(profile)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrHostProfileExists, profile.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to create host profile: %w", err)
	}
	return nil
}

// Update implements HostProfileWriter.Update. LastUsedAt and CreatedAt are kept.
func (r *SQLiteRepository) Update(ctx context.Context, profile domain.HostProfile) error {
	model := domainToHostProfileModel(profile)
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&HostProfileModel{}).
			Where("name = ?", profile.Name).
			Updates(map[string]any{
				"auth_method":   model.AuthMethod,
				"host":          model.Host,
				"identity_file": model.IdentityFile,
				"port":          model.Port,
				"username":      model.Username,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrHostProfileNotFound, profile.Name)
		}
		return nil
	}, 3)
}

// Delete implements HostProfileWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&HostProfileModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrHostProfileNotFound, name)
		}
		return nil
	}, 3)
}

// MarkUsed implements HostProfileWriter.MarkUsed
func (r *SQLiteRepository) MarkUsed(ctx context.Context, name string) error {
	now := time.Now().UTC()
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&HostProfileModel{}).
			Where("name = ?", name).
			Update("last_used_at", now)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrHostProfileNotFound, name)
		}
		return nil
	}, 3)
}

func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
