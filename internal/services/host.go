package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ports"
)

// HostService manages saved host profiles
type HostService struct {
	repo ports.HostRepository
}

// NewHostService creates a new HostService
func NewHostService(repo ports.HostRepository) *HostService {
	return &HostService{repo: repo}
}

// List returns all profiles, most recently used first
func (s *HostService) List(ctx context.Context) ([]domain.HostProfile, error) {
	return s.repo.List(ctx)
}

// Get returns one profile by name
func (s *HostService) Get(ctx context.Context, name string) (*domain.HostProfile, error) {
	return s.repo.Get(ctx, name)
}

// Save validates profile and creates it, or replaces an existing one when overwrite is set
func (s *HostService) Save(ctx context.Context, profile domain.HostProfile, overwrite bool) error {
	if profile.Port == 0 {
		profile.Port = domain.DefaultSSHPort
	}
	if profile.AuthMethod == "" {
		profile.AuthMethod = domain.AuthPassword
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	err := s.repo.Add(ctx, profile)
	if errors.Is(err, domain.ErrHostProfileExists) && overwrite {
		err = s.repo.Update(ctx, profile)
	}
	if err != nil {
		return err
	}

	logging.Logger.Info("Host profile saved", "name", profile.Name, "target", profile.Target().String())
	return nil
}

// Delete removes a profile
func (s *HostService) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	logging.Logger.Info("Host profile deleted", "name", name)
	return nil
}

// MarkUsed records a successful connection. Failures are logged, never returned,
// because they must not affect the live session.
func (s *HostService) MarkUsed(ctx context.Context, name string) {
	if err := s.repo.MarkUsed(ctx, name); err != nil {
		logging.Logger.Warn("Failed to record host profile use", "name", name, "error", err)
	}
}

// Resolve returns the profile for name with any non-zero override fields applied
func (s *HostService) Resolve(ctx context.Context, name string, override domain.Target) (*domain.HostProfile, error) {
	profile, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if override.Host != "" {
		profile.Host = override.Host
	}
	if override.Port != 0 {
		profile.Port = override.Port
	}
	if override.Username != "" {
		profile.Username = override.Username
	}
	return profile, nil
}
