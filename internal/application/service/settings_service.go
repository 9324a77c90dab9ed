package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
)

// SettingsService handles per-user settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves user settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.UserSettings{
			UserID:         userID,
			Language:       "es",
			Timezone:       "America/Bogota",
			Currency:       "COP",
			DateFormat:     "DD/MM/YYYY",
			OrderAlerts:    true,
			LowStockAlerts: true,
			Theme:          "light",
			SessionTimeout: "30",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	Language       string
	Timezone       string
	Currency       string
	DateFormat     string
	OrderAlerts    *bool
	LowStockAlerts *bool
	Theme          string
	SessionTimeout string
}

// UpdateSettings updates user settings
func (s *SettingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Language != "" {
		settings.Language = input.Language
	}
	if input.Timezone != "" {
		settings.Timezone = input.Timezone
	}
	if input.Currency != "" {
		settings.Currency = input.Currency
	}
	if input.DateFormat != "" {
		settings.DateFormat = input.DateFormat
	}
	if input.OrderAlerts != nil {
		settings.OrderAlerts = *input.OrderAlerts
	}
	if input.LowStockAlerts != nil {
		settings.LowStockAlerts = *input.LowStockAlerts
	}
	if input.Theme != "" {
		settings.Theme = input.Theme
	}
	if input.SessionTimeout != "" {
		settings.SessionTimeout = input.SessionTimeout
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
