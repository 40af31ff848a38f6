package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
)

const homepageSettingsKey = "homepage_settings"

// SettingValue is the admin-facing projection of one settings row.
type SettingValue struct {
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type SettingService interface {
	GetSettings() (map[string]SettingValue, error)
	GetPublicSettings() (map[string]string, error)
	UpdateSettings(settings map[string]interface{}) error
	GetHomepageSettings() (*models.HomepageSettings, error)
	UpdateHomepageSettings(hs models.HomepageSettings) error
}

type settingService struct {
	settingRepo repositories.SettingRepository
}

func NewSettingService(settingRepo repositories.SettingRepository) SettingService {
	return &settingService{settingRepo: settingRepo}
}

func (s *settingService) GetSettings() (map[string]SettingValue, error) {
	settings, err := s.settingRepo.GetAll()
	if err != nil {
		return nil, err
	}

	out := make(map[string]SettingValue, len(settings))
	for _, setting := range settings {
		out[setting.Key] = SettingValue{
			Value:       setting.Value,
			Type:        setting.Type,
			Description: setting.Description,
		}
	}
	return out, nil
}

// GetPublicSettings returns only the whitelisted keys, as a flat map for
// the public frontend.
func (s *settingService) GetPublicSettings() (map[string]string, error) {
	settings, err := s.settingRepo.GetByKeys(models.PublicSettingKeys)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}
	return out, nil
}

// UpdateSettings upserts every key in the payload. Non-string values are
// stored as their JSON encoding.
func (s *settingService) UpdateSettings(settings map[string]interface{}) error {
	for key, value := range settings {
		text, err := stringifySetting(value)
		if err != nil {
			return err
		}
		if err := s.settingRepo.Upsert(key, text); err != nil {
			return err
		}
	}
	return nil
}

func (s *settingService) GetHomepageSettings() (*models.HomepageSettings, error) {
	hs := &models.HomepageSettings{ArticlesPerSection: 6}

	setting, err := s.settingRepo.Get(homepageSettingsKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hs, nil
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(setting.Value), hs); err != nil {
		return nil, err
	}
	return hs, nil
}

func (s *settingService) UpdateHomepageSettings(hs models.HomepageSettings) error {
	if hs.ArticlesPerSection < 1 {
		hs.ArticlesPerSection = 6
	}

	raw, err := json.Marshal(hs)
	if err != nil {
		return err
	}
	return s.settingRepo.Upsert(homepageSettingsKey, string(raw))
}

func stringifySetting(value interface{}) (string, error) {
	if text, ok := value.(string); ok {
		return text, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
