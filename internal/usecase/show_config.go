package usecase

import (
	"context"

	"github.com/runoshun/gantt/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config    // Merged configuration in use
	GlobalConfig    domain.ConfigInfo // Global config file info
	LocalConfig     domain.ConfigInfo // Local config file info
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	effective     *domain.Config
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, effective *domain.Config) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		effective:     effective,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	if uc.effective == nil {
		return nil, domain.ErrConfigNil
	}
	return &ShowConfigOutput{
		EffectiveConfig: uc.effective,
		GlobalConfig:    uc.configManager.GetGlobalConfigInfo(),
		LocalConfig:     uc.configManager.GetLocalConfigInfo(),
	}, nil
}
