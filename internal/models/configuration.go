package models

// ConfigurationType classifies a configuration preset.
type ConfigurationType string

const (
	ConfigurationTypeBasic    ConfigurationType = "basic"
	ConfigurationTypeAdvanced ConfigurationType = "advanced"
	ConfigurationTypeCustom   ConfigurationType = "custom"
	ConfigurationTypeDefault  ConfigurationType = "default"
)

// ValidConfigurationTypes is the set of all valid configuration types.
var ValidConfigurationTypes = []ConfigurationType{
	ConfigurationTypeBasic,
	ConfigurationTypeAdvanced,
	ConfigurationTypeCustom,
	ConfigurationTypeDefault,
}

// IsValid returns true if the configuration type is recognized.
func (ct ConfigurationType) IsValid() bool {
	for i := range ValidConfigurationTypes {
		if ct == ValidConfigurationTypes[i] {
			return true
		}
	}
	return false
}

// Configuration is an editor/application settings preset.
type Configuration struct {
	ThemeColor        string            `json:"theme_color" yaml:"theme_color"`
	AutoSave          bool              `json:"auto_save" yaml:"auto_save"`
	Language          string            `json:"language" yaml:"language"`
	DarkMode          bool              `json:"dark_mode" yaml:"dark_mode"`
	FontSize          int               `json:"font_size" yaml:"font_size"`
	FontFamily        string            `json:"font_family" yaml:"font_family"`
	ConfigurationType ConfigurationType `json:"type" yaml:"type"`
}

// NewConfiguration creates a configuration preset of the given type.
func NewConfiguration(themeColor string, autoSave bool, language string, darkMode bool, fontSize int, fontFamily string, ct ConfigurationType) *Configuration {
	return &Configuration{
		ThemeColor:        themeColor,
		AutoSave:          autoSave,
		Language:          language,
		DarkMode:          darkMode,
		FontSize:          fontSize,
		FontFamily:        fontFamily,
		ConfigurationType: ct,
	}
}

// Type returns the configuration's discriminator.
func (c *Configuration) Type() ConfigurationType { return c.ConfigurationType }

// Clone returns an independent copy of c.
func (c *Configuration) Clone() *Configuration {
	cp := *c
	return &cp
}
