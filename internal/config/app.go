package config

const defaultUpdatedLayout = "2006. 01. 02. 15:04:05"

type FontSizeConfig struct {
	Message      float64 `yaml:"message" json:"message" validate:"gte=0"`
	Currencies   float64 `yaml:"currencies" json:"currencies" validate:"gte=0"`
	RatesUpdated float64 `yaml:"rates-updated" json:"ratesUpdated" validate:"gte=0"`
	Usage        float64 `yaml:"usage" json:"usage" validate:"gte=0"`
}

type DisplayModuleConfig struct {
	RatesUpdated bool `yaml:"rates-updated"`
	Usage        bool `yaml:"usage"`
}

type AppConfig struct {
	ConvertTo            string              `yaml:"convert-to" validate:"required,len=3,alpha"`
	DecimalsNum          int32               `yaml:"decimals" validate:"gte=0,lte=10"`
	UpdateFrequencyHours float64             `yaml:"update-frequency-hours" validate:"gt=0"`
	MaxCurrenciesNum     int                 `yaml:"max-currencies" validate:"gte=0"`
	FontSizes            FontSizeConfig      `yaml:"font-size"`
	DisplayModules       DisplayModuleConfig `yaml:"display-module"`
	CurrenciesFile       string              `yaml:"currencies-file" validate:"required"`
	NumberLocale         string              `yaml:"locale"`
	UpdatedLayout        string              `yaml:"updated-layout"`
	Prefetch             bool                `yaml:"prefetch"`
}

func (a *AppConfig) TargetCurrency() string {
	return a.ConvertTo
}

func (a *AppConfig) Decimals() int32 {
	return a.DecimalsNum
}

func (a *AppConfig) UpdateFrequency() float64 {
	return a.UpdateFrequencyHours
}

// MaxCurrencies is the number of lines a popup shows, 0 means all.
func (a *AppConfig) MaxCurrencies() int {
	return a.MaxCurrenciesNum
}

func (a *AppConfig) UsageVisible() bool {
	return a.DisplayModules.Usage
}

func (a *AppConfig) RatesUpdatedVisible() bool {
	return a.DisplayModules.RatesUpdated
}

func (a *AppConfig) FontSize() FontSizeConfig {
	return a.FontSizes
}

func (a *AppConfig) Locale() string {
	return a.NumberLocale
}

func (a *AppConfig) LastUpdatedLayout() string {
	if a.UpdatedLayout == "" {
		return defaultUpdatedLayout
	}
	return a.UpdatedLayout
}

func (a *AppConfig) Currencies() string {
	return a.CurrenciesFile
}

func (a *AppConfig) PrefetchEnabled() bool {
	return a.Prefetch
}
