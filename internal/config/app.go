package config

// AppConfig carries the session defaults of the shell.
type AppConfig struct {
	Title           string  `yaml:"title" split_words:"true"`
	DefaultFrom     string  `yaml:"default-from" split_words:"true"`
	DefaultTo       string  `yaml:"default-to" split_words:"true"`
	DefaultAmount   float64 `yaml:"default-amount" split_words:"true"`
	NotifyEnabled   bool    `yaml:"notify-enabled" split_words:"true"`
	NotifyThreshold float64 `yaml:"notify-threshold" split_words:"true"`
	ExportTitle     string  `yaml:"export-title" split_words:"true"`
}

func (a *AppConfig) AppTitle() string {
	return a.Title
}

func (a *AppConfig) DefaultPair() (from, to string) {
	return a.DefaultFrom, a.DefaultTo
}

func (a *AppConfig) Amount() float64 {
	return a.DefaultAmount
}

func (a *AppConfig) NotifyByDefault() bool {
	return a.NotifyEnabled
}

func (a *AppConfig) Threshold() float64 {
	return a.NotifyThreshold
}

func (a *AppConfig) PDFTitle() string {
	return a.ExportTitle
}
