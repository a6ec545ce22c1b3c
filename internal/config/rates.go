package config

type RatesConfig struct {
	SnapshotFile string      `yaml:"file" split_words:"true"`
	Fixer        FixerConfig `yaml:"fixer"`
}

// File is the rate snapshot path. Empty means the embedded snapshot.
func (r *RatesConfig) File() string {
	return r.SnapshotFile
}

type FixerConfig struct {
	Key string `yaml:"api-key" split_words:"true"`
}

func (f *FixerConfig) ApiKey() string {
	return f.Key
}
