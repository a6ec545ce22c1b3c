package config

type TelegramConfig struct {
	ApiToken string `yaml:"token" split_words:"true"`
	Chat     int64  `yaml:"chat-id" split_words:"true"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) ChatID() int64 {
	return t.Chat
}

func (t *TelegramConfig) Enabled() bool {
	return t.ApiToken != "" && t.Chat != 0
}
