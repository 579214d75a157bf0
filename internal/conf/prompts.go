package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// NoReplyToken is the sentinel the model returns for off-topic messages.
// It is parsed out at the generation boundary and never sent to a user.
const NoReplyToken = "__NO_REPLY__"

// PromptsConfig contains all prompt configurations loaded from YAML
type PromptsConfig struct {
	Assistant AssistantPrompts `yaml:"assistant"`
}

// AssistantPrompts contains the concierge prompt templates
type AssistantPrompts struct {
	// SystemTemplate is the policy prompt. Placeholders: {{salon_name}},
	// {{booking_link}}, {{address}}, {{map_link}}, {{hours}}, {{no_reply_token}}.
	SystemTemplate string `yaml:"system_template"`

	// FallbackTemplate is the bilingual reply used when the generation
	// backend fails. Placeholder: {{booking_link}}.
	FallbackTemplate string `yaml:"fallback_template"`
}

// LoadPromptsConfig loads prompts configuration from YAML file
func LoadPromptsConfig(configPath string) (*PromptsConfig, error) {
	// Try multiple paths
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/prompts.yaml",
			"./configs/prompts.yaml",
			"/etc/ig-chatgpt-bot/prompts.yaml",
		}
		if execPath, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs", "prompts.yaml"))
		}
	}

	var data []byte
	var loadedPath string
	var err error

	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			loadedPath = p
			break
		}
	}

	if data == nil {
		// Return default config if no file found
		fmt.Println("[Config] No prompts.yaml found, using defaults")
		return DefaultPromptsConfig(), nil
	}

	fmt.Printf("[Config] Loading prompts from: %s\n", loadedPath)

	var config PromptsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse prompts.yaml: %w", err)
	}

	config.fillDefaults()

	return &config, nil
}

// fillDefaults fills in default values for empty fields
func (c *PromptsConfig) fillDefaults() {
	defaults := DefaultPromptsConfig()

	if c.Assistant.SystemTemplate == "" {
		c.Assistant.SystemTemplate = defaults.Assistant.SystemTemplate
	}
	if c.Assistant.FallbackTemplate == "" {
		c.Assistant.FallbackTemplate = defaults.Assistant.FallbackTemplate
	}
}

// BuildSystemPrompt renders the policy prompt with the salon constants.
// The result contains no per-request state, so it is built once at startup.
func (c *PromptsConfig) BuildSystemPrompt(salon SalonConfig) string {
	prompt := c.Assistant.SystemTemplate
	prompt = strings.ReplaceAll(prompt, "{{salon_name}}", salon.Name)
	prompt = strings.ReplaceAll(prompt, "{{booking_link}}", salon.BookingLink)
	prompt = strings.ReplaceAll(prompt, "{{address}}", salon.Address)
	prompt = strings.ReplaceAll(prompt, "{{map_link}}", salon.MapLink)
	prompt = strings.ReplaceAll(prompt, "{{hours}}", salon.Hours)
	prompt = strings.ReplaceAll(prompt, "{{no_reply_token}}", NoReplyToken)
	return strings.TrimSpace(prompt)
}

// FallbackReply renders the bilingual fallback used on backend failure.
func (c *PromptsConfig) FallbackReply(salon SalonConfig) string {
	reply := c.Assistant.FallbackTemplate
	reply = strings.ReplaceAll(reply, "{{booking_link}}", salon.BookingLink)
	return strings.TrimSpace(reply)
}

// DefaultPromptsConfig returns the default prompts configuration
func DefaultPromptsConfig() *PromptsConfig {
	return &PromptsConfig{
		Assistant: AssistantPrompts{
			SystemTemplate: `Ты — вежливый, краткий ассистент салона массажа «{{salon_name}}».

Правила ответа:
1) Отвечай дружелюбно и по делу, без лишней воды.
2) Если вопрос про запись, ВСЕГДА добавляй ссылку на онлайн-запись: {{booking_link}}
3) Если пользователь пишет на турецком — отвечай на турецком. Если на русском — на русском. Если язык непонятен — ответь сначала по-турецки, ниже по-русски.
4) Адрес салона: {{address}}. Карта: {{map_link}}. Часы работы: {{hours}}.
5) Форматируй короткими абзацами и эмодзи по ситуации (не больше 2).
6) Никогда не придумывай цены, используй формулировку «güncel fiyatlar ve uygun saatler için linke tıklayın / актуальные цены и свободные окошки по ссылке: {{booking_link}}».
7) Если пользователь благодарит, коротко поблагодари в ответ и пригласи снова.
8) Не запрашивай персональные данные, кроме необходимых для записи (имя, телефон, желаемое время).
9) Если сообщение НЕ относится к салону, его услугам, ценам, адресу, записи или благодарности — ответь ровно {{no_reply_token}} и больше ничем.`,
			FallbackTemplate: `Merhaba! Sorunuzu aldım. Randevu ve fiyatlar için link: {{booking_link}}

Здравствуйте! Ваш вопрос получил(а). Записаться и посмотреть цены: {{booking_link}}`,
		},
	}
}
