package config

import "time"

// LLMConfig represents the configuration for the LLM provider
type LLMConfig struct {
	Provider    string
	MaxAttempts int
	BackoffUnit time.Duration
}

// OpenAIConfig represents the configuration for an OpenAI-compatible endpoint
// (OpenAI proper, or Groq via its compatibility layer)
type OpenAIConfig struct {
	APIKey        string
	BaseURL       string
	ModelName     string
	MaxTokens     int
	Temperature   float32
	TopP          float32
	MaxResumeSize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey        string
	ModelName     string
	MaxTokens     int
	Temperature   float32
	TopP          float32
	MaxResumeSize int
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region        string
	ModelID       string
	MaxTokens     int
	Temperature   float32
	TopP          float32
	MaxResumeSize int
}

// GmailConfig represents the configuration for the Gmail mail source
type GmailConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
}

// IMAPConfig represents the configuration for the IMAP mail source
type IMAPConfig struct {
	Host     string
	Email    string
	Password string
	Folder   string
}

// IngestConfig represents the resume ingestion window and store location
type IngestConfig struct {
	DaysFilter  int
	MaxMessages int
	TempDir     string
}

// SMTPConfig represents the configuration for outbound decision emails
type SMTPConfig struct {
	Address  string
	Username string
	Password string
	From     string
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() LLMConfig {
	unit, err := c.GetDuration("llm.backoff_unit")
	if err != nil {
		unit = time.Second
	}
	return LLMConfig{
		Provider:    c.GetString("llm.provider"),
		MaxAttempts: c.GetInt("llm.max_attempts"),
		BackoffUnit: unit,
	}
}

// GetOpenAI returns the OpenAI-compatible endpoint configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:        c.GetString("openai.api_key"),
		BaseURL:       c.GetString("openai.base_url"),
		ModelName:     c.GetString("openai.model_name"),
		MaxTokens:     c.GetInt("openai.max_tokens"),
		Temperature:   float32(c.GetFloat64("openai.temperature")),
		TopP:          float32(c.GetFloat64("openai.top_p")),
		MaxResumeSize: c.GetInt("openai.max_resume_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:        c.GetString("gemini.api_key"),
		ModelName:     c.GetString("gemini.model_name"),
		MaxTokens:     c.GetInt("gemini.max_tokens"),
		Temperature:   float32(c.GetFloat64("gemini.temperature")),
		TopP:          float32(c.GetFloat64("gemini.top_p")),
		MaxResumeSize: c.GetInt("gemini.max_resume_size"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:        c.GetString("bedrock.region"),
		ModelID:       c.GetString("bedrock.model_id"),
		MaxTokens:     c.GetInt("bedrock.max_tokens"),
		Temperature:   float32(c.GetFloat64("bedrock.temperature")),
		TopP:          float32(c.GetFloat64("bedrock.top_p")),
		MaxResumeSize: c.GetInt("bedrock.max_resume_size"),
	}
}

// GetGmail returns the Gmail source configuration
func (c *Config) GetGmail() GmailConfig {
	return GmailConfig{
		ClientID:     c.GetString("gmail.client_id"),
		ClientSecret: c.GetString("gmail.client_secret"),
		RefreshToken: c.GetString("gmail.refresh_token"),
		TokenURL:     c.GetString("gmail.token_url"),
	}
}

// GetIMAP returns the IMAP source configuration
func (c *Config) GetIMAP() IMAPConfig {
	return IMAPConfig{
		Host:     c.GetString("imap.host"),
		Email:    c.GetString("imap.email"),
		Password: c.GetString("imap.password"),
		Folder:   c.GetString("imap.folder"),
	}
}

// GetIngest returns the ingestion configuration
func (c *Config) GetIngest() IngestConfig {
	return IngestConfig{
		DaysFilter:  c.GetInt("ingest.days_filter"),
		MaxMessages: c.GetInt("ingest.max_messages"),
		TempDir:     c.GetString("ingest.temp_dir"),
	}
}

// GetSMTP returns the outbound SMTP configuration
func (c *Config) GetSMTP() SMTPConfig {
	return SMTPConfig{
		Address:  c.GetString("smtp.address"),
		Username: c.GetString("smtp.username"),
		Password: c.GetString("smtp.password"),
		From:     c.GetString("smtp.from"),
	}
}
