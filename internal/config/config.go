package config

import "fmt"

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Converter   ConverterConfig   `yaml:"converter"`
	Raster      RasterConfig      `yaml:"raster"`
	OCR         OCRConfig         `yaml:"ocr"`
	Summary     SummaryConfig     `yaml:"summary"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	MaxUploadMB    int      `yaml:"max_upload_mb"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type ConverterConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type RasterConfig struct {
	BinaryPath string `yaml:"binary_path"`
	DPI        int    `yaml:"dpi"`
}

type OCRConfig struct {
	Languages []string `yaml:"languages"`
}

type SummaryConfig struct {
	Backend      string  `yaml:"backend"`
	Style        string  `yaml:"style"`
	DelaySeconds float64 `yaml:"delay_seconds"`
	OpenAIModel  string  `yaml:"openai_model"`
	GeminiModel  string  `yaml:"gemini_model"`

	// Credentials come from the environment at load time, never from YAML.
	OpenAIKey string `yaml:"-"`
	GeminiKey string `yaml:"-"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Work   string `yaml:"work"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	switch c.Summary.Backend {
	case "", "openai", "gemini":
	default:
		return fmt.Errorf("summary.backend must be 'openai' or 'gemini', got %q", c.Summary.Backend)
	}
	switch c.Summary.Style {
	case "", "concise", "detailed", "bullet-points":
	default:
		return fmt.Errorf("summary.style must be 'concise', 'detailed' or 'bullet-points', got %q", c.Summary.Style)
	}
	if c.Summary.DelaySeconds < 0 {
		return fmt.Errorf("summary.delay_seconds must not be negative")
	}
	if c.Raster.DPI < 0 {
		return fmt.Errorf("raster.dpi must not be negative")
	}
	if c.Server.MaxUploadMB < 0 {
		return fmt.Errorf("server.max_upload_mb must not be negative")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 50
	}
	if c.Converter.BinaryPath == "" {
		c.Converter.BinaryPath = "soffice"
	}
	if c.Converter.TimeoutSeconds == 0 {
		c.Converter.TimeoutSeconds = 120
	}
	if c.Raster.BinaryPath == "" {
		c.Raster.BinaryPath = "pdftoppm"
	}
	if c.Raster.DPI == 0 {
		c.Raster.DPI = 150
	}
	if len(c.OCR.Languages) == 0 {
		c.OCR.Languages = []string{"eng"}
	}
	if c.Summary.Backend == "" {
		c.Summary.Backend = "openai"
	}
	if c.Summary.Style == "" {
		c.Summary.Style = "concise"
	}
	if c.Summary.OpenAIModel == "" {
		c.Summary.OpenAIModel = "gpt-3.5-turbo"
	}
	if c.Summary.GeminiModel == "" {
		c.Summary.GeminiModel = "gemini-2.5-flash"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
