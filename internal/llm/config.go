package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskBrandscript  TaskType = "brandscript"
	TaskAsset        TaskType = "asset"
	TaskRefine       TaskType = "refine"
	TaskImport       TaskType = "import"
	TaskStorySession TaskType = "story_session"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. Generation calls
// are multi-second; the story session gets the longest budget because it
// replays the full transcript.
func DefaultConfig() Config {
	return Config{
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  60000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskBrandscript:  {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 90000},
			TaskAsset:        {Temperature: 0.7, MaxTokens: 4096, TimeoutMs: 90000},
			TaskRefine:       {Temperature: 0.7, MaxTokens: 4096, TimeoutMs: 90000},
			TaskImport:       {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 60000},
			TaskStorySession: {Temperature: 0.6, MaxTokens: 2048, TimeoutMs: 120000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("BRANDFORGE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("BRANDFORGE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BRANDFORGE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BRANDFORGE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("BRANDFORGE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskBrandscript, "BRANDFORGE_LLM_BRANDSCRIPT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskAsset, "BRANDFORGE_LLM_ASSET_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRefine, "BRANDFORGE_LLM_REFINE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskImport, "BRANDFORGE_LLM_IMPORT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskStorySession, "BRANDFORGE_LLM_STORY_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
