package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// LoreweaveYAMLConfig represents the complete loreweave.yaml file structure
type LoreweaveYAMLConfig struct {
	System     *SystemYAMLConfig        `yaml:"system"`
	Tools      map[string]ToolSetConfig `yaml:"tools"`
	Pipeline   *PipelineConfig          `yaml:"pipeline"`
	Budget     *BudgetConfig            `yaml:"budget"`
	Summarizer *SummarizerConfig        `yaml:"summarizer"`
	Extraction *ExtractionConfig        `yaml:"extraction"`
	Queue      *QueueConfig             `yaml:"queue"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Retention *RetentionConfig `yaml:"retention"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir (both optional; built-ins + env cover a bare deployment)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Apply environment overrides (LLM_MODEL, DAILY_TOKEN_BUDGET)
//  6. Build in-memory registries
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"tool_sets", stats.ToolSets,
		"llm_providers", stats.LLMProviders,
		"default_model", cfg.Pipeline.DefaultModel)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load loreweave.yaml (contains tools, pipeline, budget, summarizer, extraction, queue)
	yamlConfig, err := loader.loadLoreweaveYAML()
	if err != nil {
		return nil, NewLoadError("loreweave.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	toolSets := mergeToolSets(builtin.ToolSets, yamlConfig.Tools)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Build registries
	toolSetRegistry := NewToolSetRegistry(toolSets)
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// 6. Resolve per-concern configs (user YAML merged over built-in defaults)
	pipelineCfg, err := resolvePipelineConfig(yamlConfig.Pipeline)
	if err != nil {
		return nil, err
	}
	budgetCfg, err := resolveBudgetConfig(yamlConfig.Budget)
	if err != nil {
		return nil, err
	}
	summarizerCfg := DefaultSummarizerConfig()
	if err := mergeSection(summarizerCfg, yamlConfig.Summarizer, "summarizer"); err != nil {
		return nil, err
	}
	extractionCfg := DefaultExtractionConfig()
	if err := mergeSection(extractionCfg, yamlConfig.Extraction, "extraction"); err != nil {
		return nil, err
	}
	queueCfg := DefaultQueueConfig()
	if err := mergeSection(queueCfg, yamlConfig.Queue, "queue"); err != nil {
		return nil, err
	}
	retentionCfg := resolveRetentionConfig(yamlConfig.System)

	return &Config{
		configDir:           configDir,
		Pipeline:            pipelineCfg,
		Budget:              budgetCfg,
		Summarizer:          summarizerCfg,
		Extraction:          extractionCfg,
		Queue:               queueCfg,
		Retention:           retentionCfg,
		ToolSetRegistry:     toolSetRegistry,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand ${VAR} / ${VAR:-default} environment references before parsing
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadLoreweaveYAML loads the main config file. A missing file is not an
// error: built-in tool sets and providers activate from the environment.
func (l *configLoader) loadLoreweaveYAML() (*LoreweaveYAMLConfig, error) {
	var config LoreweaveYAMLConfig

	// Initialize map to avoid nil map
	config.Tools = make(map[string]ToolSetConfig)

	if err := l.loadYAML("loreweave.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No loreweave.yaml found, using built-in configuration")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return config.LLMProviders, nil
		}
		return nil, err
	}

	return config.LLMProviders, nil
}

// mergeSection merges a user-provided config section into defaults.
// Non-zero user values override defaults; nil user sections are a no-op.
func mergeSection[T any](defaults *T, user *T, section string) error {
	if user == nil {
		return nil
	}
	if err := mergo.Merge(defaults, user, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge %s config: %w", section, err)
	}
	return nil
}

// resolvePipelineConfig merges user pipeline config over defaults and
// applies the LLM_MODEL environment override.
func resolvePipelineConfig(user *PipelineConfig) (*PipelineConfig, error) {
	cfg := DefaultPipelineConfig()
	if err := mergeSection(cfg, user, "pipeline"); err != nil {
		return nil, err
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		cfg.DefaultModel = model
	}

	return cfg, nil
}

// resolveBudgetConfig merges user budget config over defaults and applies
// the DAILY_TOKEN_BUDGET environment override (the default budget for jobs
// that don't carry one in the request).
func resolveBudgetConfig(user *BudgetConfig) (*BudgetConfig, error) {
	cfg := DefaultBudgetConfig()
	if err := mergeSection(cfg, user, "budget"); err != nil {
		return nil, err
	}

	if raw := os.Getenv("DAILY_TOKEN_BUDGET"); raw != "" {
		budget, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: DAILY_TOKEN_BUDGET %q is not an integer", ErrInvalidValue, raw)
		}
		cfg.DefaultJobBudgetTokens = budget
	}

	return cfg, nil
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.JobRetentionDays > 0 {
		cfg.JobRetentionDays = r.JobRetentionDays
	}
	if r.CheckpointTTL > 0 {
		cfg.CheckpointTTL = r.CheckpointTTL
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
