package config

// mergeToolSets merges built-in and user-defined tool set configurations.
// User-defined tool sets override built-in tool sets with the same name.
func mergeToolSets(builtinToolSets map[string]ToolSetConfig, userToolSets map[string]ToolSetConfig) map[string]*ToolSetConfig {
	result := make(map[string]*ToolSetConfig)

	// First, add built-in tool sets
	for name, toolSet := range builtinToolSets {
		toolSetCopy := toolSet
		result[name] = &toolSetCopy
	}

	// Then, override with user-defined tool sets (or add new ones)
	for name, userToolSet := range userToolSets {
		toolSetCopy := userToolSet
		result[name] = &toolSetCopy
	}

	return result
}

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	// First, add built-in providers
	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// Then, override with user-defined providers (or add new ones)
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}
