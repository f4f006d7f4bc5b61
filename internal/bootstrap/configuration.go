package bootstrap

import (
	"fmt"
	"strings"
)

const (
	directoriesConfigurationKeySuffixConstant   = "directories"
	ignoreFileConfigurationKeySuffixConstant    = "ignore_file"
	commitMessageConfigurationKeySuffixConstant = "commit_message"
	configurationKeyTemplateConstant            = "%s.%s"
)

const (
	defaultSourceDirectoryNameConstant        = "src"
	defaultDocumentationDirectoryNameConstant = "docs"
	defaultIgnoreFileNameConstant             = ".gitignore"
	defaultCommitMessageConstant              = "Initial commit"
)

// CommandConfiguration captures configuration values for the bootstrap command.
type CommandConfiguration struct {
	Directories   []string `mapstructure:"directories"`
	IgnoreFile    string   `mapstructure:"ignore_file"`
	CommitMessage string   `mapstructure:"commit_message"`
}

// DefaultCommandConfiguration provides baseline configuration values for the bootstrap command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Directories:   []string{defaultSourceDirectoryNameConstant, defaultDocumentationDirectoryNameConstant},
		IgnoreFile:    defaultIgnoreFileNameConstant,
		CommitMessage: defaultCommitMessageConstant,
	}
}

// DefaultConfigurationValues exposes Viper defaults for the bootstrap command under the provided configuration key.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		fmt.Sprintf(configurationKeyTemplateConstant, configurationKey, directoriesConfigurationKeySuffixConstant):   defaults.Directories,
		fmt.Sprintf(configurationKeyTemplateConstant, configurationKey, ignoreFileConfigurationKeySuffixConstant):    defaults.IgnoreFile,
		fmt.Sprintf(configurationKeyTemplateConstant, configurationKey, commitMessageConfigurationKeySuffixConstant): defaults.CommitMessage,
	}
}

// sanitize trims configuration values and substitutes defaults for empty entries.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Directories = sanitizeDirectories(configuration.Directories)
	if len(sanitized.Directories) == 0 {
		sanitized.Directories = []string{defaultSourceDirectoryNameConstant, defaultDocumentationDirectoryNameConstant}
	}

	sanitized.IgnoreFile = strings.TrimSpace(configuration.IgnoreFile)
	if len(sanitized.IgnoreFile) == 0 {
		sanitized.IgnoreFile = defaultIgnoreFileNameConstant
	}

	sanitized.CommitMessage = strings.TrimSpace(configuration.CommitMessage)
	if len(sanitized.CommitMessage) == 0 {
		sanitized.CommitMessage = defaultCommitMessageConstant
	}

	return sanitized
}

func sanitizeDirectories(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
