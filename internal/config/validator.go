package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mkreps/underlords/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "logging.level")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return logging.ValidLevels()
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate data path
	errors = append(errors, c.validateData()...)

	// Validate roster limit
	errors = append(errors, c.validateLimit()...)

	// Validate exclusion list
	errors = append(errors, c.validateExcluded()...)

	// Validate Logging config
	errors = append(errors, c.validateLogging()...)

	// Validate Explore config
	errors = append(errors, c.validateExplore()...)

	return errors
}

// validateData validates the data file path
func (c *Config) validateData() []ValidationError {
	var errors []ValidationError

	// Empty is valid: the default file under the config directory is used
	if c.Data != "" {
		// Check for null bytes which are invalid in paths
		if strings.ContainsRune(c.Data, '\x00') {
			errors = append(errors, ValidationError{
				Field:   "data",
				Value:   c.Data,
				Message: "path contains invalid null character",
			})
		}

		// Reasonable path length limit (most filesystems have limits around 4096)
		const maxPathLength = 4096
		if len(c.Data) > maxPathLength {
			errors = append(errors, ValidationError{
				Field:   "data",
				Value:   c.Data,
				Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
			})
		}
	}

	return errors
}

// validateLimit validates the roster capacity
func (c *Config) validateLimit() []ValidationError {
	var errors []ValidationError

	if c.Limit < 1 {
		errors = append(errors, ValidationError{
			Field:   "limit",
			Value:   c.Limit,
			Message: "must be at least 1",
		})
	}

	// Boards never hold more than a few dozen units
	const maxLimit = 100
	if c.Limit > maxLimit {
		errors = append(errors, ValidationError{
			Field:   "limit",
			Value:   c.Limit,
			Message: fmt.Sprintf("exceeds maximum of %d", maxLimit),
		})
	}

	return errors
}

// validateExcluded validates the hero exclusion list
func (c *Config) validateExcluded() []ValidationError {
	var errors []ValidationError

	seen := make(map[string]bool)
	for i, name := range c.Excluded {
		fieldName := fmt.Sprintf("excluded[%d]", i)

		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{
				Field:   fieldName,
				Value:   name,
				Message: "hero name cannot be empty",
			})
			continue
		}

		// Exclusion matching is case-insensitive, so duplicates are too
		normalized := strings.ToLower(name)
		if seen[normalized] {
			errors = append(errors, ValidationError{
				Field:   fieldName,
				Value:   name,
				Message: "duplicate hero name",
			})
		}
		seen[normalized] = true
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Validate log level (any case accepted, the logger normalizes)
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	// Max size must be positive
	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	// Reasonable upper bound for log file size
	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	// Max backups must be non-negative
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	// Log directory path checks (empty means stderr, which is valid)
	if c.Logging.Dir != "" {
		if strings.ContainsRune(c.Logging.Dir, '\x00') {
			errors = append(errors, ValidationError{
				Field:   "logging.dir",
				Value:   c.Logging.Dir,
				Message: "path contains invalid null character",
			})
		}
	}

	return errors
}

// validateExplore validates the ExploreConfig
func (c *Config) validateExplore() []ValidationError {
	var errors []ValidationError

	if c.Explore.Top < 1 {
		errors = append(errors, ValidationError{
			Field:   "explore.top",
			Value:   c.Explore.Top,
			Message: "must be at least 1",
		})
	}

	// Printing thousands of compositions helps nobody
	const maxTop = 1000
	if c.Explore.Top > maxTop {
		errors = append(errors, ValidationError{
			Field:   "explore.top",
			Value:   c.Explore.Top,
			Message: fmt.Sprintf("exceeds maximum of %d", maxTop),
		})
	}

	// MaxWorkers of 0 means one goroutine per branch, which is valid
	if c.Explore.MaxWorkers < 0 {
		errors = append(errors, ValidationError{
			Field:   "explore.max_workers",
			Value:   c.Explore.MaxWorkers,
			Message: "must be non-negative (0 runs one goroutine per branch)",
		})
	}

	const maxWorkersLimit = 256
	if c.Explore.MaxWorkers > maxWorkersLimit {
		errors = append(errors, ValidationError{
			Field:   "explore.max_workers",
			Value:   c.Explore.MaxWorkers,
			Message: fmt.Sprintf("exceeds maximum of %d", maxWorkersLimit),
		})
	}

	return errors
}
