package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/dirtree/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	HomeDirectory    string
}

// ApplicationConfiguration holds configuration defaults read from files.
type ApplicationConfiguration struct {
	Tree TreeConfiguration `mapstructure:"tree"`
}

// TreeConfiguration mirrors the scan and display flags. Unset keys stay nil so
// that a later source can tell them apart from explicit false or zero values.
type TreeConfiguration struct {
	Follow    *bool   `mapstructure:"follow"`
	NoIgnore  *bool   `mapstructure:"no_ignore"`
	Hidden    *bool   `mapstructure:"hidden"`
	Threads   *int    `mapstructure:"threads"`
	DiskUsage string  `mapstructure:"disk_usage"`
	Unit      string  `mapstructure:"unit"`
	Human     *bool   `mapstructure:"human"`
	Long      *bool   `mapstructure:"long"`
	Prune     *bool   `mapstructure:"prune"`
	DirsOnly  *bool   `mapstructure:"dirs_only"`
	Sort      string  `mapstructure:"sort"`
	DirOrder  string  `mapstructure:"dir_order"`
	Level     *int    `mapstructure:"level"`
	Truncate  *bool   `mapstructure:"truncate"`
	Format    string  `mapstructure:"format"`
	NoColor   *bool   `mapstructure:"no_color"`
	Clipboard *bool   `mapstructure:"clipboard"`
	Pattern   *string `mapstructure:"pattern"`
	Glob      *bool   `mapstructure:"glob"`
	IGlob     *bool   `mapstructure:"iglob"`
	FileType  string  `mapstructure:"file_type"`
}

// LoadApplicationConfiguration loads configuration from the global and local files.
// Local values override global ones.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if resolvedHome, err := os.UserHomeDir(); err == nil {
			homeDirectory = resolvedHome
		}
	}
	if homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	return merged.Merge(localConfig), nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath
		}
		return filepath.Join(workingDirectory, explicitPath)
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName)
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Tree = result.Tree.merge(override.Tree)
	return result
}

func (config TreeConfiguration) merge(override TreeConfiguration) TreeConfiguration {
	result := config
	result.Follow = overrideValue(result.Follow, override.Follow)
	result.NoIgnore = overrideValue(result.NoIgnore, override.NoIgnore)
	result.Hidden = overrideValue(result.Hidden, override.Hidden)
	result.Threads = overrideValue(result.Threads, override.Threads)
	result.Human = overrideValue(result.Human, override.Human)
	result.Long = overrideValue(result.Long, override.Long)
	result.Prune = overrideValue(result.Prune, override.Prune)
	result.DirsOnly = overrideValue(result.DirsOnly, override.DirsOnly)
	result.Level = overrideValue(result.Level, override.Level)
	result.Truncate = overrideValue(result.Truncate, override.Truncate)
	result.NoColor = overrideValue(result.NoColor, override.NoColor)
	result.Clipboard = overrideValue(result.Clipboard, override.Clipboard)
	result.Pattern = overrideValue(result.Pattern, override.Pattern)
	result.Glob = overrideValue(result.Glob, override.Glob)
	result.IGlob = overrideValue(result.IGlob, override.IGlob)
	if override.DiskUsage != "" {
		result.DiskUsage = override.DiskUsage
	}
	if override.Unit != "" {
		result.Unit = override.Unit
	}
	if override.Sort != "" {
		result.Sort = override.Sort
	}
	if override.DirOrder != "" {
		result.DirOrder = override.DirOrder
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.FileType != "" {
		result.FileType = override.FileType
	}
	return result
}

// ApplyTo writes every configured value onto ctx.
func (config TreeConfiguration) ApplyTo(ctx *Context) error {
	assignValue(&ctx.FollowLinks, config.Follow)
	assignValue(&ctx.NoIgnore, config.NoIgnore)
	assignValue(&ctx.Hidden, config.Hidden)
	assignValue(&ctx.Threads, config.Threads)
	assignValue(&ctx.Human, config.Human)
	assignValue(&ctx.Long, config.Long)
	assignValue(&ctx.Prune, config.Prune)
	assignValue(&ctx.DirsOnly, config.DirsOnly)
	assignValue(&ctx.Level, config.Level)
	assignValue(&ctx.Truncate, config.Truncate)
	assignValue(&ctx.NoColor, config.NoColor)
	assignValue(&ctx.Glob, config.Glob)
	assignValue(&ctx.IGlob, config.IGlob)
	if config.Pattern != nil {
		ctx.Pattern = cloneValue(config.Pattern)
	}
	if config.DiskUsage != "" {
		diskUsage, parseError := ParseDiskUsage(config.DiskUsage)
		if parseError != nil {
			return parseError
		}
		ctx.DiskUsage = diskUsage
	}
	if config.Unit != "" {
		unit, parseError := ParseUnit(config.Unit)
		if parseError != nil {
			return parseError
		}
		ctx.Unit = unit
	}
	if config.Sort != "" {
		sortType, parseError := ParseSortType(config.Sort)
		if parseError != nil {
			return parseError
		}
		ctx.Sort = sortType
	}
	if config.DirOrder != "" {
		dirOrder, parseError := ParseDirOrder(config.DirOrder)
		if parseError != nil {
			return parseError
		}
		ctx.DirOrder = dirOrder
	}
	if config.Format != "" {
		format, parseError := ParseFormat(config.Format)
		if parseError != nil {
			return parseError
		}
		ctx.Format = format
	}
	if config.FileType != "" {
		fileType, parseError := ParseFileType(config.FileType)
		if parseError != nil {
			return parseError
		}
		ctx.FileType = fileType
	}
	return nil
}

func overrideValue[T any](current *T, override *T) *T {
	if override == nil {
		return current
	}
	return cloneValue(override)
}

func assignValue[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}

func cloneValue[T any](value *T) *T {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
