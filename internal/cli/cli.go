// Package cli provides the dirtree command line interface.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/render"
	"github.com/temirov/dirtree/internal/services/clipboard"
	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	rootUse              = utils.ApplicationName + " [path]"
	rootShortDescription = "display a directory tree with aggregated disk usage"

	rootLongDescription = `dirtree walks a directory with parallel workers and prints the tree with
the size of every file and the total size of every directory.
Hard-linked files are counted once. Settings are read from ~/.dirtree/config.yaml,
then .dirtree.yaml in the working directory (or --config), then the command line.`

	rootUsageExample = `  # Human readable sizes, largest first, three levels deep
  dirtree -h -s rsize -L 3 ~/projects

  # Only Go sources, empty directories pruned automatically
  dirtree --glob -p '*.go' .

  # Allocated size in SI units as JSON
  dirtree -d physical -u si --format json /var/log`

	versionTemplate = utils.ApplicationName + " version: %s\n"

	errorWorkingDirectoryFormat   = "unable to determine working directory: %w"
	errorLoadConfigurationFormat  = "load configuration: %w"
	errorApplyConfigurationFormat = "apply configuration: %w"
	errorRenderFormat             = "render %s: %w"

	logMessageScanStarted = "scanning"
	logMessageClipboard   = "clipboard copy failed"
	logFieldDirectory     = "directory"
	logFieldThreads       = "threads"
)

// Dependencies are the process resources used by the commands.
type Dependencies struct {
	Stdout           io.Writer
	Stderr           io.Writer
	Copier           clipboard.Copier
	WorkingDirectory string
	HomeDirectory    string
	// IsTerminal reports whether colors may be written to Stdout.
	IsTerminal func(writer io.Writer) bool
}

// Execute runs the dirtree application with the process arguments.
func Execute(ctx context.Context) error {
	rootCommand := NewRootCommand(Dependencies{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Copier: clipboard.NewService(),
	})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.ExecuteContext(ctx)
}

// NewRootCommand builds the root command and its subcommands.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Stdout == nil {
		dependencies.Stdout = io.Discard
	}
	if dependencies.Stderr == nil {
		dependencies.Stderr = io.Discard
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.IsTerminal == nil {
		dependencies.IsTerminal = isTerminal
	}

	var flags scanFlags
	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if flags.showVersion {
				_, writeError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.ApplicationVersion())
				return writeError
			}
			return runScan(command, dependencies, &flags, arguments)
		},
	}
	rootCommand.SetOut(dependencies.Stdout)
	rootCommand.SetErr(dependencies.Stderr)
	registerScanFlags(rootCommand, &flags)
	rootCommand.AddCommand(newInitCommand(dependencies))
	rootCommand.CompletionOptions.DisableDefaultCmd = true
	return rootCommand
}

// resolveSettings layers defaults, configuration files and changed flags.
func resolveSettings(command *cobra.Command, dependencies Dependencies, flags *scanFlags, arguments []string) (config.Context, bool, error) {
	workingDirectory := dependencies.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return config.Context{}, false, fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	fileConfiguration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: flags.configPath,
		HomeDirectory:    dependencies.HomeDirectory,
	})
	if loadError != nil {
		return config.Context{}, false, fmt.Errorf(errorLoadConfigurationFormat, loadError)
	}
	merged := fileConfiguration.Merge(config.ApplicationConfiguration{Tree: flags.changedConfiguration(command.Flags())})

	settings := config.DefaultContext()
	if applyError := merged.Tree.ApplyTo(&settings); applyError != nil {
		return config.Context{}, false, fmt.Errorf(errorApplyConfigurationFormat, applyError)
	}
	if validateError := settings.Validate(); validateError != nil {
		return config.Context{}, false, validateError
	}
	if len(arguments) > 0 {
		settings.Directory = arguments[0]
	}
	copyToClipboard := merged.Tree.Clipboard != nil && *merged.Tree.Clipboard
	return settings, copyToClipboard, nil
}

func runScan(command *cobra.Command, dependencies Dependencies, flags *scanFlags, arguments []string) error {
	settings, copyToClipboard, settingsError := resolveSettings(command, dependencies, flags, arguments)
	if settingsError != nil {
		return settingsError
	}

	logger, loggerError := utils.NewApplicationLogger(utils.LoggerOptions{Verbose: flags.verbose})
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug(logMessageScanStarted, zap.String(logFieldDirectory, settings.Dir()), zap.Int(logFieldThreads, settings.Threads))

	assembled, initError := tree.TryInit(command.Context(), settings, logger)
	if initError != nil {
		return initError
	}

	stdout := command.OutOrStdout()
	renderer, rendererError := render.New(settings.Format, render.Options{
		Color:  !copyToClipboard && !settings.NoColor && dependencies.IsTerminal(stdout),
		Footer: true,
	})
	if rendererError != nil {
		return rendererError
	}

	if !copyToClipboard {
		if renderError := renderer.Render(stdout, assembled); renderError != nil {
			return fmt.Errorf(errorRenderFormat, settings.Format, renderError)
		}
		return nil
	}

	var rendered bytes.Buffer
	if renderError := renderer.Render(&rendered, assembled); renderError != nil {
		return fmt.Errorf(errorRenderFormat, settings.Format, renderError)
	}
	if _, writeError := stdout.Write(rendered.Bytes()); writeError != nil {
		return writeError
	}
	if copyError := dependencies.Copier.Copy(rendered.String()); copyError != nil {
		logger.Warn(logMessageClipboard, zap.Error(copyError))
	}
	return nil
}

func isTerminal(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
