package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/dirtree/internal/config"
)

const (
	initUse              = "init"
	initShortDescription = "write the default configuration file"
	initLongDescription  = `Write the default configuration to .dirtree.yaml in the working directory,
or to ~/.dirtree/config.yaml with --global. Existing files are kept unless --force is given.`

	globalFlagName = "global"
	forceFlagName  = "force"

	initCompletedTemplate = "Configuration written to %s\n"
)

func newInitCommand(dependencies Dependencies) *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: dependencies.WorkingDirectory,
				HomeDirectory:    dependencies.HomeDirectory,
			})
			if initError != nil {
				return initError
			}
			_, writeError := fmt.Fprintf(command.OutOrStdout(), initCompletedTemplate, destinationPath)
			return writeError
		},
	}
	registerBooleanFlag(initCommand.Flags(), &global, booleanFlag{name: globalFlagName, usage: "write the global configuration file"})
	registerBooleanFlag(initCommand.Flags(), &force, booleanFlag{name: forceFlagName, usage: "overwrite an existing configuration file"})
	return initCommand
}
