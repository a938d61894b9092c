// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/imgtree/internal/commands"
	"github.com/temirov/imgtree/internal/config"
	"github.com/temirov/imgtree/internal/services/clipboard"
	"github.com/temirov/imgtree/internal/types"
	"github.com/temirov/imgtree/internal/utils"
)

const (
	configFlagName       = "config"
	copyFlagName         = "copy"
	verboseFlagName      = "verbose"
	versionFlagName      = "version"
	globalFlagName       = "global"
	forceFlagName        = "force"
	versionTemplate      = "imgtree version: %s\n"
	defaultRootPath      = "."
	rootUse              = "imgtree [path]"
	rootShortDescription = "list a directory tree with image dimensions"
	rootLongDescription  = `imgtree prints a directory tree indented four spaces per level.
Image files (jpg, jpeg, png, gif, bmp, tiff, webp) are annotated with their pixel size.
The .next, node_modules, .git and .idea directories are skipped wherever they appear.

The root is taken from the path argument, then the ` + config.RootEnvironmentVariable + ` environment variable,
then the "root" key of the configuration file, and finally the current directory.`
	rootUsageExample = `  # List the current directory
  imgtree

  # List a project and copy the listing to the clipboard
  imgtree --copy ~/projects/site`
	initUse              = "init"
	initShortDescription = "write the default configuration file"
	initLongDescription  = `Write a configuration file with default values.
The file is created in the working directory, or under ~/.imgtree with --global.`

	configFlagDescription  = "configuration file path"
	copyFlagDescription    = "copy the listing to the clipboard"
	verboseFlagDescription = "log skipped directories and unreadable images to stderr"
	versionFlagDescription = "display application version"
	globalFlagDescription  = "write the global configuration file"
	forceFlagDescription   = "overwrite an existing configuration file"

	configurationWrittenFormat = "Configuration written to %s\n"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorClipboardFormat reports a failed clipboard write.
	errorClipboardFormat = "copy listing to clipboard: %w"

	listingStartedLogMessage = "listing directory tree"
)

// applicationDependencies carries collaborators that tests replace.
type applicationDependencies struct {
	logger   *zap.Logger
	logLevel zap.AtomicLevel
	copier   clipboard.Copier
}

// Execute runs the imgtree application with os.Args.
func Execute(logger *zap.Logger, logLevel zap.AtomicLevel) error {
	rootCommand := createRootCommand(applicationDependencies{
		logger:   logger,
		logLevel: logLevel,
		copier:   clipboard.NewSystemClipboard(),
	})
	rootCommand.SetArgs(normalizeCopyFlagArguments(os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies applicationDependencies) *cobra.Command {
	if dependencies.logger == nil {
		dependencies.logger = zap.NewNop()
	}
	if dependencies.logLevel == (zap.AtomicLevel{}) {
		dependencies.logLevel = zap.NewAtomicLevel()
	}
	var showVersion bool
	var verboseEnabled bool
	var copyEnabled bool
	var configurationPath string

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				_, writeError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return writeError
			}
			configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: configurationPath})
			if configurationError != nil {
				return configurationError
			}
			if !command.Flags().Changed(verboseFlagName) {
				verboseEnabled = config.BoolOrDefault(configuration.Verbose, false)
			}
			if verboseEnabled {
				dependencies.logLevel.SetLevel(zap.DebugLevel)
			}
			if !command.Flags().Changed(copyFlagName) {
				copyEnabled = config.BoolOrDefault(configuration.Copy, false)
			}
			return runTree(command.OutOrStdout(), ResolveRootPath(arguments, configuration), copyEnabled, dependencies)
		},
	}
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().BoolVar(&verboseEnabled, verboseFlagName, false, verboseFlagDescription)
	rootCommand.Flags().StringVar(&configurationPath, configFlagName, "", configFlagDescription)
	registerCopyFlag(rootCommand.Flags(), &copyEnabled)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: forceOverwrite})
			if initError != nil {
				return initError
			}
			_, writeError := fmt.Fprintf(command.OutOrStdout(), configurationWrittenFormat, writtenPath)
			return writeError
		},
	}
	initCommand.Flags().BoolVar(&globalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// ResolveRootPath picks the directory to list: the path argument, then the
// configured root (which already reflects IMGTREE_ROOT), then the current directory.
func ResolveRootPath(arguments []string, configuration config.ApplicationConfiguration) string {
	if len(arguments) > 0 && arguments[0] != "" {
		return arguments[0]
	}
	if configuration.Root != "" {
		return configuration.Root
	}
	return defaultRootPath
}

// IsDirectory reports whether path names an existing directory, following symbolic links.
func IsDirectory(path string) bool {
	if path == "" {
		return false
	}
	information, statError := os.Stat(path)
	return statError == nil && information.IsDir()
}

// resolveRootDirectory converts rootPath to a clean absolute directory path.
// The boolean result is false when rootPath is not an existing directory.
func resolveRootDirectory(rootPath string) (types.ValidatedPath, bool, error) {
	if !IsDirectory(rootPath) {
		return types.ValidatedPath{}, false, nil
	}
	absolutePath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, false, fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	return types.ValidatedPath{AbsolutePath: filepath.Clean(absolutePath)}, true, nil
}

// runTree performs the preflight check and prints the listing to output.
// An invalid root prints a single error line and is not treated as a failure.
func runTree(output io.Writer, rootPath string, copyToClipboard bool, dependencies applicationDependencies) error {
	validatedPath, isValidDirectory, resolveError := resolveRootDirectory(rootPath)
	if resolveError != nil {
		return resolveError
	}
	if !isValidDirectory {
		_, writeError := fmt.Fprintln(output, types.InvalidDirectoryMessage)
		return writeError
	}

	dependencies.logger.Debug(listingStartedLogMessage, zap.String("root", validatedPath.AbsolutePath))

	var listing bytes.Buffer
	listingWriter := output
	if copyToClipboard {
		listingWriter = io.MultiWriter(output, &listing)
	}
	treeError := commands.PrintTree(listingWriter, commands.TreeOptions{
		Root:   validatedPath.AbsolutePath,
		Logger: dependencies.logger,
	})
	if treeError != nil {
		return treeError
	}

	if copyToClipboard && dependencies.copier != nil {
		if copyError := dependencies.copier.Copy(listing.String()); copyError != nil {
			return fmt.Errorf(errorClipboardFormat, copyError)
		}
	}
	return nil
}
