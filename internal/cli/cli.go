// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/allfiles/internal/commands"
	"github.com/temirov/allfiles/internal/config"
	"github.com/temirov/allfiles/internal/filter"
	"github.com/temirov/allfiles/internal/output"
	"github.com/temirov/allfiles/internal/types"
	"github.com/temirov/allfiles/internal/utils"
)

const (
	exclusionFlagName    = "exclude"
	helpFlagName         = "help"
	rootUse              = "allfiles [--exclude <directory>] [--help]"
	rootShortDescription = "snapshot a directory tree into " + types.OutputFileName
	rootLongDescription  = `allfiles writes ` + types.OutputFileName + ` in the current directory.
The file starts with an indented tree of every directory and file, followed by
the contents of every file in a fenced block tagged with the file extension.
Version-control metadata, caches, virtual environments, editor settings and OS
metadata files are always left out.`
	rootUsageExample = `  # Snapshot the current directory
  allfiles

  # Leave the build directory out of the snapshot
  allfiles --exclude build`
	exclusionFlagDescription = "exclude a directory from processing"
	helpFlagDescription      = "show this help message"
	currentDirectoryLabel    = "."

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	writeOutputErrorFormat      = "writing %s: %w"
	snapshotWrittenMessage      = "snapshot written"
)

// Dependencies carries the collaborators a snapshot run needs.
type Dependencies struct {
	FileSystem       afero.Fs
	WorkingDirectory string
	Stdout           io.Writer
	Logger           *zap.Logger
	Configuration    config.ApplicationConfiguration
	IgnorePatterns   filter.IgnorePatternSet
}

// Execute runs allfiles with the process arguments.
func Execute(logger *zap.Logger, configuration config.ApplicationConfiguration) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	return ExecuteWithArguments(os.Args[1:], Dependencies{
		FileSystem:       afero.NewOsFs(),
		WorkingDirectory: workingDirectory,
		Stdout:           os.Stdout,
		Logger:           logger,
		Configuration:    configuration,
		IgnorePatterns:   filter.DefaultIgnorePatterns(),
	})
}

// ExecuteWithArguments runs allfiles with explicit arguments and collaborators.
func ExecuteWithArguments(arguments []string, dependencies Dependencies) error {
	rootCommand := createRootCommand(dependencies)
	rootCommand.SetArgs(normalizeArguments(arguments))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies Dependencies) *cobra.Command {
	var exclusions []string

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSnapshot(dependencies, firstExclusion(exclusions))
		},
	}
	if dependencies.Stdout != nil {
		rootCommand.SetOut(dependencies.Stdout)
	}
	rootCommand.Flags().StringArrayVar(&exclusions, exclusionFlagName, nil, exclusionFlagDescription)
	rootCommand.Flags().Bool(helpFlagName, false, helpFlagDescription)
	return rootCommand
}

// runSnapshot builds the snapshot for the working directory and writes it atomically.
func runSnapshot(dependencies Dependencies, exclusion string) error {
	workingDirectory := dependencies.WorkingDirectory
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	excludedRoot := ""
	if exclusion != "" {
		excludedRoot = exclusion
		if !filepath.IsAbs(excludedRoot) {
			excludedRoot = filepath.Join(workingDirectory, excludedRoot)
		}
	}
	pathFilter, filterError := filter.NewPathFilter(workingDirectory, excludedRoot, dependencies.IgnorePatterns)
	if filterError != nil {
		return filterError
	}

	snapshotBuilder := commands.SnapshotBuilder{
		FileSystem: dependencies.FileSystem,
		Filter:     pathFilter,
		Logger:     logger,
		MaxDepth:   dependencies.Configuration.MaxDepth,
		RootLabel:  currentDirectoryLabel,
	}
	snapshot, buildError := snapshotBuilder.Build(workingDirectory)
	if buildError != nil {
		return buildError
	}

	outputPath := filepath.Join(workingDirectory, types.OutputFileName)
	if writeError := output.WriteAtomically(dependencies.FileSystem, outputPath, []byte(snapshot.Document)); writeError != nil {
		return fmt.Errorf(writeOutputErrorFormat, outputPath, writeError)
	}
	logger.Debug(snapshotWrittenMessage,
		zap.String("path", outputPath),
		zap.Int("files", snapshot.Summary.TotalFiles),
		zap.Int("unreadable", snapshot.Summary.UnreadableFiles),
		zap.String("size", utils.FormatFileSize(snapshot.Summary.TotalBytes)),
	)
	return nil
}
