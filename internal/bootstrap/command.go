package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/structline/projectinit/internal/execshell"
	"github.com/structline/projectinit/internal/gitrepo"
	"github.com/structline/projectinit/internal/ui"
	"github.com/structline/projectinit/internal/utils"
)

const (
	commandUseConstant                    = "init"
	commandShortDescriptionConstant       = "Bootstrap the current directory as a project"
	commandLongDescriptionConstant        = "init creates the project directories, initializes a git repository, writes a default ignore file, and records the initial commit. Re-running is safe: existing state is reported and left untouched."
	commandExecutionErrorTemplateConstant = "project bootstrap failed: %w"
	unexpectedArgumentsMessageConstant    = "init does not accept positional arguments"
	flagDryRunNameConstant                = "dry-run"
	flagDryRunDescriptionConstant         = "Preview bootstrap actions without making changes"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for the project bootstrap.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	GitExecutor                  gitrepo.GitExecutor
	FileSystem                   FileSystem
	ExecutableResolver           ExecutableResolver
	WorkingDirectory             string
}

// Build constructs the init command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Bool(flagDryRunNameConstant, false, flagDryRunDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	options, optionsError := builder.parseOptions(command)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()

	gitExecutor, executorError := builder.resolveGitExecutor(logger)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(gitExecutor)
	if managerError != nil {
		return managerError
	}

	dependencies := Dependencies{
		Logger:             logger,
		FileSystem:         builder.resolveFileSystem(),
		ExecutableResolver: builder.resolveExecutableResolver(),
		RepositoryManager:  repositoryManager,
		Output:             utils.NewFlushingWriter(command.OutOrStdout()),
	}

	service, serviceError := NewService(dependencies)
	if serviceError != nil {
		return serviceError
	}

	bootstrapError := service.Bootstrap(command.Context(), options)
	if bootstrapError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, bootstrapError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) (Options, error) {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration = configuration.sanitize()

	workingDirectory := builder.WorkingDirectory
	if len(workingDirectory) == 0 {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return Options{}, workingDirectoryError
		}
		workingDirectory = currentDirectory
	}

	dryRunValue, _ := command.Flags().GetBool(flagDryRunNameConstant)

	options := Options{
		WorkingDirectory: workingDirectory,
		Directories:      configuration.Directories,
		IgnoreFileName:   configuration.IgnoreFile,
		CommitMessage:    configuration.CommitMessage,
		DryRun:           dryRunValue,
	}

	return options, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveGitExecutor(logger *zap.Logger) (gitrepo.GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner)
	if creationError != nil {
		return nil, creationError
	}

	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}

	return shellExecutor, nil
}

func (builder *CommandBuilder) resolveFileSystem() FileSystem {
	if builder.FileSystem != nil {
		return builder.FileSystem
	}
	return OSFileSystem{}
}

func (builder *CommandBuilder) resolveExecutableResolver() ExecutableResolver {
	if builder.ExecutableResolver != nil {
		return builder.ExecutableResolver
	}
	return OSExecutableResolver{}
}
