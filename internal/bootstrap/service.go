package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	gitExecutableNameConstant                = "git"
	repositoryMetadataDirectoryNameConstant  = ".git"
	directoryPermissionsConstant             = fs.FileMode(0o755)
	ignoreFilePermissionsConstant            = fs.FileMode(0o644)
	gitNotInstalledMessageConstant           = "git is not installed or not on PATH"
	loggerNotConfiguredMessageConstant       = "logger not configured"
	fileSystemNotConfiguredMessageConstant   = "file system not configured"
	resolverNotConfiguredMessageConstant     = "executable resolver not configured"
	repositoryManagerMissingMessageConstant  = "repository manager not configured"
	directoryEnsureErrorTemplateConstant     = "unable to create directory %s: %w"
	ignoreFileWriteErrorTemplateConstant     = "unable to write %s: %w"
	stepPrerequisiteLineConstant             = "1. Checking for git\n"
	prerequisiteFoundTemplateConstant        = "   git found at %s\n"
	stepDirectoriesLineConstant              = "2. Ensuring project directories\n"
	directoryCreatedTemplateConstant         = "   created %s/\n"
	directoryExistsTemplateConstant          = "   %s/ already exists\n"
	directoryPlanTemplateConstant            = "   would create %s/\n"
	stepRepositoryLineConstant               = "3. Ensuring git repository\n"
	repositoryInitializedLineConstant        = "   initialized empty repository\n"
	repositoryExistsLineConstant             = "   repository already exists\n"
	repositoryPlanLineConstant               = "   would initialize repository\n"
	stepIgnoreFileTemplateConstant           = "4. Ensuring %s\n"
	ignoreFileCreatedTemplateConstant        = "   created %s\n"
	ignoreFileExistsTemplateConstant         = "   %s already exists\n"
	ignoreFilePlanTemplateConstant           = "   would create %s\n"
	stepCommitLineConstant                   = "5. Committing files\n"
	commitCreatedTemplateConstant            = "   created commit: %s\n"
	nothingToCommitLineConstant              = "   nothing to commit, working tree clean\n"
	commitPlanLineConstant                   = "   would stage all files and create a commit\n"
	bootstrapCompletedLogMessageConstant     = "bootstrap completed"
	prerequisiteResolvedLogMessageConstant   = "prerequisite resolved"
	logFieldGitPathConstant                  = "git_path"
	logFieldWorkingDirectoryConstant         = "working_directory"
	logFieldDryRunConstant                   = "dry_run"
)

// ErrGitNotInstalled reports the single fatal bootstrap condition: the git executable cannot be resolved.
var ErrGitNotInstalled = errors.New(gitNotInstalledMessageConstant)

// RepositoryManager exposes the git operations consumed by the bootstrap service.
type RepositoryManager interface {
	InitializeRepository(executionContext context.Context, repositoryPath string) error
	StageAll(executionContext context.Context, repositoryPath string) error
	WorktreeStatus(executionContext context.Context, repositoryPath string) (string, error)
	CreateCommit(executionContext context.Context, repositoryPath string, commitMessage string) error
}

// Dependencies supplies collaborators required by the bootstrap service.
type Dependencies struct {
	Logger             *zap.Logger
	FileSystem         FileSystem
	ExecutableResolver ExecutableResolver
	RepositoryManager  RepositoryManager
	Output             io.Writer
}

// Options configures a single bootstrap run.
type Options struct {
	WorkingDirectory string
	Directories      []string
	IgnoreFileName   string
	CommitMessage    string
	DryRun           bool
}

// Service orchestrates the ordered bootstrap steps.
type Service struct {
	dependencies Dependencies
}

// NewService validates dependencies and constructs a bootstrap Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Logger == nil {
		return nil, errors.New(loggerNotConfiguredMessageConstant)
	}
	if dependencies.FileSystem == nil {
		return nil, errors.New(fileSystemNotConfiguredMessageConstant)
	}
	if dependencies.ExecutableResolver == nil {
		return nil, errors.New(resolverNotConfiguredMessageConstant)
	}
	if dependencies.RepositoryManager == nil {
		return nil, errors.New(repositoryManagerMissingMessageConstant)
	}

	return &Service{dependencies: dependencies}, nil
}

// Bootstrap executes the five ordered steps against the configured working directory.
//
// Every step besides the prerequisite check is idempotent: existing
// directories, repositories, and ignore files are reported and left alone,
// and a clean working tree produces no commit.
func (service *Service) Bootstrap(executionContext context.Context, options Options) error {
	gitPath, prerequisiteError := service.checkPrerequisite()
	if prerequisiteError != nil {
		return prerequisiteError
	}

	if directoriesError := service.ensureDirectories(options); directoriesError != nil {
		return directoriesError
	}

	if repositoryError := service.ensureRepository(executionContext, options); repositoryError != nil {
		return repositoryError
	}

	if ignoreFileError := service.ensureIgnoreFile(options); ignoreFileError != nil {
		return ignoreFileError
	}

	if commitError := service.commitAll(executionContext, options); commitError != nil {
		return commitError
	}

	service.dependencies.Logger.Info(
		bootstrapCompletedLogMessageConstant,
		zap.String(logFieldGitPathConstant, gitPath),
		zap.String(logFieldWorkingDirectoryConstant, options.WorkingDirectory),
		zap.Bool(logFieldDryRunConstant, options.DryRun),
	)

	return nil
}

func (service *Service) checkPrerequisite() (string, error) {
	service.printf(stepPrerequisiteLineConstant)

	gitPath, resolveError := service.dependencies.ExecutableResolver.Resolve(gitExecutableNameConstant)
	if resolveError != nil {
		return "", ErrGitNotInstalled
	}

	service.printf(prerequisiteFoundTemplateConstant, gitPath)
	service.dependencies.Logger.Debug(prerequisiteResolvedLogMessageConstant, zap.String(logFieldGitPathConstant, gitPath))
	return gitPath, nil
}

func (service *Service) ensureDirectories(options Options) error {
	service.printf(stepDirectoriesLineConstant)

	for _, directoryName := range options.Directories {
		directoryPath := filepath.Join(options.WorkingDirectory, directoryName)
		if service.pathExists(directoryPath) {
			service.printf(directoryExistsTemplateConstant, directoryName)
			continue
		}

		if options.DryRun {
			service.printf(directoryPlanTemplateConstant, directoryName)
			continue
		}

		if mkdirError := service.dependencies.FileSystem.MkdirAll(directoryPath, directoryPermissionsConstant); mkdirError != nil {
			return fmt.Errorf(directoryEnsureErrorTemplateConstant, directoryName, mkdirError)
		}
		service.printf(directoryCreatedTemplateConstant, directoryName)
	}

	return nil
}

func (service *Service) ensureRepository(executionContext context.Context, options Options) error {
	service.printf(stepRepositoryLineConstant)

	metadataDirectoryPath := filepath.Join(options.WorkingDirectory, repositoryMetadataDirectoryNameConstant)
	if service.pathExists(metadataDirectoryPath) {
		service.printf(repositoryExistsLineConstant)
		return nil
	}

	if options.DryRun {
		service.printf(repositoryPlanLineConstant)
		return nil
	}

	if initializeError := service.dependencies.RepositoryManager.InitializeRepository(executionContext, options.WorkingDirectory); initializeError != nil {
		return initializeError
	}

	service.printf(repositoryInitializedLineConstant)
	return nil
}

func (service *Service) ensureIgnoreFile(options Options) error {
	service.printf(stepIgnoreFileTemplateConstant, options.IgnoreFileName)

	ignoreFilePath := filepath.Join(options.WorkingDirectory, options.IgnoreFileName)
	if service.pathExists(ignoreFilePath) {
		service.printf(ignoreFileExistsTemplateConstant, options.IgnoreFileName)
		return nil
	}

	if options.DryRun {
		service.printf(ignoreFilePlanTemplateConstant, options.IgnoreFileName)
		return nil
	}

	if writeError := service.dependencies.FileSystem.WriteFile(ignoreFilePath, []byte(DefaultIgnoreFileContent), ignoreFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(ignoreFileWriteErrorTemplateConstant, options.IgnoreFileName, writeError)
	}

	service.printf(ignoreFileCreatedTemplateConstant, options.IgnoreFileName)
	return nil
}

func (service *Service) commitAll(executionContext context.Context, options Options) error {
	service.printf(stepCommitLineConstant)

	if options.DryRun {
		service.printf(commitPlanLineConstant)
		return nil
	}

	if stageError := service.dependencies.RepositoryManager.StageAll(executionContext, options.WorkingDirectory); stageError != nil {
		return stageError
	}

	statusOutput, statusError := service.dependencies.RepositoryManager.WorktreeStatus(executionContext, options.WorkingDirectory)
	if statusError != nil {
		return statusError
	}

	if len(statusOutput) == 0 {
		service.printf(nothingToCommitLineConstant)
		return nil
	}

	if commitError := service.dependencies.RepositoryManager.CreateCommit(executionContext, options.WorkingDirectory, options.CommitMessage); commitError != nil {
		return commitError
	}

	service.printf(commitCreatedTemplateConstant, options.CommitMessage)
	return nil
}

func (service *Service) pathExists(path string) bool {
	_, statError := service.dependencies.FileSystem.Stat(path)
	return statError == nil
}

func (service *Service) printf(format string, arguments ...any) {
	if service.dependencies.Output == nil {
		return
	}
	fmt.Fprintf(service.dependencies.Output, format, arguments...)
}
