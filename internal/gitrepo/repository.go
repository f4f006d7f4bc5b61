package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/structline/projectinit/internal/execshell"
)

const (
	executorNotConfiguredMessageConstant = "git executor not configured"
	initializeErrorTemplateConstant      = "unable to initialize repository in %s: %w"
	stageErrorTemplateConstant           = "unable to stage files in %s: %w"
	statusErrorTemplateConstant          = "unable to inspect working tree in %s: %w"
	commitErrorTemplateConstant          = "unable to create commit in %s: %w"
	gitInitSubcommandConstant            = "init"
	gitAddSubcommandConstant             = "add"
	gitAddAllPathSpecConstant            = "."
	gitStatusSubcommandConstant          = "status"
	gitStatusPorcelainFlagConstant       = "--porcelain"
	gitCommitSubcommandConstant          = "commit"
	gitCommitMessageFlagConstant         = "-m"
)

// ErrExecutorNotConfigured indicates the manager was constructed without a git executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// GitExecutor exposes the subset of shell execution used by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs git operations against a repository working directory.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// InitializeRepository runs git init in the provided directory.
func (manager *RepositoryManager) InitializeRepository(executionContext context.Context, repositoryPath string) error {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitInitSubcommandConstant},
		WorkingDirectory: repositoryPath,
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return fmt.Errorf(initializeErrorTemplateConstant, repositoryPath, executionError)
	}
	return nil
}

// StageAll stages every file beneath the repository root.
func (manager *RepositoryManager) StageAll(executionContext context.Context, repositoryPath string) error {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitAddSubcommandConstant, gitAddAllPathSpecConstant},
		WorkingDirectory: repositoryPath,
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return fmt.Errorf(stageErrorTemplateConstant, repositoryPath, executionError)
	}
	return nil
}

// WorktreeStatus returns the porcelain status output for the repository; an empty string means a clean tree.
func (manager *RepositoryManager) WorktreeStatus(executionContext context.Context, repositoryPath string) (string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitStatusSubcommandConstant, gitStatusPorcelainFlagConstant},
		WorkingDirectory: repositoryPath,
	}

	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return "", fmt.Errorf(statusErrorTemplateConstant, repositoryPath, executionError)
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// CreateCommit records a commit with the provided message.
func (manager *RepositoryManager) CreateCommit(executionContext context.Context, repositoryPath string, commitMessage string) error {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitCommitMessageFlagConstant, commitMessage},
		WorkingDirectory: repositoryPath,
	}

	_, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return fmt.Errorf(commitErrorTemplateConstant, repositoryPath, executionError)
	}
	return nil
}
