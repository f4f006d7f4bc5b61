package bootstrap

// DefaultIgnoreFileContent is the fixed pattern block written when no ignore file exists.
//
// Re-running the bootstrap after the file was deleted recreates it with
// byte-identical content.
const DefaultIgnoreFileContent = `# OS artifacts
.DS_Store
Thumbs.db
desktop.ini

# IDE folders
.idea/
.vscode/
*.swp
*.swo

# Temporary files
*.tmp
*.temp
*.log
*.bak
tmp/

# Environment files
.env
.env.local
.env.*.local
`
