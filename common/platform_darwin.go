package common

const (
	defaultHomeLocation = "$HOME/Library/Application Support/prompter"
)
