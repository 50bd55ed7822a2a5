package common

const (
	defaultHomeLocation = "$APPDATA/prompter"
)
