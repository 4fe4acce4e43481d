package exec

// Input represents a batch of shell commands to run on the local host.
type Input struct {
	Env       map[string]string `json:"env,omitempty" description:"environment variables to be set before command runs"`
	Commands  []string          `json:"commands,omitempty" description:"commands to execute, each as an independent shell invocation"`
	TimeoutMs int               `json:"timeoutMs,omitempty" yaml:"timeoutMs,omitempty" description:"max wait time for a single command, 0 waits indefinitely"`
}

// NewInput creates an input for the supplied commands.
func NewInput(commands ...string) *Input {
	return &Input{Commands: commands}
}
