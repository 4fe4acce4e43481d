package exec

// Command represents the result of executing a single command
type Command struct {
	Input  string `json:"input,omitempty"`  // The command that was executed
	Output string `json:"output,omitempty"` // Standard output from the command
	Stderr string `json:"stderr,omitempty"` // Standard error from the command
	Status int    `json:"status,omitempty"` // Exit code of the command
	Error  string `json:"error,omitempty"`  // Runner failure, e.g. the shell could not be started
}

// Failed reports whether the command did not complete successfully.
func (c *Command) Failed() bool {
	return c.Status != 0 || c.Error != ""
}

// Output represents the results of executing commands
type Output struct {
	Commands []*Command `json:"commands,omitempty"` // Results of individual commands
	Status   int        `json:"status,omitempty"`   // Exit code of the last command executed
}

// Last returns the result of the last executed command or nil.
func (o *Output) Last() *Command {
	if o == nil || len(o.Commands) == 0 {
		return nil
	}
	return o.Commands[len(o.Commands)-1]
}
