package mcp

// ListServersInput is the input for the vim_list_servers tool.
type ListServersInput struct{}

// ListServersOutput is the output for the vim_list_servers tool.
type ListServersOutput struct {
	Servers []string `json:"servers"`
}

// PingInput is the input for the vim_ping tool.
type PingInput struct {
	ServerName string `json:"servername,omitempty" jsonschema:"Server-name pattern (case-insensitive regexp search). Default: the configured pattern, else any server."`
}

// PingOutput is the output for the vim_ping tool.
type PingOutput struct {
	ServerName string `json:"servername"`
	Responding bool   `json:"responding"`
}

// EvalInput is the input for the vim_eval tool.
type EvalInput struct {
	Expression string `json:"expression" jsonschema:"required,The Vim expression to evaluate (e.g. line('$'), expand('%:p'))"`
	ServerName string `json:"servername,omitempty" jsonschema:"Server-name pattern (case-insensitive regexp search). Default: the configured pattern, else any server."`
}

// EvalOutput is the output for the vim_eval tool.
type EvalOutput struct {
	ServerName string   `json:"servername"`
	Lines      []string `json:"lines"`
}

// SendInput is the input for the vim_send tool.
type SendInput struct {
	Commands   []string `json:"commands" jsonschema:"required,Ex commands executed in order as one batch (without leading colon)"`
	ServerName string   `json:"servername,omitempty" jsonschema:"Server-name pattern (case-insensitive regexp search). Default: the configured pattern, else any server."`
}

// SendOutput is the output for the vim_send tool.
type SendOutput struct {
	ServerName string `json:"servername"`
	Sent       int    `json:"sent"`
}

// EditInput is the input for the vim_edit tool.
type EditInput struct {
	Paths        []string `json:"paths" jsonschema:"required,Files or directories to open, in order"`
	Cwd          string   `json:"cwd,omitempty" jsonschema:"Working directory set (via :lcd) before each open"`
	OpenIn       string   `json:"open_in,omitempty" jsonschema:"Layout mode: current-window, tab, split, vsplit (default: configured mode)"`
	PreCommands  []string `json:"pre_commands,omitempty" jsonschema:"Ex commands run before each open"`
	PostCommands []string `json:"post_commands,omitempty" jsonschema:"Ex commands run after each open"`
	ServerName   string   `json:"servername,omitempty" jsonschema:"Server-name pattern (case-insensitive regexp search). Default: the configured pattern, else any server."`
}

// EditOutput is the output for the vim_edit tool.
type EditOutput struct {
	ServerName string   `json:"servername"`
	Opened     []string `json:"opened"`
}
