package main

// Short messages (one-liners)
const (
	MsgRootShort = "Resolve declarative style variants into class strings"
	MsgRootLong  = `varia resolves declarative style variant groups: named axes of mutually
exclusive or boolean options, each mapping to a fragment of output text.
Given a component library and a selection, it computes the merged class
string and which option was selected per axis.`

	MsgResolveShort = "Resolve a component's variants for a selection"
	MsgResolveLong  = `Resolve loads a component from the library, applies the selection given
on the command line, and prints the merged class string plus the resolved
value of every axis.`
	MsgResolveExample = `  varia resolve button --set size=lg --on elevated
  varia resolve button --set variant=ghost --merge
  varia resolve card --reset`

	MsgLintShort = "Validate every component declaration in the library"
	MsgLintLong  = `Lint runs the strict validation pass over every component. The resolver
itself never fails on malformed declarations; lint reports everything it
would silently tolerate. Exit status is 1 when any finding is an error.`
	MsgLintExample = `  varia lint
  varia lint --config ui/varia.toml --format checkstyle > report.xml`

	MsgListShort = "List the components declared in the library"

	MsgDocsShort = "Show the variants guide"

	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Component library file (default: varia.toml in the working directory)"
	MsgFlagSet      = "Select an option: axis=value (repeatable)"
	MsgFlagOn       = "Toggle a boolean axis on (repeatable)"
	MsgFlagOff      = "Toggle a boolean axis off (repeatable)"
	MsgFlagReset    = "Apply reset mode, ignoring all other selections"
	MsgFlagMerge    = "Conflict-resolve the resolved class tokens"
	MsgFlagPreserve = "Fragment appended verbatim after merging (repeatable)"
	MsgFlagFormat   = "Output format: auto, term, text or checkstyle"
)

// MsgUsageTemplate is cobra's usage template with the section headings run
// through the bold and upper template funcs registered in formatting.go.
const MsgUsageTemplate = `{{bold (upper "Usage:")}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{bold (upper "Aliases:")}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{bold (upper "Examples:")}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{bold (upper "Available Commands:")}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold (upper "Flags:")}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold (upper "Global Flags:")}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

{{bold (upper "Additional help topics:")}}{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
