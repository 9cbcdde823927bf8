package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Organize files with declarative rules"
	MsgRunShort        = "Evaluate rules and report what each one matches"
	MsgCheckShort      = "Load and validate rule files"
	MsgParseRangeShort = "Print the interval a range expression stands for"
	MsgGenConfigShort  = "Print a sample rule file"
	MsgGenConfigLong   = "Print a commented sample rule file in YAML or TOML, or write it with --output."
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Generate a man page for every command into a directory"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Settings file (default $XDG_CONFIG_HOME/organize/settings.toml)"
	MsgFlagFormat    = "Output format: auto, term, text, json or xml"
	MsgFlagTags      = "Only run rules carrying one of these tags"
	MsgFlagStrict    = "Fail when a rule uses a filter that cannot be evaluated"
	MsgFlagDomain    = "Unit family of the expression: size or time"
	MsgFlagGenFormat = "Rule file format: yaml or toml"
	MsgFlagOutput    = "Write the sample to this file instead of stdout"
	MsgFlagForce     = "Overwrite an existing file"
	MsgFlagManDir    = "Directory to write man pages to"

	// Version output
	MsgVersionFormat = "organize version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Command output
	MsgCheckRule          = "%s %s\n"
	MsgCheckDetail        = "    %s: %s\n"
	MsgCheckSummary       = "%d %s in %d %s"
	MsgCheckUnsupported   = "%d %s use filters that cannot be evaluated yet"
	MsgRangeCanonical     = "%s\n"
	MsgRangeHuman         = "%s\n"
	MsgGenConfigWritten   = "Wrote sample rules to %s"
	MsgNoRuleFiles        = "no rule files given and %s does not exist; run 'organize genconfig -o %s' to create one"
	MsgErrUnsupported     = "%d %s use filters that cannot be evaluated"
	MsgErrFileExists      = "%s already exists, use --force to overwrite it"
	MsgErrUnknownDomain   = "unknown range domain %q, expected size or time"
	MsgErrNoCommand       = "no command specified"
	MsgErrCompletionShell = "unsupported shell %q"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/parse-range-long.txt
	msgParseRangeLongRaw string
	MsgParseRangeLong    = strings.TrimSpace(msgParseRangeLongRaw)

	//go:embed msgs/parse-range-example.txt
	msgParseRangeExampleRaw string
	MsgParseRangeExample    = strings.TrimRight(msgParseRangeExampleRaw, "\n")

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimRight(msgUsageTemplateRaw, "\n") + "\n"
)
