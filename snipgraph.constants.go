package snipgraph

// Standard TextMate/LSP variable names recognized at compile time.
// Recognition is decided here, not against the Environment: the Environment
// is only consulted at render time and may legitimately lack any of these.
const (
	VarSelectedText = "TM_SELECTED_TEXT"
	VarCurrentLine  = "TM_CURRENT_LINE"
	VarCurrentWord  = "TM_CURRENT_WORD"
	VarLineIndex    = "TM_LINE_INDEX"
	VarLineNumber   = "TM_LINE_NUMBER"
	VarFilename     = "TM_FILENAME"
	VarFilenameBase = "TM_FILENAME_BASE"
	VarDirectory    = "TM_DIRECTORY"
	VarFilepath     = "TM_FILEPATH"
)

// standardVariables is the recognition set for the Variable builder.
var standardVariables = map[string]struct{}{
	VarSelectedText: {},
	VarCurrentLine:  {},
	VarCurrentWord:  {},
	VarLineIndex:    {},
	VarLineNumber:   {},
	VarFilename:     {},
	VarFilenameBase: {},
	VarDirectory:    {},
	VarFilepath:     {},
}

// IsStandardVariable reports whether name is a recognized environment key.
func IsStandardVariable(name string) bool {
	_, ok := standardVariables[name]
	return ok
}

// Log message constants
const (
	LogMsgCompilerCreated      = "snipgraph compiler created"
	LogMsgCompileStart         = "compilation started"
	LogMsgCompileEnd           = "compilation complete"
	LogMsgPassThrough          = "realized node passed through"
	LogMsgMirrorCreated        = "mirror created for repeated position"
	LogMsgPrimaryRegistered    = "primary node registered"
	LogMsgPlaceholderCollapsed = "static placeholder collapsed"
	LogMsgPlaceholderAssembled = "interactive placeholder assembled"
	LogMsgVariableUnknown      = "unknown variable renders empty"
	LogMsgIndentCaptured       = "indent captured for variable"
	LogMsgPositionsCompacted   = "positions compacted"
)

// Log field name constants
const (
	LogFieldPosition = "position"
	LogFieldName     = "name"
	LogFieldKind     = "kind"
	LogFieldCount    = "count"
	LogFieldIndent   = "indent"
)
