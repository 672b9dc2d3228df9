package snipgraph

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Conversion errors
	ErrMsgUnknownSyntaxKind = "unknown syntax node kind"
	ErrMsgNilSyntaxNode     = "syntax node is nil"
	ErrMsgUnsupportedInput  = "unsupported input value for compilation"

	// Render errors
	ErrMsgNotStatic        = "node cannot be rendered as static text"
	ErrMsgChoiceOutOfRange = "choice selection index out of range"
	ErrMsgRebuildUnset     = "dynamic node has no rebuild function"

	// Serialization errors
	ErrMsgSerializeYAML = "YAML marshaling of node graph failed"
)

// Error code constants for categorization
const (
	ErrCodeConvert   = "SNIPGRAPH_CONVERT"
	ErrCodeRender    = "SNIPGRAPH_RENDER"
	ErrCodeSerialize = "SNIPGRAPH_SERIALIZE"
)

// Metadata key constants
const (
	MetaKeyKind     = "kind"
	MetaKeyNodeType = "node_type"
	MetaKeyPosition = "position"
	MetaKeyIndex    = "index"
	MetaKeyCount    = "count"
	MetaKeyInput    = "input"
)

// NewUnknownKindError creates an error for a syntax node kind this compiler
// does not recognize. Always a defect in the upstream tree producer.
func NewUnknownKindError(kind SyntaxKind) error {
	return cuserr.NewValidationError(ErrCodeConvert, ErrMsgUnknownSyntaxKind).
		WithMetadata(MetaKeyKind, string(kind))
}

// NewNilSyntaxNodeError creates an error for a nil node in the input tree.
func NewNilSyntaxNodeError() error {
	return cuserr.NewValidationError(ErrCodeConvert, ErrMsgNilSyntaxNode)
}

// NewUnsupportedInputError creates an error for a compilation input that is
// neither a syntax node nor an already-realized graph node.
func NewUnsupportedInputError(input string) error {
	return cuserr.NewValidationError(ErrCodeConvert, ErrMsgUnsupportedInput).
		WithMetadata(MetaKeyInput, input)
}

// NewNotStaticError creates an error for static rendering of an interactive
// node type.
func NewNotStaticError(nodeType GraphNodeType) error {
	return cuserr.NewValidationError(ErrCodeRender, ErrMsgNotStatic).
		WithMetadata(MetaKeyNodeType, string(nodeType))
}

// NewChoiceRangeError creates an error for an out-of-range choice selection.
func NewChoiceRangeError(index int, count int) error {
	return cuserr.NewValidationError(ErrCodeRender, ErrMsgChoiceOutOfRange).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index)).
		WithMetadata(MetaKeyCount, strconv.Itoa(count))
}

// NewRebuildUnsetError creates an error for a dynamic node rebuilt before its
// rebuild function was assigned.
func NewRebuildUnsetError(position int) error {
	return cuserr.NewValidationError(ErrCodeRender, ErrMsgRebuildUnset).
		WithMetadata(MetaKeyPosition, strconv.Itoa(position))
}

// NewSerializeError creates a serialization error wrapping the YAML cause.
func NewSerializeError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSerialize, ErrMsgSerializeYAML)
}
