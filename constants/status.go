package constants

// SkipReason is the canonical reason code for a row excluded from a migration run.
type SkipReason string

// Stable values (store these exact strings in run summaries).
const (
	SkipMalformed       SkipReason = "malformed"              // tuple boundary or quoting broken
	SkipUnresolvedRef   SkipReason = "unresolved-reference"   // no farm/crop mapping found
	SkipDuplicate       SkipReason = "duplicate"              // natural key already observed
	SkipMissingRequired SkipReason = "missing-required-field" // natural key absent or uncoercible
)

// SkipReasons lists every reason code in report order.
var SkipReasons = []SkipReason{
	SkipMalformed,
	SkipUnresolvedRef,
	SkipDuplicate,
	SkipMissingRequired,
}
