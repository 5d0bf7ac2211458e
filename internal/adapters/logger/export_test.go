package logger

// The error chain formatting is exercised directly because zerr chains are awkward to build
// through the public Logger alone.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
