package logger

// Standard field keys for structured logging. Use these consistently so
// log lines stay queryable.
const (
	KeyQuery = "query" // raw input query
	KeyForm  = "form"  // classified input form: ntfs, unix, calendar
	KeyKind  = "kind"  // input interpretation, e.g. "seconds"
	KeyZone  = "zone"  // timezone name
	KeyError = "error" // error detail
)
