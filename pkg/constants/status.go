package constants

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
	StatusOK        = "ok"
)

// Metadata keys understood by storage strategies.
const (
	MetaFilename    = "filename"
	MetaFolder      = "folder"
	MetaContentType = "content-type"
	MetaSource      = "source"
	MetaResolution  = "resolution"
)
