package command

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Flags shared by every sub-command.
var GlobalFlags struct {
	Format string
	Debug  bool
}

var (
	// for inspect.
	compare bool

	// for import, list and export.
	dbPath            string
	runNumber         int32
	allRuns           bool
	importCompression string
	exportCompression string
	output            string
	noSync            bool
)
