package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for settings and history files (rw-------)
	SecureFilePermissions = 0o600
)

// Config defaults
const (
	DefaultBaudRate       = 1200
	DefaultConnectionType = "hayes"
	DefaultLogLevel       = "info"

	HistoryBackendJSON   = "json"
	HistoryBackendSQLite = "sqlite"
)

// Menu suggestions shown by the settings sub-menu.
var (
	StandardBaudRates = []int{300, 1200, 2400, 9600, 14400, 28800, 56000}
	ConnectionTypes   = []string{"hayes", "bell", "v90", "v92"}
	LogLevels         = []string{"debug", "info", "warn", "error"}
	HistoryBackends   = []string{HistoryBackendJSON, HistoryBackendSQLite}
)

// History constants
const (
	// HistoryCapacity bounds the persisted connection history.
	HistoryCapacity = 100
	// PhonebookLimit is the number of entries the phonebook prints.
	PhonebookLimit = 10
)

// Effect timings
const (
	DialToneDelay   = 800 * time.Millisecond
	HandshakeDelay  = 500 * time.Millisecond
	DisconnectDelay = 500 * time.Millisecond
)

// Transport constants
const (
	// HTTPTimeout caps an in-process HTTP call.
	HTTPTimeout = 30 * time.Second
	// DownloadTimeoutSeconds is passed to the external downloader.
	DownloadTimeoutSeconds = 30
	// DefaultTelnetPort is used when the telnet command omits a port.
	DefaultTelnetPort = "23"
	// DefaultDownloadName is used when no file name can be derived from the URL.
	DefaultDownloadName = "download"
	// HTTPGetHeaderLimit and HTTPHeadHeaderLimit bound the printed headers.
	HTTPGetHeaderLimit  = 5
	HTTPHeadHeaderLimit = 10
	// HTTPBodyPreview is the number of body characters shown after a GET.
	HTTPBodyPreview = 500
)

// Time formats
const (
	// TimestampFormat is used when persisting history timestamps.
	TimestampFormat = time.RFC3339Nano
	// PhonebookTimeFormat renders entries in the phonebook.
	PhonebookTimeFormat = "01-02 15:04"
)
