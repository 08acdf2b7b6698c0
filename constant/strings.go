package constant

// Request context keys
const (
	RequestIDKey = "request_id"
)

// HTTP header names
const (
	HeaderRequestID = "X-Request-ID"
)

// Function/Context names
const (
	// Domain context names
	CtxDomain    = "domain"
	CtxRunSingle = "RunSingle"
	CtxRunBatch  = "RunBatch"
	CtxSanitize  = "Sanitize"

	// Infrastructure context names
	CtxQREncode = "Encode"
	CtxCompose  = "Compose"
	CtxLoadFace = "LoadFace"
	CtxReadCSV  = "ReadEntries"
	CtxAPI      = "api"

	// General context names
	CtxRouter      = "Router"
	CtxMain        = "Main"
	CtxGenerateOne = "GenerateSingle"
	CtxGenerateCSV = "GenerateBatch"
	CtxPreview     = "Preview"
)

// Data field keys
const (
	// Service data fields
	DataService   = "service"
	DataTitle     = "title"
	DataURL       = "url"
	DataFilename  = "filename"
	DataOutputDir = "output_dir"
	DataTotal     = "total"
	DataSucceeded = "succeeded"
	DataFailed    = "failed"
	DataReason    = "reason"
	DataWarning   = "warning"

	// Render data fields
	DataFontPath  = "font_path"
	DataFontSize  = "font_size"
	DataPageWidth = "page_width"
	DataQRModules = "qr_modules"
	DataBoxSize   = "box_size"

	// CSV data fields
	DataCSVPath = "csv_path"
	DataRow     = "row"
	DataHeaders = "headers"

	// API data fields
	DataMethod      = "method"
	DataPath        = "path"
	DataStatus      = "status"
	DataLatency     = "latency"
	DataSize        = "size"
	DataRemoteAddr  = "remote_addr"
	DataUserAgent   = "user_agent"
	DataPort        = "port"
	DataEnvironment = "environment"
)

// Error message constants
const (
	ErrInvalidURL       = "url must be a non-empty http or https address"
	ErrMalformedRow     = "row is missing a title and/or url"
	ErrMissingCSVHeader = "csv header must contain Title and URL columns"
)

// Error codes
const (
	ErrCodeAPIParseForm      = "API001"
	ErrCodeAPIUpload         = "API002"
	ErrCodeAPIService        = "API003"
	ErrCodeAppServerStart    = "APP001"
	ErrCodeAppServerShutdown = "APP002"
)

// Error types
const (
	ErrTypeDomain = "domain"
	ErrTypeAPI    = "api"
	ErrTypeApp    = "application"
)

// API routes
const (
	RouteIndex       = "/"
	RouteGenerate    = "/generate"
	RouteBatch       = "/batch"
	RoutePreview     = "/preview"
	RouteHealthcheck = "/health"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Message constants for application
const (
	MsgApplicationStarting = "Application starting"
	MsgServerStarting      = "Server starting"
	MsgServerFailedToStart = "Server failed to start"
	MsgServerShuttingDown  = "Server shutting down"
	MsgServerShutdownError = "Error during server shutdown"
	MsgServerStopped       = "Server stopped"
	MsgRequestReceived     = "Request received"
	MsgRequestCompleted    = "Request completed"
	MsgSettingUpRoutes     = "Setting up routes"
	MsgHealthcheckRequest  = "Handling healthcheck request"
	MsgHealthy             = "Healthy"
	MsgBatchStarting       = "Batch generation starting"
	MsgBatchFinished       = "Batch generation finished"
	MsgEntryProcessed      = "Entry processed"
	MsgEntryFailed         = "Entry failed"
	MsgFontFallback        = "Falling back to bundled font"
)

// CSV header names, case-sensitive by convention
const (
	CSVHeaderTitle = "Title"
	CSVHeaderURL   = "URL"
)

// Fallback filename when a title sanitizes to nothing
const (
	FallbackFilename = "untitled"
	OutputExtension  = ".png"
)
