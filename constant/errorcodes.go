package constant

// Generator service error codes
const (
	// Validation errors (0xx)
	ErrCodeInvalidURL   = "GEN001"
	ErrCodeMalformedRow = "GEN002"

	// Encoding errors (1xx)
	ErrCodeQREncode = "GEN101"

	// Composition errors (2xx)
	ErrCodeCompose = "GEN201"

	// Output errors (3xx)
	ErrCodeOutputDir  = "GEN301"
	ErrCodeFileWrite  = "GEN302"
	ErrCodeFileEncode = "GEN303"
)

// CSV input error codes
const (
	ErrCodeCSVOpen          = "CSV001"
	ErrCodeCSVRead          = "CSV002"
	ErrCodeCSVMissingHeader = "CSV003"
)

// Render error codes
const (
	ErrCodeFontLoad  = "RND001"
	ErrCodeFontParse = "RND002"
)

// Error types for categorization
const (
	// Domain error types
	ErrTypeValidation  = "validation"
	ErrTypeEncoding    = "encoding"
	ErrTypeComposition = "composition"
	ErrTypeOutput      = "output"

	// Infrastructure error types
	ErrTypeInput  = "input"
	ErrTypeRender = "render"
)
