package api

import (
	"embed"
	"html/template"
	"image/png"
	"net/http"

	"github.com/prasetyowira/qrpage/constant"
	"github.com/prasetyowira/qrpage/domain/generator"
	"github.com/prasetyowira/qrpage/infrastructure/csvfile"
	appLogger "github.com/prasetyowira/qrpage/infrastructure/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// maxUploadBytes caps batch CSV uploads.
const maxUploadBytes = 10 << 20

// Handler contains service dependencies for the web front-end
type Handler struct {
	service  *generator.Service
	encoder  generator.Encoder
	composer generator.Composer
	fontPath string
}

// NewHandler creates a new web handler
func NewHandler(service *generator.Service, encoder generator.Encoder, composer generator.Composer, fontPath string) *Handler {
	return &Handler{
		service:  service,
		encoder:  encoder,
		composer: composer,
		fontPath: fontPath,
	}
}

// indexView is the template data for the form page
type indexView struct {
	OutputDir string
	FontPath  string
}

// Index renders the form page
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "index.html", indexView{
		OutputDir: h.service.OutputDir(),
		FontPath:  h.fontPath,
	}, http.StatusOK)
}

// GenerateSingle handles the single title/URL form
func (h *Handler) GenerateSingle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		appLogger.CtxWarn(ctx, "Error parsing form", appLogger.LoggerInfo{
			ContextFunction: constant.CtxGenerateOne,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIParseForm,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	entry := generator.QrEntry{
		Title: r.PostFormValue("title"),
		URL:   r.PostFormValue("url"),
	}

	result := h.service.RunSingle(ctx, entry)

	status := http.StatusOK
	if !result.Succeeded() {
		status = http.StatusUnprocessableEntity
	}
	renderTemplate(w, "result.html", result, status)
}

// GenerateBatch handles a multipart CSV upload
func (h *Handler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		appLogger.CtxWarn(ctx, "Error parsing upload", appLogger.LoggerInfo{
			ContextFunction: constant.CtxGenerateCSV,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIUpload,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("csv")
	if err != nil {
		http.Error(w, "missing csv file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	entries, err := csvfile.ReadEntries(file)
	if err != nil {
		appLogger.CtxWarn(ctx, "Rejected CSV upload", appLogger.LoggerInfo{
			ContextFunction: constant.CtxGenerateCSV,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIUpload,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})

		status := http.StatusBadRequest
		if csvfile.IsFatal(err) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	summary := h.service.RunBatch(ctx, entries)
	renderTemplate(w, "summary.html", summary, http.StatusOK)
}

// Preview streams a composed page inline without touching the output
// directory
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	title := r.URL.Query().Get("title")
	url := r.URL.Query().Get("url")
	if title == "" || url == "" {
		http.Error(w, "title and url query parameters are required", http.StatusBadRequest)
		return
	}

	qrImg, err := h.encoder.Encode(url)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	page, err := h.composer.Compose(title, qrImg, url)
	if err != nil {
		appLogger.CtxError(ctx, "Error composing preview", appLogger.LoggerInfo{
			ContextFunction: constant.CtxPreview,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIService,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
			Data: map[string]interface{}{
				constant.DataTitle: title,
				constant.DataURL:   url,
			},
		})
		http.Error(w, "failed to compose page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, page.Image); err != nil {
		appLogger.CtxError(ctx, "Error streaming preview", appLogger.LoggerInfo{
			ContextFunction: constant.CtxPreview,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIService,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
	}
}

func renderTemplate(w http.ResponseWriter, name string, data interface{}, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		appLogger.Error("Error rendering template", appLogger.LoggerInfo{
			ContextFunction: constant.CtxAPI,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIService,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
	}
}
