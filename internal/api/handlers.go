package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"valentine.share/config"
	"valentine.share/internal/models"
	"valentine.share/internal/service"
	"valentine.share/internal/store"
	"valentine.share/web"
)

type Handler struct {
	surprises *service.SurpriseService
	config    *config.Config
}

func NewHandler(s *service.SurpriseService, cfg *config.Config) *Handler {
	return &Handler{
		surprises: s,
		config:    cfg,
	}
}

type CreateResponse struct {
	Success bool   `json:"success"`
	Link    string `json:"link"`
	Message string `json:"message"`
}

type GetResponse struct {
	Success bool             `json:"success"`
	Data    *models.Surprise `json:"data"`
}

type CheckResponse struct {
	Exists     bool   `json:"exists"`
	SenderName string `json:"senderName,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) CreateSurprise(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Uploads.MaxBytes)

	if err := r.ParseMultipartForm(h.config.Uploads.MaxBytes); err != nil {
		h.error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["photos"]
	if len(files) != models.PhotoCount {
		h.error(w, http.StatusBadRequest, "Please upload 5 photos.")
		return
	}

	uploads := make([]service.PhotoUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			h.internalError(w, err)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			h.internalError(w, err)
			return
		}
		uploads = append(uploads, service.PhotoUpload{
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	result, err := h.surprises.Create(r.Context(), service.CreateInput{
		PartnerName: r.FormValue("partnerName"),
		SenderName:  r.FormValue("senderName"),
		Photos:      uploads,
		RequestBase: requestBase(r),
	})
	if err != nil {
		if errors.Is(err, service.ErrPhotoCount) {
			h.error(w, http.StatusBadRequest, "Please upload 5 photos.")
			return
		}
		h.internalError(w, err)
		return
	}

	h.json(w, http.StatusOK, CreateResponse{
		Success: true,
		Link:    result.Link,
		Message: "Surprise created successfully!",
	})
}

func (h *Handler) GetSurprise(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	surprise, err := h.surprises.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.error(w, http.StatusNotFound, "Surprise not found.")
			return
		}
		h.internalError(w, err)
		return
	}

	h.json(w, http.StatusOK, GetResponse{Success: true, Data: surprise})
}

func (h *Handler) CheckSurprise(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	exists, senderName, err := h.surprises.Check(r.Context(), id)
	if err != nil {
		h.internalError(w, err)
		return
	}

	if !exists {
		h.json(w, http.StatusOK, CheckResponse{Exists: false})
		return
	}
	h.json(w, http.StatusOK, CheckResponse{Exists: true, SenderName: senderName})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, "index.html")
}

func (h *Handler) ValentinePage(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, "valentine.html")
}

func (h *Handler) serveFile(w http.ResponseWriter, filename string) {
	content, err := web.GetFile(filename)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(content)
}

func (h *Handler) json(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) error(w http.ResponseWriter, status int, message string) {
	h.json(w, status, ErrorResponse{Error: message})
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	h.error(w, http.StatusInternalServerError, "Internal Server Error: "+err.Error())
}

// requestBase derives scheme://host for link building when no base_url
// override is configured. A trusted proxy header marks TLS-terminated
// requests as https.
func requestBase(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
