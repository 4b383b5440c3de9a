// Package web serves the publication submission forms and the store
// download endpoint.
package web

import (
	"crypto/subtle"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alainchaple/formulario-publicaciones-ua/config"
	"github.com/alainchaple/formulario-publicaciones-ua/importer"
	"github.com/alainchaple/formulario-publicaciones-ua/publication"
	"github.com/alainchaple/formulario-publicaciones-ua/storage"
)

//go:embed static/*.html
var staticFS embed.FS

// ExportFilename is the fixed name offered for store downloads.
const ExportFilename = "publicaciones_ua.csv"

const (
	msgStorageFailure = "Ocurrió un error al guardar los datos."
	msgImportFailure  = "Ocurrió un error al procesar la hoja de cálculo."
	msgMissingUpload  = "Falta el archivo de la hoja de cálculo."
)

type Server struct {
	store *storage.CSVStore
	cfg   config.Config
	log   *zap.Logger
	mux   *http.ServeMux
}

type importResponse struct {
	RecordsWritten int    `json:"recordsWritten"`
	RowsSkipped    int    `json:"rowsSkipped"`
	Name           string `json:"name"`
}

func NewServer(store *storage.CSVStore, cfg config.Config, log *zap.Logger) http.Handler {
	server := &Server{
		store: store,
		cfg:   cfg,
		log:   log,
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The embedded tree always contains static/; this cannot happen at
		// runtime with a well-formed build.
		panic(err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServer(http.FS(static)))
	mux.HandleFunc("POST /submit", server.handleSubmit)
	mux.HandleFunc("POST /importar", server.handleImport)
	mux.HandleFunc("GET /data.csv", server.handleDownload)
	mux.HandleFunc("POST /admin/reset", server.handleReset)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func identityFromForm(get func(string) string) publication.Identity {
	return publication.Identity{
		Name:            strings.TrimSpace(get("nombre")),
		FirstSurname:    strings.TrimSpace(get("primer_apellido")),
		SecondSurname:   strings.TrimSpace(get("segundo_apellido")),
		ORCID:           strings.TrimSpace(get("orcid")),
		Position:        strings.TrimSpace(get("posicion")),
		DoctoralProgram: strings.TrimSpace(get("doctorado")),
	}
}

func entryFromForm(get func(string) string) publication.Entry {
	return publication.Entry{
		ArticleTitle:   get("titulo_articulo"),
		Year:           get("anio"),
		DOI:            get("doi"),
		URL:            get("url"),
		Journal:        get("revista"),
		Quartile:       get("cuartil"),
		Indexing:       get("indexacion"),
		ImpactFactor:   get("factor_impacto"),
		ResearchLine:   get("linea_investigacion"),
		LeadershipRole: get("liderazgo"),
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, fmt.Sprintf("parse form: %v", err), http.StatusBadRequest)
		return
	}

	id := identityFromForm(r.PostFormValue)
	if err := publication.ValidateIdentity(id); err != nil {
		if verr, ok := publication.AsValidationError(err); ok {
			http.Error(w, verr.Message, http.StatusBadRequest)
			return
		}
		http.Error(w, msgStorageFailure, http.StatusInternalServerError)
		return
	}

	entry := entryFromForm(r.PostFormValue)
	if strings.TrimSpace(entry.ArticleTitle) != "" {
		records := publication.Expand(id, entry, time.Now())
		lines := make([]string, len(records))
		for i, record := range records {
			lines[i] = record.EncodeLine()
		}
		if err := s.store.Append(lines); err != nil {
			s.log.Error("append submission", zap.Error(err))
			http.Error(w, msgStorageFailure, http.StatusInternalServerError)
			return
		}
		s.log.Info("submission stored",
			zap.String("name", id.Name),
			zap.Int("records", len(records)),
		)
	}

	http.Redirect(w, r, "/gracias.html", http.StatusFound)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, fmt.Sprintf("parse multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, msgMissingUpload, http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", tempUploadPattern(header.Filename))
	if err != nil {
		s.log.Error("create temp upload", zap.Error(err))
		http.Error(w, msgImportFailure, http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		s.log.Error("save upload", zap.Error(err))
		http.Error(w, msgImportFailure, http.StatusInternalServerError)
		return
	}
	if err := tmp.Close(); err != nil {
		s.log.Error("close upload temp file", zap.Error(err))
		http.Error(w, msgImportFailure, http.StatusInternalServerError)
		return
	}

	id := identityFromForm(r.FormValue)
	result, err := importer.Run(tmpPath, id, s.store, s.log)
	if err != nil {
		if verr, ok := publication.AsValidationError(err); ok {
			http.Error(w, verr.Message, http.StatusBadRequest)
			return
		}
		s.log.Error("import failed", zap.String("file", header.Filename), zap.Error(err))
		http.Error(w, msgImportFailure, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		RecordsWritten: result.RecordsWritten,
		RowsSkipped:    result.RowsSkipped,
		Name:           result.Name,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename))
	if _, err := s.store.CopyTo(w); err != nil {
		// Headers may already be out; log and abort the body.
		s.log.Error("stream store download", zap.Error(err))
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Admin.Token == "" {
		http.NotFound(w, r)
		return
	}

	token := r.Header.Get("X-Admin-Token")
	if token == "" {
		token = r.PostFormValue("token")
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.Admin.Token)) != 1 {
		http.Error(w, "token inválido", http.StatusUnauthorized)
		return
	}

	if err := s.store.Reset(); err != nil {
		s.log.Error("reset store", zap.Error(err))
		http.Error(w, msgStorageFailure, http.StatusInternalServerError)
		return
	}

	s.log.Warn("store reset by admin request")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "Datos restablecidos.\n")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func tempUploadPattern(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." {
		return "upload-*"
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}
	if ext == "" {
		return stem + "-*"
	}
	return stem + "-*" + ext
}
