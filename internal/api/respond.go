package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
)

// maxJSONBody bounds JSON request bodies. Settings and catalog payloads are
// small text.
const maxJSONBody = 1 << 20

// multipartMemory is how much of a multipart body is buffered in memory
// before spilling file parts to disk.
const multipartMemory = 32 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.WithMessage(apperror.ErrBadRequest, "Request body required")
		}
		return apperror.Wrap(err, apperror.ErrBadRequest)
	}
	return nil
}

// pathID parses the {id} path value. A malformed id cannot match any row, so
// it is reported as not found.
func pathID(r *http.Request) (pgtype.UUID, error) {
	id, err := db.ParseUUID(r.PathValue("id"))
	if err != nil {
		return pgtype.UUID{}, apperror.Wrap(err, apperror.ErrNotFound)
	}
	return id, nil
}

// lookupErr maps a record lookup failure.
func lookupErr(err error) error {
	if db.IsNotFound(err) {
		return apperror.Wrap(err, apperror.ErrNotFound)
	}
	return apperror.Wrap(err, apperror.ErrInternal)
}

// parseMultipart reads a multipart form, honoring max when positive.
func parseMultipart(w http.ResponseWriter, r *http.Request, max int64) error {
	limitBody(w, r, max)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.Wrap(err, apperror.ErrFileTooLarge)
		}
		return apperror.Wrap(err, apperror.ErrBadRequest)
	}
	return nil
}

// formFile returns the named part, or ok=false when it is absent or empty.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, false
	}
	if header.Size == 0 {
		_ = file.Close()
		return nil, nil, false
	}
	return file, header, true
}

func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// formDate accepts "2006-01-02" from date inputs or a full RFC 3339 stamp.
// An empty value yields an invalid timestamp.
func formDate(r *http.Request, key string) (pgtype.Timestamptz, error) {
	raw := formString(r, key)
	if raw == "" {
		return pgtype.Timestamptz{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return db.Timestamptz(t), nil
		}
	}
	return pgtype.Timestamptz{}, apperror.WithMessage(apperror.ErrBadRequest, "Invalid date")
}

// formBool treats "true", "on" and "1" as set, matching checkbox posts.
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(formString(r, key)) {
	case "true", "on", "1":
		return true
	}
	return false
}

// flexInt decodes a JSON number or a numeric string. Admin forms post order
// fields either way.
type flexInt int32

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}
