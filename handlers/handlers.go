package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxUploadBytes = 32 << 20

// respondJSON writes v as the response body. Handled failures share the
// success status; the body shape tells them apart.
func respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// respondMessage is the domain-failure shape: HTTP 200 with a
// human-readable message field. Conflicts, not-found and downstream
// failures all use it.
func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, map[string]string{"message": message})
}

// respondValidationError rejects a malformed payload before any domain work
// runs, with field-level detail.
func respondValidationError(w http.ResponseWriter, detail string) {
	http.Error(w, fmt.Sprintf(`{"status": 400, "error_msg": %q}`, detail), http.StatusBadRequest)
}

// isMultipart reports whether the request carries a multipart form (file
// uploads); other requests are JSON bodies.
func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// formFileString reads the named file part and returns its raw bytes as a
// string, empty when the part is absent.
func formFileString(r *http.Request, name string) (string, error) {
	file, _, err := r.FormFile(name)
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// encodeFileData converts raw upload bytes to the text encoding stored on
// image documents.
func encodeFileData(raw string) string {
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// parseOptionalID parses a reference id field, absent fields resolving to
// nil. Referential integrity is not checked beyond the id shape.
func parseOptionalID(value string) (*primitive.ObjectID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
