package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

// multipartMemory bounds what ParseMultipartForm keeps in memory beyond the file limit
const multipartMemory = 1 << 20

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req RedeemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Redeem reward"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetPathParam retrieves a required chi URL parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(LogMsgMissingParam, paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, paramName))
		return "", false
	}
	return value, true
}

// readUpload parses a multipart form and reads the "file" field, honoring maxBytes.
// If ok is false, the HTTP response has already been written.
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (domain.Upload, bool) {
	log := logger.FromContext(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgFileTooLarge)
			return domain.Upload{}, false
		}
		log.Warn(LogMsgUploadReadFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUpload)
		return domain.Upload{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgMissingFile)
		return domain.Upload{}, false
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		log.Error(LogMsgUploadReadFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUpload)
		return domain.Upload{}, false
	}
	if int64(len(body)) > maxBytes {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgFileTooLarge)
		return domain.Upload{}, false
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	return domain.Upload{
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(body)),
		Body:        body,
	}, true
}
