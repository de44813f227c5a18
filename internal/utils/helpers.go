package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/senyabanana/capital-schemes/internal/models"

	"github.com/rs/zerolog"
)

// SendErrorResponse sends an error as JSON.
func SendErrorResponse(w http.ResponseWriter, log *zerolog.Logger, statusCode int, message string) {
	SendJSON(w, log, statusCode, models.NewErrorResponse(statusCode, message))
}

// SendError sends err as JSON, using its status if it is an ErrorResponse.
func SendError(w http.ResponseWriter, log *zerolog.Logger, err error) {
	var errorResponse *models.ErrorResponse
	if errors.As(err, &errorResponse) {
		if errorResponse.StatusCode >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("request failed")
		} else {
			log.Warn().Err(err).Int("status", errorResponse.StatusCode).Msg("request rejected")
		}
		SendErrorResponse(w, log, errorResponse.StatusCode, errorResponse.Message)
		return
	}
	log.Error().Err(err).Msg("request failed")
	SendErrorResponse(w, log, http.StatusInternalServerError, "internal server error")
}

// SendJSON sends body as JSON with the given status.
func SendJSON(w http.ResponseWriter, log *zerolog.Logger, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// DecodeJSON decodes a request body, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return models.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

// ParseID parses a positive integer path parameter.
func ParseID(r *http.Request, name string) (int, error) {
	value := r.PathValue(name)
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, models.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("invalid %s parameter, must be a positive integer", name))
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD query parameter as midnight in loc, defaulting to now when absent.
func ParseDate(value string, loc *time.Location, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, models.NewErrorResponse(http.StatusBadRequest, "invalid date parameter, must be YYYY-MM-DD")
	}
	return date, nil
}
