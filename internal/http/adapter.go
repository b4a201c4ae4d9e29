package http

import (
	"encoding/json"
	"net/http"

	"api-usage/internal/shared/loggers"
	"api-usage/internal/shared/svcerrors"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		logger := loggers.Ctx(r.Context())
		logServiceError(logger, svcErr)

		writeErrorResponse(w, r, svcErr)
	}
}

// logServiceError logs internal errors with their cause; caller mistakes stay at debug.
func logServiceError(logger *zerolog.Logger, svcErr *svcerrors.ServiceError) {
	var event *zerolog.Event
	switch {
	case svcErr.IsInternalError():
		event = logger.Error().Err(svcErr.Cause)
	case svcErr.IsNotFound():
		event = logger.Warn()
	default:
		event = logger.Debug()
	}
	event.
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Msg("handler returned error")
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	// set serviceError for middlewares
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	errorResponse := ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	}

	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(svcErr.HttpStatusCode)

	_ = json.NewEncoder(w).Encode(errorResponse)
}
