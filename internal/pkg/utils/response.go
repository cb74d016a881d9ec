package utils

import (
	"crooly-service/internal/pkg/constvars"
	"crooly-service/internal/pkg/dto/responses"
	"crooly-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	BuildJSONResponse(w, code, response)
}

// BuildJSONResponse writes body as is, for endpoints that do not use the ResponseDTO envelope.
func BuildJSONResponse(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage, customErr := resolveError(log, err)

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	BuildJSONResponse(w, code, response)
}

// BuildNarrativeErrorResponse renders err as {"error": message} keeping the CustomError status code.
func BuildNarrativeErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage, _ := resolveError(log, err)
	BuildJSONResponse(w, code, responses.NarrativeError{Error: clientMessage})
}

func resolveError(log *zap.Logger, err error) (int, string, *exceptions.CustomError) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Any("location", location),
			)
		}
		return code, clientMessage, customErr
	}

	log.Error(err.Error())
	return code, clientMessage, nil
}
