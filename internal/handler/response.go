package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// respondErrorDetails is RespondError with a details field.
func respondErrorDetails(c *gin.Context, status int, code, msg, details string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg, Details: details},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", "Campos obrigatórios: nome, cpf"
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusInternalServerError, "CONFIGURATION_INCOMPLETE", "Configuração da fonte de dados incompleta"
	case errors.Is(err, domain.ErrStudentNotFound):
		return http.StatusBadRequest, "STUDENT_NOT_FOUND", "Aluno não encontrado na base de dados"
	case errors.Is(err, domain.ErrNoEligiblePayments):
		return http.StatusBadRequest, "NO_ELIGIBLE_PAYMENTS", fmt.Sprintf("Nenhum pagamento encontrado para %d", domain.TargetYear)
	case errors.Is(err, domain.ErrDataSource):
		return http.StatusBadGateway, "DATA_SOURCE_UNAVAILABLE", "Não foi possível consultar a planilha de pagamentos"
	case errors.Is(err, domain.ErrRender):
		return http.StatusInternalServerError, "RENDER_FAILED", "Falha ao gerar o PDF da declaração"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Unmapped errors carry their text in details.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.RequestIDKey)
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	if code == "INTERNAL_ERROR" {
		respondErrorDetails(c, status, code, msg, err.Error())
		return
	}
	RespondError(c, status, code, msg)
}
