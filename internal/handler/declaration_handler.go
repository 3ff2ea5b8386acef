package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/format"
	"irpfdecl/internal/middleware"
	"irpfdecl/internal/service"
)

const (
	serviceName     = "API Declaração IRPF"
	tutorialMessage = "Turma SEI - enviar tutorial escrito"
	pdfContentType  = "application/pdf"
)

// DeclarationHandler handles the declaration endpoints.
type DeclarationHandler struct {
	declarationService service.DeclarationService
	version            string
}

// NewDeclarationHandler creates a new DeclarationHandler.
func NewDeclarationHandler(declarationService service.DeclarationService, version string) *DeclarationHandler {
	return &DeclarationHandler{declarationService: declarationService, version: version}
}

// Get handles GET /api/declaracao
// @Summary Service info or declaration by query
// @Description Without nome and cpf, returns service information. Otherwise generates the declaration from the query string.
// @Tags declaracao
// @Produce json,application/pdf
// @Param nome query string false "Student name"
// @Param cpf query string false "Student CPF"
// @Param email query string false "Student email"
// @Param format query string false "Set to base64 for a JSON payload"
// @Success 200 {object} ServiceInfoResponse "Service information"
// @Failure 400 {object} APIResponse "Validation error, student not found or no payments"
// @Failure 500 {object} APIResponse "Configuration incomplete or render failure"
// @Failure 502 {object} APIResponse "Spreadsheet unavailable"
// @Router /declaracao [get]
func (h *DeclarationHandler) Get(c *gin.Context) {
	if c.Query("nome") == "" && c.Query("cpf") == "" {
		h.info(c)
		return
	}

	var req DeclarationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	h.generate(c, req)
}

// Post handles POST /api/declaracao
// @Summary Generate a declaration
// @Description Looks up the student's paid installments and returns the declaration PDF, or a JSON payload with ?format=base64
// @Tags declaracao
// @Accept json
// @Produce application/pdf,json
// @Param request body DeclarationRequest true "Student identifiers"
// @Param format query string false "Set to base64 for a JSON payload"
// @Success 200 {object} APIResponse{data=Base64DeclarationResponse} "Declaration (base64) or tutorial routing"
// @Failure 400 {object} APIResponse "Validation error, student not found or no payments"
// @Failure 500 {object} APIResponse "Configuration incomplete or render failure"
// @Failure 502 {object} APIResponse "Spreadsheet unavailable"
// @Router /declaracao [post]
func (h *DeclarationHandler) Post(c *gin.Context) {
	var req DeclarationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	h.generate(c, req)
}

func (h *DeclarationHandler) info(c *gin.Context) {
	sheets := "não configurado"
	if h.declarationService.SourceConfigured() {
		sheets = "configurado"
	}
	c.JSON(http.StatusOK, ServiceInfoResponse{
		Status:       "online",
		Service:      serviceName,
		Version:      h.version,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		GoogleSheets: sheets,
	})
}

func (h *DeclarationHandler) generate(c *gin.Context, req DeclarationRequest) {
	if !h.declarationService.SourceConfigured() {
		log.Printf("[config] data source credentials not configured")
		HandleError(c, domain.ErrConfiguration)
		return
	}

	requestID, _ := c.Get(middleware.RequestIDKey)
	log.Printf("[%s] declaration requested: nome=%q cpf=%s", requestID, req.Nome, format.MaskCPF(req.CPF))

	outcome, err := h.declarationService.Generate(c.Request.Context(), service.GenerateInput{
		Name:       req.Nome,
		NationalID: req.CPF,
		Email:      req.Email,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	switch outcome.Kind {
	case domain.OutcomeNotFound:
		HandleError(c, domain.ErrStudentNotFound)
	case domain.OutcomeNoEligiblePayments:
		HandleError(c, domain.ErrNoEligiblePayments)
	case domain.OutcomeNonPDFGroup:
		RespondOK(c, TutorialResponse{
			Tipo:     string(domain.OutcomeNonPDFGroup),
			Turma:    outcome.GroupID,
			Mensagem: tutorialMessage,
		})
	case domain.OutcomeDeclaration:
		h.sendDeclaration(c, outcome)
	default:
		HandleError(c, fmt.Errorf("unexpected outcome %q", outcome.Kind))
	}
}

func (h *DeclarationHandler) sendDeclaration(c *gin.Context, outcome *domain.Outcome) {
	requestID, _ := c.Get(middleware.RequestIDKey)

	if c.Query("format") == "base64" {
		log.Printf("[%s] sending base64 declaration %s", requestID, outcome.Filename)
		RespondOK(c, Base64DeclarationResponse{
			Filename:      outcome.Filename,
			ContentType:   pdfContentType,
			PDF:           base64.StdEncoding.EncodeToString(outcome.PDF),
			TotalParcelas: outcome.InstallmentCount,
			ValorTotal:    outcome.Total,
		})
		return
	}

	log.Printf("[%s] sending declaration %s (%d bytes)", requestID, outcome.Filename, len(outcome.PDF))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outcome.Filename))
	c.Header("Content-Length", strconv.Itoa(len(outcome.PDF)))
	c.Data(http.StatusOK, pdfContentType, outcome.PDF)
}

// respondBindingError always answers with the required-fields message. Details
// name the missing fields, or say the body could not be parsed.
func respondBindingError(c *gin.Context, err error) {
	_, code, msg := MapDomainError(domain.ErrValidation)

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, strings.ToLower(fe.Field()))
		}
		respondErrorDetails(c, http.StatusBadRequest, code, msg, "ausente: "+strings.Join(missing, ", "))
	case errors.Is(err, io.EOF):
		// Empty body: nothing was sent, so every required field is missing.
		respondErrorDetails(c, http.StatusBadRequest, code, msg, "ausente: nome, cpf")
	default:
		respondErrorDetails(c, http.StatusBadRequest, code, msg, "Corpo da requisição inválido")
	}
}
