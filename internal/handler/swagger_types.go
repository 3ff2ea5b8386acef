package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// DeclarationRequest carries the student identifiers. It binds from the JSON
// body on POST and from the query string on GET.
type DeclarationRequest struct {
	Nome  string `json:"nome" form:"nome" binding:"required" example:"Maria da Silva"`
	CPF   string `json:"cpf" form:"cpf" binding:"required" example:"123.456.789-01"`
	Email string `json:"email" form:"email" example:"maria@example.com"`
}

// --- Response Types ---

// TutorialResponse is returned for groups that get the written tutorial instead of a PDF.
type TutorialResponse struct {
	Tipo     string `json:"tipo" example:"tutorial"`
	Turma    string `json:"turma" example:"SEI"`
	Mensagem string `json:"mensagem" example:"Turma SEI - enviar tutorial escrito"`
}

// Base64DeclarationResponse is the JSON form of a generated declaration (?format=base64).
type Base64DeclarationResponse struct {
	Filename      string `json:"filename" example:"Declaracao_IRPF_Maria_da_Silva_1767225600000.pdf"`
	ContentType   string `json:"contentType" example:"application/pdf"`
	PDF           string `json:"pdf" example:"JVBERi0xLjQK..."`
	TotalParcelas int    `json:"totalParcelas" example:"10"`
	ValorTotal    string `json:"valorTotal" example:"R$ 15.000,00"`
}

// ServiceInfoResponse is returned by GET /api/declaracao without identifiers.
type ServiceInfoResponse struct {
	Status       string `json:"status" example:"online"`
	Service      string `json:"service" example:"API Declaração IRPF"`
	Version      string `json:"version" example:"3.0.0"`
	Timestamp    string `json:"timestamp" example:"2026-02-03T13:00:00Z"`
	GoogleSheets string `json:"googleSheets" example:"configurado"`
}
