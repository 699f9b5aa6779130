package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Recurso não encontrado")
	ErrAlreadyExists    = NewDomainError("ALREADY_EXISTS", "Recurso já existe")
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "Dados inválidos")
	ErrInvalidState     = NewDomainError("INVALID_STATE", "Operação não permitida no estado atual")
	ErrAlreadyProcessed = NewDomainError("ALREADY_PROCESSED", "Esta solicitação já foi processada")
	ErrUnauthorized     = NewDomainError("UNAUTHORIZED", "Não autorizado")
	ErrForbidden        = NewDomainError("FORBIDDEN", "Acesso negado")
	ErrPaymentPending   = NewDomainError("PAYMENT_PENDING", "Existem pagamentos pendentes para este pedido")
	ErrCostUndefined    = NewDomainError("COST_UNDEFINED", "O painel confirmado não possui custo definido")
)
