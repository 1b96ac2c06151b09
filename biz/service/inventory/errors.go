package inventory

import "fmt"

// ValidationKind classifies a rejected submission.
type ValidationKind string

const (
	LocationRequired    ValidationKind = "LocationRequired"
	IdentifiersRequired ValidationKind = "IdentifiersRequired"
	InvalidChoice       ValidationKind = "InvalidChoice"
	InvalidDate         ValidationKind = "InvalidDate"
)

var validationMessages = map[ValidationKind]string{
	LocationRequired:    "Seleccione una sede y un edificio válidos",
	IdentifiersRequired: "El código patrimonial y la serie son obligatorios",
	InvalidChoice:       "Valor no permitido",
	InvalidDate:         "La fecha debe tener el formato AAAA-MM-DD",
}

// ValidationError rejects user input. Field names the offending input for
// InvalidChoice and InvalidDate.
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Message(), e.Field)
	}
	return e.Message()
}

// Message is the user-facing text of the error.
func (e *ValidationError) Message() string {
	return validationMessages[e.Kind]
}
