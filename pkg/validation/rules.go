package validation

import (
	"github.com/go-playground/validator/v10"
)

// Categories accepted for support tickets. Kept in sync with the form list in
// the dashboard UI.
var ticketCategories = map[string]struct{}{
	"Hardware":            {},
	"Software":            {},
	"Rede":                {},
	"Email":               {},
	"Impressora":          {},
	"Sistema Operacional": {},
	"Segurança":           {},
	"Backup":              {},
	"Outro":               {},
}

func registerRules(v *validator.Validate) error {
	return v.RegisterValidation("ticket_category", isTicketCategory)
}

func isTicketCategory(fl validator.FieldLevel) bool {
	_, ok := ticketCategories[fl.Field().String()]
	return ok
}
