package handlers

import (
	"auditveda/services/agreement"
	"auditveda/services/verification"
	"auditveda/services/wizard"
)

// HandlerBundle aggregates the services the HTTP handlers depend on.
type HandlerBundle struct {
	WizardService wizard.WizardService
	Verifier      verification.Verifier
	Generator     *agreement.Generator
}
