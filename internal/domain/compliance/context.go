package compliance

import (
	"github.com/worksuite/backend/internal/domain/shared"
)

// Context identifies the business action a prerequisite check gates.
// It is a closed enumeration; the evaluator's rule set is defined per context.
type Context string

const (
	ContextLifecycleActivation Context = "lifecycle_activation"
	ContextProposalSend        Context = "proposal_send"
	ContextInvoiceGeneration   Context = "invoice_generation"
	ContextDocumentGeneration  Context = "document_generation"
	ContextProjectCreation     Context = "project_creation"
)

// AllContexts lists every known context in declaration order
func AllContexts() []Context {
	return []Context{
		ContextLifecycleActivation,
		ContextProposalSend,
		ContextInvoiceGeneration,
		ContextDocumentGeneration,
		ContextProjectCreation,
	}
}

// ParseContext validates and converts a string into a Context
func ParseContext(s string) (Context, error) {
	ctx := Context(s)
	for _, known := range AllContexts() {
		if ctx == known {
			return ctx, nil
		}
	}
	return "", shared.NewDomainError("INVALID_CONTEXT", "Unknown prerequisite context: "+s)
}

// InspectsChecklists reports whether checklist instances participate in
// prerequisite evaluation for this context.
func (c Context) InspectsChecklists() bool {
	return c == ContextLifecycleActivation || c == ContextProjectCreation
}

// FailurePolicy describes how a caller must behave when the prerequisite
// check itself cannot run because storage is unreachable.
type FailurePolicy string

const (
	// FailClosed blocks the gated action when the check cannot run
	FailClosed FailurePolicy = "fail_closed"
	// FailOpen allows the gated action when the check cannot run
	FailOpen FailurePolicy = "fail_open"
)

// failurePolicies is the explicit per-context policy table. Activation is the
// only hard gate; the remaining contexts are advisory and fail open so that
// billing and document flows are not blocked by a registry outage.
var failurePolicies = map[Context]FailurePolicy{
	ContextLifecycleActivation: FailClosed,
	ContextProposalSend:        FailOpen,
	ContextInvoiceGeneration:   FailOpen,
	ContextDocumentGeneration:  FailOpen,
	ContextProjectCreation:     FailOpen,
}

// PolicyFor returns the failure policy for a context. Contexts missing from
// the table fail closed, so adding a context cannot silently weaken the gate.
func PolicyFor(ctx Context) FailurePolicy {
	if p, ok := failurePolicies[ctx]; ok {
		return p
	}
	return FailClosed
}

// EntityType identifies the kind of entity a prerequisite check targets
type EntityType string

const (
	EntityTypeCustomer EntityType = "customer"
	EntityTypeProject  EntityType = "project"
)

// ParseEntityType validates and converts a string into an EntityType
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityTypeCustomer, EntityTypeProject:
		return EntityType(s), nil
	default:
		return "", shared.NewDomainError("INVALID_ENTITY_TYPE", "Unknown entity type: "+s)
	}
}
