package compliance

import (
	"github.com/worksuite/backend/internal/domain/shared"
)

// ConditionOperator is the comparison applied by a visibility condition
type ConditionOperator string

const (
	ConditionOperatorEquals    ConditionOperator = "equals"
	ConditionOperatorNotEquals ConditionOperator = "not_equals"
	ConditionOperatorIn        ConditionOperator = "in"
	ConditionOperatorNotIn     ConditionOperator = "not_in"
)

// VisibilityCondition makes a field applicable only when another field's
// current value satisfies the operator. A field whose condition evaluates
// false is skipped entirely during prerequisite evaluation.
type VisibilityCondition struct {
	DependsOnSlug string            `json:"depends_on_slug"`
	Operator      ConditionOperator `json:"operator"`
	Values        []string          `json:"values"`
}

// Validate checks the condition's internal consistency. ownSlug is the slug
// of the field carrying the condition; self-reference is rejected here, and
// multi-hop cycles are rejected by ValidateConditionGraph at registration.
func (c *VisibilityCondition) Validate(ownSlug string) error {
	if c.DependsOnSlug == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Visibility condition must name a field it depends on")
	}
	if c.DependsOnSlug == ownSlug {
		return shared.NewDomainError("VALIDATION_ERROR", "Visibility condition cannot depend on the field itself")
	}
	switch c.Operator {
	case ConditionOperatorEquals, ConditionOperatorNotEquals, ConditionOperatorIn, ConditionOperatorNotIn:
	default:
		return shared.NewDomainError("VALIDATION_ERROR", "Unknown visibility condition operator: "+string(c.Operator))
	}
	if len(c.Values) == 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Visibility condition must have at least one comparison value")
	}
	if len(c.Values) > 1 && (c.Operator == ConditionOperatorEquals || c.Operator == ConditionOperatorNotEquals) {
		return shared.NewDomainError("VALIDATION_ERROR", "Operator "+string(c.Operator)+" takes exactly one comparison value; use in/not_in for sets")
	}
	return nil
}

// Matches evaluates the condition against the current value of the
// dependency field. An absent dependency value is treated as the empty
// string, so equals/in evaluate false and not_equals/not_in evaluate true.
// Comparison is exact: dropdown option values are identifiers, not prose.
func (c *VisibilityCondition) Matches(dependencyValue string) bool {
	switch c.Operator {
	case ConditionOperatorEquals:
		return dependencyValue == c.Values[0]
	case ConditionOperatorNotEquals:
		return dependencyValue != c.Values[0]
	case ConditionOperatorIn:
		return c.containsValue(dependencyValue)
	case ConditionOperatorNotIn:
		return !c.containsValue(dependencyValue)
	default:
		return false
	}
}

func (c *VisibilityCondition) containsValue(v string) bool {
	for _, candidate := range c.Values {
		if candidate == v {
			return true
		}
	}
	return false
}

// ValidateConditionGraph rejects dependency cycles across the given field
// definitions. Conditions form a directed graph on slugs; the check is a DFS
// with three-colour marking so chained conditions stay acyclic.
func ValidateConditionGraph(defs []FieldDefinition) error {
	edges := make(map[string]string, len(defs))
	for i := range defs {
		if defs[i].VisibilityCondition != nil {
			edges[defs[i].Slug] = defs[i].VisibilityCondition.DependsOnSlug
		}
	}

	const (
		white = 0
		grey  = 1
		black = 2
	)
	colour := make(map[string]int, len(edges))

	for slug := range edges {
		if colour[slug] != white {
			continue
		}
		node := slug
		var path []string
		for {
			colour[node] = grey
			path = append(path, node)
			next, ok := edges[node]
			if !ok || colour[next] == black {
				break
			}
			if colour[next] == grey {
				return shared.NewDomainError("VALIDATION_ERROR",
					"Visibility conditions form a dependency cycle involving field "+next)
			}
			node = next
		}
		for _, visited := range path {
			colour[visited] = black
		}
	}
	return nil
}
