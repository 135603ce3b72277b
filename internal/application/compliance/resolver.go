package compliance

import (
	"sort"

	"github.com/google/uuid"
	"github.com/worksuite/backend/internal/domain/compliance"
)

// resolveApplicable pairs active definitions required for the context with
// their group names and orders them by group position, then field position.
// Ungrouped fields sort after all groups.
func resolveApplicable(defs []compliance.FieldDefinition, groups []compliance.FieldGroup, ctx compliance.Context) []compliance.ApplicableField {
	groupsByID := make(map[uuid.UUID]*compliance.FieldGroup, len(groups))
	for i := range groups {
		groupsByID[groups[i].ID] = &groups[i]
	}

	fields := make([]compliance.ApplicableField, 0, len(defs))
	for i := range defs {
		def := defs[i]
		if !def.Active || !def.RequiredFor(ctx) {
			continue
		}
		field := compliance.ApplicableField{Definition: def}
		if def.GroupID != nil {
			if group, ok := groupsByID[*def.GroupID]; ok {
				field.GroupName = group.Name
			}
		}
		fields = append(fields, field)
	}

	groupPosition := func(f compliance.ApplicableField) int {
		if f.Definition.GroupID != nil {
			if group, ok := groupsByID[*f.Definition.GroupID]; ok {
				return group.Position
			}
		}
		return int(^uint(0) >> 1)
	}

	sort.SliceStable(fields, func(i, j int) bool {
		gi, gj := groupPosition(fields[i]), groupPosition(fields[j])
		if gi != gj {
			return gi < gj
		}
		return fields[i].Definition.Position < fields[j].Definition.Position
	})

	return fields
}
