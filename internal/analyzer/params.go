package analyzer

import (
	"github.com/pipedex-io/pipedex/internal/catalog"
	"github.com/pipedex-io/pipedex/internal/node"
)

// reservedParams is the number of leading constructor parameters reserved by
// the node base contract (the receiver and the node identifier).
const reservedParams = 2

// synthesizeParams cross-references the constructor signature against the
// documentation maps and produces one fully populated record per declared
// parameter, in declaration order.
//
// The documentation entry is the unit of trust: a documented type whose
// parameter has no prose description is dropped rather than attached.
func synthesizeParams(def *node.Definition, desc, typ map[string]string) []catalog.ParameterRecord {
	var formals []node.Param
	if len(def.Params) > reservedParams {
		formals = def.Params[reservedParams:]
	}

	records := make([]catalog.ParameterRecord, 0, len(formals))
	for _, p := range formals {
		rec := catalog.ParameterRecord{
			Name:        p.Name,
			IsMandatory: !p.HasDefault,
		}
		if p.HasDefault {
			rec.DefaultValue = p.Default
		}
		if d := desc[p.Name]; d != "" {
			rec.Description = &d
			if t, ok := typ[p.Name]; ok {
				rec.Type = &t
			}
		}
		records = append(records, rec)
	}
	return records
}
