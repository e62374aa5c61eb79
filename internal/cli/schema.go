package cli

import (
	"strings"

	"github.com/elibenporat/mlbbio/internal/domain/people"
)

// commandSchemas overrides the strict default for commands run without
// --schema or STATSAPI_SCHEMA. A roster run must survive players who have
// not debuted yet, so batch only insists on identity and sides.
var commandSchemas = map[string]people.Schema{
	"batch": people.SchemaLoose,
}

func schemaFor(command, configured string) (people.Schema, error) {
	if strings.TrimSpace(configured) == "" {
		if schema, ok := commandSchemas[command]; ok {
			return schema, nil
		}
	}
	return people.ParseSchema(configured)
}
