package data

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema of the catalog file format.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(File))
	schema.Title = "Warband Content Catalog"
	schema.Description = "Weapons, talents, enemy templates and resource nodes loaded by the combat core."
	return schema
}
