package defs

import "github.com/invopop/jsonschema"

// DefinitionFiles groups the three definition files for schema generation.
type DefinitionFiles struct {
	Enemies []EnemyDefinition `json:"enemies" jsonschema:"description=Contents of enemies.json"`
	Towers  []TowerDefinition `json:"towers" jsonschema:"description=Contents of towers.json"`
	Levels  []LevelDefinition `json:"levels" jsonschema:"description=Contents of levels.json"`
}

// Schema reflects a JSON schema describing the definition files.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(DefinitionFiles))
	schema.Title = "Tower siege definitions"
	schema.Description = "Validates enemies.json, towers.json and levels.json"
	return schema
}
