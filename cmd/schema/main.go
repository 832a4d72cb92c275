// Command schema prints the JSON schema for tuxtrain's configuration file
// or for user-authored level files, for editor completion and validation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/tuxtrain/tuxtrain/internal/config"
	"github.com/tuxtrain/tuxtrain/internal/level"
)

func main() {
	configSchema := flag.Bool("config", false, "print the configuration schema instead of the level schema")
	flag.Parse()

	r := &jsonschema.Reflector{
		Anonymous:                 true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	var schema *jsonschema.Schema
	if *configSchema {
		schema = r.Reflect(&config.Config{})
		schema.Title = "Tuxtrain Configuration"
		schema.Description = "Configuration schema for the tuxtrain trainer"
	} else {
		schema = r.Reflect(&level.Level{})
		schema.Title = "Tuxtrain Level"
		schema.Description = "Schema for a single tuxtrain level file"
	}
	schema.Version = "https://json-schema.org/draft/2020-12/schema"

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(schema); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding schema: %v\n", err)
		os.Exit(1)
	}
}
