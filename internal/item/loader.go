package item

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/osse101/JellyBot_Go/internal/logger"
)

// Loader reads the catalog file and checks it against the JSON schema.
type Loader interface {
	Load(path string) (*Config, error)
	LoadCatalog(ctx context.Context, path string) (*Catalog, error)
}

type itemLoader struct {
	schemaPath string
	schema     *jsonschema.Schema
}

// NewLoader creates a loader that validates against the schema at schemaPath.
// An empty schemaPath skips schema validation.
func NewLoader(schemaPath string) Loader {
	return &itemLoader{schemaPath: schemaPath}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if l.schemaPath != "" {
		if err := l.validate(data); err != nil {
			return nil, fmt.Errorf(ErrMsgSchemaValidation, path, err)
		}
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// LoadCatalog loads, validates and indexes the catalog in one step.
func (l *itemLoader) LoadCatalog(ctx context.Context, path string) (*Catalog, error) {
	cfg, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(cfg)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"path", path,
		"version", catalog.Version(),
		"collectibles", len(catalog.collectibles),
		"armor", len(catalog.armor),
		"consumables", len(catalog.consumables),
		"stocks", len(catalog.stocks))
	return catalog, nil
}

func (l *itemLoader) validate(data []byte) error {
	if l.schema == nil {
		schema, err := compileSchema(l.schemaPath)
		if err != nil {
			return err
		}
		l.schema = schema
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return l.schema.Validate(inst)
}

func compileSchema(schemaPath string) (*jsonschema.Schema, error) {
	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSchemaFailed, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSchemaFailed, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf(ErrMsgCompileSchemaFailed, err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompileSchemaFailed, err)
	}
	return schema, nil
}
