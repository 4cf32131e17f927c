package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/tdeecalc/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Settings is the content of a settings file. Empty fields were not set.
type Settings struct {
	LogLevel  string
	LogFormat string
	ServeAddr string
}

// fileRoot is used to decode the top-level blocks of a settings file. There
// is no remain field, so unknown blocks are rejected by gohcl.
type fileRoot struct {
	Log   *block `hcl:"log,block"`
	Serve *block `hcl:"serve,block"`
}

type block struct {
	Body hcl.Body `hcl:",remain"`
}

// Loader is the HCL settings file loader.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL settings loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, path, file)
}

// Parse parses settings from an in-memory source. filename is used in
// diagnostics only.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, filename, file)
}

func (l *Loader) decode(ctx context.Context, filename string, file *hcl.File) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	settings := &Settings{}
	if root.Log != nil {
		err := decodeStrings(ctx, root.Log.Body, map[string]*string{
			"level":  &settings.LogLevel,
			"format": &settings.LogFormat,
		})
		if err != nil {
			return nil, fmt.Errorf("invalid log block in %s: %w", filename, err)
		}
	}
	if root.Serve != nil {
		err := decodeStrings(ctx, root.Serve.Body, map[string]*string{
			"address": &settings.ServeAddr,
		})
		if err != nil {
			return nil, fmt.Errorf("invalid serve block in %s: %w", filename, err)
		}
	}

	logger.Debug("HCL settings loaded.", "file", filename, "log_level", settings.LogLevel, "log_format", settings.LogFormat, "serve_address", settings.ServeAddr)
	return settings, nil
}

// decodeStrings evaluates every attribute of body and stores it in the
// matching target. Attributes without a target are reported as unsupported.
func decodeStrings(ctx context.Context, body hcl.Body, targets map[string]*string) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := attrs[name]
		target, ok := targets[name]
		if !ok {
			return hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   fmt.Sprintf("An argument named %q is not expected here.", name),
				Subject:  attr.NameRange.Ptr(),
			}}
		}

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		if err := decodeValue(ctx, val, target); err != nil {
			return fmt.Errorf("failed to decode argument '%s': %w", name, err)
		}
	}
	return nil
}

// decodeValue converts val to the cty type implied by target and stores it.
func decodeValue(ctx context.Context, val cty.Value, target any) error {
	logger := ctxlog.FromContext(ctx)

	if val.IsNull() {
		return fmt.Errorf("value must not be null")
	}

	impliedType, err := gocty.ImpliedType(target)
	if err != nil {
		return fmt.Errorf("unable to infer cty.Type: %w", err)
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(converted, target)
}
