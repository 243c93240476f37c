package vanilla

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	themeAssetStylesheet = "surveyslider.stylesheet"
	themeAssetRuntime    = "surveyslider.runtime"
	themeTemplateTrial   = "surveyslider.trial"
)

// resolvedTheme is the flattened manifest + variant selection.
type resolvedTheme struct {
	Name          string
	Variant       string
	Tokens        map[string]string
	Template      string
	StylesheetURL string
	RuntimeURL    string
}

// resolveTheme validates the manifest through a go-theme registry and merges
// the selected variant over the base tokens, templates and assets.
func resolveTheme(manifest *theme.Manifest, variant string) (*resolvedTheme, error) {
	if manifest == nil {
		return nil, nil
	}
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("vanilla renderer: register theme %q: %w", manifest.Name, err)
	}

	out := &resolvedTheme{
		Name:   manifest.Name,
		Tokens: copyStringMap(manifest.Tokens),
	}
	templates := copyStringMap(manifest.Templates)
	prefix := manifest.Assets.Prefix
	files := copyStringMap(manifest.Assets.Files)

	variant = strings.TrimSpace(variant)
	if variant != "" {
		selected, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("vanilla renderer: theme %q has no variant %q", manifest.Name, variant)
		}
		out.Variant = variant
		out.Tokens = mergeStringMap(out.Tokens, selected.Tokens)
		templates = mergeStringMap(templates, selected.Templates)
		files = mergeStringMap(files, selected.Assets.Files)
		if selected.Assets.Prefix != "" {
			prefix = selected.Assets.Prefix
		}
	}

	out.Template = templates[themeTemplateTrial]
	out.StylesheetURL = assetURL(prefix, files[themeAssetStylesheet])
	out.RuntimeURL = assetURL(prefix, files[themeAssetRuntime])
	return out, nil
}

func assetURL(prefix, file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}

// cssVarsStyle renders tokens as :root custom properties sorted by name.
func cssVarsStyle(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(tokens[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(base, overrides map[string]string) map[string]string {
	if len(overrides) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(overrides))
	}
	for key, value := range overrides {
		base[key] = value
	}
	return base
}
