package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variable references in YAML content using
// Go template syntax, {{.VAR_NAME}}. Plain $ characters pass through
// untouched, so passwords and regex patterns survive expansion.
//
// Missing variables expand to an empty string; validation catches required
// fields left empty. Malformed template syntax returns the data unchanged.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if key, value, ok := strings.Cut(env, "="); ok {
			envMap[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
