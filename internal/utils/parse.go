package utils

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Section is one decoded [table] of a jumble config file, such as [solver]
// or [dict]. Getters only report a value when it has the expected TOML type,
// so a mistyped key falls back to its default instead of failing the file.
type Section map[string]any

// DecodeTOMLFile decodes configPath into config and returns the dotted names
// of keys the struct does not know about (e.g. "solver.treshold").
func DecodeTOMLFile(configPath string, config any) ([]string, error) {
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return nil, err
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, strings.Join(key, "."))
	}
	return unknown, nil
}

// DecodeTOMLSections decodes configPath loosely and returns every top level
// table by name. Non-table top level keys are dropped.
func DecodeTOMLSections(configPath string) (map[string]Section, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(configPath, &raw); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
		return nil, err
	}

	sections := make(map[string]Section, len(raw))
	for name, value := range raw {
		if table, ok := value.(map[string]any); ok {
			sections[name] = Section(table)
		}
	}
	return sections, nil
}

// Int returns key when it holds a TOML integer.
func (s Section) Int(key string) (int, bool) {
	val, ok := s[key].(int64)
	return int(val), ok
}

// Bool returns key when it holds a TOML boolean.
func (s Section) Bool(key string) (bool, bool) {
	val, ok := s[key].(bool)
	return val, ok
}

// String returns key when it holds a TOML string.
func (s Section) String(key string) (string, bool) {
	val, ok := s[key].(string)
	return val, ok
}
