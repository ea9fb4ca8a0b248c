package main

import (
	"github.com/pelletier/go-toml/v2"
)

// tomlParser adapts go-toml to koanf's Parser interface so .clampgen.toml
// works alongside the YAML config.
type tomlParser struct{}

// newTOMLParser returns a koanf parser for TOML config files.
func newTOMLParser() *tomlParser {
	return &tomlParser{}
}

// Unmarshal parses TOML bytes into a nested map.
func (p *tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal renders a nested map as TOML.
func (p *tomlParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return toml.Marshal(o)
}
