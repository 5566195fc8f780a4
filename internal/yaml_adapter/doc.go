// Package yaml_adapter loads simulation settings from YAML files into the
// format-agnostic config.Model.
package yaml_adapter
