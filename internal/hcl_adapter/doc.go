// Package hcl_adapter loads simulation settings from HCL files into the
// format-agnostic config.Model.
package hcl_adapter
