// Package hclconf is the HCL front end for sweep definitions. It discovers
// .hcl files, decodes their sweep and param blocks, and statically evaluates
// range expressions into the format-agnostic sweep model.
package hclconf
