// Package mesher wraps the external mesh-generation executable. The tool
// is a black box: it takes a .geo geometry description, an output .h5
// path, and a string of -setnumber overrides, and writes the mesh itself.
// Nothing here inspects the geometry input or the generated file.
package mesher
