package templates

// ScalarKind drives one generated accessor pair.
type ScalarKind struct {
	Name    string // exported accessor name, e.g. Float
	GoType  string // Go value type, e.g. float32
	Article string // doc-comment article + noun, e.g. "a float"
}

// Builtins is every scalar kind the slot package exposes accessors for.
var Builtins = []ScalarKind{
	{Name: "Float", GoType: "float32", Article: "a float"},
	{Name: "Int", GoType: "int32", Article: "an int"},
	{Name: "Uint", GoType: "uint32", Article: "a uint"},
	{Name: "Bool", GoType: "bool", Article: "a bool"},
}
