package slot

import "github.com/delaneyj/slotgraph/expr"

// Property describes one typed field. Sub-field structure is not stored
// here: it is a pure function of the type, supplied by the registered
// archetype, so two slots of the same type always have the same shape.
type Property struct {
	Name string    `yaml:"name"`
	Type expr.Type `yaml:"type"`
}

func (p Property) String() string {
	return p.Name + ":" + string(p.Type)
}
