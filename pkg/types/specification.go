package types

// Specification is one named attribute on a product ("Metal": "Silver").
// Stored as a jsonb array so listings stay schemaless at the SQL level while
// the application sees a fixed shape.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Specifications is the jsonb-serialized collection attached to a product.
type Specifications []Specification
