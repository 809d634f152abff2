package models

// Kind identifies one record kind declared in this package.
type Kind string

const (
	KindUser     Kind = "User"
	KindMenuItem Kind = "MenuItem"
	KindOrder    Kind = "Order"
	KindProduct  Kind = "Product"
)

// FieldSpec describes one schema field for the schema endpoint.
type FieldSpec struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Required bool        `json:"required"`
	Default  interface{} `json:"default,omitempty"`
}

// Schema declares a record kind together with the collection that
// stores it. The registry is built once and never mutated.
type Schema struct {
	Kind       Kind        `json:"kind"`
	Collection string      `json:"collection"`
	Fields     []FieldSpec `json:"fields"`
}

var registry = []Schema{
	{
		Kind:       KindUser,
		Collection: "user",
		Fields: []FieldSpec{
			{Name: "name", Type: "string", Required: true},
			{Name: "email", Type: "string", Required: true},
			{Name: "address", Type: "string"},
			{Name: "phone", Type: "string"},
			{Name: "is_active", Type: "bool", Default: true},
		},
	},
	{
		Kind:       KindMenuItem,
		Collection: "menuitem",
		Fields: []FieldSpec{
			{Name: "name", Type: "string", Required: true},
			{Name: "description", Type: "string"},
			{Name: "price", Type: "float", Required: true},
			{Name: "image", Type: "string"},
			{Name: "category", Type: "string", Default: "General"},
			{Name: "available", Type: "bool", Default: true},
		},
	},
	{
		Kind:       KindOrder,
		Collection: "order",
		Fields: []FieldSpec{
			{Name: "customer_name", Type: "string", Required: true},
			{Name: "customer_phone", Type: "string", Required: true},
			{Name: "customer_address", Type: "string", Required: true},
			{Name: "items", Type: "[]order_item", Required: true},
			{Name: "subtotal", Type: "float", Required: true},
			{Name: "delivery_fee", Type: "float", Default: 0.0},
			{Name: "total", Type: "float", Required: true},
			{Name: "status", Type: "string", Default: "pending"},
		},
	},
	{
		Kind:       KindProduct,
		Collection: "product",
		Fields: []FieldSpec{
			{Name: "title", Type: "string", Required: true},
			{Name: "description", Type: "string"},
			{Name: "price", Type: "float", Required: true},
			{Name: "category", Type: "string", Required: true},
			{Name: "in_stock", Type: "bool", Default: true},
		},
	},
}

// Registry returns every declared schema in a stable order.
func Registry() []Schema {
	return registry
}

// CollectionFor maps a record kind to its collection name.
func CollectionFor(kind Kind) string {
	for _, schema := range registry {
		if schema.Kind == kind {
			return schema.Collection
		}
	}
	return ""
}
