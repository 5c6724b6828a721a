package model

// Catalog holds the full product list as loaded from a source.
type Catalog struct {
	Products []Product `json:"products"`
}

// NewCatalog creates a Catalog with an initialized product slice.
func NewCatalog(products []Product) *Catalog {
	if products == nil {
		products = []Product{}
	}
	return &Catalog{Products: products}
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.Products)
}

// GetProductByID finds a product by ID, returns nil if not found.
func (c *Catalog) GetProductByID(id ID) *Product {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// AssignMissingIDs gives every product without an ID a generated one.
// Returns the number of IDs assigned.
func (c *Catalog) AssignMissingIDs() int {
	assigned := 0
	for i := range c.Products {
		if c.Products[i].ID == "" {
			c.Products[i].ID = ID(generateUUID())
			assigned++
		}
	}
	return assigned
}
