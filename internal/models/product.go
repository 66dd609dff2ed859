package models

// Product representa un producto en el catálogo del supermercado.
type Product struct {
	Code        string  `json:"codeProduct" bson:"codeProduct"`
	Name        string  `json:"nameProduct" bson:"nameProduct"`
	Description string  `json:"descriptionProduct" bson:"descriptionProduct"`
	Category    string  `json:"categoryProduct" bson:"categoryProduct"`
	Price       float64 `json:"priceProduct" bson:"priceProduct"`
	Stock       int64   `json:"stockProduct" bson:"stockProduct"`
}

// ProductCreate es el cuerpo de alta; precio y stock admiten número o texto.
type ProductCreate struct {
	Code        string `json:"code" validate:"present"`
	Name        string `json:"name" validate:"present"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       Number `json:"price" validate:"present"`
	Stock       Number `json:"stock" validate:"present"`
}

// Record convierte la solicitud en el registro que se guarda.
func (r ProductCreate) Record() Product {
	return Product{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price.Value,
		Stock:       r.Stock.Int(),
	}
}

// ProductUpdate representa los campos actualizables de un producto
type ProductUpdate struct {
	Name        *string `json:"newNameProduct,omitempty"`
	Description *string `json:"newDescriptionProduct,omitempty"`
	Category    *string `json:"newCategoryProduct,omitempty"`
	Price       Number  `json:"newPriceProduct"`
	Stock       Number  `json:"newStockProduct"`
}

// MergeProduct aplica los campos presentes del parche.
func MergeProduct(p Product, u ProductUpdate) Product {
	setString(&p.Name, u.Name)
	setString(&p.Description, u.Description)
	setString(&p.Category, u.Category)
	setFloat(&p.Price, u.Price)
	setInt(&p.Stock, u.Stock)
	return p
}
