package models

import (
	"supermarket-admin/internal/entity"
	"supermarket-admin/internal/repository"
)

// ClientSchema describe la colección de clientes.
func ClientSchema() entity.Schema[Client, ClientCreate, ClientUpdate] {
	return entity.Schema[Client, ClientCreate, ClientUpdate]{
		Name: "client",
		Keys: repository.Keys[Client]{
			Key:      func(c Client) string { return c.DNI },
			KeyField: "dniClient",
		},
		Messages: entity.Messages{
			NotFound:     "Cliente no encontrado",
			Missing:      "Campos obligatorios faltantes (DNI, nombre, apellido o dirección)",
			DuplicateKey: "Ya existe un cliente con ese DNI",
			Created:      "Cliente creado con exito",
			Updated:      "Cliente actualizado con exito",
			Deleted:      "Cliente eliminado con exito",
		},
		Check: func(r ClientCreate) error { return CheckRequired(r) },
		Build: ClientCreate.Record,
		Merge: MergeClient,
	}
}

// ProviderSchema describe la colección de proveedores, con el RUC/NIT/NIF
// como clave alternativa.
func ProviderSchema() entity.Schema[Provider, ProviderCreate, ProviderUpdate] {
	return entity.Schema[Provider, ProviderCreate, ProviderUpdate]{
		Name: "provider",
		Keys: repository.Keys[Provider]{
			Key:      func(p Provider) string { return p.ID },
			AltKey:   func(p Provider) string { return p.RucNitNif },
			KeyField: "idProveedor",
			AltField: "rucNitNif",
		},
		Messages: entity.Messages{
			NotFound:        "Proveedor no encontrado",
			Missing:         "Campos obligatorios faltantes (ID, nombre fiscal, RUC/NIT/NIF o dirección física)",
			DuplicateKey:    "Ya existe un proveedor con ese ID",
			DuplicateAltKey: "Ya existe un proveedor con ese RUC/NIT/NIF",
			Created:         "Proveedor creado con exito",
			Updated:         "Proveedor actualizado con exito",
			Deleted:         "Proveedor eliminado con exito",
		},
		Check: func(r ProviderCreate) error { return CheckRequired(r) },
		Build: ProviderCreate.Record,
		Merge: MergeProvider,
	}
}

// ProductSchema describe la colección de productos.
func ProductSchema() entity.Schema[Product, ProductCreate, ProductUpdate] {
	return entity.Schema[Product, ProductCreate, ProductUpdate]{
		Name: "product",
		Keys: repository.Keys[Product]{
			Key:      func(p Product) string { return p.Code },
			KeyField: "codeProduct",
		},
		Messages: entity.Messages{
			NotFound:     "Producto no encontrado",
			Missing:      "Campos obligatorios faltantes (código, nombre, precio o stock)",
			DuplicateKey: "Ya existe un producto con ese código",
			Created:      "Producto creado con exito",
			Updated:      "Producto actualizado con exito",
			Deleted:      "Producto eliminado con exito",
		},
		Check: func(r ProductCreate) error { return CheckRequired(r) },
		Build: ProductCreate.Record,
		Merge: MergeProduct,
	}
}

// EmployeeSchema describe la colección de empleados.
func EmployeeSchema() entity.Schema[Employee, EmployeeCreate, EmployeeUpdate] {
	return entity.Schema[Employee, EmployeeCreate, EmployeeUpdate]{
		Name: "employee",
		Keys: repository.Keys[Employee]{
			Key:      func(e Employee) string { return e.Code },
			KeyField: "codeEmployee",
		},
		Messages: entity.Messages{
			NotFound:     "Empleado no encontrado",
			Missing:      "Campos obligatorios faltantes (código, nombre, apellido, cargo o salario)",
			DuplicateKey: "Ya existe un empleado con ese código",
			Created:      "Empleado creado con exito",
			Updated:      "Empleado actualizado con exito",
			Deleted:      "Empleado eliminado con exito",
		},
		Check: func(r EmployeeCreate) error { return CheckRequired(r) },
		Build: EmployeeCreate.Record,
		Merge: MergeEmployee,
	}
}
