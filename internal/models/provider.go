package models

// Provider es un proveedor. Además del ID, el RUC/NIT/NIF es único.
type Provider struct {
	ID                string `json:"idProveedor" bson:"idProveedor"`
	NombreFiscal      string `json:"nombreFiscal" bson:"nombreFiscal"`
	RucNitNif         string `json:"rucNitNif" bson:"rucNitNif"`
	DireccionFisica   string `json:"direccionFisica" bson:"direccionFisica"`
	Telefono          string `json:"telefono" bson:"telefono"`
	CorreoElectronico string `json:"correoElectronico" bson:"correoElectronico"`
	PaginaWeb         string `json:"paginaWeb" bson:"paginaWeb"`
	PersonaContacto   string `json:"personaContacto" bson:"personaContacto"`
}

// ProviderCreate es el cuerpo de alta de un proveedor.
type ProviderCreate struct {
	ID                string `json:"idProveedor" validate:"present"`
	NombreFiscal      string `json:"nombreFiscal" validate:"present"`
	RucNitNif         string `json:"rucNitNif" validate:"present"`
	DireccionFisica   string `json:"direccionFisica" validate:"present"`
	Telefono          string `json:"telefono"`
	CorreoElectronico string `json:"correoElectronico"`
	PaginaWeb         string `json:"paginaWeb"`
	PersonaContacto   string `json:"personaContacto"`
}

// Record convierte la solicitud en el registro que se guarda.
func (r ProviderCreate) Record() Provider {
	return Provider(r)
}

// ProviderUpdate son los campos modificables. Ni el ID ni el RUC/NIT/NIF se
// pueden cambiar por esta vía.
type ProviderUpdate struct {
	NombreFiscal      *string `json:"newNombreFiscal,omitempty"`
	DireccionFisica   *string `json:"newDireccionFisica,omitempty"`
	Telefono          *string `json:"newTelefono,omitempty"`
	CorreoElectronico *string `json:"newCorreoElectronico,omitempty"`
	PaginaWeb         *string `json:"newPaginaWeb,omitempty"`
	PersonaContacto   *string `json:"newPersonaContacto,omitempty"`
}

// MergeProvider aplica los campos presentes del parche.
func MergeProvider(p Provider, u ProviderUpdate) Provider {
	setString(&p.NombreFiscal, u.NombreFiscal)
	setString(&p.DireccionFisica, u.DireccionFisica)
	setString(&p.Telefono, u.Telefono)
	setString(&p.CorreoElectronico, u.CorreoElectronico)
	setString(&p.PaginaWeb, u.PaginaWeb)
	setString(&p.PersonaContacto, u.PersonaContacto)
	return p
}
