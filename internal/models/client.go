package models

// Client representa un cliente del supermercado; la clave natural es el DNI.
type Client struct {
	DNI     string `json:"dniClient" bson:"dniClient"`
	Name    string `json:"nameClient" bson:"nameClient"`
	Surname string `json:"surnameClient" bson:"surnameClient"`
	Address string `json:"addressClient" bson:"addressClient"`
	Phone   string `json:"phoneClient" bson:"phoneClient"`
	Email   string `json:"emailClient" bson:"emailClient"`
}

// ClientCreate es el cuerpo de alta de un cliente.
type ClientCreate struct {
	DNI     string `json:"dni" validate:"present"`
	Name    string `json:"name" validate:"present"`
	Surname string `json:"surname" validate:"present"`
	Address string `json:"address" validate:"present"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Record convierte la solicitud en el registro que se guarda.
func (r ClientCreate) Record() Client {
	return Client{
		DNI:     r.DNI,
		Name:    r.Name,
		Surname: r.Surname,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

// ClientUpdate son los campos modificables de un cliente. El DNI no aparece:
// un newDniClient en el cuerpo se ignora.
type ClientUpdate struct {
	Name    *string `json:"newNameClient,omitempty"`
	Surname *string `json:"newSurnameClient,omitempty"`
	Address *string `json:"newAddressClient,omitempty"`
	Phone   *string `json:"newPhoneClient,omitempty"`
	Email   *string `json:"newEmailClient,omitempty"`
}

// MergeClient aplica los campos presentes del parche.
func MergeClient(c Client, u ClientUpdate) Client {
	setString(&c.Name, u.Name)
	setString(&c.Surname, u.Surname)
	setString(&c.Address, u.Address)
	setString(&c.Phone, u.Phone)
	setString(&c.Email, u.Email)
	return c
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, n Number) {
	if n.Valid {
		*dst = n.Value
	}
}

func setInt(dst *int64, n Number) {
	if n.Valid {
		*dst = n.Int()
	}
}
