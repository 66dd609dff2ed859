package models

// Employee es un empleado, identificado por su código.
type Employee struct {
	Code     string  `json:"codeEmployee" bson:"codeEmployee"`
	Name     string  `json:"nameEmployee" bson:"nameEmployee"`
	Surname  string  `json:"surnameEmployee" bson:"surnameEmployee"`
	Position string  `json:"positionEmployee" bson:"positionEmployee"`
	Salary   float64 `json:"salaryEmployee" bson:"salaryEmployee"`
	Phone    string  `json:"phoneEmployee" bson:"phoneEmployee"`
	Email    string  `json:"emailEmployee" bson:"emailEmployee"`
}

type EmployeeCreate struct {
	Code     string `json:"code" validate:"present"`
	Name     string `json:"name" validate:"present"`
	Surname  string `json:"surname" validate:"present"`
	Position string `json:"position" validate:"present"`
	Salary   Number `json:"salary" validate:"present"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (r EmployeeCreate) Record() Employee {
	return Employee{
		Code:     r.Code,
		Name:     r.Name,
		Surname:  r.Surname,
		Position: r.Position,
		Salary:   r.Salary.Value,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}

type EmployeeUpdate struct {
	Name     *string `json:"newNameEmployee,omitempty"`
	Surname  *string `json:"newSurnameEmployee,omitempty"`
	Position *string `json:"newPositionEmployee,omitempty"`
	Salary   Number  `json:"newSalaryEmployee"`
	Phone    *string `json:"newPhoneEmployee,omitempty"`
	Email    *string `json:"newEmailEmployee,omitempty"`
}

func MergeEmployee(e Employee, u EmployeeUpdate) Employee {
	setString(&e.Name, u.Name)
	setString(&e.Surname, u.Surname)
	setString(&e.Position, u.Position)
	setFloat(&e.Salary, u.Salary)
	setString(&e.Phone, u.Phone)
	setString(&e.Email, u.Email)
	return e
}
