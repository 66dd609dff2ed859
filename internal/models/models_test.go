package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Number
	}{
		{"json number", `12.5`, NumberOf(12.5)},
		{"zero is present", `0`, NumberOf(0)},
		{"numeric text", `"10"`, NumberOf(10)},
		{"numeric text with spaces", `" 3.25 "`, NumberOf(3.25)},
		{"null", `null`, Number{}},
		{"empty text", `""`, Number{}},
		{"non numeric text", `"abc"`, Number{}},
		{"boolean", `true`, Number{}},
		{"NaN text", `"NaN"`, Number{}},
		{"infinity text", `"Inf"`, Number{}},
		{"beyond int64", `1e30`, Number{}},
		{"beyond int64 negative", `"-9.3e18"`, Number{}},
		{"large but in range", `9e18`, NumberOf(9e18)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumberAbsentWhenFieldMissing(t *testing.T) {
	var req ProductCreate
	require.NoError(t, json.Unmarshal([]byte(`{"code":"P1","name":"Leche"}`), &req))
	assert.False(t, req.Price.Valid)
	assert.False(t, req.Stock.Valid)
}

func TestNumberIntTruncates(t *testing.T) {
	assert.Equal(t, int64(7), NumberOf(7.9).Int())
	assert.Equal(t, int64(-2), NumberOf(-2.5).Int())

	var n Number
	require.NoError(t, json.Unmarshal([]byte(`9e18`), &n))
	assert.Equal(t, int64(9e18), n.Int())
}

func TestOutOfRangeStockIsAbsent(t *testing.T) {
	var req ProductCreate
	require.NoError(t, json.Unmarshal([]byte(`{"code":"P9","name":"x","price":1,"stock":1e30}`), &req))
	assert.Error(t, CheckRequired(req))

	current := Product{Code: "P9", Name: "x", Price: 1, Stock: 5}
	var patch ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"newStockProduct":1e30}`), &patch))
	assert.Equal(t, int64(5), MergeProduct(current, patch).Stock)
}

func TestNewValidatorRegistersPresent(t *testing.T) {
	assert.NotPanics(t, func() {
		v := newValidator()
		assert.Error(t, v.Var("   ", "present"))
		assert.NoError(t, v.Var("x", "present"))
	})
}

func TestCheckRequired(t *testing.T) {
	t.Run("complete client passes", func(t *testing.T) {
		err := CheckRequired(ClientCreate{DNI: "1", Name: "Ana", Surname: "Ruiz", Address: "Calle 1"})
		assert.NoError(t, err)
	})

	t.Run("blank text fails after trimming", func(t *testing.T) {
		err := CheckRequired(ClientCreate{DNI: "1", Name: "   ", Surname: "Ruiz", Address: "Calle 1"})
		assert.Error(t, err)
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		err := CheckRequired(ProviderCreate{ID: "P", NombreFiscal: "X", RucNitNif: "R", DireccionFisica: "Y"})
		assert.NoError(t, err)
	})

	t.Run("absent number fails", func(t *testing.T) {
		err := CheckRequired(ProductCreate{Code: "P1", Name: "Leche", Price: NumberOf(1.2)})
		assert.Error(t, err)
	})

	t.Run("zero number is present", func(t *testing.T) {
		err := CheckRequired(ProductCreate{Code: "P1", Name: "Leche", Price: NumberOf(1.2), Stock: NumberOf(0)})
		assert.NoError(t, err)
	})

	t.Run("employee needs salary", func(t *testing.T) {
		err := CheckRequired(EmployeeCreate{Code: "E1", Name: "Luis", Surname: "Paz", Position: "Cajero"})
		assert.Error(t, err)
	})
}

func TestMergeClientKeepsOmittedFields(t *testing.T) {
	current := Client{DNI: "12345678Z", Name: "Marcos", Surname: "Escobar", Address: "Avenida Siempre Viva 742"}

	var patch ClientUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"newSurnameClient":"Gil","newEmailClient":"m@x.es","newDniClient":"99"}`), &patch))

	merged := MergeClient(current, patch)
	assert.Equal(t, "12345678Z", merged.DNI)
	assert.Equal(t, "Marcos", merged.Name)
	assert.Equal(t, "Gil", merged.Surname)
	assert.Equal(t, "m@x.es", merged.Email)
	assert.Equal(t, "Avenida Siempre Viva 742", merged.Address)

	// La fusión es pura: el registro original no cambia.
	assert.Equal(t, "Escobar", current.Surname)
	assert.Equal(t, merged, MergeClient(current, patch))
}

func TestMergeProviderIgnoresKeys(t *testing.T) {
	current := Provider{ID: "PROV001", RucNitNif: "1234567890001", NombreFiscal: "X", DireccionFisica: "Y"}

	var patch ProviderUpdate
	body := `{"newIdProveedor":"PROV999","newRucNitNif":"000","newNombreFiscal":"Z"}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	merged := MergeProvider(current, patch)
	assert.Equal(t, "PROV001", merged.ID)
	assert.Equal(t, "1234567890001", merged.RucNitNif)
	assert.Equal(t, "Z", merged.NombreFiscal)
	assert.Equal(t, "Y", merged.DireccionFisica)
}

func TestMergeProductCoercesNumbers(t *testing.T) {
	current := Product{Code: "P1", Name: "Leche", Price: 1.2, Stock: 10}

	var patch ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"newPriceProduct":"2.75","newStockProduct":"4"}`), &patch))

	merged := MergeProduct(current, patch)
	assert.Equal(t, 2.75, merged.Price)
	assert.Equal(t, int64(4), merged.Stock)
	assert.Equal(t, "Leche", merged.Name)

	var empty ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"newPriceProduct":"caro"}`), &empty))
	assert.Equal(t, current, MergeProduct(current, empty))
}

func TestMergeEmployee(t *testing.T) {
	current := Employee{Code: "E1", Name: "Luis", Surname: "Paz", Position: "Cajero", Salary: 1100}

	var patch EmployeeUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"newPositionEmployee":"Encargado","newSalaryEmployee":1500}`), &patch))

	merged := MergeEmployee(current, patch)
	assert.Equal(t, "Encargado", merged.Position)
	assert.Equal(t, 1500.0, merged.Salary)
	assert.Equal(t, "Luis", merged.Name)
	assert.Equal(t, "E1", merged.Code)
}

func TestCreateRecordsCoerceNumbers(t *testing.T) {
	var req ProductCreate
	require.NoError(t, json.Unmarshal([]byte(`{"code":"P1","name":"Pan","price":"0.90","stock":"25"}`), &req))

	rec := req.Record()
	assert.Equal(t, 0.9, rec.Price)
	assert.Equal(t, int64(25), rec.Stock)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"codeProduct":"P1","nameProduct":"Pan","descriptionProduct":"","categoryProduct":"","priceProduct":0.9,"stockProduct":25}`, string(out))
}
