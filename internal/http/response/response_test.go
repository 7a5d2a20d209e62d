package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestStatusOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := StatusOKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Error)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Name string `validate:"required,alphanum"`
		Age  int    `validate:"gt=0"`
		Role string `validate:"oneof=Admin Trainer"`
	}

	v := validator.New()
	ts := TestStruct{
		Name: "!!!",
		Age:  -5,
		Role: "Manager",
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.Equal(t, StatusError, resp.Status)
	assert.NotEmpty(t, resp.Error)

	errMsg := resp.Error
	assert.Contains(t, errMsg, "field Name can contain only numbers and letters")
	assert.Contains(t, errMsg, "field Age must be greater than 0")
	assert.Contains(t, errMsg, "field Role must be one of: Admin Trainer")
}

func TestValidationError_Required(t *testing.T) {
	type TestStruct struct {
		Name string `validate:"required"`
	}

	v := validator.New()
	err := v.Struct(TestStruct{})
	assert.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "field Name is a required field", resp.Error)
}
