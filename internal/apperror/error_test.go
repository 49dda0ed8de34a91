package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	assert.Equal(t, Code(""), GetCode(nil))
	assert.Equal(t, CodeInternal, GetCode(errors.New("boom")))
	assert.Equal(t, CodeValidation, GetCode(New(CodeValidation, "name is required")))

	wrapped := fmt.Errorf("add department: %w", New(CodeConflict, "department already exists"))
	assert.Equal(t, CodeConflict, GetCode(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: department.name")
	err := Wrap(CodeConflict, "department already exists", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "department already exists: UNIQUE constraint failed: department.name", err.Error())
	assert.Equal(t, "x", Wrap(CodeInternal, "", errors.New("x")).Error())
}
