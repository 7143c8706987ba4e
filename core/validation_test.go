package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInstitute(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, ValidateInstitute(&RawInstitute{Name: "Alpha Institute"}))
	})

	t.Run("nil document", func(t *testing.T) {
		err := ValidateInstitute(nil)
		assert.ErrorIs(t, err, ErrInvalidInstitute)
	})

	t.Run("blank name", func(t *testing.T) {
		err := ValidateInstitute(&RawInstitute{Name: "   "})
		assert.ErrorIs(t, err, ErrInvalidInstitute)
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestValidateProgramme(t *testing.T) {
	assert.NoError(t, ValidateProgramme(&RawProgramme{Name: "Computer Science"}))
	assert.ErrorIs(t, ValidateProgramme(&RawProgramme{}), ErrEmptyProgrammeName)
	assert.ErrorIs(t, ValidateProgramme(nil), ErrEmptyProgrammeName)
}

func TestValidateCourse(t *testing.T) {
	assert.NoError(t, ValidateCourse(&RawCourse{Degree: "B.Tech"}))
	assert.ErrorIs(t, ValidateCourse(&RawCourse{}), ErrEmptyDegree)
	assert.ErrorIs(t, ValidateCourse(nil), ErrEmptyDegree)
}
