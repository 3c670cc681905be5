package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-builder/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("race", "is invalid")
	ve.AddFieldErrorf("score", "must be at least %d", 3)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "race: is invalid")
	s.Assert().Contains(ve.Error(), "score: must be at least 3")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("score", "must be between %d and %d", 3, 18).
		RequiredField("class").
		InvalidField("race", "not a valid race")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("score", 10, 3, 18, vb)
	s.Assert().Nil(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("score", 19, 3, 18, vb)
	s.Assert().NotNil(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("score", 2, 3, 18, vb)
	s.Assert().NotNil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"fighter", "rogue", "cleric", "wizard"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("class", "rogue", allowed, vb)
	s.Assert().Nil(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("class", "paladin", allowed, vb)
	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Contains(err.Error(), "must be one of")
}
