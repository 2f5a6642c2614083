package integrity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{
			name:     "required",
			err:      &ValidationError{Entity: "user", Field: "email", Rule: "required"},
			sentinel: ErrValidation,
			msg:      "user.email is required",
		},
		{
			name:     "too long",
			err:      &ValidationError{Entity: "media", Field: "url", Rule: "max", Param: "100"},
			sentinel: ErrValidation,
			msg:      "media.url is longer than 100 characters",
		},
		{
			name:     "bad enum",
			err:      &ValidationError{Entity: "media", Field: "type", Rule: "mediatype"},
			sentinel: ErrValidation,
			msg:      "media.type is invalid (mediatype)",
		},
		{
			name:     "duplicate",
			err:      &UniquenessViolation{Entity: "user", Field: "username", Value: "alice"},
			sentinel: ErrUniqueness,
			msg:      "user.username alice already exists",
		},
		{
			name:     "duplicate from driver",
			err:      &UniquenessViolation{Entity: "comment"},
			sentinel: ErrUniqueness,
			msg:      "comment: unique constraint violated",
		},
		{
			name:     "dangling reference",
			err:      &ForeignKeyViolation{Entity: "post", Field: "user_id", References: "user", ID: 42},
			sentinel: ErrForeignKey,
			msg:      "post.user_id=42 does not reference an existing user",
		},
		{
			name:     "restricted delete",
			err:      &ForeignKeyViolation{Entity: "comment", Field: "post_id", References: "post", ID: 3, Restrict: true},
			sentinel: ErrForeignKey,
			msg:      "post 3 is still referenced by comment.post_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.sentinel)
			assert.EqualError(t, tt.err, tt.msg)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	err := &ValidationError{Entity: "user", Field: "email", Rule: "required"}
	assert.False(t, errors.Is(err, ErrUniqueness))
	assert.False(t, errors.Is(err, ErrForeignKey))
	assert.False(t, errors.Is(err, ErrNotFound))
}

type sample struct {
	DisplayName string `validate:"required,max=3"`
	Kind        kind   `validate:"mediatype"`
}

type kind int

func (k kind) Valid() bool { return k == 1 }

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("sample", &sample{DisplayName: "abc", Kind: 1}))

	var ve *ValidationError
	err := Validate("sample", &sample{DisplayName: "abcd", Kind: 1})
	if assert.True(t, errors.As(err, &ve)) {
		assert.Equal(t, "display_name", ve.Field)
		assert.Equal(t, "max", ve.Rule)
		assert.Equal(t, "3", ve.Param)
	}

	err = Validate("sample", &sample{DisplayName: "abc", Kind: 2})
	if assert.True(t, errors.As(err, &ve)) {
		assert.Equal(t, "kind", ve.Field)
		assert.Equal(t, "mediatype", ve.Rule)
	}
}
