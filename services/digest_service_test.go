package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"urdu-digest/dto"
)

func TestValidateRequestDefaultsToCombined(t *testing.T) {
	in := dto.CreateDigestRequest{URL: "https://blog.example.com/post"}
	mode, err := validateRequest(&in)
	assert.NoError(t, err)
	assert.Equal(t, ModeCombined, mode)
	assert.Equal(t, ModeCombined, in.Mode)
}

func TestValidateRequestSeparateMode(t *testing.T) {
	in := dto.CreateDigestRequest{URL: "https://blog.example.com/post", Mode: " Separate "}
	mode, err := validateRequest(&in)
	assert.NoError(t, err)
	assert.Equal(t, ModeSeparate, mode)
}

func TestValidateRequestRejectsEmptyURL(t *testing.T) {
	in := dto.CreateDigestRequest{URL: "   "}
	_, err := validateRequest(&in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequestRejectsRelativeURL(t *testing.T) {
	for _, bad := range []string{"blog.example.com/post", "/post", "ftp://example.com/x"} {
		in := dto.CreateDigestRequest{URL: bad}
		_, err := validateRequest(&in)
		assert.ErrorIs(t, err, ErrInvalidInput, "url %q", bad)
	}
}

func TestValidateRequestRejectsUnknownMode(t *testing.T) {
	in := dto.CreateDigestRequest{URL: "https://blog.example.com/post", Mode: "streaming"}
	_, err := validateRequest(&in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
