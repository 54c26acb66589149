package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type boundsInput struct {
	MaxRows int `validate:"gte=1,lte=16384"`
	MaxCols int `validate:"gte=1,lte=16384"`
}

type refInput struct {
	Ref string `validate:"required,a1ref"`
}

func TestValidateStructBounds(t *testing.T) {
	require.Empty(t, ValidateStruct(boundsInput{MaxRows: 100, MaxCols: 100}))
	require.Empty(t, ValidateStruct(boundsInput{MaxRows: 1, MaxCols: 16384}))

	msg := ValidateStruct(boundsInput{MaxRows: 0, MaxCols: 100})
	require.Contains(t, msg, "maxrows")
	require.Contains(t, msg, "gte=1")

	msg = ValidateStruct(boundsInput{MaxRows: 100, MaxCols: 100_000})
	require.Contains(t, msg, "maxcols")
	require.Contains(t, msg, "lte=16384")
}

func TestA1RefRule(t *testing.T) {
	require.Empty(t, ValidateStruct(refInput{Ref: "A1"}))
	require.Empty(t, ValidateStruct(refInput{Ref: "XFD16384"}))

	for _, bad := range []string{"", "A0", "1A", "a1", "XFE1", "hello"} {
		msg := ValidateStruct(refInput{Ref: bad})
		require.NotEmpty(t, msg, "Ref=%q should fail", bad)
	}
}
