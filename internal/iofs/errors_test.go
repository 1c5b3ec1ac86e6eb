package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{"create dir", CreateDirError("/test/dir", cause),
			errcode.CreateDirError, "/test/dir", "cannot create directory"},
		{"copy file", CopyFileError("/test/config.yaml", cause),
			errcode.CopyFileError, "/test/config.yaml", "cannot copy file"},
		{"read file", ReadFileError("/test/roster.txt", cause),
			errcode.ReadFileError, "/test/roster.txt", "cannot read"},
		{"parse file", ParseFileError("/test/custom.yaml", cause),
			errcode.ParseFileError, "/test/custom.yaml", "cannot parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.Equal(t, []any{tt.path}, gnErr.Vars)
			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), tt.text)
			assert.Contains(t, gnErr.Err.Error(), "iofs.TestErrors")
		})
	}
}
