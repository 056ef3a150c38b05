package quotes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFileName(t *testing.T) {
	require.NoError(t, ValidateFileName("artwork-final_v2.pdf"))
	require.NoError(t, ValidateFileName("logo (1).png"))
	require.NoError(t, ValidateFileName("émigré-poster.jpg")) // accented latin is fine

	require.ErrorIs(t, ValidateFileName("设计稿.pdf"), ErrInvalidFile)
	require.ErrorIs(t, ValidateFileName("final-版本.png"), ErrInvalidFile)
}

func TestValidateFileSizeBoundary(t *testing.T) {
	// exactly at the ceiling is accepted
	require.NoError(t, ValidateFileSize("a.pdf", MaxFileSize))
	// one byte over is not
	require.ErrorIs(t, ValidateFileSize("a.pdf", MaxFileSize+1), ErrInvalidFile)
	require.NoError(t, ValidateFileSize("a.pdf", 0))
}
