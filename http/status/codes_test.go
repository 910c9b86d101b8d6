package status

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	require.Equal(t, Status("OK"), Text(OK))
	require.Equal(t, Status("Not Found"), Text(NotFound))
	require.Equal(t, Status("Method Not Allowed"), Text(MethodNotAllowed))
	require.Equal(t, Status("Internal Server Error"), Text(InternalServerError))
	require.Equal(t, UnknownStatus, Text(299))
	require.False(t, Known(299))
}

func TestStringCode(t *testing.T) {
	for code := range texts {
		require.Equal(t, strconv.Itoa(int(code)), StringCode(code))
	}
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, NotFound, CodeOf(ErrNotFound))
	require.Equal(t, BadRequest, CodeOf(fmt.Errorf("parse: %w", ErrMalformedHeader)))
	require.Equal(t, InternalServerError, CodeOf(fmt.Errorf("anything")))
}
