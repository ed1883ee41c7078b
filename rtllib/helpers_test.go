package rtllib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/vsrtl"
)

// buildDesign wraps top in a Design and runs Verify+Initialize, the
// sequence every rtllib test needs before driving Clock/Reverse, failing
// the test immediately on either error.
func buildDesign(t *testing.T, top *vsrtl.Component, opts ...vsrtl.Option) *vsrtl.Design {
	t.Helper()
	d := vsrtl.NewDesign(top, opts...)
	require.NoError(t, d.Verify())
	require.NoError(t, d.Initialize())
	return d
}
