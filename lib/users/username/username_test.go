package usernamegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	t.Run(`first user`, func(t *testing.T) {
		require.Equal(t, "Recruiter01", Next(nil))
	})

	t.Run(`sequential assignment`, func(t *testing.T) {
		require.Equal(t, "Recruiter03", Next([]string{"Recruiter01", "Recruiter02"}))
	})

	t.Run(`gaps are not reused`, func(t *testing.T) {
		// Recruiter02 was deleted, the number stays burned
		require.Equal(t, "Recruiter06", Next([]string{"Recruiter01", "Recruiter05"}))
	})

	t.Run(`foreign names ignored`, func(t *testing.T) {
		require.Equal(t, "Recruiter02", Next([]string{"Recruiter01", "admin", "RecruiterX"}))
	})

	t.Run(`no zero padding past two digits`, func(t *testing.T) {
		require.Equal(t, "Recruiter100", Next([]string{"Recruiter99"}))
	})
}
