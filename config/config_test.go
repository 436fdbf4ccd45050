package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_KEY", "some-value")
	t.Setenv("PORTFOLIO_TEST_EMPTY", "")

	c := New()
	require.Equal(t, "some-value", c["PORTFOLIO_TEST_KEY"])
	require.Equal(t, "", c["PORTFOLIO_TEST_EMPTY"])
}

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090"}

	require.Equal(t, "9090", GetString(c, "PORT", "8080"))
	require.Equal(t, "8080", GetString(c, "MISSING", "8080"))
	require.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{
		"READ_TIMEOUT_SECONDS": "30",
		"NOT_A_NUMBER":         "sixty",
	}

	require.Equal(t, 30, GetInt(c, "READ_TIMEOUT_SECONDS", 60))
	require.Equal(t, 60, GetInt(c, "MISSING", 60))
	require.Equal(t, 60, GetInt(c, "NOT_A_NUMBER", 60))
	require.Equal(t, 60, GetInt(nil, "READ_TIMEOUT_SECONDS", 60))
}

func TestRequireString(t *testing.T) {
	c := map[string]string{
		"SESSION_SECRET": "a-secret",
		"EMPTY":          "",
	}

	val, err := RequireString(c, "SESSION_SECRET")
	require.NoError(t, err)
	require.Equal(t, "a-secret", val)

	_, err = RequireString(c, "ADMIN_USERNAME")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ADMIN_USERNAME")

	// An empty value is as bad as a missing one.
	_, err = RequireString(c, "EMPTY")
	require.Error(t, err)
}
