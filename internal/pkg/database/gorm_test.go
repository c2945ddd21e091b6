package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	dsn, err := NormalizeDSN("root:secret@tcp(127.0.0.1:3306)/trendscope")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "loc=Local")
	assert.True(t, strings.HasPrefix(dsn, "root:secret@tcp(127.0.0.1:3306)/trendscope?"))
}

func TestNormalizeDSN_OverridesParseTime(t *testing.T) {
	dsn, err := NormalizeDSN("u:p@tcp(db:3306)/x?parseTime=false")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.NotContains(t, dsn, "parseTime=false")
}

func TestNormalizeDSN_Invalid(t *testing.T) {
	_, err := NormalizeDSN("not a dsn")
	assert.Error(t, err)
}
