package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString_EscapesPassword(t *testing.T) {

	conn := ConnString("surveyor", "p@ss:w/rd#1", "db.internal", "5433", "estuaries")

	u, err := url.Parse(conn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "surveyor", u.User.Username())
	password, _ := u.User.Password()
	assert.Equal(t, "p@ss:w/rd#1", password)
	assert.Equal(t, "db.internal:5433", u.Host)
	assert.Equal(t, "/estuaries", u.Path)
}

func TestLoad_FromEnvironment(t *testing.T) {

	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_PASSWORD", "secret@1")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	settings := Load()
	assert.Equal(t, "9090", settings.Port)
	assert.Equal(t, int32(4), settings.MaxConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, settings.CorsOrigins)
	assert.Contains(t, settings.DatabaseURL, "@pg:")
	assert.Contains(t, settings.DatabaseURL, "secret%401")
}

func TestLoad_Defaults(t *testing.T) {

	settings := Load()
	assert.Equal(t, "map.html", settings.IndexFile)
	assert.True(t, settings.CheckSchema)
	assert.Equal(t, "warn", settings.DbLogLevel)
}

func TestNewLogger(t *testing.T) {

	logger, err := NewLogger("DEBUG")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("chatty")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {

	assert.Equal(t, []string{"*"}, splitList("*"))
	assert.Nil(t, splitList(" , "))
}
