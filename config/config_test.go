package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "JUNK": "not-a-number"}

	assert.Equal(t, 30, GetInt(c, "TIMEOUT", 180))
	assert.Equal(t, 180, GetInt(c, "JUNK", 180))
	assert.Equal(t, 180, GetInt(c, "MISSING", 180))
	assert.Equal(t, 180, GetInt(nil, "TIMEOUT", 180))
}

func TestGetBool(t *testing.T) {
	c := map[string]string{
		"ENABLED":  "true",
		"DISABLED": "false",
		"NUMERIC":  "1",
		"JUNK":     "yep",
	}

	assert.True(t, GetBool(c, "ENABLED", false))
	assert.False(t, GetBool(c, "DISABLED", true))
	assert.True(t, GetBool(c, "NUMERIC", false))
	assert.True(t, GetBool(c, "JUNK", true))
	assert.False(t, GetBool(c, "MISSING", false))
	assert.True(t, GetBool(nil, "ENABLED", true))
}
