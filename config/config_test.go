package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"MONGO_DATABASE", "PORT", "IMPORT_ALLOWED_HOST", "FETCH_TIMEOUT", "BROWSER_FALLBACK", "ADMIN_EMAIL"} {
		t.Setenv(k, "")
	}
	LoadConfig()

	assert.Equal(t, "tonies", MongoDatabase)
	assert.Equal(t, "8080", Port)
	assert.Equal(t, "tonies.com", ImportAllowedHost)
	assert.Equal(t, 10*time.Second, FetchTimeout)
	assert.True(t, BrowserFallback)
	assert.Empty(t, AdminEmail)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "  Admin@Example.COM ")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("BROWSER_FALLBACK", "false")
	t.Setenv("CHROMEDRIVER_PATH", "/opt/chromedriver")
	LoadConfig()

	assert.Equal(t, "admin@example.com", AdminEmail)
	assert.Equal(t, 3*time.Second, FetchTimeout)
	assert.False(t, BrowserFallback)
	assert.Equal(t, "/opt/chromedriver", ChromeDriverPath)
}

func TestLoadConfigBadTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")
	LoadConfig()
	assert.Equal(t, 10*time.Second, FetchTimeout)
}
