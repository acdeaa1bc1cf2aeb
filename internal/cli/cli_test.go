package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/biztime-backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Port: 3000, Env: "test"},
		Log: config.LogConfig{Level: "info"},
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "biztime dev (none)\n", out.String())
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"serve", "migrate", "seed", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", serve.Flags().Lookup("store").DefValue)
}

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	for _, bad := range []string{"0", "-1", "two"} {
		_, err := parseSteps([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestOpenRepositories_UnknownStore(t *testing.T) {
	_, err := openRepositories(context.Background(), testConfig(), "sqlite")

	assert.ErrorContains(t, err, `unknown store "sqlite"`)
}

func TestNewHandler_MemoryStore(t *testing.T) {
	cfg := testConfig()
	repos, err := openRepositories(context.Background(), cfg, storeMemory)
	require.NoError(t, err)
	defer repos.close()
	logger, level, err := newLogger(&bytes.Buffer{}, cfg)
	require.NoError(t, err)

	handler := newHandler(cfg, logger, level, repos)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/companies",
		strings.NewReader(`{"code":"ibm","name":"IBM","description":"Big blue."}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/companies", nil))
	assert.JSONEq(t, `{"companies":[{"code":"ibm","name":"IBM"}]}`, rec.Body.String())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.App.Env = "production"

	logger, _, err := newLogger(&buf, cfg)
	require.NoError(t, err)
	logger.Info("hello")
	assert.Contains(t, buf.String(), `"app":"biztime"`)
	assert.Contains(t, buf.String(), `"env":"production"`)

	buf.Reset()
	logger, _, err = newLogger(&buf, testConfig())
	require.NoError(t, err)
	logger.Error("hidden")
	assert.Empty(t, buf.String())
}
