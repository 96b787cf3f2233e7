package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-a", "localhost:8080", "-x", "nope", "-c", "conf.json"}
	got := FilterArgs(args, []string{"-a", "-c"})
	assert.Equal(t, []string{"-a", "localhost:8080", "-c", "conf.json"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "--other=1"}
	got := FilterArgs(args, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	args := []string{"-a", "-c", "conf.json"}
	got := FilterArgs(args, []string{"-a", "-c"})
	assert.Equal(t, []string{"-a", "-c", "conf.json"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"app", "-c", "client.json", "-a", "http://localhost"}
	assert.Equal(t, "client.json", JsonConfigFlags())

	os.Args = []string{"app", "-config", "other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"app"}
	assert.Equal(t, "", JsonConfigFlags())
}
