package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderReadsShippedFiles(t *testing.T) {
	t.Setenv("CINEMA_TICKET_PRICE", "")
	t.Setenv("MERCH_DEFAULT_BRAND", "harman")

	data, err := NewLoader(".").Load()
	require.NoError(t, err)

	m := NewManager()
	m.Load(data)

	assert.Equal(t, "harman", m.GetString("merch.default_brand"))
	assert.Equal(t, "M", m.GetString("merch.hoodie_size"))
	assert.Equal(t, 12.3, m.GetFloat("shows.cinema.ticket_price"))
	assert.Equal(t, 22.3, m.GetFloat("shows.theatre.ticket_price"))
	assert.Equal(t, 10, m.GetInt("shows.default_batch"))
}

func TestLoaderSkipsNonYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shows.yml"), []byte("cinema:\n  ticket_price: 9\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	data, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Len(t, data, 1)
	assert.Contains(t, data, "shows")
}

func TestLoaderMissingDirectory(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent")).Load()
	assert.ErrorContains(t, err, "config directory does not exist")
}

func TestLoaderInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("a: [1, 2"), 0644))

	_, err := NewLoader(dir).Load()
	assert.ErrorContains(t, err, "failed to load config file")
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("CREATIONAL_PRICE", "30")

	assert.Equal(t, "price: 30", expandEnv("price: ${CREATIONAL_PRICE}"))
	assert.Equal(t, "price: 5", expandEnv("price: ${CREATIONAL_PRICE_UNSET:5}"))
	assert.Equal(t, "price: ", expandEnv("price: ${CREATIONAL_PRICE_UNSET}"))
}
