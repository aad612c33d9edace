package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/conversor-api/internal/application/dto"
	"github.com/jhoicas/conversor-api/internal/domain"
)

// run ejecuta el CLI con args y devuelve la salida estándar.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(newCLI())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "length", "mile", "meter", "1"}, "1609.34"},
		{[]string{"convert", "data", "megabyte", "byte", "1"}, "1048576"},
		{[]string{"convert", "temperature", "celsius", "fahrenheit", "--", "-40"}, "-40"},
		{[]string{"convert", "temperature", "celsius", "fahrenheit", "abc"}, "0"},
		{[]string{"convert", "fuel_consumption", "l_per_100km", "mpg_us", "0"}, "Infinity"},
	}

	for _, tt := range tests {
		out, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, strings.TrimSpace(out), "%v", tt.args)
	}
}

func TestConvertCmd_Raw(t *testing.T) {
	out, err := run(t, "convert", "--raw", "length", "inch", "meter", "0.3333333")
	require.NoError(t, err)

	got, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.3333333*0.0254, got, 1e-15)

	rounded, err := run(t, "convert", "length", "inch", "meter", "0.3333333")
	require.NoError(t, err)
	assert.Equal(t, "0.008467", strings.TrimSpace(rounded))
}

func TestConvertCmd_NotFound(t *testing.T) {
	_, err := run(t, "convert", "length", "metre", "mile", "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnitNotFound))
	assert.Contains(t, err.Error(), `"meter"`)
}

func TestConvertCmd_ArgCount(t *testing.T) {
	_, err := run(t, "convert", "length", "mile", "meter")
	assert.Error(t, err)
}

func TestSwapCmd(t *testing.T) {
	out, err := run(t, "swap", "mile", "meter")
	require.NoError(t, err)
	assert.Equal(t, "meter mile", strings.TrimSpace(out))

	out, err = run(t, "swap", "-c", "length", "-v", "1609.34", "mile", "meter")
	require.NoError(t, err)
	assert.Equal(t, []string{"meter mile", "1"}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 14, "cabecera + 13 categorías")
	assert.True(t, strings.HasPrefix(lines[1], "length"))
	assert.True(t, strings.HasPrefix(lines[13], "fuel_consumption"))
}

func TestUnitsCmd(t *testing.T) {
	out, err := run(t, "units", "temperature")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "celsius")
	assert.Contains(t, lines[1], "(base)")
	assert.NotContains(t, lines[2], "(base)")

	_, err = run(t, "units", "nope")
	assert.True(t, errors.Is(err, domain.ErrCategoryNotFound))
}

func TestCatalogCmd(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	var fromJSON dto.CatalogExport
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Len(t, fromJSON.Categories, 13)

	out, err = run(t, "catalog", "--format", "yaml")
	require.NoError(t, err)
	var fromYAML dto.CatalogExport
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)

	_, err = run(t, "catalog", "-f", "xml")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version, strings.TrimSpace(out))

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "unitconv "+version))
}
