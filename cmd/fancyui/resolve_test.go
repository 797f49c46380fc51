package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	fancyerrors "github.com/alexisbeaulieu97/fancyui/pkg/errors"
)

func TestResolveCommandUsesDefaults(t *testing.T) {
	stdout, _, err := executeCommand(t, "resolve", "button")
	require.NoError(t, err)

	class := strings.TrimSpace(stdout)
	require.True(t, strings.HasPrefix(class, "inline-flex items-center"))
	require.Contains(t, class, "bg-primary")
	require.True(t, strings.HasSuffix(class, "h-10 px-4 py-2"))
}

func TestResolveCommandAppliesSelectionAndClasses(t *testing.T) {
	stdout, _, err := executeCommand(t, "resolve", "button", "--set", "variant=destructive", "--set", "size=lg", "--class", "w-full")
	require.NoError(t, err)

	class := strings.TrimSpace(stdout)
	require.Contains(t, class, "bg-destructive")
	require.NotContains(t, class, "bg-primary ")
	require.Contains(t, class, "h-11 px-8 text-base")
	require.True(t, strings.HasSuffix(class, "w-full"))
}

func TestResolveCommandJSONOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "resolve", "modal", "--set", "size=lg", "--json")
	require.NoError(t, err)

	var payload resolveJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "modal", payload.Component)
	require.Equal(t, map[string]string{"size": "lg"}, payload.Selection)
	require.Contains(t, payload.Tokens, "max-w-2xl")
	require.Equal(t, strings.Join(payload.Tokens, " "), payload.Class)
}

func TestResolveCommandRejectsUnknownOption(t *testing.T) {
	_, _, err := executeCommand(t, "resolve", "button", "--set", "size=huge")
	require.Error(t, err)

	var selErr *fancyerrors.SelectionError
	require.True(t, errors.As(err, &selErr))
	require.Equal(t, "size", selErr.Axis)
	require.Equal(t, "huge", selErr.Option)
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestResolveCommandRejectsUnknownComponent(t *testing.T) {
	_, _, err := executeCommand(t, "resolve", "carousel")
	require.Error(t, err)
	require.Contains(t, err.Error(), "button, datepicker, input, modal")
}

func TestResolveCommandRejectsMalformedSet(t *testing.T) {
	_, _, err := executeCommand(t, "resolve", "button", "--set", "size")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected axis=option")
}

func TestResolveCommandLoadsSchemaDocument(t *testing.T) {
	path := writeSchema(t, "chips.yaml", chipYAML)

	stdout, _, err := executeCommand(t, "resolve", "chip", "--schema", path, "--set", "tone=loud")
	require.NoError(t, err)
	require.Equal(t, "inline-flex rounded-full bg-destructive text-white\n", stdout)
}

func TestResolveCommandVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "resolve", "button", "--verbose", "--log-json")
	require.NoError(t, err)
	require.NotContains(t, stdout, "resolved class")
	require.Contains(t, stderr, `"message":"resolved class"`)
	require.Contains(t, stderr, `"component":"button"`)
}

func TestParseSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pairs   []string
		want    map[string]string
		wantErr bool
	}{
		{name: "empty", pairs: nil, want: map[string]string{}},
		{name: "single", pairs: []string{"size=lg"}, want: map[string]string{"size": "lg"}},
		{name: "last wins", pairs: []string{"size=sm", "size=lg"}, want: map[string]string{"size": "lg"}},
		{name: "trims spaces", pairs: []string{" size = lg "}, want: map[string]string{"size": "lg"}},
		{name: "empty option", pairs: []string{"size="}, want: map[string]string{"size": ""}},
		{name: "missing separator", pairs: []string{"size"}, wantErr: true},
		{name: "missing axis", pairs: []string{"=lg"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sel, err := parseSelection(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, map[string]string(sel))
		})
	}
}
