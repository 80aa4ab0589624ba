package pipeline_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/apistub/ident"
	"go.jacobcolvin.com/apistub/pipeline"
	"go.jacobcolvin.com/apistub/render"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := pipeline.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	assert.Equal(t, "auto", cfg.Source)
	assert.Equal(t, "stub", cfg.Format)
	assert.Equal(t, "snake", cfg.Style)
	assert.Equal(t, "property", cfg.Mode)
	assert.Equal(t, pipeline.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "Services", cfg.ContainerID)
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, "-", cfg.Output)
}

func TestConfigNewGenerator(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		err  error
	}{
		"defaults":          {},
		"all options":       {args: []string{"--source=schema", "-f", "yaml", "--style=camel", "--mode=nullable-getter", "--indent=2"}},
		"unknown source":    {args: []string{"--source=pdf"}, err: pipeline.ErrUnknownSource},
		"unknown format":    {args: []string{"--format=xml"}, err: pipeline.ErrUnknownFormat},
		"unknown style":     {args: []string{"--style=kebab"}, err: ident.ErrUnknownStyle},
		"unknown mode":      {args: []string{"--mode=getter"}, err: render.ErrUnknownMode},
		"relative base url": {args: []string{"--base-url=/doc/api/"}, err: pipeline.ErrInvalidOption},
		"negative indent":   {args: []string{"--indent=-1"}, err: pipeline.ErrInvalidOption},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := pipeline.NewConfig()
			cmd := &cobra.Command{Use: "test"}
			cfg.RegisterFlags(cmd.Flags())
			require.NoError(t, cmd.Flags().Parse(tc.args))

			gen, err := cfg.NewGenerator()
			if tc.err != nil {
				require.ErrorIs(t, err, pipeline.ErrInvalidOption)
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, gen)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, gen)
		})
	}
}

func TestConfigAppliesOptions(t *testing.T) {
	t.Parallel()

	cfg := pipeline.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--style=lower-camel", "--mode=nullable-getter", "--indent=2"}))

	gen, err := cfg.NewGenerator()
	require.NoError(t, err)

	got, err := gen.Generate(input(t, "course.html"))
	require.NoError(t, err)

	assertGolden(t, "testdata/course_nullable.golden", got)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := pipeline.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	tcs := map[string]struct {
		flag string
		want []string
	}{
		"source":       {flag: "source", want: pipeline.AllSourceStrings()},
		"format":       {flag: "format", want: pipeline.AllFormatStrings()},
		"style":        {flag: "style", want: ident.AllStyleStrings()},
		"mode":         {flag: "mode", want: render.AllModeStrings()},
		"base-url":     {flag: "base-url"},
		"container-id": {flag: "container-id"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fn, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			got, directive := fn(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSourceAndFormat(t *testing.T) {
	t.Parallel()

	src, err := pipeline.ParseSource("SECTIONS")
	require.NoError(t, err)
	assert.Equal(t, pipeline.SourceSections, src)

	_, err = pipeline.ParseSource("")
	require.ErrorIs(t, err, pipeline.ErrUnknownSource)

	f, err := pipeline.ParseFormat("json-schema")
	require.NoError(t, err)
	assert.Equal(t, pipeline.FormatJSONSchema, f)

	_, err = pipeline.ParseFormat("json")
	require.ErrorIs(t, err, pipeline.ErrUnknownFormat)
}
