package pipeline

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/apistub/ident"
	"go.jacobcolvin.com/apistub/render"
	"go.jacobcolvin.com/apistub/sectiondoc"
)

// DefaultBaseURL is the page that relative method links are resolved
// against when no base URL is given.
const DefaultBaseURL = "https://canvas.instructure.com/doc/api/all_resources.html"

// Flags holds CLI flag names for generator configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Source      string
	Format      string
	Style       string
	Mode        string
	BaseURL     string
	ContainerID string
	Indent      string
	Output      string
}

// Config holds CLI flag values for generator configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewGenerator] to create a [Generator].
type Config struct {
	Flags       Flags
	Source      string
	Format      string
	Style       string
	Mode        string
	BaseURL     string
	ContainerID string
	Output      string
	Indent      int
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Source:      "source",
		Format:      "format",
		Style:       "style",
		Mode:        "mode",
		BaseURL:     "base-url",
		ContainerID: "container-id",
		Indent:      "indent",
		Output:      "output",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds generator flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Source, c.Flags.Source, string(SourceAuto),
		fmt.Sprintf("input interpretation, one of: %s", AllSourceStrings()))
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(FormatStub),
		fmt.Sprintf("output format, one of: %s", AllFormatStrings()))
	flags.StringVar(&c.Style, c.Flags.Style, string(ident.StyleSnake),
		fmt.Sprintf("identifier style, one of: %s", ident.AllStyleStrings()))
	flags.StringVar(&c.Mode, c.Flags.Mode, string(render.ModeProperty),
		fmt.Sprintf("property accessor layout, one of: %s", render.AllModeStrings()))
	flags.StringVar(&c.BaseURL, c.Flags.BaseURL, DefaultBaseURL,
		"URL that relative method links are resolved against")
	flags.StringVar(&c.ContainerID, c.Flags.ContainerID, sectiondoc.DefaultContainerID,
		"id of the element holding method sections")
	flags.IntVar(&c.Indent, c.Flags.Indent, 4,
		"indentation unit of stub output, in spaces")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
}

// RegisterCompletions registers shell completions for generator flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	fixed := map[string][]string{
		c.Flags.Source: AllSourceStrings(),
		c.Flags.Format: AllFormatStrings(),
		c.Flags.Style:  ident.AllStyleStrings(),
		c.Flags.Mode:   render.AllModeStrings(),
	}

	for flag, values := range fixed {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.BaseURL, c.Flags.ContainerID, c.Flags.Indent} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewGenerator creates a [Generator] using this [Config]. Unset values
// fall back to the [NewGenerator] defaults.
func (c *Config) NewGenerator() (*Generator, error) {
	var (
		opts       []Option
		renderOpts []render.Option
	)

	if c.Source != "" {
		src, err := ParseSource(c.Source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidOption, err, c.Source)
		}

		opts = append(opts, WithSource(src))
	}

	if c.Format != "" {
		f, err := ParseFormat(c.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidOption, err, c.Format)
		}

		opts = append(opts, WithFormat(f))
	}

	if c.Style != "" {
		style, err := ident.ParseStyle(c.Style)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidOption, err, c.Style)
		}

		opts = append(opts, WithStyle(style))
	}

	if c.Mode != "" {
		mode, err := render.ParseMode(c.Mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidOption, err, c.Mode)
		}

		renderOpts = append(renderOpts, render.WithMode(mode))
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: base url: %w", ErrInvalidOption, err)
		}

		if !u.IsAbs() {
			return nil, fmt.Errorf("%w: base url %q is not absolute", ErrInvalidOption, c.BaseURL)
		}

		opts = append(opts, WithBaseURL(u))
	}

	if c.ContainerID != "" {
		opts = append(opts, WithContainerID(c.ContainerID))
	}

	if c.Indent < 0 {
		return nil, fmt.Errorf("%w: indent %d is negative", ErrInvalidOption, c.Indent)
	}

	if c.Indent > 0 {
		renderOpts = append(renderOpts, render.WithIndent(c.Indent))
	}

	if len(renderOpts) > 0 {
		opts = append(opts, WithRenderOptions(renderOpts...))
	}

	return NewGenerator(opts...), nil
}
