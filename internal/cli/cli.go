package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Options holds the command-line options for the convert command.
type Options struct {
	ConvertOptions
	Output string
	Watch  bool
}

// Run executes the convert command.
func Run(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	var opts Options
	fs.StringVar(&opts.From, "from", FormatXML, "input format: xml, json, jsonc, yaml or toml")
	fs.StringVar(&opts.To, "to", FormatJSON, "output format: xml, json, yaml or toml")
	fs.StringVar(&opts.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&opts.Indent, "indent", "  ", "indent step for xml and json output")
	fs.StringVar(&opts.Prefix, "prefix", "", "prefix for every xml and json output line")
	fs.IntVar(&opts.MaxDepth, "max-depth", 0, "element nesting limit for xml input (0: library default)")
	fs.BoolVar(&opts.Watch, "watch", false, "keep running and re-convert whenever the input file changes")

	fs.Usage = PrintHelp

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		PrintHelp()
		return err
	}

	var input string
	switch remaining := fs.Args(); len(remaining) {
	case 0:
	case 1:
		input = remaining[0]
	default:
		PrintHelp()
		return fmt.Errorf("at most one input file is expected")
	}

	if opts.Watch {
		if input == "" {
			return fmt.Errorf("-watch requires an input file")
		}
		return watch(input, opts)
	}

	return convertOnce(input, opts)
}

func (o Options) validate() error {
	switch o.From {
	case FormatXML, FormatJSON, FormatJSONC, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("unsupported input format %q", o.From)
	}
	switch o.To {
	case FormatXML, FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("unsupported output format %q", o.To)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("-max-depth must not be negative")
	}
	return nil
}

// convertOnce runs one conversion from the input file, or stdin when
// input is empty, to the configured output.
func convertOnce(input string, opts Options) error {
	in, err := readInput(input)
	if err != nil {
		return err
	}
	out, err := Convert(in, opts.ConvertOptions)
	if err != nil {
		return err
	}
	_, err = writeOutput(opts.Output, out)
	return err
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}

// writeOutput writes out to path, or stdout when path is empty, and
// reports the number of bytes written. Output that does not already
// end in a newline gets one.
func writeOutput(path string, out []byte) (int, error) {
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	if path == "" {
		n, err := os.Stdout.Write(out)
		if err != nil {
			return n, fmt.Errorf("write stdout: %w", err)
		}
		return n, nil
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return 0, fmt.Errorf("write %q: %w", path, err)
	}
	return len(out), nil
}

// PrintHelp prints help for the convert command.
func PrintHelp() {
	fmt.Fprintln(os.Stderr, `xmlmap convert - Convert between XML and JSON, JSONC, YAML or TOML

Usage:
  xmlmap convert [options] [input-file]

Reads the input file, or stdin when no file is given, decodes it
according to -from and writes it re-encoded according to -to.

Options:
  -from string       Input format: xml, json, jsonc, yaml or toml (default "xml")
  -to string         Output format: xml, json, yaml or toml (default "json")
  -o string          Output file path (default: stdout)
  -indent string     Indent step for xml and json output (default "  ")
  -prefix string     Prefix for every xml and json output line
  -max-depth int     Element nesting limit for xml input (0: library default)
  -watch             Keep running and re-convert whenever the input file changes

Examples:
  xmlmap convert config.xml
  xmlmap convert -to yaml config.xml
  xmlmap convert -from yaml -to xml -o config.xml config.yaml
  xmlmap convert -watch -o config.json config.xml`)
}
