package pipeline

import (
	"fmt"
	"io"
	"os"
)

// ReadInputs reads each path into an [Input]. The path "-" reads stdin.
func ReadInputs(stdin io.Reader, paths ...string) ([]Input, error) {
	inputs := make([]Input, 0, len(paths))

	for _, path := range paths {
		var (
			data []byte
			err  error
		)

		if path == "-" {
			data, err = io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
			}
		} else {
			data, err = os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
			}
		}

		inputs = append(inputs, Input{Name: path, Data: data})
	}

	return inputs, nil
}

// WriteOutput writes out to the file at path, or to stdout when path is
// empty or "-".
func WriteOutput(stdout io.Writer, path, out string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, out)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(path, []byte(out), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
