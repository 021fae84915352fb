package cmd

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cecil-the-coder/kitutil/pkg/config"
	"github.com/cecil-the-coder/kitutil/pkg/sniff"
)

func newSniffCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sniff FILE",
		Short: "Guess what a file contains",
		Long: `Report the audio format, the container format and whether the file
holds a single base64 string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.ReadFile(args[0])
			if err != nil {
				return err
			}
			opts.log().Debug("sniffing file", "file", args[0], "bytes", len(data))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "audio: %s\n", sniff.DetectAudioFormat(data))
			fmt.Fprintf(out, "container: %s\n", sniff.GuessFormat(decodeContainer(data)))
			_, err = fmt.Fprintf(out, "base64: %t\n", sniff.IsBase64(string(bytes.TrimSpace(data))))
			return err
		},
	}
}

// decodeContainer turns file bytes into the Go value a loader would hand
// over: a map or list for structured text, a string for other text and the
// raw bytes for binary content.
func decodeContainer(data []byte) interface{} {
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return data
	}
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		switch doc.(type) {
		case map[string]interface{}, []interface{}:
			return doc
		}
	}
	return string(data)
}
