// symcode - encode text to symbol codes and back
//
// Usage:
//
//	symcode encode [text...]      Encode text (or stdin) to a code-string
//	symcode decode [code...]      Decode a code-string (or stdin) to text
//	symcode guide [--raw]         Print the code guide
//
// A custom alphabet table may be given with --table, SYMCODE_TABLE or the
// "table" key of $HOME/.config/symcode/config.toml.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/symcode"
	"github.com/npillmayer/symcode/tabfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg Config
	root := &cobra.Command{
		Use:          "symcode",
		Short:        "Encode text to 3-symbol codes and back",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = loadConfig(cmd.Flags()); err != nil {
				return err
			}
			logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().String("table", "", "alphabet table file (default: built-in A-Z and heart)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log table loading and transform statistics to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text to a code-string",
		Long: `Encodes text to a code-string. Letters are case-folded, spaces are dropped
and every character without a code is replaced by "?".
Without arguments the text is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, cfg, (*symcode.Codec).Encode)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "decode [code...]",
		Short: "Decode a code-string to text",
		Long: `Decodes a code-string of space separated codes. Unknown codes are
replaced by "?". Without arguments the code-string is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, cfg, (*symcode.Codec).Decode)
		},
	})
	root.AddCommand(newGuideCmd(&cfg))
	return root
}

func runTransform(cmd *cobra.Command, args []string, cfg Config, transform func(*symcode.Codec, string) string) error {
	codec, err := loadCodec(cfg)
	if err != nil {
		return err
	}
	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	output := transform(codec, input)
	logger.Debug("transform",
		zap.String("command", cmd.Name()),
		zap.Int("input_bytes", len(input)),
		zap.Int("unrecognized", strings.Count(output, symcode.Unrecognized)))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

// newLogger creates a JSON logger writing to w. Only errors are logged
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

// loadCodec returns a codec for the configured table.
func loadCodec(cfg Config) (*symcode.Codec, error) {
	if cfg.Table == "" {
		return symcode.NewCodec(nil), nil
	}
	f, err := os.Open(cfg.Table)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	table, err := tabfile.LoadTable(cfg.Table, f)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", cfg.Table, err)
	}
	logger.Debug("loaded alphabet table", zap.String("path", cfg.Table), zap.Int("entries", table.Len()))
	return symcode.NewCodec(table), nil
}

// readInput joins args with single spaces, or reads all of stdin without the
// final line break if no args are given.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
