package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/colkit/colkit/pkg/config"
	"github.com/colkit/colkit/pkg/logger"
	"github.com/colkit/colkit/pkg/recordset"

	// Import database drivers to register them
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "colkit",
		Short:         "Query a database and export the result set as typed columns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newQueryCommand())
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newQueryCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a SQL query and export the result set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg)

			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := logger.Init(logger.Config{
				Level:       cfg.Log.Level,
				Development: cfg.Log.Development,
				Encoding:    cfg.Log.Encoding,
			}); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runQuery(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().String("driver", "mysql", "database driver (mysql or pgx)")
	cmd.Flags().String("dsn", "", "data source name")
	cmd.Flags().String("sql", "", "SQL query to execute")
	cmd.Flags().String("format", "json", "output format (json, csv or arrow)")
	cmd.Flags().StringP("output", "o", "-", "output file, - for stdout")
	cmd.Flags().String("compress", "none", "output compression (none, gzip or zstd)")
	cmd.Flags().String("log-level", "info", "log level")

	return cmd
}

// applyFlagOverrides lets explicitly set flags win over config file and
// environment values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	set("driver", &cfg.Driver)
	set("dsn", &cfg.DSN)
	set("sql", &cfg.Query)
	set("format", &cfg.Format)
	set("output", &cfg.Output)
	set("compress", &cfg.Compress)
	set("log-level", &cfg.Log.Level)
}

func runQuery(cfg *config.Config) error {
	log := logger.With(zap.String("driver", cfg.Driver))

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(cfg.Query)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	rs, err := recordset.FromRows(rows)
	if err != nil {
		return err
	}

	log.Info("query complete",
		zap.Int("rows", rs.RowCount()),
		zap.Int("columns", rs.ColumnCount()))

	out, closeOut, err := openOutput(cfg)
	if err != nil {
		return err
	}

	if err := writeOutput(out, cfg.Format, rs); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

// openOutput opens the destination writer, wrapping it in a compressor
// when configured.
func openOutput(cfg *config.Config) (io.Writer, func() error, error) {
	var w io.Writer
	var closers []io.Closer

	if cfg.Output == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file: %w", err)
		}
		closers = append(closers, f)
		w = f
	}

	switch cfg.Compress {
	case "gzip":
		zw := gzip.NewWriter(w)
		closers = append(closers, zw)
		w = zw
	case "zstd":
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("creating zstd writer: %w", err)
		}
		closers = append(closers, zw)
		w = zw
	}

	closeAll := func() error {
		// Close compressors before the underlying file.
		var firstErr error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
	return w, closeAll, nil
}

func writeOutput(w io.Writer, format string, rs *recordset.RecordSet) error {
	switch format {
	case "json":
		return rs.WriteJSON(w)
	case "csv":
		return rs.WriteCSV(w)
	case "arrow":
		return writeArrow(w, rs)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeArrow writes the record set as an Arrow IPC file.
func writeArrow(w io.Writer, rs *recordset.RecordSet) error {
	rec, err := recordset.ToArrow(rs, memory.NewGoAllocator())
	if err != nil {
		return err
	}
	defer rec.Release()

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(rec.Schema()))
	if err != nil {
		return fmt.Errorf("creating Arrow writer: %w", err)
	}
	if err := fw.Write(rec); err != nil {
		_ = fw.Close()
		return fmt.Errorf("writing Arrow record: %w", err)
	}
	return fw.Close()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the colkit version",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("colkit %s\n", version)
		},
	}
}
