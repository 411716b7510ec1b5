// Command sassgo compiles scss files to css.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/titpetric/sassgo"
	"github.com/titpetric/sassgo/writer"
)

var (
	flagCompressed bool
	flagIndent     int
	flagOutput     string
)

func main() {
	root := &cobra.Command{
		Use:           "sassgo",
		Short:         "Compile scss to css",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	compile := &cobra.Command{
		Use:   "compile <file.scss>",
		Short: "Compile an scss file to css",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compileFile(args[0])
		},
	}

	watch := &cobra.Command{
		Use:   "watch <file.scss>",
		Short: "Recompile an scss file whenever a .scss file in its directory changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchFile(args[0])
		},
	}

	for _, cmd := range []*cobra.Command{compile, watch} {
		cmd.Flags().BoolVar(&flagCompressed, "compressed", false, "compressed output")
		cmd.Flags().IntVar(&flagIndent, "indent", 0, "initial indentation level")
		cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default stdout)")
	}

	root.AddCommand(compile, watch)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func style() writer.Style {
	if flagCompressed {
		return writer.Compressed()
	}
	return writer.Expanded(flagIndent)
}

func compileFile(path string) error {
	out := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return sassgo.CompileScssFile(path, out, style())
}

// watchFile recompiles whenever a .scss file in the file's directory is
// written, created or renamed, so edits to imported partials next to it
// trigger a rebuild too.
func watchFile(path string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	build := func() {
		if err := compileFile(path); err != nil {
			log.Error("compile failed", "file", path, "error", err)
			return
		}
		log.Info("compiled", "file", path)
	}
	build()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".scss") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			build()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "error", err)
		case <-stop:
			return nil
		}
	}
}
