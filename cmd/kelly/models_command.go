package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kelly/internal/config"
	"kelly/internal/reply"
)

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "models",
		Short:       "List the models Kelly can ask",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if isTerminal(out) {
				fmt.Fprintln(out, renderTable(
					[]string{"Identifier", "Name", "Notes"},
					modelRows(),
				))
				return nil
			}
			for _, model := range config.KnownModels {
				fmt.Fprintln(out, model)
			}
			return nil
		},
	}
}

func modelRows() [][]string {
	rows := make([][]string, 0, len(config.KnownModels))
	for _, model := range config.KnownModels {
		note := ""
		if model == config.Default().Gemini.Model {
			note = "default"
		}
		if model == reply.FastModel {
			if note != "" {
				note += "; "
			}
			note += "escalation target when other models stay silent"
		}
		rows = append(rows, []string{model, modelDisplayName(model), note})
	}
	return rows
}

// modelDisplayName turns "models/gemini-2.5-pro" into "Gemini 2.5 Pro".
func modelDisplayName(model string) string {
	name := strings.TrimPrefix(model, "models/")
	name = strings.ReplaceAll(name, "-", " ")
	return cases.Title(language.English).String(name)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
