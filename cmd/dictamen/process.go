package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmrestrepo/dictamen/internal/api"
	"github.com/jmrestrepo/dictamen/internal/workflow"
)

var (
	processCategory string
	processDocType  string
)

var processCmd = &cobra.Command{
	Use:   "process <file.pdf>",
	Short: "Process a scanned ruling and print its summary",
	Long: `Process a scanned ruling end to end: transcribe every page, correct the
text, extract the fields for the chosen workflow and print the rendered
summary.

Examples:
  dictamen process dictamen.pdf --category pcl --type junta_regional
  dictamen process dictamen.pdf --category origen --type primera_oportunidad -o text`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := workflow.ParseCategory(processCategory)
		if err != nil {
			return err
		}
		docType, err := workflow.ParseDocType(processDocType)
		if err != nil {
			return err
		}

		pdf, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		logger := newLogger()
		st, err := newStack(logger)
		if err != nil {
			return err
		}

		run, err := st.service.Upload(category, docType, pdf)
		if err != nil {
			return err
		}

		run, err = st.service.Process(cmd.Context(), run.ID)
		if err != nil {
			return err
		}
		if run.Status == workflow.StatusFailed {
			fmt.Fprintln(os.Stderr, run.Message)
			return errors.New("processing failed")
		}

		return api.Output(run.Result)
	},
}

func init() {
	processCmd.Flags().StringVar(&processCategory, "category", "", "workflow category: pcl or origen")
	processCmd.Flags().StringVar(&processDocType, "type", "", "document type: primera_oportunidad, junta_regional or recurso")
	processCmd.MarkFlagRequired("category")
	processCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(processCmd)
}
