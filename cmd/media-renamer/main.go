package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/quidome/media-renamer-go/pkg/rename"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

type options struct {
	verbose bool
	dryRun  bool
	yes     bool
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "media-renamer",
		Short:   "A CLI tool to add creation-date prefixes to media filenames",
		Long:    "Media Renamer adds each file's creation date to the beginning of media filenames in yyyy-mm-dd format.\nExample: 'Clockwork.mp4' becomes '2023-03-15 Clockwork.mp4'.",
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Media File Date Renamer")
			cmd.Printf("Version: %s\n", version)
			if opts.verbose {
				cmd.Println("Verbose mode: enabled")
			}
			if opts.dryRun {
				cmd.Println("Dry run mode: enabled")
			}
			cmd.Println("")
			cmd.Println("Use --help to see available commands and options")
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "show the renaming plan without touching any file")

	rootCmd.AddCommand(newRenameCmd(opts))

	return rootCmd
}

func newRenameCmd(opts *options) *cobra.Command {
	renameCmd := &cobra.Command{
		Use:   "rename [directory]",
		Short: "Add creation-date prefixes to media files in a directory",
		Long:  "Rename media files in a directory by prefixing each filename with its effective creation date (the earlier of the file's creation-like and modification timestamps). The plan is previewed first; actual renaming happens only after confirmation.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())

			var dir string
			if len(args) == 1 {
				dir = cleanDirectoryInput(args[0])
			} else {
				prompted, err := promptDirectory(cmd, in)
				if err != nil {
					return err
				}
				dir = prompted
			}

			cmd.Println("PREVIEW (showing what would be renamed):")
			results, err := rename.Run(dir, rename.Options{DryRun: true})
			if err != nil {
				return err
			}

			summary := rename.Summarize(results)
			if summary.TotalMediaFiles == 0 {
				cmd.Println("No media files found in directory.")
				return nil
			}

			cmd.Printf("Found %d media files.\n\n", summary.TotalMediaFiles)
			report(cmd, results, opts.verbose)
			printSummary(cmd, summary, true)

			if opts.dryRun {
				return nil
			}

			if !opts.yes {
				proceed, err := confirm(cmd, in)
				if err != nil {
					return err
				}
				if !proceed {
					cmd.Println("Operation cancelled.")
					return nil
				}
			}

			cmd.Println("\nProceeding with renaming...")
			results, err = rename.Run(dir, rename.Options{})
			if err != nil {
				return err
			}

			report(cmd, results, opts.verbose)
			printSummary(cmd, rename.Summarize(results), false)
			return nil
		},
	}

	renameCmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip the confirmation prompt")

	return renameCmd
}

func report(cmd *cobra.Command, results []rename.Result, verbose bool) {
	for _, r := range results {
		switch r.Outcome {
		case rename.OutcomeSkipped:
			cmd.Printf("SKIP: %s (already has date prefix)\n", r.Name)
		case rename.OutcomeWouldRename:
			cmd.Printf("WOULD RENAME: %s → %s\n", r.Name, r.NewName)
		case rename.OutcomeRenamed:
			cmd.Printf("RENAMED: %s → %s\n", r.Name, r.NewName)
		case rename.OutcomeFailed:
			cmd.Printf("ERROR: %v\n", r.Err)
		}
		if verbose && r.Source != "" && r.Outcome != rename.OutcomeFailed {
			cmd.Printf("  date source: %s\n", r.Source)
		}
	}
}

func printSummary(cmd *cobra.Command, s rename.Summary, dryRun bool) {
	if dryRun {
		cmd.Println("\nDRY RUN SUMMARY:")
	} else {
		cmd.Println("\nSUMMARY:")
	}
	cmd.Printf("Total media files: %d\n", s.TotalMediaFiles)
	if !dryRun {
		cmd.Printf("Successfully renamed: %d\n", s.Renamed)
	}
	cmd.Printf("Skipped (already has date): %d\n", s.Skipped)
	cmd.Printf("Errors: %d\n", s.Errors)
}

// promptDirectory asks for a directory path until an existing directory is
// entered.
func promptDirectory(cmd *cobra.Command, in *bufio.Reader) (string, error) {
	for {
		cmd.Print("Enter the directory path containing your media files: ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}

		dir := cleanDirectoryInput(line)
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return dir, nil
		}
		cmd.Printf("Directory '%s' does not exist. Please try again.\n\n", dir)

		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
	}
}

// confirm asks a yes/no question and re-prompts on anything else. EOF counts
// as "no".
func confirm(cmd *cobra.Command, in *bufio.Reader) (bool, error) {
	for {
		cmd.Print("Do you want to proceed with renaming? (yes/no): ")
		line, err := in.ReadString('\n')

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}

		if err != nil {
			return false, nil
		}
		cmd.Println("Please enter 'yes' or 'no'.")
	}
}

// cleanDirectoryInput trims whitespace and surrounding quote characters that
// pasted paths often carry.
func cleanDirectoryInput(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
