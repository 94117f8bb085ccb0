package cli

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	configadapter "github.com/pipecheck/pipecheck/internal/adapters/outbound/config"
	"github.com/pipecheck/pipecheck/internal/adapters/outbound/gitstate"
	"github.com/pipecheck/pipecheck/internal/adapters/outbound/hostapi"
	"github.com/pipecheck/pipecheck/internal/adapters/outbound/jobstore"
	"github.com/pipecheck/pipecheck/internal/adapters/outbound/tui"
	"github.com/pipecheck/pipecheck/internal/application"
	"github.com/pipecheck/pipecheck/internal/domain"
	"github.com/pipecheck/pipecheck/internal/domain/checks"
)

func newPreflightCmd() *cobra.Command {
	var (
		path       string
		configFile string
		jsonOutput bool
		strict     bool
		trigger    bool
	)

	cmd := &cobra.Command{
		Use:   "preflight",
		Short: "Run every preflight check and report a verdict",
		Long:  "Probe the pipeline's repository, templates, scheduler config, and hosting API, then report every assertion with a pass/warn/fail severity. Exit code 1 iff any assertion failed; warnings never fail the run unless --strict.",
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			loader := configadapter.New()
			var cfg domain.Config
			if configFile != "" {
				cfg, err = loader.LoadFile(configFile)
			} else {
				cfg, err = loader.Load(workDir)
			}
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			jobs := jobstore.New(filepath.Join(workDir, cfg.JobsFile))
			deps := checks.Deps{
				Git:     gitstate.Open(workDir),
				Host:    hostapi.New(workDir),
				Jobs:    jobs,
				Cfg:     cfg,
				WorkDir: workDir,
			}

			svc := application.NewPreflightService(deps)
			run, err := svc.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("preflight aborted: %w", err)
			}

			verdict := domain.Aggregate(run)
			if strict {
				verdict = domain.AggregateStrict(run)
			}

			if jsonOutput {
				if err := renderJSON(cmd, run, verdict); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRun(run, verdict))
			}

			// The live trigger runs after the verdict is reported and never
			// changes the exit code contract.
			if trigger {
				runTrigger(cmd, jobs, cfg, workDir)
			}

			if verdict.ExitCode != 0 {
				return fmt.Errorf("preflight %s: %d failed, %d warnings",
					verdict.Label(), verdict.Fail, verdict.Warn)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Work tree of the pipeline under validation")
	cmd.Flags().StringVar(&configFile, "config", "", "Explicit config file (defaults to .pipecheck.yaml in the work tree)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run record as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit nonzero on warnings as well as failures")
	cmd.Flags().BoolVar(&trigger, "trigger", false, "Run the scheduled job once after reporting the verdict")

	return cmd
}

func renderJSON(cmd *cobra.Command, run *domain.Run, verdict domain.Verdict) error {
	out := struct {
		*domain.Run
		Verdict domain.Verdict `json:"verdict"`
		Label   string         `json:"label"`
	}{run, verdict, verdict.Label()}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// runTrigger looks up the scheduled job and executes its command once.
func runTrigger(cmd *cobra.Command, jobs domain.JobStore, cfg domain.Config, workDir string) {
	job, err := jobs.Lookup(cfg.JobID)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trigger: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "triggering job %q\n", job.ID)
	run := exec.Command("sh", "-c", job.Command)
	run.Dir = workDir
	run.Stdout = cmd.OutOrStdout()
	run.Stderr = cmd.ErrOrStderr()
	if err := run.Run(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trigger: %v\n", err)
	}
}
