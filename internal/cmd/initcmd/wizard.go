package initcmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/huh"
)

// Wizard manages the interactive configuration wizard.
type Wizard struct {
	state *WizardState
}

// NewWizard creates a new wizard instance writing to outputPath.
func NewWizard(outputPath string) *Wizard {
	state := NewWizardState()
	if outputPath != "" {
		state.ConfigPath = outputPath
	}
	return &Wizard{state: state}
}

// Run executes the wizard flow.
func (w *Wizard) Run() error {
	// Graceful Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		fmt.Println()
		fmt.Println(RenderWarning("Setup canceled by user"))
		os.Exit(0)
	}()

	fmt.Println()
	fmt.Println(RenderHeader())
	fmt.Println()

	if err := NewWelcomeForm(w.state).Run(); err != nil {
		return w.handleError(err)
	}

	if err := w.handleExistingFile(); err != nil {
		return err
	}

	fmt.Println(RenderSection("Endpoints"))
	if err := NewEndpointsForm(w.state).Run(); err != nil {
		return w.handleError(err)
	}

	fmt.Println(RenderSection("Probe Behavior"))
	if err := NewProbeForm(w.state).Run(); err != nil {
		return w.handleError(err)
	}

	fmt.Println(RenderSection("Report Output"))
	if err := NewOutputForm(w.state).Run(); err != nil {
		return w.handleError(err)
	}

	cfg, err := w.state.ToConfig()
	if err != nil {
		return w.handleError(fmt.Errorf("failed to create configuration: %w", err))
	}

	if err := cfg.Validate(); err != nil {
		fmt.Println()
		fmt.Println(RenderError("Configuration validation failed:"))
		fmt.Println(RenderError("  " + err.Error()))
		return err
	}

	fmt.Println()
	if err := WriteConfig(cfg, w.state.ConfigPath); err != nil {
		return w.handleError(err)
	}

	w.showSuccess()
	return nil
}

func (w *Wizard) handleExistingFile() error {
	if !FileExists(w.state.ConfigPath) {
		return nil
	}

	if err := NewOverwriteConfirmForm(w.state, w.state.ConfigPath).Run(); err != nil {
		return w.handleError(err)
	}

	if !w.state.OverwriteFile {
		fmt.Println(RenderWarning("Setup canceled: file already exists"))
		os.Exit(0)
	}

	return nil
}

func (w *Wizard) handleError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Println()
		fmt.Println(RenderWarning("Setup canceled"))
		os.Exit(0)
	}
	fmt.Println()
	fmt.Println(RenderError(err.Error()))
	return err
}

func (w *Wizard) showSuccess() {
	fmt.Println()
	fmt.Println(RenderSuccess("Config written to " + w.state.ConfigPath))
	fmt.Println(RenderSuccess("Validated successfully"))
	fmt.Println()

	fmt.Println(TitleStyle.Render("Configuration Summary:"))
	fmt.Println(MutedStyle.Render("  Endpoints:     ") + fmt.Sprintf("%d", len(w.state.Domains())))
	fmt.Println(MutedStyle.Render("  Renewal alert: ") + w.state.RenewDaysStr + " days")
	fmt.Println(MutedStyle.Render("  Output mode:   ") + w.state.OutputMode)
	fmt.Println()

	fmt.Println(TitleStyle.Render("Next steps:"))
	fmt.Println()
	fmt.Println("  To validate your config:")
	fmt.Println("    " + RenderCode("certprobe validate -c "+w.state.ConfigPath))
	fmt.Println()
	fmt.Println("  To run a check:")
	fmt.Println("    " + RenderCode("certprobe check -c "+w.state.ConfigPath))
	fmt.Println()
}
