package initcmd

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/certwatch-app/certprobe/internal/config"
)

// NewWelcomeForm creates the welcome and file configuration form.
func NewWelcomeForm(state *WizardState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to certprobe setup!").
				Description("This wizard will help you create a configuration file for certprobe.\n\n"+
					"You'll need the hostnames of the TLS endpoints you want to check."),

			huh.NewInput().
				Title("Config file path").
				Description("Where to save the configuration file").
				Placeholder("./certprobe.yaml").
				Value(&state.ConfigPath).
				Validate(ValidateConfigPath),
		),
	)
}

// NewEndpointsForm creates the endpoint entry form.
func NewEndpointsForm(state *WizardState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Endpoints to check").
				Description("One per line, as hostname[:port-or-service].\n"+
					"Services: https, ftp, ftpi, imap, imaps, pop3, pop3s, smtp, smtps, xmpp, xmpps, ldaps.\n"+
					"Examples: example.com, mail.example.com:smtp, ldap.example.com:636").
				Placeholder("example.com\nmail.example.com:smtp").
				Value(&state.DomainsText).
				Validate(ValidateDomains),
		),
	)
}

// NewProbeForm creates the probe behavior form.
func NewProbeForm(state *WizardState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Renewal alert threshold (days)").
				Description("Flag certificates expiring within this many days").
				Placeholder("30").
				Value(&state.RenewDaysStr).
				Validate(ValidateRenewDays),

			huh.NewInput().
				Title("Probe timeout").
				Description("Per-endpoint connect timeout").
				Placeholder("10s").
				Value(&state.Timeout).
				Validate(ValidateTimeout),

			huh.NewInput().
				Title("Concurrency").
				Description("Number of parallel probes (1 = sequential)").
				Placeholder("1").
				Value(&state.Concurrency).
				Validate(ValidateConcurrency),

			huh.NewSelect[string]().
				Title("Log Level").
				Description("Logging verbosity").
				Options(
					huh.NewOption("Debug (verbose)", "debug"),
					huh.NewOption("Info (recommended)", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error (quiet)", "error"),
				).
				Value(&state.LogLevel),
		),
	)
}

// NewOutputForm creates the report output form.
func NewOutputForm(state *WizardState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output mode").
				Description("How 'certprobe check' renders its report").
				Options(
					huh.NewOption("Full table (all endpoints)", config.ModeTable),
					huh.NewOption("Renewal list (hostnames due for renewal)", config.ModeRenewals),
					huh.NewOption("Problems only", config.ModeProblems),
				).
				Value(&state.OutputMode),
		),
	)
}

// NewOverwriteConfirmForm creates a form to confirm file overwrite.
func NewOverwriteConfirmForm(state *WizardState, path string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("File '%s' already exists. Overwrite?", path)).
				Description("The existing file will be replaced with the new configuration.").
				Value(&state.OverwriteFile).
				Affirmative("Yes, overwrite").
				Negative("No, cancel"),
		),
	)
}
