package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"switch-openvpn/internal/config"
	"switch-openvpn/internal/ui"
	"switch-openvpn/internal/vpn"
)

type Options struct {
	Log     *logrus.Logger
	In      io.Reader
	Out     io.Writer
	Version string
	// Runner replaces the systemctl runner when set.
	Runner vpn.Runner
	// Selector replaces the terminal prompt when set.
	Selector ui.Selector
}

// app holds what every command needs once flags have been parsed.
type app struct {
	opts    Options
	viper   *viper.Viper
	cfg     *config.Config
	printer *ui.Printer
}

func NewRootCmd(opts Options) *cobra.Command {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	a := &app{
		opts:    opts,
		viper:   config.NewViper(),
		printer: ui.NewPrinter(opts.Out),
	}

	cmd := &cobra.Command{
		Use:   "switch-openvpn [profile]",
		Short: "Switch the running OpenVPN connection",
		Long: `Detects the running openvpn@<profile> unit, lets you pick one of the
<profile>.conf files in the OpenVPN directory and switches to it by
stopping the old unit and starting the new one.

Pass a profile name to switch without prompting.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bootstrap(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := opts.Selector
			if len(args) == 1 {
				selector = ui.StaticSelector{Choice: args[0]}
			}
			if selector == nil {
				selector = ui.TeaSelector{In: opts.In, Out: opts.Out}
			}

			return a.runSwitch(cmd, selector)
		},
	}

	cmd.SetOut(opts.Out)
	config.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(newStatusCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newVersionCmd(a))

	return cmd
}

func (a *app) bootstrap(cmd *cobra.Command) error {
	if err := a.viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Debug {
		a.opts.Log.SetLevel(logrus.DebugLevel)
	} else {
		a.opts.Log.SetLevel(logrus.InfoLevel)
	}

	a.opts.Log.Debugf("using profiles in %s, units %s<profile>", cfg.ConfigDir, cfg.UnitPrefix)
	return nil
}

func (a *app) service() *vpn.OpenVPNService {
	runner := a.opts.Runner
	if runner == nil {
		runner = vpn.NewSystemctlRunner(vpn.NewStdExecutor(), vpn.Paths{
			Systemctl: a.cfg.Systemctl,
			Sudo:      a.cfg.Sudo,
		}, a.opts.In, a.opts.Log)
	}
	if a.cfg.DryRun {
		runner = vpn.NewDryRunRunner(runner, a.opts.Log)
	}

	return vpn.NewService(runner, os.DirFS(a.cfg.ConfigDir), a.cfg.UnitPrefix, a.opts.Log)
}

// activeProfile reports a failed status query and treats it as no connection.
// Only an interrupted query is returned as an error.
func (a *app) activeProfile(cmd *cobra.Command, svc *vpn.OpenVPNService) (string, error) {
	status, err := svc.GetStatus(cmd.Context())
	if intErr := interrupted(cmd); intErr != nil {
		return "", intErr
	}
	if err != nil {
		a.opts.Log.Debug(err)
		a.printer.StatusError(err)
		return "", nil
	}
	return status.Profile, nil
}

// interrupted returns an error once the command context has been cancelled,
// typically by SIGINT or SIGTERM.
func interrupted(cmd *cobra.Command) error {
	if err := cmd.Context().Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	return nil
}

func (a *app) profiles(svc *vpn.OpenVPNService) ([]string, error) {
	profiles, err := svc.Profiles()
	if err != nil {
		return nil, fmt.Errorf("error listing profiles in %s: %w", a.cfg.ConfigDir, err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w in %s", vpn.ErrNoProfiles, a.cfg.ConfigDir)
	}
	return profiles, nil
}

func (a *app) runSwitch(cmd *cobra.Command, selector ui.Selector) error {
	svc := a.service()

	current, err := a.activeProfile(cmd, svc)
	if err != nil {
		return err
	}
	a.printer.CurrentConnection(current)

	profiles, err := a.profiles(svc)
	if err != nil {
		return err
	}

	chosen, err := selector.Select(cmd.Context(), profiles, current)
	if intErr := interrupted(cmd); intErr != nil {
		return intErr
	}
	if errors.Is(err, ui.ErrSelectionCancelled) {
		a.printer.Message("No connection selected, nothing changed")
		return nil
	}
	if err != nil {
		return err
	}

	// A failed switch is reported but is not a command failure, unless the
	// run was interrupted half way.
	if err := svc.Switch(cmd.Context(), current, chosen); err != nil {
		a.printer.SwitchFailed(chosen, err)
		return interrupted(cmd)
	}

	if a.cfg.DryRun {
		a.printer.WouldSwitch(chosen)
		return nil
	}
	a.printer.Switched(chosen)
	return nil
}
