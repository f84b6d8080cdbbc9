package participation

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seatgeek/sixpack-go/experiment"
	"github.com/seatgeek/sixpack-go/pkg/logger"
	"github.com/seatgeek/sixpack-go/sixpack"
)

// DefaultConfigPath is read when the --config flag is not set.
const DefaultConfigPath = "sixpack.yaml"

// Config holds the configuration of the participation commands.
type Config struct {
	Logger logger.Logger

	// Deps overrides the production dependencies, mostly for tests.
	Deps *Deps
}

func (c *Config) deps() Deps {
	var d Deps
	if c.Deps != nil {
		d = *c.Deps
	}
	d.applyDefaults()

	if c.Logger == nil {
		c.Logger = logger.Nop()
	}

	return d
}

var (
	participateExample = `
	# Participate with alternatives given on the command line
	sixpack participate --experiment button-color --alternative red --alternative blue

	# Force an alternative and limit traffic
	sixpack participate -x button-color -a red -a blue --force red --traffic-fraction 0.1

	# Participate in an experiment declared in a definitions file
	sixpack participate -x button-color --definitions experiments.yaml --client-id user-42
	`

	convertExample = `
	# Convert the participant in an experiment
	sixpack convert --experiment button-color --client-id user-42 --kpi purchase
	`
)

// NewParticipateCommand creates the participate command.
func NewParticipateCommand(cfg Config) *cobra.Command {
	deps := cfg.deps()

	var (
		configPath      string
		name            string
		alternatives    []string
		force           string
		trafficFraction float64
		clientID        string
		definitions     string
	)

	cmd := &cobra.Command{
		Use:     "participate",
		Short:   "Choose an alternative of an experiment for a participant",
		Example: participateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(deps, cfg.Logger, configPath, clientID)
			if err != nil {
				return err
			}

			var exp *experiment.Experiment
			if definitions != "" {
				exps, derr := deps.DefinitionsLoader(definitions, client)
				if derr != nil {
					return fmt.Errorf("failed to load definitions: %w", derr)
				}

				var ok bool
				if exp, ok = experiment.FindByName(exps, name); !ok {
					return fmt.Errorf("experiment %q not found in %s", name, definitions)
				}
			} else {
				b := experiment.NewBuilder(client).
					WithName(name).
					WithAlternatives(experiment.NewAlternatives(alternatives...)...)
				if force != "" {
					b.WithForcedChoice(experiment.NewAlternative(force))
				}
				if cmd.Flags().Changed("traffic-fraction") {
					if _, err = b.WithTrafficFraction(trafficFraction); err != nil {
						return err
					}
				}

				if exp, err = b.Build(); err != nil {
					return err
				}
			}

			cfg.Logger.Debugw("Participating", "experiment", exp, "alternatives", exp.Alternatives().String())

			chosen, err := participate(cmd.Context(), exp)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "experiment=%s alternative=%s client_id=%s\n", exp, chosen, client.ClientID())

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", DefaultConfigPath, "Path to the client config file")
	cmd.Flags().StringVarP(&name, "experiment", "x", "", "Experiment name (required)")
	cmd.Flags().StringArrayVarP(&alternatives, "alternative", "a", nil, "Alternative name, repeat for each alternative")
	cmd.Flags().StringVar(&force, "force", "", "Force this alternative instead of a random one")
	cmd.Flags().Float64Var(&trafficFraction, "traffic-fraction", 1, "Fraction of traffic included in the experiment")
	cmd.Flags().StringVar(&clientID, "client-id", "", "Participant id, overrides the configured one")
	cmd.Flags().StringVarP(&definitions, "definitions", "d", "", "Load the experiment from a definitions file")
	_ = cmd.MarkFlagRequired("experiment")
	cmd.MarkFlagsMutuallyExclusive("definitions", "alternative")

	return cmd
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(cfg Config) *cobra.Command {
	deps := cfg.deps()

	var (
		configPath string
		name       string
		kpi        string
		clientID   string
	)

	cmd := &cobra.Command{
		Use:     "convert",
		Short:   "Record a conversion of a participant in an experiment",
		Example: convertExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(deps, cfg.Logger, configPath, clientID)
			if err != nil {
				return err
			}

			conv, err := client.Convert(cmd.Context(), name, kpi)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "experiment=%s alternative=%s client_id=%s kpi=%s\n",
				conv.Experiment, conv.Alternative, conv.ClientID, conv.KPI)

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", DefaultConfigPath, "Path to the client config file")
	cmd.Flags().StringVarP(&name, "experiment", "x", "", "Experiment name (required)")
	cmd.Flags().StringVar(&kpi, "kpi", "", "Key performance indicator to convert")
	cmd.Flags().StringVar(&clientID, "client-id", "", "Participant id, overrides the configured one")
	_ = cmd.MarkFlagRequired("experiment")

	return cmd
}

// participate waits for the outcome reported by the participation service, which may call back
// from another goroutine after ParticipateIn returns.
func participate(ctx context.Context, exp *experiment.Experiment) (experiment.Alternative, error) {
	type outcome struct {
		chosen experiment.Alternative
		err    error
	}

	done := make(chan outcome, 1)
	report := func(o outcome) {
		select {
		case done <- o:
		default:
		}
	}

	exp.Participate(ctx,
		experiment.ParticipationSuccessFunc(func(_ *experiment.Experiment, chosen experiment.Alternative) {
			report(outcome{chosen: chosen})
		}),
		experiment.ParticipationFailureFunc(func(_ *experiment.Experiment, err error) {
			report(outcome{err: err})
		}),
	)

	select {
	case o := <-done:
		return o.chosen, o.err
	case <-ctx.Done():
		return experiment.Alternative{}, fmt.Errorf("participation in %s did not complete: %w", exp, ctx.Err())
	}
}

func newClient(deps Deps, lggr logger.Logger, configPath, clientID string) (Client, error) {
	cfg, err := deps.ConfigLoader(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	sixpackCfg := cfg.Sixpack
	if clientID != "" {
		sixpackCfg.ClientID = clientID
	}

	client, err := deps.ClientFactory(sixpackCfg, sixpack.WithLogger(lggr.Named("sixpack")))
	if err != nil {
		return nil, fmt.Errorf("failed to create sixpack client: %w", err)
	}

	return client, nil
}
