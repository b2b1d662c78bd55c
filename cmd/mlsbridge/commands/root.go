package commands

import (
	"github.com/spf13/cobra"

	"mlsbridge/internal/app"
)

var (
	home       string
	storeKind  string
	passphrase string
	logLevel   string
	profile    string

	wire   *app.Wire
	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "mlsbridge",
		Short:        "Group messaging key agreement from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(".env")
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if storeKind != "" {
				cfg.Store = storeKind
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if wire, err = app.NewWire(cfg); err != nil {
				return err
			}
			appCtx = app.New(wire)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default $MLSBRIDGE_HOME or ~/.mlsbridge)")
	root.PersistentFlags().StringVar(&storeKind, "store", "", "storage backend: file, badger or sqlite")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing private keys (file store)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, error or off")
	root.PersistentFlags().StringVar(&profile, "profile", "default", "local profile name")

	root.AddCommand(
		initCmd(), fingerprintCmd(), keyPackageCmd(),
		createGroupCmd(), joinCmd(), groupsCmd(),
		addCmd(), removeCmd(), applyCommitCmd(), mergeCmd(), discardCmd(),
		encryptCmd(), decryptCmd(), epochCmd(), infoCmd(),
	)
	return root.Execute()
}
