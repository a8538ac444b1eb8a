package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/youshallpass/internal/auth"
	"github.com/iudanet/youshallpass/internal/config"
	"github.com/iudanet/youshallpass/internal/crypto"
	"github.com/iudanet/youshallpass/internal/generator"
	"github.com/iudanet/youshallpass/internal/iocli"
	"github.com/iudanet/youshallpass/internal/logging"
	"github.com/iudanet/youshallpass/internal/storage"
	"github.com/iudanet/youshallpass/internal/storage/backends"
	"github.com/iudanet/youshallpass/internal/vault"
)

// Options configures the root command
type Options struct {
	IO        iocli.IO
	Clipboard Clipboard
	Random    io.Reader // nil означает crypto/rand
	Version   string
	BuildDate string
	GitCommit string
}

// app держит зависимости одного запуска команды
type app struct {
	opts    Options
	cfg     *config.Config
	logger  *slog.Logger
	store   storage.ProfileStore
	gen     *generator.Generator
	cfgFile string
}

// NewRootCmd builds the youshallpass command tree
func NewRootCmd(opts Options) *cobra.Command {
	if opts.IO == nil {
		opts.IO = iocli.NewStdio()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "youshallpass",
		Short: "Local credential vault",
		Long: `youshallpass keeps a master profile for the device owner and,
after login, a list of per-site credentials for the session.

Run 'youshallpass shell' for an interactive session.`,
		Version:           opts.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.SetVersionTemplate(fmt.Sprintf(
		"youshallpass\nVersion:    {{.Version}}\nBuild Date: %s\nGit Commit: %s\n",
		opts.BuildDate, opts.GitCommit,
	))

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/youshallpass/youshallpass.yaml or ./youshallpass.yaml)")
	pf.String("data-dir", "", "directory holding profile data")
	pf.String("storage", "", "profile storage backend (file, bolt, sqlite)")
	pf.String("hash", "", "secret hash algorithm (sha256, argon2id)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json)")

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.generateCmd(),
		a.checkPasswordCmd(),
		a.shellCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger

	a.gen = generator.New(a.opts.Random, cfg.Generator.MaxAttempts)
	return nil
}

// run создает Cli, выполняет fn и закрывает хранилище даже при ошибке
func (a *app) run(cmd *cobra.Command, withStore bool, fn func(c *Cli) error) (err error) {
	c, err := a.newCli(cmd, withStore)
	if err != nil {
		return err
	}

	defer func() {
		if a.store == nil {
			return
		}
		if closeErr := a.store.Close(); closeErr != nil {
			a.logger.Error("failed to close profile storage", "error", closeErr)
			if err == nil {
				err = fmt.Errorf("failed to close profile storage: %w", closeErr)
			}
		}
		a.store = nil
	}()

	return fn(c)
}

// newCli создает Cli; withStore открывает хранилище профилей и сервис авторизации
func (a *app) newCli(cmd *cobra.Command, withStore bool) (*Cli, error) {
	var authService *auth.Service

	if withStore {
		hasher, err := crypto.NewHasher(a.cfg.Hash.Algorithm, a.cfg.Hash.Salt)
		if err != nil {
			return nil, err
		}

		store, err := backends.Open(cmd.Context(), a.cfg.Storage.Backend, a.cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open profile storage: %w", err)
		}
		a.store = store

		a.logger.Debug("profile storage opened",
			"backend", a.cfg.Storage.Backend,
			"data_dir", a.cfg.DataDir,
			"hash", hasher.Name(),
		)

		authService = auth.NewService(store, hasher, a.logger)
	}

	return New(a.opts.IO, authService, vault.New(), a.gen, a.opts.Clipboard, a.cfg.Generator.Length), nil
}

func (a *app) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create the master profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, true, func(c *Cli) error {
				return c.runRegister(cmd.Context())
			})
		},
	}
}

func (a *app) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check the master credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, true, func(c *Cli) error {
				return c.runLogin(cmd.Context())
			})
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a password that satisfies the policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, false, func(c *Cli) error {
				return c.runGenerate(length)
			})
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "password length (default from generator.length)")
	return cmd
}

func (a *app) checkPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-password",
		Short: "Check a password against the policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, false, func(c *Cli) error {
				return c.runCheckPassword()
			})
		},
	}
}

func (a *app) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, true, func(c *Cli) error {
				return c.runShell(cmd.Context())
			})
		},
	}
}
