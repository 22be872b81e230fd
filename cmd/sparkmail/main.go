// Command sparkmail sends a single transactional email through SparkPost
// using the SPARK_KEY, SENDER and USE_EU settings from a .env file or the
// process environment.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	email "github.com/International-Combat-Archery-Alliance/sparkmail"
	"github.com/International-Combat-Archery-Alliance/sparkmail/internal/logger"
	"github.com/International-Combat-Archery-Alliance/sparkmail/sparkpost"
)

type senderFactory func(cfg sparkpost.Config, log *slog.Logger) (email.Sender, error)

func newSparkPostSender(cfg sparkpost.Config, log *slog.Logger) (email.Sender, error) {
	return sparkpost.New(cfg, sparkpost.WithLogger(log))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr, newSparkPostSender).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer, newSender senderFactory) *cobra.Command {
	var (
		envFile  = ".env"
		logLevel = "info"
	)

	root := &cobra.Command{
		Use:          "sparkmail",
		Short:        "Send transactional email through SparkPost",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&envFile, "env-file", envFile, "dotenv file with SPARK_KEY, SENDER and USE_EU (falls back to the process environment when absent)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level: debug|info|warn|error|off")

	load := func(cmd *cobra.Command) (sparkpost.Config, *slog.Logger, error) {
		log, err := logger.FromLevelName(stderr, logLevel)
		if err != nil {
			return sparkpost.Config{}, nil, err
		}

		cfg, err := loadConfig(envFile, cmd.Flags().Changed("env-file"))
		if err != nil {
			return sparkpost.Config{}, nil, err
		}
		return cfg, log, nil
	}

	var to, subject, textBody, htmlBody string
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Send one email to a single recipient",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load(cmd)
			if err != nil {
				return err
			}

			sender, err := newSender(cfg, log)
			if err != nil {
				return err
			}

			err = sender.SendEmail(cmd.Context(), email.Email{
				To:       to,
				Subject:  subject,
				TextBody: textBody,
				HTMLBody: htmlBody,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "dispatched to %s (policy %s)\n", to, cfg.Policy)
			return nil
		},
	}
	sendCmd.Flags().StringVar(&to, "to", "", "recipient address")
	sendCmd.Flags().StringVar(&subject, "subject", "", "subject line")
	sendCmd.Flags().StringVar(&textBody, "text", "", "plain-text body")
	sendCmd.Flags().StringVar(&htmlBody, "html", "", "HTML body")
	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("subject")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the loaded configuration with the api key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := load(cmd)
			if err != nil {
				return err
			}

			for _, attr := range cfg.LogValue().Group() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", attr.Key, attr.Value)
			}
			return nil
		},
	}

	root.AddCommand(sendCmd, configCmd)
	return root
}

// loadConfig prefers the dotenv file. A missing default file falls back to
// the process environment; a missing file that was asked for explicitly is
// an error.
func loadConfig(envFile string, explicit bool) (sparkpost.Config, error) {
	if envFile == "" {
		return sparkpost.LoadFromEnv()
	}

	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return sparkpost.LoadFromEnv()
		}
	}

	return sparkpost.LoadFromFile(envFile)
}
