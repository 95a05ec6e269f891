package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oracle-backend/internal/client"
	"oracle-backend/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
		debug   bool
	)

	cmd := &cobra.Command{
		Use:          "oracle-chat",
		Short:        "Chat with Detective Oracle from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(debug)
			defer log.Sync()

			tr := client.NewTranscript(
				client.New(baseURL, nil),
				client.WithObserver(printEvent),
				client.WithErrorHandler(func(err error) {
					log.Debug("request failed", zap.Error(err))
				}),
			)

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				tr.Send(ctx, scanner.Text())
				cancel()
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:3000", "proxy base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "per-message timeout")
	cmd.Flags().BoolVar(&debug, "debug", false, "log underlying request failures")

	return cmd
}

func printEvent(e client.Event) {
	switch e.Kind {
	case client.TypingShown:
		fmt.Println(client.TypingText)
	case client.EntryAdded:
		if e.Entry.Author != client.AuthorBot {
			return
		}
		fmt.Println("--------------------------------------------------")
		fmt.Println(strings.ReplaceAll(e.Entry.Text, "<br>", "\n"))
		fmt.Println("--------------------------------------------------")
	}
}
