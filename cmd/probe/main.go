package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"web-starter/internal/middleware"
	"web-starter/internal/probe"
	"web-starter/utils"

	"github.com/fatih/color"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

var (
	url     string
	message string
	count   int
	token   string
)

var rootCmd = &cobra.Command{
	Use:   "probe",
	Short: "Send messages to a websocket echo route and print the envelopes",
	Long: `Send messages to a websocket route and print every envelope it answers with.

Examples:
  probe --url ws://localhost:8080/ws/echo --message hi --count 3
  probe --url ws://localhost:8080/ws/echo --token <session token>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		defer utils.Timer(cmd.OutOrStdout(), "probe")()

		header := http.Header{}
		if token != "" {
			header.Set("Cookie", middleware.SessionCookie+"="+token)
		}

		envelopes, err := probe.Run(ctx, probe.Options{
			URL:     url,
			Message: message,
			Count:   count,
			Header:  header,
		})
		for i, env := range envelopes {
			status := aurora.Colorize(fmt.Sprintf("%d", env.Status), utils.StatusColor(env.Status))
			fmt.Fprintf(cmd.OutOrStdout(), "#%d %s\n", i+1, status)
			printHeaders(cmd, env.Headers)
			if env.Error != "" {
				color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "  error: %s\n", env.Error)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  data: %v\n", env.Data)
		}
		return err
	},
}

func printHeaders(cmd *cobra.Command, headers http.Header) {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		color.New(color.FgCyan).Fprintf(cmd.OutOrStdout(), "  %s: %s\n", k, strings.Join(headers[k], ", "))
	}
}

func init() {
	rootCmd.Flags().StringVar(&url, "url", "ws://localhost:8080/ws/echo", "websocket url")
	rootCmd.Flags().StringVarP(&message, "message", "m", "hello", "message to send")
	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "number of messages")
	rootCmd.Flags().StringVar(&token, "token", "", "session token sent as cookie")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
