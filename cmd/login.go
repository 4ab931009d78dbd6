// ABOUTME: Login and logout commands for the agenus-admin CLI
// ABOUTME: Authenticates against the catalog API and persists the session

package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/juliomonteiiro/agenus-admin/internal/logger"
	"github.com/juliomonteiiro/agenus-admin/internal/storage"
	"github.com/juliomonteiiro/agenus-admin/internal/validate"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store a session",
	Long:  `Authenticate against the catalog API and persist the session token for later commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init()
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runLogin(ctx, os.Stdin, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init()
		store := storage.New(storage.DefaultConfigDir())
		_, mgr := newSession(store)
		mgr.Initialize()
		mgr.Logout()
		fmt.Println("Logged out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session's user",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init()
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runWhoami(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(ctx context.Context, in io.Reader, w io.Writer) int {
	email := loginEmail
	password := loginPassword

	reader := bufio.NewReader(in)
	if email == "" {
		fmt.Fprint(w, "Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Fprint(w, "Password: ")
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			raw, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(w)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return 2
			}
			password = string(raw)
		} else {
			line, err := reader.ReadString('\n')
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return 2
			}
			password = strings.TrimSpace(line)
		}
	}

	if errs := validate.Login(validate.Credentials{Email: email, Password: password}); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(w, "Error: %s\n", e.Error())
		}
		return 1
	}

	store := storage.New(storage.DefaultConfigDir())
	_, mgr := newSession(store)

	if err := mgr.Login(ctx, email, password); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	user := mgr.User()
	fmt.Fprintf(w, "Logged in as %s <%s>\n", user.Name, user.Email)
	return 0
}

func runWhoami(ctx context.Context, w io.Writer) int {
	store := storage.New(storage.DefaultConfigDir())
	_, mgr, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	// Confirm the stored token is still accepted by the API
	if !mgr.ValidateSession(ctx) {
		fmt.Fprintln(w, "Error: stored session is no longer valid, run: agenus-admin login")
		return 1
	}

	user := mgr.User()
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%s <%s>\n", user.Name, user.Email)
	return 0
}
