package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"

	"smarteventadder/config"
	"smarteventadder/internal/event"
	eventUC "smarteventadder/internal/event/usecase"
	"smarteventadder/internal/model"
	"smarteventadder/pkg/gauth"
	"smarteventadder/pkg/gcalendar"
	"smarteventadder/pkg/gemini"
	"smarteventadder/pkg/gmail"
	"smarteventadder/pkg/log"
)

var gmailIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{16}$`)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "smarteventadder-cli",
		Usage: "Extract a calendar event from an email and add it to Google Calendar.",
		Commands: []*cli.Command{
			authCommand(),
			addCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authorize access to Google Calendar and Gmail, saving a token file.",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			authCfg := gauth.Config{
				CredentialsPath: cfg.Google.CredentialsPath,
				TokenPath:       cfg.Google.TokenPath,
			}
			oauthCfg, err := gauth.OAuthConfig(authCfg)
			if err != nil {
				return err
			}

			authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
			fmt.Printf("Go to the following link in your browser then type the "+
				"authorization code:\n%v\n", authURL)

			fmt.Print("Enter Authorization Code: ")
			reader := bufio.NewReader(os.Stdin)
			authCode, _ := reader.ReadString('\n')
			authCode = strings.TrimSpace(authCode)

			// Exchange caches the token at cfg.Google.TokenPath itself.
			if _, err := gauth.Exchange(c.Context, authCfg, authCode); err != nil {
				return fmt.Errorf("unable to retrieve token: %w", err)
			}

			fmt.Printf("Token saved to %s\n", cfg.Google.TokenPath)
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Extract an event from email text, a .txt file, a Message-ID or a Gmail message id, and add it to the calendar.",
		ArgsUsage: "[email text | file.txt | message-id | gmail-id]",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logger := log.Init(log.ZapConfig{
				Level:        "warn",
				Mode:         cfg.Logger.Mode,
				Encoding:     cfg.Logger.Encoding,
				ColorEnabled: cfg.Logger.ColorEnabled,
			})

			input, err := resolveInput(c)
			if err != nil {
				return err
			}
			input.MaxLength = event.MaxEmailLengthCLI
			input.Display = displayRecord
			input.Confirm = confirmRecord

			authCfg := gauth.Config{
				CredentialsPath: cfg.Google.CredentialsPath,
				TokenPath:       cfg.Google.TokenPath,
			}
			httpClient, err := gauth.HTTPClient(c.Context, authCfg)
			if err != nil {
				printAuthHint(err)
				return err
			}

			llm := gemini.NewClient(cfg.Vertex.ProjectID, cfg.Vertex.Location, httpClient)
			if cfg.Vertex.Model != "" {
				llm.SetModel(cfg.Vertex.Model)
			}
			calendarClient, err := gcalendar.NewClient(c.Context, httpClient)
			if err != nil {
				return err
			}
			gmailClient, err := gmail.NewClient(c.Context, httpClient)
			if err != nil {
				return err
			}

			uc := eventUC.New(logger, llm, calendarClient, gmailClient, cfg.Calendar.CalendarID)

			out, err := uc.Run(c.Context, input)
			switch out.Status {
			case event.StatusCreated:
				fmt.Println("\n✅ Event created!")
				if out.Event != nil && out.Event.HtmlLink != "" {
					fmt.Println("  ", out.Event.HtmlLink)
				}
				return nil
			case event.StatusCancelled:
				fmt.Println("\nNo event was created:", out.CancelReason)
				return nil
			default:
				if gauth.IsAuthError(err) {
					printAuthHint(err)
				}
				return err
			}
		},
	}
}

// resolveInput decides what the single positional argument is: a .txt file,
// a Message-ID header, a Gmail message id, or literal email text. With no
// argument the email is read from stdin.
func resolveInput(c *cli.Context) (event.RunInput, error) {
	arg := strings.TrimSpace(c.Args().First())

	switch {
	case arg == "":
		fmt.Println("Reading email text from stdin (end with Ctrl-D)...")
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return event.RunInput{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return event.RunInput{EmailText: string(raw)}, nil
	case strings.HasSuffix(arg, ".txt"):
		raw, err := os.ReadFile(arg)
		if err != nil {
			return event.RunInput{}, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		return event.RunInput{EmailText: string(raw)}, nil
	case gmail.IsMessageIDHeader(arg):
		return event.RunInput{MessageIDHeader: arg}, nil
	case gmailIDPattern.MatchString(arg):
		return event.RunInput{GmailID: arg}, nil
	default:
		return event.RunInput{EmailText: arg}, nil
	}
}

func displayRecord(rec model.EventRecord) {
	fmt.Println("\nExtracted event:")
	fmt.Println("  Summary:   ", rec.Field("summary", "(not found)"))
	fmt.Println("  Date:      ", rec.Field("date", "(not found)"))
	fmt.Println("  Start time:", rec.Field("start_time", "(not found)"))
	fmt.Println("  Location:  ", rec.Field("location", "(not found)"))
}

func confirmRecord(rec model.EventRecord) (bool, error) {
	fmt.Print("\nAdd this event to your calendar? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func printAuthHint(err error) {
	fmt.Fprintln(os.Stderr, "Google authentication failed:", err)
	fmt.Fprintln(os.Stderr, "→ Check credentials.json and run `smarteventadder-cli auth` to authorize.")
}
