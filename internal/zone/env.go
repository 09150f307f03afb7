package zone

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

// Environment mirrors the fields of ~/.irods/irods_environment.json
// that the HTTP backend needs.
type Environment struct {
	Host     string `json:"irods_host"`
	Port     int    `json:"irods_port"`
	Username string `json:"irods_user_name"`
	Zone     string `json:"irods_zone_name"`
	APIURL   string `json:"irods_api_url"`
}

// LoadEnvironment reads the user's environment file, as written by
// iinit.
func LoadEnvironment() (Environment, error) {
	var env Environment

	home, err := os.UserHomeDir()
	if err != nil {
		return env, err
	}

	path := filepath.Join(home, ".irods", "irods_environment.json")
	file, err := os.Open(path)
	if err != nil {
		return env, fmt.Errorf("cannot open %s (did you run iinit?): %w", path, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&env); err != nil {
		return env, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	if env.APIURL == "" {
		env.APIURL = fmt.Sprintf("https://%s/api/v1", env.Host)
	}

	return env, nil
}

// ReadPassword takes the password from the IRODS_PASSWORD variable
// when set, and otherwise prompts on the terminal without echo.
func ReadPassword() (string, error) {
	if pw := os.Getenv("IRODS_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprintf(os.Stderr, "Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}

	return string(pw), nil
}

// Connect builds a client according to the configured backend.
func Connect(api string) (Client, error) {
	switch api {
	case "", "icommands":
		return &ICommands{}, nil

	case "http":
		env, err := LoadEnvironment()
		if err != nil {
			return nil, err
		}

		password, err := ReadPassword()
		if err != nil {
			return nil, err
		}

		token, err := Authenticate(env.APIURL, env.Username, password)
		if err != nil {
			return nil, err
		}

		return &RESTClient{BaseURL: env.APIURL, Token: token}, nil

	default:
		return nil, fmt.Errorf("unknown api %q (expected icommands or http)", api)
	}
}
