package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RegisterResult:
		o.printRegisterResult(v)
	case LoginResult:
		o.printLoginResult(v)
	case UsersResult:
		o.printUsersResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// RegisterResult response type
type RegisterResult struct {
	OK   bool `json:"ok"`
	User User `json:"user"`
}

// LoginResult response type
type LoginResult struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UsersResult response type
type UsersResult struct {
	OK    bool   `json:"ok"`
	Users []User `json:"users"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRegisterResult(r RegisterResult) {
	fmt.Printf("Registered: %s\n", r.User.Username)
	if r.User.CreatedAt != "" {
		fmt.Printf("Created: %s\n", r.User.CreatedAt)
	}
}

func (o *Output) printLoginResult(l LoginResult) {
	fmt.Printf("Logged in: %s\n", l.User.Username)
	fmt.Printf("Token: %s\n", l.Token)
}

func (o *Output) printUsersResult(u UsersResult) {
	fmt.Printf("Users (%d):\n", len(u.Users))
	for _, user := range u.Users {
		if user.CreatedAt != "" {
			fmt.Printf("  - %s (created %s)\n", user.Username, user.CreatedAt)
		} else {
			fmt.Printf("  - %s\n", user.Username)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
