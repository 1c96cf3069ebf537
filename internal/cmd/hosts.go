package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
)

// HostsCmd manages saved host profiles
type HostsCmd struct {
	Add  HostsAddCmd  `cmd:"add" help:"Add or update a host profile"`
	Del  HostsDelCmd  `cmd:"del" help:"Delete a host profile"`
	List HostsListCmd `cmd:"list" help:"List host profiles" default:"1"`
}

// HostsListCmd lists host profiles, most recently used first
type HostsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (h *HostsListCmd) Run(cli *CLI) error {
	profiles, err := cli.Container.HostService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list host profiles: %w", err)
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(profiles, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(profiles) == 0 {
		fmt.Println("No host profiles. Add one with: shellbridge hosts add NAME HOST")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tTarget\tAuth\tLast used")
	fmt.Fprintln(w, "────\t──────\t────\t─────────")
	for _, p := range profiles {
		lastUsed := "never"
		if p.LastUsedAt != nil {
			lastUsed = p.LastUsedAt.Local().Format(time.DateTime)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Target().String(), p.AuthMethod, lastUsed)
	}
	return w.Flush()
}

// HostsAddCmd adds a host profile
type HostsAddCmd struct {
	Auth     string `help:"Authentication method" enum:"password,key,agent" default:"password"`
	Force    bool   `help:"Overwrite an existing profile with the same name" short:"f"`
	Host     string `arg:"" help:"Host name or address"`
	Identity string `help:"Private key file (with --auth key)" short:"i"`
	Name     string `arg:"" help:"Profile name (letters, digits, '.', '-', '_')"`
	Port     int    `help:"SSH port" short:"p" default:"22"`
	User     string `help:"Remote user name" short:"u"`
}

// Run executes the add command
func (h *HostsAddCmd) Run(cli *CLI) error {
	user := h.User
	if user == "" {
		user = cli.settings.DefaultUser
	}
	if user == "" {
		user = os.Getenv("USER")
	}

	profile := domain.HostProfile{
		AuthMethod:   domain.AuthMethod(h.Auth),
		Host:         h.Host,
		IdentityFile: h.Identity,
		Name:         h.Name,
		Port:         h.Port,
		Username:     user,
	}

	logging.Logger.Info("Executing hosts add command", "name", h.Name, "host", h.Host, "force", h.Force)
	if err := cli.Container.HostService.Save(context.Background(), profile, h.Force); err != nil {
		return fmt.Errorf("failed to save host profile: %w", err)
	}

	fmt.Printf("Host profile '%s' saved\n", h.Name)
	return nil
}

// HostsDelCmd deletes a host profile
type HostsDelCmd struct {
	Name string `arg:"" help:"Name of the profile to delete"`
}

// Run executes the del command
func (h *HostsDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing hosts del command", "name", h.Name)
	if err := cli.Container.HostService.Delete(context.Background(), h.Name); err != nil {
		return fmt.Errorf("failed to delete host profile: %w", err)
	}

	fmt.Printf("Host profile '%s' deleted\n", h.Name)
	return nil
}
