// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/agromatch/internal/adapter"
	"github.com/MKhiriev/agromatch/internal/config"
	"github.com/MKhiriev/agromatch/internal/logger"
	"github.com/MKhiriev/agromatch/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: agromatch-client [-a addr] [-t token] [-timeout d] <command> [flags]

commands:
  signup          -name -email -password
  login           -email -password        prints the token to pass with -t
  me
  companies       [-page N] [-limit N]
  company         -id ID
  company-create  -data JSON
  company-update  -id ID -data JSON
  email           -to a@x,b@y -subject S -body B
  version
`

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stderr, usage)
			return
		}
		logger.NewLogger("agromatch-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("agromatch-client", cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	if err = runCommand(context.Background(), serverAdapter, args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, api adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		name, email, password string
		id, data              string
		to, subject, body     string
		page, limit           int
	)

	var result any
	var err error

	switch cmd {
	case "signup":
		fs.StringVar(&name, "name", "", "display name")
		fs.StringVar(&email, "email", "", "email")
		fs.StringVar(&password, "password", "", "password")
		if err = fs.Parse(rest); err != nil {
			return err
		}
		result, err = api.Signup(ctx, models.SignupRequest{Name: name, Email: email, Password: password})

	case "login":
		fs.StringVar(&email, "email", "", "email")
		fs.StringVar(&password, "password", "", "password")
		if err = fs.Parse(rest); err != nil {
			return err
		}
		result, err = api.Login(ctx, models.LoginRequest{Email: email, Password: password})

	case "me":
		result, err = api.Me(ctx)

	case "companies":
		fs.IntVar(&page, "page", 0, "page number")
		fs.IntVar(&limit, "limit", 0, "page size")
		if err = fs.Parse(rest); err != nil {
			return err
		}
		result, err = api.ListCompanies(ctx, models.PageRequest{Page: page, Limit: limit})

	case "company":
		fs.StringVar(&id, "id", "", "company id")
		if err = fs.Parse(rest); err != nil {
			return err
		}
		result, err = api.GetCompany(ctx, id)

	case "company-create", "company-update":
		fs.StringVar(&id, "id", "", "company id")
		fs.StringVar(&data, "data", "", "company JSON")
		if err = fs.Parse(rest); err != nil {
			return err
		}
		var input models.CompanyInput
		if err = json.Unmarshal([]byte(data), &input); err != nil {
			return fmt.Errorf("invalid -data: %w", err)
		}
		if cmd == "company-create" {
			result, err = api.CreateCompany(ctx, input)
		} else {
			result, err = api.UpdateCompany(ctx, id, input)
		}

	case "email":
		fs.StringVar(&to, "to", "", "comma separated recipients")
		fs.StringVar(&subject, "subject", "", "subject")
		fs.StringVar(&body, "body", "", "body")
		if err = fs.Parse(rest); err != nil {
			return err
		}
		result, err = api.SendEmail(ctx, models.EmailMessage{To: recipients(to), Subject: subject, Body: body})

	case "version":
		var serverVersion string
		if serverVersion, err = api.Version(ctx); err == nil {
			result = map[string]string{
				"server":       serverVersion,
				"buildVersion": buildVersion,
				"buildDate":    buildDate,
				"buildCommit":  buildCommit,
			}
		}

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}

	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func recipients(csv string) []models.Recipient {
	var list []models.Recipient
	for _, addr := range strings.Split(csv, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			list = append(list, models.Recipient{Email: addr})
		}
	}
	return list
}
