package main

import (
	"github.com/spf13/cobra"
	"github.com/storefront/catalog-service/app/account"
	"github.com/storefront/catalog-service/app/contact"
	"github.com/storefront/catalog-service/app/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	res, err := openResources(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer res.Close(log)

	store, err := res.credentialStore(cfg)
	if err != nil {
		return err
	}

	router := server.NewRouter(server.Dependencies{
		Products:  res.products,
		Accounts:  account.NewService(store, log),
		Submitter: contact.NewSubmitter(cfg.Contact.SubmitDelay, log),
		Log:       log,
	})

	return server.New(cfg.Server, router, log).Run(ctx)
}
