// Command laramigo consulta la API de Lar Amigo desde la terminal y
// administra el espejo Postgres del catálogo.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lar-amigo/internal/platform/httpclient"
)

const defaultServer = "http://localhost:8080"

// cli guarda los flags persistentes compartidos por los subcomandos.
type cli struct {
	server  string
	timeout time.Duration
}

func (c *cli) client() (*httpclient.Client, error) {
	return httpclient.New(c.server, c.timeout)
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "laramigo",
		Short:         "Lar Amigo: catálogo de adopción desde la terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	server := os.Getenv("LARAMIGO_SERVER")
	if server == "" {
		server = defaultServer
	}
	root.PersistentFlags().StringVar(&c.server, "server", server, "URL base de la API (env LARAMIGO_SERVER)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", httpclient.DefaultTimeout, "timeout por request")

	root.AddCommand(
		newSearchCmd(c),
		newPetCmd(c),
		newPhoneCmd(c),
		newAskCmd(c),
		newQuestionsCmd(c),
		newNewsCmd(c),
		newDBCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
