package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/goxrpld/lab/internal/core/ledger"
	"github.com/goxrpld/lab/internal/rpc"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON control-surface HTTP server",
	Long: `serve starts the RPC HTTP server described in spec.md §4.G/§6: a
single JSON control surface bound to rpc.bind_address:rpc.port, backed by
an in-memory ledger manager whose open ledger starts with no accounts.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig

	lm, err := ledger.NewLedgerManager(cfg.Ledger.HistoryDepth)
	if err != nil {
		return fmt.Errorf("failed to create ledger manager: %w", err)
	}

	server := rpc.NewServer(cfg, lm)

	addr := fmt.Sprintf("%s:%d", cfg.RPC.BindAddress, cfg.RPC.Port)
	log.Printf("serve: profile=%s listening on %s", cfg.Profile, addr)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: server,
	}
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("rpc server failed: %w", err)
	}
	return nil
}
