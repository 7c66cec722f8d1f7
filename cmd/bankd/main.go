// Command bankd serves the banking assistant: it wires the ledger, the
// knowledge index, the intent catalog, and the model sidecar client
// behind the /chat endpoint.
package main

// #region imports
import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mockbank/bankagent/internal/catalog"
	"github.com/mockbank/bankagent/internal/config"
	"github.com/mockbank/bankagent/internal/dispatch"
	"github.com/mockbank/bankagent/internal/index"
	"github.com/mockbank/bankagent/internal/ledger"
	"github.com/mockbank/bankagent/internal/logging"
	"github.com/mockbank/bankagent/internal/nlu"
	"github.com/mockbank/bankagent/internal/server"
)

// #endregion

// #region main
func main() {
	configPath := flag.String("config", "bankagent.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.Server.Addr = envOr("BANKAGENT_ADDR", cfg.Server.Addr)
	cfg.Database.Path = envOr("BANKAGENT_DB", cfg.Database.Path)
	cfg.Models.BaseURL = envOr("BANKAGENT_MODELS", cfg.Models.BaseURL)
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Ledger store and demo account
	store, err := ledger.NewStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open ledger: %v", err)
	}
	defer store.Close()

	opening, err := decimal.NewFromString(cfg.Account.OpeningBalance)
	if err != nil {
		log.Fatalf("bad opening balance: %v", err)
	}
	if err := store.EnsureAccount(cfg.Account.ID, cfg.Account.Name, opening); err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	if err := logging.EnsureSchema(store.DB()); err != nil {
		log.Fatalf("failed to migrate dispatch log: %v", err)
	}

	// Intent catalog
	cat := catalog.Default()
	if cfg.Knowledge.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.Knowledge.CatalogPath)
		if err != nil {
			log.Fatalf("failed to load intent catalog: %v", err)
		}
	}

	// Knowledge index: a missing artifact is a valid state, the
	// knowledge route runs offline.
	var knowledge *index.Index
	knowledge, err = index.LoadArtifact(cfg.Knowledge.VectorsPath, cfg.Knowledge.PassagesPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("failed to load knowledge index: %v", err)
		}
		log.Printf("knowledge artifact not found, running with knowledge base offline")
		knowledge = nil
	} else {
		log.Printf("knowledge index loaded: %d passages, dim %d", knowledge.Len(), knowledge.Dim())
	}

	// Model sidecar client
	models := nlu.NewClient(cfg.Models.BaseURL, time.Duration(cfg.Models.TimeoutSeconds)*time.Second)

	engine := dispatch.NewEngine(cat, store, knowledge, models, cfg.Account.ID)
	srv := server.New(engine, models, models, store.DB())

	log.Printf("bankd ready on %s | db=%s models=%s intents=%d",
		cfg.Server.Addr, cfg.Database.Path, cfg.Models.BaseURL, cat.Size())
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Handler()); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
