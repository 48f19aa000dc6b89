package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	appservices "github.com/stitchworks/matreq/pkg/application/services"
	"github.com/stitchworks/matreq/pkg/domain/lexicon"
	domainservices "github.com/stitchworks/matreq/pkg/domain/services"
	"github.com/stitchworks/matreq/pkg/infrastructure/repositories/memory"
	"github.com/stitchworks/matreq/pkg/interfaces/cli/commands"
	"github.com/stitchworks/matreq/pkg/interfaces/httpapi"
	"github.com/stitchworks/matreq/pkg/render"
)

func main() {
	var (
		text          = flag.String("text", "", "Request text to interpret")
		inventoryFile = flag.String("inventory", "", "Path to inventory snapshot (CSV or xlsx); built-in seed when omitted")
		lexiconFile   = flag.String("lexicon", "", "Path to lexicon TOML file; built-in lexicon when omitted")
		locale        = flag.String("locale", "en", "Response locale")
		department    = flag.String("department", "", "Requesting department")
		simple        = flag.Bool("simple", false, "Use the simple validation path (no completeness gate, no secondary fallback)")
		asJSON        = flag.Bool("json", false, "Also print the request record as JSON")
		serve         = flag.Bool("serve", false, "Run the HTTP API instead of a one-shot interpretation")
		addr          = flag.String("addr", ":8080", "HTTP listen address (with -serve)")
		verbose       = flag.Bool("verbose", false, "Enable debug logging")
	)

	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *serve {
		if err := runServer(log, *lexiconFile, *addr); err != nil {
			log.WithError(err).Fatal("server exited")
		}
		return
	}

	cmd := commands.NewInterpretCommand(commands.Config{
		Text:          *text,
		InventoryFile: *inventoryFile,
		LexiconFile:   *lexiconFile,
		Locale:        *locale,
		Department:    *department,
		Simple:        *simple,
		JSON:          *asJSON,
	})

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(log *logrus.Logger, lexiconFile, addr string) error {
	lex := lexicon.Default()
	if lexiconFile != "" {
		loaded, err := lexicon.Load(lexiconFile)
		if err != nil {
			return err
		}
		lex = loaded
	}

	renderer := render.New()
	store := memory.NewRequestStore()
	svc := appservices.NewRequestService(
		domainservices.NewExtractor(lex),
		domainservices.NewValidator(domainservices.DefaultPolicy()),
		renderer,
		memory.NewSeededInventoryRepository(),
		store,
	)

	server := httpapi.NewServer(svc, store, renderer, log)
	return server.Run(addr)
}
