package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	appservices "github.com/stitchworks/matreq/pkg/application/services"
	"github.com/stitchworks/matreq/pkg/domain/entities"
	"github.com/stitchworks/matreq/pkg/domain/lexicon"
	domainservices "github.com/stitchworks/matreq/pkg/domain/services"
	csvrepo "github.com/stitchworks/matreq/pkg/infrastructure/repositories/csv"
	excelrepo "github.com/stitchworks/matreq/pkg/infrastructure/repositories/excel"
	"github.com/stitchworks/matreq/pkg/infrastructure/repositories/memory"
	"github.com/stitchworks/matreq/pkg/render"
)

// Config holds command-line configuration for the interpret command.
type Config struct {
	Text          string
	InventoryFile string
	LexiconFile   string
	Locale        string
	Department    string
	Simple        bool
	JSON          bool
}

// InterpretCommand runs one utterance through the pipeline and prints the
// result.
type InterpretCommand struct {
	config Config
}

// NewInterpretCommand creates an interpret command with the given config.
func NewInterpretCommand(config Config) *InterpretCommand {
	return &InterpretCommand{config: config}
}

// Execute interprets the configured text and writes the record and the
// rendered message to stdout.
func (c *InterpretCommand) Execute(ctx context.Context) error {
	if strings.TrimSpace(c.config.Text) == "" {
		return fmt.Errorf("no request text provided; use -text")
	}

	lex, err := c.loadLexicon()
	if err != nil {
		return err
	}

	inventory, err := c.loadInventory()
	if err != nil {
		return err
	}

	policy := domainservices.DefaultPolicy()
	if c.config.Simple {
		policy = domainservices.SimplePolicy()
	}

	svc := appservices.NewRequestService(
		domainservices.NewExtractor(lex),
		domainservices.NewValidator(policy),
		render.New(),
		inventory,
		memory.NewRequestStore(),
	)

	result, err := svc.Process(ctx, appservices.Input{
		Text:       c.config.Text,
		Locale:     c.config.Locale,
		Department: c.config.Department,
	})
	if err != nil {
		return err
	}

	if c.config.JSON {
		encoded, err := json.MarshalIndent(result.Request, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding request record: %w", err)
		}
		fmt.Println(string(encoded))
		fmt.Println()
	}

	fmt.Println(result.Message)
	return nil
}

func (c *InterpretCommand) loadLexicon() (*lexicon.Lexicon, error) {
	if c.config.LexiconFile == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(c.config.LexiconFile)
}

func (c *InterpretCommand) loadInventory() (*memory.InventoryRepository, error) {
	if c.config.InventoryFile == "" {
		return memory.NewSeededInventoryRepository(), nil
	}

	var (
		snapshot entities.Snapshot
		err      error
	)
	switch strings.ToLower(filepath.Ext(c.config.InventoryFile)) {
	case ".xlsx":
		snapshot, err = excelrepo.NewLoader().LoadSnapshot(c.config.InventoryFile)
	default:
		snapshot, err = csvrepo.NewLoader().LoadSnapshot(c.config.InventoryFile)
	}
	if err != nil {
		return nil, err
	}

	repo := memory.NewInventoryRepository()
	for name, rec := range snapshot {
		repo.SetStock(name, rec)
	}
	return repo, nil
}
