package questions

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

//go:embed data/*.json
var defaultData embed.FS

// Provider loads era catalogs and question banks from a data directory,
// caching results and degrading to the embedded defaults when a document is
// missing or malformed. Load failures are never surfaced to callers.
type Provider struct {
	dataDir string

	mu      sync.Mutex
	catalog *Catalog
	banks   map[string]*Bank
}

// NewProvider creates a Provider reading from dataDir. An empty dataDir
// means only the embedded defaults are used.
func NewProvider(dataDir string) *Provider {
	return &Provider{
		dataDir: dataDir,
		banks:   make(map[string]*Bank),
	}
}

// DefaultDataDir resolves the question data directory from the REKISHI_DATA
// environment variable. Empty when unset, which selects the embedded data.
func DefaultDataDir() string {
	return os.Getenv("REKISHI_DATA")
}

// LoadEras returns the era catalog, cached after the first successful load.
func (p *Provider) LoadEras() *Catalog {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.catalog != nil {
		return p.catalog
	}

	raw, err := p.readDocument("eras.json")
	if err == nil {
		if err := validateDocument(CatalogSchema, raw); err == nil {
			var cat Catalog
			if err := json.Unmarshal(raw, &cat); err == nil && len(cat.Eras) > 0 {
				p.catalog = &cat
				return p.catalog
			}
		}
	}

	p.catalog = embeddedCatalog()
	return p.catalog
}

// Era resolves a single era by id from the catalog.
func (p *Provider) Era(eraID string) (Era, bool) {
	for _, era := range p.LoadEras().Eras {
		if era.ID == eraID {
			return era, true
		}
	}
	return Era{}, false
}

// LoadQuestions returns the question bank for one era, cached per era.
// Unknown or unreadable banks degrade to a placeholder bank.
func (p *Provider) LoadQuestions(eraID string) *Bank {
	p.mu.Lock()
	defer p.mu.Unlock()

	if bank, ok := p.banks[eraID]; ok {
		return bank
	}

	raw, err := p.readDocument(filepath.Join("questions", eraID+".json"))
	if err == nil {
		if err := validateDocument(BankSchema, raw); err == nil {
			var bank Bank
			if err := json.Unmarshal(raw, &bank); err == nil && len(bank.Questions) > 0 {
				p.banks[eraID] = &bank
				return &bank
			}
		}
	}

	bank := embeddedBank(eraID)
	p.banks[eraID] = bank
	return bank
}

// readDocument reads a document from the data directory, falling back to the
// embedded copy when no directory is configured.
func (p *Provider) readDocument(rel string) ([]byte, error) {
	if p.dataDir != "" {
		raw, err := os.ReadFile(filepath.Join(p.dataDir, rel))
		if err == nil {
			return raw, nil
		}
		// Missing on disk: fall through to embedded.
	}
	return defaultData.ReadFile("data/" + filepath.Base(rel))
}

// embeddedCatalog returns the built-in six-era catalog. The embedded file is
// compiled in, so decode errors cannot happen outside development.
func embeddedCatalog() *Catalog {
	raw, err := defaultData.ReadFile("data/eras.json")
	if err != nil {
		panic(fmt.Sprintf("embedded era catalog missing: %v", err))
	}
	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		panic(fmt.Sprintf("embedded era catalog invalid: %v", err))
	}
	return &cat
}

// embeddedBank returns the built-in bank for eraID, or a minimal placeholder
// bank when no embedded bank exists for that era.
func embeddedBank(eraID string) *Bank {
	raw, err := defaultData.ReadFile("data/" + eraID + ".json")
	if err == nil {
		var bank Bank
		if err := json.Unmarshal(raw, &bank); err == nil && len(bank.Questions) > 0 {
			return &bank
		}
	}

	return &Bank{
		Era: eraID,
		Metadata: BankMetadata{
			TotalQuestions: 1,
			Difficulty:     DifficultySplit{Easy: 1},
			LastUpdated:    "2024-01-15",
		},
		Questions: []Question{
			{
				ID:          eraID + "_001",
				Question:    eraID + "時代に関する問題です。",
				Answer:      "サンプル回答",
				Explanation: "これはサンプル問題です。",
				Difficulty:  1,
				Category:    "一般",
				Tags:        []string{"基本"},
			},
		},
	}
}
