package foliosim

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindPortfolio returns the unique portfolio matching the name.
// If the query is empty and no file exists, a fresh default portfolio is
// returned. In any other ambiguous case it returns an error.
func FindPortfolio(path, query string) (*Portfolio, error) {
	paths, err := findPortfolioPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(paths) {
	case 0:
		if query == "" {
			return NewPortfolio("portfolio"), nil
		}
		return nil, fmt.Errorf("could not find portfolio %q", query)
	case 1:
		return loadPortfolioFile(path, paths[0])
	default:
		return nil, fmt.Errorf("multiple portfolios found for %q", query)
	}
}

// FindPortfolios discovers and loads portfolio files from a given directory.
// If query is empty, all .jsonl files under the path are loaded; otherwise
// only the portfolio whose name (relative path without extension) matches.
func FindPortfolios(path, query string) ([]*Portfolio, error) {
	paths, err := findPortfolioPaths(path, query)
	if err != nil {
		return nil, err
	}

	var loaded []*Portfolio
	for _, fullPath := range paths {
		p, err := loadPortfolioFile(path, fullPath)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}

// loadPortfolioFile opens and decodes a portfolio, naming it after its
// relative path to the portfolio root.
func loadPortfolioFile(rootPath, fullPath string) (*Portfolio, error) {
	relPath, err := filepath.Rel(rootPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}
	name := strings.TrimSuffix(relPath, ".jsonl")

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", fullPath, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", fullPath, err)
	}
	p.Name = name
	return p, nil
}

// SavePortfolio saves a portfolio to its file within the given directory,
// derived from its name (a portfolio named "john/retirement" is saved to
// "<path>/john/retirement.jsonl").
func SavePortfolio(path string, p *Portfolio) error {
	if p.Name == "" {
		return fmt.Errorf("cannot save portfolio with an empty name")
	}

	filePath := filepath.Join(path, p.Name+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for portfolio %q: %w", filePath, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodePortfolio(file, p)
}

// findPortfolioPaths scans a directory for portfolio files matching a query.
func findPortfolioPaths(path, query string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {
			relPath, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(relPath, ".jsonl")
			if query == "" || name == query {
				paths = append(paths, p)
			}
		}
		return nil
	})
	return paths, err
}
