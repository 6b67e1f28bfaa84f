package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bagdasarian/volunteer-app/internal/domain"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Reports []catalogEntry `yaml:"reports"`
}

type catalogEntry struct {
	Name        string `yaml:"name"`
	Template    string `yaml:"template"`
	Description string `yaml:"description"`
}

// LoadCatalog читает каталог шаблонов отчетов, которым заполняется пустая таблица reports
func LoadCatalog(path string) ([]*domain.Report, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read report catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse report catalog: %w", err)
	}

	reports := make([]*domain.Report, 0, len(file.Reports))
	for i, entry := range file.Reports {
		name := strings.TrimSpace(entry.Name)
		template := strings.TrimSpace(entry.Template)
		if name == "" || template == "" {
			return nil, fmt.Errorf("report catalog entry %d: name and template are required", i)
		}

		report := &domain.Report{Name: name, Template: template}
		if description := strings.TrimSpace(entry.Description); description != "" {
			report.Description = &description
		}
		reports = append(reports, report)
	}
	return reports, nil
}
