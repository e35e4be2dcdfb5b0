package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when no content files were found.
var ErrEmpty = errors.New("content: no content files found")

// LoadFS walks fsys and decodes every YAML file into a single Site. Each
// top-level section may be defined by one file only.
func LoadFS(fsys fs.FS) (*Site, error) {
	if fsys == nil {
		return nil, ErrEmpty
	}

	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isContentFile(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: walk: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrEmpty
	}
	sort.Strings(paths)

	site := &Site{}
	owners := map[string]string{}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", path, err)
		}
		if len(strings.TrimSpace(string(data))) == 0 {
			continue
		}
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", path, err)
		}
		if err := doc.apply(site, path, owners); err != nil {
			return nil, err
		}
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

// LoadDir loads content from a directory on disk.
func LoadDir(dir string) (*Site, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// Validate checks cross references between sections.
func (s *Site) Validate() error {
	if strings.TrimSpace(s.Brand.Name) == "" {
		return errors.New("content: brand name is required")
	}
	if len(s.Portfolio.Categories) == 0 || s.Portfolio.Categories[0] != AllCategory {
		return fmt.Errorf("content: portfolio categories must start with %q", AllCategory)
	}

	ids := make(map[int]struct{}, len(s.Portfolio.Projects))
	for _, project := range s.Portfolio.Projects {
		if _, dup := ids[project.ID]; dup {
			return fmt.Errorf("content: duplicate project id %d", project.ID)
		}
		ids[project.ID] = struct{}{}
		if !s.HasCategory(project.Category) || project.Category == AllCategory {
			return fmt.Errorf("content: project %q has unknown category %q", project.Title, project.Category)
		}
	}

	popular := 0
	for _, plan := range s.Packages.Plans {
		if plan.Popular {
			popular++
		}
	}
	if popular > 1 {
		return fmt.Errorf("content: %d packages marked popular, want at most one", popular)
	}
	return nil
}

// document mirrors Site with pointer sections so absent keys can be told
// apart from empty ones.
type document struct {
	Brand      *Brand      `yaml:"brand"`
	Hero       *Hero       `yaml:"hero"`
	Highlights *Highlights `yaml:"highlights"`
	Services   *Section    `yaml:"services"`
	Featured   *Featured   `yaml:"featured"`
	CTA        *CTA        `yaml:"cta"`
	Portfolio  *Portfolio  `yaml:"portfolio"`
	Packages   *Packages   `yaml:"packages"`
	About      *About      `yaml:"about"`
	Contact    *Contact    `yaml:"contact"`
	Footer     *Footer     `yaml:"footer"`
}

func (d document) apply(site *Site, source string, owners map[string]string) error {
	claim := func(section string) error {
		if prev, ok := owners[section]; ok {
			return fmt.Errorf("content: section %q defined in both %s and %s", section, prev, source)
		}
		owners[section] = source
		return nil
	}

	var err error
	set := func(section string, present bool, assign func()) {
		if err != nil || !present {
			return
		}
		if err = claim(section); err == nil {
			assign()
		}
	}

	set("brand", d.Brand != nil, func() { site.Brand = *d.Brand })
	set("hero", d.Hero != nil, func() { site.Hero = *d.Hero })
	set("highlights", d.Highlights != nil, func() { site.Highlights = *d.Highlights })
	set("services", d.Services != nil, func() { site.Services = *d.Services })
	set("featured", d.Featured != nil, func() { site.Featured = *d.Featured })
	set("cta", d.CTA != nil, func() { site.CTA = *d.CTA })
	set("portfolio", d.Portfolio != nil, func() { site.Portfolio = *d.Portfolio })
	set("packages", d.Packages != nil, func() { site.Packages = *d.Packages })
	set("about", d.About != nil, func() { site.About = *d.About })
	set("contact", d.Contact != nil, func() { site.Contact = *d.Contact })
	set("footer", d.Footer != nil, func() { site.Footer = *d.Footer })
	return err
}

func isContentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
