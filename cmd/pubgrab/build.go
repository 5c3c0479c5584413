// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Roberthaf/Pub-Grab/internal/bib"
	"github.com/Roberthaf/Pub-Grab/internal/cache"
	"github.com/Roberthaf/Pub-Grab/internal/cristin"
	"github.com/Roberthaf/Pub-Grab/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build [authors...]",
	Short: "Build an HTML bibliography for a list of authors",
	Long: `Build fetches publications for each author, removes duplicates shared
between co-authors, and writes a complete HTML document to stdout (or a
file). With no authors on the command line and no roster file, author
names are read from stdin, one per line:

  pubgrab build "Jane Doe" "John Deere"
  pubgrab build --authors-file group.yaml --output publications.html
  pubgrab build < people.txt > publications.html`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Int("from", 0, "first publication year, inclusive")
	buildCmd.Flags().Int("to", 0, "last publication year, inclusive")
	buildCmd.Flags().String("category", "", "registry category code (only TIDSSKRIFTPUBL is supported)")
	buildCmd.Flags().String("authors-file", "", "YAML roster file with authors and year bounds")
	buildCmd.Flags().StringP("output", "o", "", "write the document to a file instead of stdout")
	buildCmd.Flags().Bool("plain", false, "emit plain-text citations instead of an HTML document")
	buildCmd.Flags().Bool("no-cache", false, "bypass the on-disk response cache")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := configFromViper()
	opts := bib.Options{
		FromYear: cfg.Build.FromYear,
		ToYear:   cfg.Build.ToYear,
		Category: cfg.Build.Category,
	}

	authors := args
	if rosterPath, _ := cmd.Flags().GetString("authors-file"); rosterPath != "" {
		roster, err := bib.ReadRosterFile(rosterPath)
		if err != nil {
			return err
		}
		authors = append(authors, roster.Authors...)
		if roster.FromYear != 0 {
			opts.FromYear = roster.FromYear
		}
		if roster.ToYear != 0 {
			opts.ToYear = roster.ToYear
		}
		if roster.Category != "" {
			opts.Category = roster.Category
		}
	}
	if len(authors) == 0 {
		authors = readAuthorLines(os.Stdin)
	}

	// Flags override roster and config values.
	if from, _ := cmd.Flags().GetInt("from"); from != 0 {
		opts.FromYear = from
	}
	if to, _ := cmd.Flags().GetInt("to"); to != 0 {
		opts.ToYear = to
	}
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		opts.Category = category
	}

	log.WithFields(log.Fields{
		"authors": authors,
		"from":    opts.FromYear,
		"to":      opts.ToYear,
	}).Debug("building bibliography")

	var src bib.Source = cristin.New(cfg.Registry)
	noCache, _ := cmd.Flags().GetBool("no-cache")
	if cfg.Cache.Enabled && !noCache {
		store, err := openCacheStore(cfg.Cache)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache unavailable, fetching live: %v\n", err)
		} else {
			defer store.Close()
			src = cache.NewSource(src, store)
		}
	}

	out, err := bib.Build(cmd.Context(), src, authors, opts, os.Stderr)
	if err != nil {
		return err
	}
	for _, skip := range out.Skipped {
		fmt.Fprintf(os.Stderr, "skipped record %s (%s): %s\n", skip.ID, skip.Author, skip.Reason)
	}

	var doc string
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		doc = bib.PlainText(out.Publications) + "\n"
	} else {
		doc = htmlDocument(out.HTML)
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		return os.WriteFile(path, []byte(doc), 0o644)
	}
	fmt.Print(doc)
	return nil
}

// readAuthorLines reads author names from r, one per line, skipping
// blank lines.
func readAuthorLines(r io.Reader) []string {
	var authors []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			authors = append(authors, line)
		}
	}
	return authors
}

// htmlDocument wraps the bibliography fragment in a minimal standalone
// HTML page.
func htmlDocument(fragment string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
</head>
<body>
` + fragment + `
</body>
</html>
`
}

// configFromViper assembles the effective configuration from defaults,
// the config file, and PUBGRAB_* environment variables.
func configFromViper() types.Config {
	return types.Config{
		Registry: types.RegistryConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("registry.timeout"),
				UserAgent: viper.GetString("registry.user_agent"),
			},
			MaxRetries: viper.GetInt("registry.max_retries"),
		},
		Cache: types.CacheConfig{
			Enabled: viper.GetBool("cache.enabled"),
			Path:    viper.GetString("cache.path"),
		},
		Build: types.BuildConfig{
			FromYear: viper.GetInt("build.from_year"),
			ToYear:   viper.GetInt("build.to_year"),
			Category: viper.GetString("build.category"),
		},
	}
}

func openCacheStore(cfg types.CacheConfig) (*cache.Store, error) {
	path := cfg.Path
	if path == "" {
		var err error
		path, err = cache.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return cache.Open(path)
}
