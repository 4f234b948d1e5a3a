package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	catalogrender "github.com/bnema/course-tutor/internal/adapters/render/catalog"
	"github.com/bnema/course-tutor/internal/domain"
)

type coursesOptions struct {
	json bool
}

type courseJSON struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func newCoursesCmd(root *rootOptions) *cobra.Command {
	opts := &coursesOptions{}

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the courses in the platform catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := wireApp(root.configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if a.cfg.Platform.BaseURL == "" {
				return errors.New("missing configuration: platform.base_url")
			}

			catalog := a.catalogFetcher().FetchCatalog(ctx)

			if opts.json {
				entries := make([]courseJSON, 0, len(catalog))
				for _, entry := range catalog {
					entries = append(entries, courseJSON{Name: entry.Name, URL: entry.BaseURL})
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			}

			var snapshot *domain.IndexSnapshot
			if repo, err := a.snapshotRepository(); err == nil {
				if loaded, err := repo.Load(ctx); err == nil {
					snapshot = &loaded
				} else {
					a.logger.Debug("index snapshot unavailable", slog.Any("error", err))
				}
			}

			rendered, err := catalogrender.Render(catalog, catalogrender.RenderOptions{
				Snapshot:   snapshot,
				Now:        time.Now(),
				StaleAfter: 2 * a.cfg.Index.RefreshInterval,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the catalog as JSON")

	return cmd
}
