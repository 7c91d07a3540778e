package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/relnotes-cli/internal/adapters/driven/auth"
	cachesqlite "github.com/custodia-labs/relnotes-cli/internal/adapters/driven/cache/sqlite"
	"github.com/custodia-labs/relnotes-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/relnotes-cli/internal/core/domain"
	"github.com/custodia-labs/relnotes-cli/internal/core/ports/driven"
	"github.com/custodia-labs/relnotes-cli/internal/core/services"
	"github.com/custodia-labs/relnotes-cli/internal/logger"
	"github.com/custodia-labs/relnotes-cli/internal/renderers"
	"github.com/custodia-labs/relnotes-cli/internal/sources/github"
	"github.com/custodia-labs/relnotes-cli/internal/sources/gitlab"
)

var (
	genFrom      string
	genTo        string
	genFormat    string
	genOutput    string
	genToken     string
	genSource    string
	genGitLabURL string
	genSort      string
	genVersion   string
	genDate      string
	genNoCache   bool
	genConfigDir string
	genCacheDir  string
)

var generateCmd = &cobra.Command{
	Use:   "generate [owner/repo]",
	Short: "Generate release notes for a tag range",
	Long: `Fetches all pull requests merged between --from and --to, categorizes
them by label, and renders the result.

The token is taken from --token, or from the RELNOTES_TOKEN environment
variable (configurable via auth.token_env). Public repositories work
without a token at a reduced rate limit.`,
	Example: `  relnotes generate myorg/myrepo --from v1.0.0 --to v1.1.0
  relnotes generate myorg/myrepo --from v1.0.0 --to v1.1.0 --format json --output notes.json
  relnotes generate mygroup/myproject --source gitlab --from v2.0.0 --to v2.1.0`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genFrom, "from", "", "tag marking the previous release (required)")
	generateCmd.Flags().StringVar(&genTo, "to", "", "tag marking the release being described (required)")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "", "output format (default: terminal on a TTY, markdown otherwise)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "write the document to a file instead of stdout")
	generateCmd.Flags().StringVar(&genToken, "token", "", "host access token (overrides the environment variable)")
	generateCmd.Flags().StringVar(&genSource, "source", github.Type, "change source type (github, gitlab)")
	generateCmd.Flags().StringVar(&genGitLabURL, "gitlab-url", "", "API root for self-hosted GitLab")
	generateCmd.Flags().StringVar(&genSort, "sort", "", "in-category order: asc or desc (default asc)")
	generateCmd.Flags().StringVar(&genVersion, "release-version", "", "version for the document header (default: the --to tag)")
	generateCmd.Flags().StringVar(&genDate, "date", "", "release date as YYYY-MM-DD (default: today)")
	generateCmd.Flags().BoolVar(&genNoCache, "no-cache", false, "bypass the change cache and fetch fresh")
	generateCmd.Flags().StringVar(&genConfigDir, "config-dir", "", "config directory (default ~/.relnotes)")
	generateCmd.Flags().StringVar(&genCacheDir, "cache-dir", "", "cache directory (default ~/.relnotes/cache)")
	//nolint:errcheck // flags are registered above
	_ = generateCmd.MarkFlagRequired("from")
	//nolint:errcheck // flags are registered above
	_ = generateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	repo, err := splitRepoArg(args[0])
	if err != nil {
		return err
	}

	cfg, err := file.NewConfigStore(genConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	tokens := auth.Resolve(genToken, cfg.GetString(file.KeyTokenEnv))

	source, err := buildSource(genSource, genGitLabURL, tokens)
	if err != nil {
		return err
	}

	registry := services.NewRendererRegistry()
	renderers.RegisterDefaults(registry)

	var cache driven.ChangeCache
	if store, cacheErr := cachesqlite.NewStore(genCacheDir); cacheErr != nil {
		logger.Warn("change cache unavailable: %v", cacheErr)
	} else {
		cache = store
		defer store.Close()
	}

	svc := services.NewNotes(source, registry, cache)

	req := domain.GenerateRequest{
		Repo:      repo,
		Tags:      domain.TagRange{From: genFrom, To: genTo},
		Version:   genVersion,
		Mapping:   cfg.CategoryMapping(),
		Format:    pickFormat(cfg),
		SkipCache: genNoCache,
	}
	if genSort != "" {
		dir, err := domain.ParseSortDirection(genSort)
		if err != nil {
			return err
		}
		req.Sort = dir
	} else if s := cfg.GetString(file.KeySortDirection); s != "" {
		if dir, err := domain.ParseSortDirection(s); err == nil {
			req.Sort = dir
		}
	}
	if genDate != "" {
		date, err := time.Parse("2006-01-02", genDate)
		if err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		req.ReleaseDate = date
	}

	result, err := svc.Generate(context.Background(), req)
	if err != nil {
		return err
	}

	if genOutput != "" {
		if err := writeFileAtomic(genOutput, result.Output); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		cmd.Printf("Wrote %s release notes (%d changes) to %s\n",
			result.Format, result.Document.TotalChanges(), genOutput)
		return nil
	}

	cmd.Print(result.Output)
	return nil
}

// splitRepoArg parses the "owner/repo" positional argument.
func splitRepoArg(arg string) (domain.RepoRef, error) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 {
		return domain.RepoRef{}, fmt.Errorf("%w: expected owner/repo, got %q", domain.ErrInvalidInput, arg)
	}
	repo := domain.RepoRef{Owner: parts[0], Name: parts[1]}
	return repo, repo.Validate()
}

// buildSource constructs the change source for the selected host.
func buildSource(sourceType, gitlabURL string, tokens driven.TokenProvider) (driven.ChangeSource, error) {
	switch sourceType {
	case github.Type:
		return github.New(tokens), nil
	case gitlab.Type:
		return gitlab.New(gitlabURL, tokens), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, sourceType)
	}
}

// pickFormat resolves the output format: flag, then config, then terminal
// styling when stdout is a TTY and plain markdown otherwise.
func pickFormat(cfg driven.ConfigStore) string {
	if genFormat != "" {
		return genFormat
	}
	if f := cfg.GetString(file.KeyDefaultFormat); f != "" {
		return f
	}
	if genOutput == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		return "terminal"
	}
	return "markdown"
}

// writeFileAtomic writes via a temp file and rename so a failed render or
// interrupted write leaves no partial artifact.
func writeFileAtomic(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".relnotes-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
