// Command tig is the terminal content-addressed repository browser
// spec.md describes: a single cooperative event loop over seven views
// fed by git subprocesses. Grounded on lazydocker's main.go (build-info
// resolution, config bootstrap, KnownError-to-exit-code mapping), with
// flaggy dropped for a hand-rolled scanner per internal/config/args.go's
// header.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	goerrors "github.com/go-errors/errors"
	"github.com/samber/lo"
	xterm "golang.org/x/term"

	"github.com/optionalg/tig/internal/apperrors"
	"github.com/optionalg/tig/internal/config"
	"github.com/optionalg/tig/internal/dispatch"
	"github.com/optionalg/tig/internal/display"
	"github.com/optionalg/tig/internal/engine"
	"github.com/optionalg/tig/internal/i18n"
	"github.com/optionalg/tig/internal/logging"
	"github.com/optionalg/tig/internal/provider"
	"github.com/optionalg/tig/internal/refs"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/shellquote"
	"github.com/optionalg/tig/internal/term"
	"github.com/optionalg/tig/internal/view"
)

var (
	commit  string
	version = engine.Version
	date    string
)

func main() {
	updateBuildInfo()

	settings, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if settings.ShowHelp {
		fmt.Println(usage)
		os.Exit(0)
	}

	if settings.ShowVersion {
		fmt.Printf("tig version %s (commit %s, %s)\n", version, commit, date)
		os.Exit(0)
	}

	theme := view.DefaultTheme()
	d := dispatch.New()
	tr := i18n.NewTranslationSet()

	overrides, tigrcErrs := config.LoadTigrc(config.TigrcPath(), d, theme)
	if len(tigrcErrs) > 0 {
		for _, e := range tigrcErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		fmt.Fprintln(os.Stderr, tr.ConfigLoadErrors)
	}
	if err := config.MergeTigrc(settings, overrides); err != nil {
		log.Fatal(err.Error())
	}

	if settings.DumpConfig {
		out, err := config.Dump(settings)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Print(out)
		os.Exit(0)
	}

	logger := logging.New(settings.Debug, config.ConfigDir(), version, commit)

	workDir, err := os.Getwd()
	if err != nil {
		log.Fatal(err.Error())
	}

	idx := refs.New()
	if err := provider.LoadRefs(idx, workDir); err != nil {
		exitFatal(logger, nil, err)
	}

	cfg := view.NewRenderConfig()
	cfg.ShowLineNumber = settings.ShowLineNumber
	cfg.LineNumberInterval = settings.LineNumberInterval
	cfg.TabSize = settings.TabSize
	cfg.ShowRevGraph = settings.ShowRevGraph
	cfg.Theme = theme

	views := buildViews(idx, cfg, workDir, settings.Args)
	config.ApplyViewEnvOverrides(views)

	gterm, err := term.NewGocuiTerminal()
	if err != nil {
		exitFatal(logger, nil, err)
	}
	defer gterm.Close()

	disp := display.New(gterm, cfg)
	ctx := &view.Context{}
	tracker := &view.LoadingTracker{}

	var tc view.Transcoder
	if enc := commitEncoding(settings, workDir); enc != "" {
		if t, ok := provider.NewTranscoder(enc, "UTF-8"); ok {
			tc = t
		}
	}

	startName, adoptStdin := startView(settings)
	startV := views[startName]
	if startV == nil {
		startV = views["main"]
	}
	disp.Open(startV)
	var stdinRC *provider.Process
	if adoptStdin {
		stdinRC = provider.AdoptStdin(os.Stdin)
	}
	if stdinRC != nil {
		if err := view.BeginUpdate(startV, ctx, tracker, "", stdinRC.Stdout); err != nil {
			exitFatal(logger, gterm, err)
		}
	} else if err := view.BeginUpdate(startV, ctx, tracker, "", nil); err != nil {
		exitFatal(logger, gterm, err)
	}
	if err := disp.Layout(); err != nil {
		exitFatal(logger, gterm, err)
	}
	disp.RedrawAll(ctx)

	eng := engine.New(gterm, disp, d, ctx, tracker, tc, views)
	if err := eng.Run(); err != nil {
		if msg, known := apperrors.Known(err); known {
			logger.Error(msg)
			gterm.Close()
			fmt.Fprintln(os.Stderr, msg)
			os.Exit(1)
		}
		exitFatal(logger, gterm, err)
	}

	os.Exit(0)
}

// buildViews constructs the seven views spec.md §3 requires — one per
// kind, regardless of which will ever be opened — wiring each to its
// content adapter, command template, and keymap per spec.md §4.4/§4.5.
// Forwarded CLI args (log/diff/show positional, or anything after
// "--") are shell-quoted onto the log and diff views' default command,
// per spec.md §6's argument-forwarding rule.
func buildViews(idx *refs.Index, cfg *view.RenderConfig, workDir string, args []string) map[string]*view.View {
	main := view.New("main", view.SourceHead, provider.MainTemplate, view.NewMainAdapter(idx, cfg), reqtype.MAIN, workDir)
	diff := view.New("diff", view.SourceCommit, provider.DiffTemplate, view.NewPagerAdapter(idx, cfg), reqtype.DIFF, workDir)
	logV := view.New("log", view.SourceCommit, provider.LogTemplate, view.NewPagerAdapter(idx, cfg), reqtype.LOG, workDir)
	tree := view.New("tree", view.SourceCommit, provider.TreeTemplate, view.NewTreeAdapter(cfg), reqtype.TREE, workDir)
	blob := view.New("blob", view.SourceBlob, provider.BlobTemplate, view.NewBlobAdapter(cfg), reqtype.BLOB, workDir)
	pager := view.New("pager", view.SourceHead, provider.DescribeTemplate, view.NewPagerAdapter(idx, cfg), reqtype.PAGER, workDir)
	help := view.New("help", view.SourceHead, nil, nil, reqtype.HELP, workDir)

	if len(args) > 0 {
		quoted := shellquote.QuoteArgs(args)
		logV.CommandOverride = "git log --cc --stat -n100 " + quoted
		diff.CommandOverride = "git show --root --patch-with-stat --find-copies-harder -B -C " + quoted
	}

	return map[string]*view.View{
		"main": main, "diff": diff, "log": logV, "tree": tree,
		"blob": blob, "pager": pager, "help": help,
	}
}

// startView resolves the initial view name and whether stdin should
// be adopted into the pager view: spec.md §6 says a non-terminal
// stdin always wins over -l/-d/positional selection.
func startView(settings *config.Settings) (name string, adoptStdin bool) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return "pager", true
	}
	switch settings.StartView {
	case "log":
		return "log", false
	case "diff", "show":
		return "diff", false
	default:
		return "main", false
	}
}

// commitEncoding resolves the source encoding for the optional iconv
// transcoder (spec.md §6): an explicit .tigrc `set commit-encoding`
// wins, otherwise the repository's own `i18n.commitencoding` config.
func commitEncoding(settings *config.Settings, workDir string) string {
	if settings.CommitEncoding != "" {
		return settings.CommitEncoding
	}
	return provider.RepoCommitEncoding(workDir)
}

// exitFatal logs err's stack trace (or its known friendly message),
// restores the terminal if one was already open (spec.md §7: "the
// terminal is restored first"), and exits 1.
func exitFatal(logger interface{ Error(...interface{}) }, t *term.GocuiTerminal, err error) {
	if t != nil {
		t.Close()
	}
	if msg, known := apperrors.Known(err); known {
		logger.Error(msg)
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
	wrapped := apperrors.Fatal(err)
	if ge, ok := wrapped.(*goerrors.Error); ok {
		logger.Error(ge.ErrorStack())
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func updateBuildInfo() {
	if version != engine.Version {
		return
	}
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if revision, ok := lo.Find(buildInfo.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.revision"
	}); ok {
		commit = revision.Value
	}
	if t, ok := lo.Find(buildInfo.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.time"
	}); ok {
		date = t.Value
	}
}

const usage = `tig [options] [log | diff | show] [git-log-options]

  -l                start in the log view
  -d                start in the diff view
  -n, --line-number[=<interval>]   show line numbers
  -b, --tab-size=<n>               set the tab size (1-8)
  -v, --version     show version information
  -h, --help        show this help
  --dump-config     print the effective configuration as YAML
  --                forward all remaining arguments to git`
