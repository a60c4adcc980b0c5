// Command bbcenglish-rulepack assembles rules.json from a core file and spelling
// family fragments, validates the result and writes it
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"bbcenglish/internal/core/rulepack"
	perr "bbcenglish/internal/platform/errors"

	"github.com/alecthomas/kong"
)

// CLI is the command line surface
type CLI struct {
	Root    string `arg:"" type:"existingdir" help:"Directory holding core.json and fragment *.json files."`
	Out     string `short:"o" default:"./internal/core/rulepack/rules.json" help:"Output path, or - for stdout."`
	Compact bool   `help:"Write compact JSON instead of indented."`
	Verbose bool   `short:"v" help:"Report each fragment on stderr."`
}

type exitCode int

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("bbcenglish-rulepack"),
		kong.Description("Merge spelling family fragments into a validated rule pack."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err == nil {
		_, err = parser.Parse(args)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	file, err := assemble(cli.Root, stderr, cli.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	pack, err := rulepack.Compile(file)
	if err != nil {
		fmt.Fprintf(stderr, "error: invalid pack: %v\n", err)
		return 1
	}

	var enc []byte
	if cli.Compact {
		enc, err = json.Marshal(file)
	} else {
		enc, err = json.MarshalIndent(file, "", "  ")
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	enc = append(enc, '\n')

	if cli.Out == "-" {
		_, _ = stdout.Write(enc)
		return 0
	}
	if err := os.MkdirAll(filepath.Dir(cli.Out), 0o755); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := os.WriteFile(cli.Out, enc, 0o644); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "wrote %s (%d families, %d rules)\n", cli.Out, len(file.Families), len(pack.Rules))
	return 0
}

func readFile(path string) (rulepack.File, error) {
	var f rulepack.File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, perr.IOf(err, "read %s", path)
	}
	if err := json.Unmarshal(b, &f); err != nil {
		return f, perr.JSONErrf("decode %s: %v", path, err)
	}
	return f, nil
}

// fragments lists every *.json under root except core.json, sorted
func fragments(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		if filepath.Dir(path) == filepath.Clean(root) && d.Name() == "core.json" {
			return nil
		}
		out = append(out, path)
		return nil
	})
	sort.Strings(out)
	return out, err
}

// assemble merges the fragments' families into core.json. Families are keyed by label
// in first-seen order. An american word seen again replaces the earlier entry, with a
// warning, so later fragments win
func assemble(root string, warn io.Writer, verbose bool) (rulepack.File, error) {
	core, err := readFile(filepath.Join(root, "core.json"))
	if err != nil {
		return rulepack.File{}, err
	}
	paths, err := fragments(root)
	if err != nil {
		return rulepack.File{}, perr.IOf(err, "walk %s", root)
	}
	if len(paths) == 0 && len(core.Families) == 0 {
		return rulepack.File{}, perr.InvalidArgf("no fragment files under %s", root)
	}

	type entry struct {
		label string
		word  rulepack.Word
	}
	var (
		labels  []string
		entries []entry
		where   = map[string]int{} // american word -> index in entries
	)
	add := func(src string, fam rulepack.Family) {
		if !slices.Contains(labels, fam.Label) {
			labels = append(labels, fam.Label)
		}
		for _, w := range fam.Words {
			if i, dup := where[w.US]; dup {
				fmt.Fprintf(warn, "warning: %s: %q redefined (%s -> %s)\n", src, w.US, entries[i].word.UK, w.UK)
				entries[i] = entry{label: fam.Label, word: w}
				continue
			}
			where[w.US] = len(entries)
			entries = append(entries, entry{label: fam.Label, word: w})
		}
	}

	for _, fam := range core.Families {
		add("core.json", fam)
	}
	for _, p := range paths {
		fr, err := readFile(p)
		if err != nil {
			return rulepack.File{}, err
		}
		if verbose {
			fmt.Fprintf(warn, "fragment %s: %d families\n", p, len(fr.Families))
		}
		for _, fam := range fr.Families {
			add(p, fam)
		}
	}

	out := core
	out.Families = make([]rulepack.Family, 0, len(labels))
	for _, l := range labels {
		fam := rulepack.Family{Label: l}
		for _, e := range entries {
			if e.label == l {
				fam.Words = append(fam.Words, e.word)
			}
		}
		if len(fam.Words) > 0 {
			out.Families = append(out.Families, fam)
		}
	}
	return out, nil
}
