package module

import "bbcenglish/internal/platform/config"

// Options holds the fixer defaults. Command line flags override them field by field
type Options struct {
	Extensions []string
	Exclude    []string
	Workers    int
	RulesPath  string // empty uses the embedded pack
}

// FromConfig reads BBC_FIX_* settings from cfg (usually config.New().Prefix("BBC_"))
func FromConfig(cfg config.Conf) Options {
	fc := cfg.Prefix("FIX_")
	return Options{
		Extensions: fc.MayCSV("EXTENSIONS", []string{".rs"}),
		Exclude:    fc.MayCSV("EXCLUDE", nil),
		Workers:    fc.MayInt("WORKERS", 1),
		RulesPath:  fc.MayString("RULES", ""),
	}
}

// merge lets every non-zero field of o replace the default
func (d Options) merge(o Options) Options {
	if len(o.Extensions) > 0 {
		d.Extensions = o.Extensions
	}
	if len(o.Exclude) > 0 {
		d.Exclude = o.Exclude
	}
	if o.Workers > 0 {
		d.Workers = o.Workers
	}
	if o.RulesPath != "" {
		d.RulesPath = o.RulesPath
	}
	return d
}
