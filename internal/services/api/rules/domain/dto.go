// Package domain defines the rule listing DTOs
package domain

import "bbcenglish/internal/core/rulepack"

// Rule is one expanded, case-specific rule
type Rule struct {
	American string `json:"american" example:"Color"`
	British  string `json:"british"  example:"Colour"`
	Label    string `json:"label"    example:"-or to -our"`
	Guarded  bool   `json:"guarded"  example:"false"`
}

// RulesResponse lists the table in application order
type RulesResponse struct {
	Version int    `json:"version" example:"1"`
	Name    string `json:"name"    example:"bbc-english"`
	Count   int    `json:"count"   example:"130"`
	Rules   []Rule `json:"rules"`
}

// FromRule converts a compiled rule
func FromRule(r rulepack.Rule) Rule {
	return Rule{American: r.American, British: r.British, Label: r.Label, Guarded: r.Guarded()}
}

// FromPack lists every rule of p, optionally only those with the given label
func FromPack(p *rulepack.Pack, label string) RulesResponse {
	out := RulesResponse{Version: p.Version, Name: p.Meta.Name, Rules: make([]Rule, 0, len(p.Rules))}
	for _, r := range p.Rules {
		if label != "" && r.Label != label {
			continue
		}
		out.Rules = append(out.Rules, FromRule(r))
	}
	out.Count = len(out.Rules)
	return out
}
