package version

import "testing"

func TestInfo_Defaults(t *testing.T) {
	bi := Info("bbcenglish")
	if bi.Service != "bbcenglish" || bi.Version != "dev" || bi.Commit != "none" || bi.Date != "unknown" {
		t.Fatalf("unexpected build info: %+v", bi)
	}
	if got := bi.String(); got != "bbcenglish dev (none, unknown)" {
		t.Fatalf("String() = %q", got)
	}
}
