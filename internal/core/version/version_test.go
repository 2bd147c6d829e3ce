package version

import "testing"

func TestInfo_Defaults(t *testing.T) {
	bi := Info("decompound")
	if bi.Service != "decompound" || bi.Version != "dev" || bi.Date != "unknown" {
		t.Fatalf("unexpected build info %+v", bi)
	}
	if bi.Commit == "" {
		t.Fatal("commit should never be empty")
	}
}
