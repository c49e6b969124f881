// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"pangfa/internal/app"
	"pangfa/pkg/api"
)

const bridge = "H\tVN:Z:1.0\n" +
	"S\t1\tAAAA\n" +
	"S\t2\tCCCC\n" +
	"L\t1\t+\t2\t+\t0M\n" +
	"P\tp\t1+,2+\t*\n"

const paths = "H\tVN:Z:1.1\n" +
	"P\tearly\t1+,3-\n" +
	"S\t1\tACGT\n" +
	"S\t2\tGG\n" +
	"S\t3\t*\tLN:i:5\n" +
	"L\t1\t+\t2\t+\t0M\n" +
	"P\ta\t1+,2+,3+\n" +
	"W\ts\t1\tchr\t0\t11\t>1<2>2\n"

// twoRounds only contracts fully when 2- -> 3- is reclassified after
// 3 and 4 merge.
const twoRounds = "S\t1\tA\n" +
	"S\t2\tCC\n" +
	"S\t3\tGG\n" +
	"S\t4\tTT\n" +
	"L\t1\t+\t1\t+\t0M\n" +
	"L\t2\t-\t3\t-\t0M\n" +
	"L\t3\t+\t4\t+\t0M\n"

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestSpuriousEndToEnd(t *testing.T) {
	fn := write(t, "bridge.gfa", bridge)
	code, out, errS := run(t, "spurious", fn)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	want := "H\tVN:Z:1.0\nS\t1\tAAAACCCC\nP\tp\t1+\t*\n"
	if out != want {
		t.Fatalf("output mismatch\nwant %q\ngot  %q", want, out)
	}
	if !strings.Contains(errS, "contraction") {
		t.Errorf("expected a contraction summary on stderr, got %q", errS)
	}
}

func TestSpuriousIdempotent(t *testing.T) {
	for name, doc := range map[string]string{"bridge": bridge, "two rounds": twoRounds} {
		for _, flags := range [][]string{{"-q"}, {"-q", "--complement-edges"}} {
			fn := write(t, "in.gfa", doc)
			_, once, _ := run(t, append(append([]string{"spurious"}, flags...), fn)...)
			again := write(t, "once.gfa", once)
			code, twice, errS := run(t, append(append([]string{"spurious"}, flags...), again)...)
			if code != 0 || twice != once {
				t.Fatalf("%s %v: second run changed output (exit %d, %s)\n%q\n%q", name, flags, code, errS, once, twice)
			}
		}
	}
}

func TestSpuriousTwoRounds(t *testing.T) {
	code, out, errS := run(t, "spurious", "-q", write(t, "two.gfa", twoRounds))
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	want := "S\t1\tA\nS\t2\tGGTTCC\nL\t1\t+\t1\t+\t0M\n"
	if out != want {
		t.Fatalf("output mismatch\nwant %q\ngot  %q", want, out)
	}
}

func TestSpuriousGzipInput(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bridge.gfa.gz")
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	_, _ = gw.Write([]byte(bridge))
	_ = gw.Close()
	_ = fh.Close()

	code, out, errS := run(t, "spurious", "--quiet", fn)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	if !strings.Contains(out, "S\t1\tAAAACCCC\n") {
		t.Fatalf("gz input not contracted: %q", out)
	}
	if errS != "" {
		t.Errorf("--quiet should silence info logs, got %q", errS)
	}
}

func TestSpuriousStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()
	go func() {
		_, _ = w.Write([]byte(bridge))
		_ = w.Close()
	}()

	code, out, errS := run(t, "spurious", "-q", "-")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	if out != "H\tVN:Z:1.0\nS\t1\tAAAACCCC\nP\tp\t1+\t*\n" {
		t.Fatalf("stdin output %q", out)
	}
}

func TestSpuriousGzipStdin(t *testing.T) {
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, _ = gw.Write([]byte(bridge))
	_ = gw.Close()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()
	go func() {
		_, _ = w.Write(gz.Bytes())
		_ = w.Close()
	}()

	code, out, errS := run(t, "spurious", "-q", "-")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	if out != "H\tVN:Z:1.0\nS\t1\tAAAACCCC\nP\tp\t1+\t*\n" {
		t.Fatalf("gzipped stdin output %q", out)
	}
}

func TestDryRunPrintsPlan(t *testing.T) {
	fn := write(t, "bridge.gfa", bridge)
	code, out, errS := run(t, "spurious", "-q", "--dry-run", fn)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	want := "# First\tSecond\tStrand\tSurvivor\tStatus\n1\t2\t+\t1\tmerged\n"
	if out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
}

func TestReportFiles(t *testing.T) {
	fn := write(t, "bridge.gfa", bridge)
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "report.json")
	if code, _, errS := run(t, "spurious", "-q", "--report", jsonPath, fn); code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	var rep api.ContractionReportV1
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("bad json: %v\n%s", err, data)
	}
	if len(rep.Merges) != 1 || rep.Merges[0].Survivor != 1 || rep.Merges[0].Absorbed != 2 {
		t.Fatalf("unexpected merges %+v", rep.Merges)
	}
	if rep.Rewrite == nil || rep.Rewrite.Segments != 1 || rep.Records != 5 || rep.Rounds != 2 || rep.Rewrite.SelfLinks != 1 {
		t.Fatalf("unexpected report %+v", rep)
	}

	yamlPath := filepath.Join(dir, "report.yaml")
	if code, _, errS := run(t, "spurious", "-q", "-n", "--report", yamlPath, fn); code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	var yrep api.ContractionReportV1
	data, err = os.ReadFile(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := yaml.Unmarshal(data, &yrep); err != nil {
		t.Fatalf("bad yaml: %v\n%s", err, data)
	}
	if !yrep.DryRun || yrep.Rewrite != nil || len(yrep.Candidates) != 1 || yrep.Merges[0].First != 1 {
		t.Fatalf("unexpected yaml report %+v", yrep)
	}
}

func TestExitCodes(t *testing.T) {
	good := write(t, "bridge.gfa", bridge)
	bad := write(t, "bad.gfa", "S\t1\tA\nL\t1\t+\t2\n")
	names := write(t, "names.tsv", "nosuch\tother\n")
	missing := filepath.Join(t.TempDir(), "absent.gfa")

	cases := []struct {
		name string
		argv []string
		want int
	}{
		{"no input", []string{"spurious"}, 2},
		{"two inputs", []string{"spurious", good, good}, 2},
		{"unknown flag", []string{"spurious", "--frobnicate", good}, 2},
		{"unknown command", []string{"explode", good}, 2},
		{"malformed gfa", []string{"spurious", bad}, 2},
		{"missing file", []string{"spurious", missing}, 3},
		{"missing config", []string{"--config", missing, "lengths", good}, 2},
		{"rename unknown path", []string{"rename", "-r", names, good}, 2},
		{"rename without table", []string{"rename", good}, 2},
		{"share without paths", []string{"share", good}, 2},
		{"mask unknown path", []string{"mask", "-M", "nosuch", good}, 2},
		{"help", []string{"--help"}, 0},
		{"ok", []string{"lengths", good}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errS := run(t, tc.argv...)
			if code != tc.want {
				t.Fatalf("want exit %d, got %d (stderr=%s)", tc.want, code, errS)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.Contains(out, "pangfa version") {
		t.Fatalf("exit %d, out %q", code, out)
	}
}

func TestLengthsReport(t *testing.T) {
	fn := write(t, "paths.gfa", paths)
	code, out, errS := run(t, "lengths", fn)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	if out != "# NodeName\tLength\n1\t4\n2\t2\n3\t5\n" {
		t.Fatalf("unexpected lengths %q", out)
	}

	code, pretty, _ := run(t, "--pretty", "lengths", fn)
	if code != 0 || strings.HasPrefix(pretty, "#") || !strings.Contains(pretty, "5") {
		t.Fatalf("pretty output not rendered as a table: %q", pretty)
	}
}

func TestAnchorRankFromEnv(t *testing.T) {
	fn := write(t, "paths.gfa", paths)
	t.Setenv("PANGFA_ANCHORS_RANK", "0")
	code, out, errS := run(t, "anchors", fn)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	if out != "# NodeName\tAnchorRank\n1\t3\n" {
		t.Fatalf("env rank ignored: %q", out)
	}

	// An explicit flag wins over the environment.
	_, out, _ = run(t, "anchors", "--anchor", "-1", fn)
	if out != "# NodeName\tAnchorRank\n1\t3\n2\t2\n3\t2\n" {
		t.Fatalf("flag did not override env: %q", out)
	}
}

func TestConfigFileEnablesJSONLogs(t *testing.T) {
	fn := write(t, "bridge.gfa", bridge)
	cfg := write(t, "pangfa.yaml", "log:\n  format: json\n")
	code, _, errS := run(t, "--config", cfg, "spurious", fn)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	first := strings.SplitN(errS, "\n", 2)[0]
	var entry map[string]any
	if err := json.Unmarshal([]byte(first), &entry); err != nil {
		t.Fatalf("log line is not json: %q", first)
	}
	if entry["msg"] != "contraction" || entry["level"] != "info" {
		t.Fatalf("unexpected log entry %v", entry)
	}
}
