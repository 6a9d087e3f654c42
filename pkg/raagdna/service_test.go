package raagdna

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/raagdna/raagdna/pkg/catalogdata"
	"github.com/raagdna/raagdna/pkg/logger"
	"github.com/raagdna/raagdna/pkg/models"
)

// newTestService builds an engine over an explicit catalog with a
// silent logger.
func newTestService(t *testing.T, ragas []models.Raga) Service {
	t.Helper()

	quiet := logger.New(logger.Config{Level: logger.FATAL, Output: io.Discard})
	svc, err := NewService(WithCatalog(ragas), WithLogger(quiet))
	if err != nil {
		t.Fatalf("Failed to create test service: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func testCatalog() []models.Raga {
	return []models.Raga{
		{
			Name:      "Yaman",
			Arohana:   "Sa Re Ga Ma' Pa Dha Ni Sa",
			Avarohana: "Sa Ni Dha Pa Ma' Ga Re Sa",
		},
		{
			Name:      "Bilawal",
			Arohana:   "Sa Re Ga Ma Pa Dha Ni Sa",
			Avarohana: "Sa Ni Dha Pa Ma Ga Re Sa",
		},
		{
			Name:      "Bhairav",
			Arohana:   "Sa re Ga Ma Pa dha Ni Sa",
			Avarohana: "Sa Ni dha Pa Ma Ga re Sa",
		},
	}
}

func TestIdentifyPerfectMatch(t *testing.T) {
	svc := newTestService(t, testCatalog())

	results := svc.Identify("Sa Re Ga Ma' Pa Dha Ni Sa")
	yaman, ok := results["Yaman"]
	if !ok {
		t.Fatal("Yaman missing from results")
	}

	if !almostEqual(yaman.ExactPartial, 100) {
		t.Errorf("ExactPartial = %v, want 100", yaman.ExactPartial)
	}
	if !almostEqual(yaman.EditDistance, 100) {
		t.Errorf("EditDistance = %v, want 100", yaman.EditDistance)
	}
	if !almostEqual(yaman.SetOverlap, 100) {
		t.Errorf("SetOverlap = %v, want 100", yaman.SetOverlap)
	}
	if !almostEqual(yaman.Combined, 100) {
		t.Errorf("Combined = %v, want 100", yaman.Combined)
	}
}

// A Bhairav-style input against the all-shuddha Bilawal entry: the
// komal tokens only reach partial (case-insensitive) matches, so the
// score lands strictly between 0 and 100.
func TestIdentifyPartialMatch(t *testing.T) {
	svc := newTestService(t, testCatalog())

	results := svc.Identify("Sa re Ga Ma Pa dha Ni Sa")
	bilawal, ok := results["Bilawal"]
	if !ok {
		t.Fatal("Bilawal missing from results")
	}

	// 6 exact + 2 partial over 8 input tokens.
	if !almostEqual(bilawal.ExactPartial, 87.5) {
		t.Errorf("ExactPartial = %v, want 87.5", bilawal.ExactPartial)
	}
	if bilawal.ExactPartial >= 100 {
		t.Errorf("ExactPartial = %v, want < 100", bilawal.ExactPartial)
	}
	if bilawal.Combined <= 0 || bilawal.Combined >= 100 {
		t.Errorf("Combined = %v, want strictly between 0 and 100", bilawal.Combined)
	}
}

func TestIdentifyDropsZeroScores(t *testing.T) {
	svc := newTestService(t, testCatalog())

	// No token in common with any entry, lengths all differ.
	results := svc.Identify("Q W E")
	if len(results) != 0 {
		t.Errorf("expected no candidates, got %v", results)
	}
}

func TestIdentifyBlankInput(t *testing.T) {
	svc := newTestService(t, testCatalog())

	for _, input := range []string{"", "   ", "\t\n"} {
		if results := svc.Identify(input); len(results) != 0 {
			t.Errorf("Identify(%q) = %v, want empty", input, results)
		}
	}
}

func TestTopMatchesRanking(t *testing.T) {
	svc := newTestService(t, testCatalog())

	matches, err := svc.TopMatches("Sa Re Ga Ma' Pa Dha Ni Sa", 10)
	if err != nil {
		t.Fatalf("TopMatches failed: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].RagaName != "Yaman" {
		t.Errorf("best match = %q, want Yaman", matches[0].RagaName)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Combined > matches[i-1].Combined {
			t.Errorf("matches not sorted: %v before %v", matches[i-1], matches[i])
		}
	}
}

func TestTopMatchesLimit(t *testing.T) {
	svc := newTestService(t, testCatalog())

	matches, err := svc.TopMatches("Sa Re Ga Ma Pa Dha Ni Sa", 1)
	if err != nil {
		t.Fatalf("TopMatches failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("len = %d, want 1", len(matches))
	}

	matches, err = svc.TopMatches("Sa Re Ga Ma Pa Dha Ni Sa", 0)
	if err != nil {
		t.Fatalf("TopMatches(0) failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("topN=0 returned %d matches", len(matches))
	}
}

func TestTopMatchesNegativeTopN(t *testing.T) {
	svc := newTestService(t, testCatalog())

	if _, err := svc.TopMatches("Sa Re", -1); err == nil {
		t.Error("expected an error for negative topN")
	}
}

// Entries with identical sequences score identically; ranking must
// still be reproducible, by name ascending.
func TestTopMatchesDeterministicTieBreak(t *testing.T) {
	ragas := []models.Raga{
		{Name: "Zeta", Arohana: "Sa Re Ga", Avarohana: "Ga Re Sa"},
		{Name: "alpha", Arohana: "Sa Re Ga", Avarohana: "Ga Re Sa"},
	}

	for i := 0; i < 10; i++ {
		svc := newTestService(t, ragas)
		matches, err := svc.TopMatches("Sa Re Ga", 10)
		if err != nil {
			t.Fatalf("TopMatches failed: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("len = %d, want 2", len(matches))
		}
		if matches[0].RagaName != "alpha" || matches[1].RagaName != "Zeta" {
			t.Fatalf("tie-break order = [%s, %s], want [alpha, Zeta]",
				matches[0].RagaName, matches[1].RagaName)
		}
	}
}

// Each metric picks its own best direction; an avarohana-shaped input
// must not be penalized for mismatching the arohana.
func TestScoreUsesBestDirectionPerMetric(t *testing.T) {
	svc := newTestService(t, testCatalog())

	results := svc.Identify("Sa Ni Dha Pa Ma' Ga Re Sa")
	yaman, ok := results["Yaman"]
	if !ok {
		t.Fatal("Yaman missing from results")
	}
	if !almostEqual(yaman.EditDistance, 100) {
		t.Errorf("EditDistance = %v, want 100 via avarohana", yaman.EditDistance)
	}
	if !almostEqual(yaman.Combined, 100) {
		t.Errorf("Combined = %v, want 100", yaman.Combined)
	}
}

func TestEntryWithEmptySequences(t *testing.T) {
	ragas := append(testCatalog(), models.Raga{Name: "Hollow"})
	svc := newTestService(t, ragas)

	results := svc.Identify("Sa Re Ga")
	if _, ok := results["Hollow"]; ok {
		t.Error("entry with empty reference sequences must score 0 and be dropped")
	}
}

func TestPrefixMatches(t *testing.T) {
	ragas := []models.Raga{
		{Name: "X", Arohana: "Sa Re Ga", Avarohana: "Ga Re Sa"},
		{Name: "Y", Arohana: "Sa Re Ga Ma", Avarohana: "Ma Ga Re Sa"},
	}
	svc := newTestService(t, ragas)

	labels := svc.PrefixMatches("Sa Re Ga Ma Pa")
	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2: %v", len(labels), labels)
	}
	if labels[0].RagaName != "X" || labels[1].RagaName != "Y" {
		t.Errorf("labels = %v, want X then Y", labels)
	}
	for _, l := range labels {
		if l.Direction != models.DirectionArohana {
			t.Errorf("direction = %q, want %q", l.Direction, models.DirectionArohana)
		}
	}

	if labels := svc.PrefixMatches(""); len(labels) != 0 {
		t.Errorf("blank input produced %v", labels)
	}
}

func TestServiceGetAndList(t *testing.T) {
	svc := newTestService(t, testCatalog())

	raga, err := svc.GetRaga("bilawal")
	if err != nil {
		t.Fatalf("GetRaga failed: %v", err)
	}
	if raga.Name != "Bilawal" {
		t.Errorf("GetRaga returned %q", raga.Name)
	}

	if _, err := svc.GetRaga("nope"); err == nil {
		t.Error("expected error for unknown raga")
	}

	if got := len(svc.ListRagas()); got != 3 {
		t.Errorf("ListRagas returned %d entries, want 3", got)
	}
}

// A DB-backed service seeds empty storage from the built-in table and
// loads the same catalog on subsequent opens.
func TestServiceSeedsAndReloadsStorage(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.sqlite3")
	quiet := logger.New(logger.Config{Level: logger.FATAL, Output: io.Discard})

	svc, err := NewService(WithDBPath(dbPath), WithLogger(quiet))
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	seeded := len(svc.ListRagas())
	if seeded != len(catalogdata.Ragas()) {
		t.Errorf("seeded %d ragas, want %d", seeded, len(catalogdata.Ragas()))
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewService(WithDBPath(dbPath), WithLogger(quiet))
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	if got := len(reopened.ListRagas()); got != seeded {
		t.Errorf("reopened catalog has %d ragas, want %d", got, seeded)
	}
}

func TestDefaultServiceUsesBuiltinCatalog(t *testing.T) {
	quiet := logger.New(logger.Config{Level: logger.FATAL, Output: io.Discard})
	svc, err := NewService(WithLogger(quiet))
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	defer svc.Close()

	if len(svc.ListRagas()) == 0 {
		t.Fatal("default service has an empty catalog")
	}
	if _, err := svc.GetRaga("Yaman"); err != nil {
		t.Errorf("built-in catalog is missing Yaman: %v", err)
	}
}
