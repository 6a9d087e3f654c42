package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/raagdna/raagdna/pkg/logger"
	"github.com/raagdna/raagdna/pkg/models"
	"github.com/raagdna/raagdna/pkg/raagdna"
)

// Global flags
var (
	dbPath string
)

func init() {
	flag.StringVar(&dbPath, "db", getEnvOrDefault("RAAGDNA_DB_PATH", ""), "Path to SQLite catalog database (empty = built-in catalog)")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// createService creates a new RaagDNA service with configured options
func createService() (raagdna.Service, error) {
	var opts []raagdna.Option
	if dbPath != "" {
		opts = append(opts, raagdna.WithDBPath(dbPath))
	}
	return raagdna.NewService(opts...)
}

func main() {
	log := logger.GetLogger()

	printBanner()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	log.Debugf("Executing command: %s", command)

	switch command {
	case "identify":
		handleIdentify()
	case "classify":
		handleClassify()
	case "list":
		handleList()
	case "show":
		handleShow()
	case "search":
		handleSearch()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printBanner() {
	banner := `
 ____                   ____  _   _    _
|  _ \ __ _  __ _  __ _|  _ \| \ | |  / \
| |_) / _` + "`" + ` |/ _` + "`" + ` |/ _` + "`" + ` | | | |  \| | / _ \
|  _ < (_| | (_| | (_| | |_| | |\  |/ ___ \
|_| \_\__,_|\__,_|\__, |____/|_| \_/_/   \_\
                  |___/
        Raga Identification CLI Tool
`
	fmt.Println(banner)
}

func printUsage() {
	fmt.Println(`Usage: raagdna <command> [arguments]

Commands:
  identify "<swaras>" [-top N]   Rank catalog raagas against a swara sequence
  classify "<swaras>"            Count pitch classes in a swara sequence
  list                           List all raagas in the catalog
  show <name>                    Show one raga (case-insensitive name)
  search <query>                 Fuzzy-search raagas by name

Examples:
  raagdna identify "Sa Re Ga Ma' Pa Dha Ni Sa"
  raagdna identify "Sa re Ga Ma Pa" -top 3
  raagdna classify "Sa re Ga Ma' Pa"
  raagdna show yaman
  raagdna search bhair`)
}

// splitArgs separates the first positional argument from trailing flags.
func splitArgs(args []string) (positional string, flagArgs []string) {
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") && positional == "" {
			positional = arg
		} else {
			flagArgs = append(flagArgs, args[i:]...)
			break
		}
	}
	return positional, flagArgs
}

func handleIdentify() {
	sequence, flagArgs := splitArgs(os.Args[2:])

	identifyCmd := flag.NewFlagSet("identify", flag.ExitOnError)
	topN := identifyCmd.Int("top", 5, "Number of ranked matches to show")
	identifyCmd.Parse(flagArgs)

	if strings.TrimSpace(sequence) == "" {
		fmt.Println("Error: a swara sequence is required")
		fmt.Println(`Usage: raagdna identify "Sa Re Ga Ma' Pa" [-top N]`)
		os.Exit(1)
	}

	service, err := createService()
	if err != nil {
		logger.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	matches, err := service.TopMatches(sequence, *topN)
	if err != nil {
		logger.Fatalf("Identification failed: %v", err)
	}

	if len(matches) == 0 {
		fmt.Println("No matching raagas found.")
		return
	}

	fmt.Printf("Top %d matches for %q:\n\n", len(matches), sequence)
	fmt.Printf("%-4s %-12s %9s %9s %9s %9s\n", "#", "Raga", "Combined", "Exact", "EditDist", "Overlap")
	for i, m := range matches {
		fmt.Printf("%-4d %-12s %8.1f%% %8.1f%% %8.1f%% %8.1f%%\n",
			i+1, m.RagaName, m.Combined, m.ExactPartial, m.EditDistance, m.SetOverlap)
	}

	if prefixes := service.PrefixMatches(sequence); len(prefixes) > 0 {
		fmt.Println("\nExact prefix matches:")
		for _, p := range prefixes {
			fmt.Printf("  %s (%s)\n", p.RagaName, p.Direction)
		}
	}
}

func handleClassify() {
	sequence, _ := splitArgs(os.Args[2:])

	if strings.TrimSpace(sequence) == "" {
		fmt.Println("Error: a swara sequence is required")
		fmt.Println(`Usage: raagdna classify "Sa re Ga Ma' Pa"`)
		os.Exit(1)
	}

	service, err := createService()
	if err != nil {
		logger.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	counts := service.ClassifySequence(sequence)
	tokens := raagdna.Tokenize(sequence)

	fmt.Printf("Pitch classes in %q (%d swaras):\n", sequence, len(tokens))
	for _, class := range models.PitchClasses {
		fmt.Printf("  %-8s %d\n", class.String(), counts[class])
	}
}

func handleList() {
	service, err := createService()
	if err != nil {
		logger.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	ragas := service.ListRagas()
	fmt.Printf("Catalog contains %d raagas:\n\n", len(ragas))
	for _, raga := range ragas {
		fmt.Printf("  %-10s %s\n", raga.Name, raga.SwaraSummary)
	}
}

func handleShow() {
	name, _ := splitArgs(os.Args[2:])
	if name == "" {
		fmt.Println("Error: a raga name is required")
		fmt.Println("Usage: raagdna show <name>")
		os.Exit(1)
	}

	service, err := createService()
	if err != nil {
		logger.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	raga, err := service.GetRaga(name)
	if err != nil {
		fmt.Printf("Raga %q not found.\n", name)
		os.Exit(1)
	}

	fmt.Printf("%s\n", raga.Name)
	fmt.Printf("  Arohana:   %s\n", raga.Arohana)
	fmt.Printf("  Avarohana: %s\n", raga.Avarohana)
	fmt.Printf("  Swaras:    %s\n", raga.SwaraSummary)
	fmt.Printf("  %s\n", raga.Description)
}

func handleSearch() {
	query, _ := splitArgs(os.Args[2:])
	if query == "" {
		fmt.Println("Error: a search query is required")
		fmt.Println("Usage: raagdna search <query>")
		os.Exit(1)
	}

	service, err := createService()
	if err != nil {
		logger.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	ragas := service.SearchRagas(query)
	if len(ragas) == 0 {
		fmt.Printf("No raagas matching %q.\n", query)
		return
	}

	fmt.Printf("Raagas matching %q:\n", query)
	for _, raga := range ragas {
		fmt.Printf("  %-10s %s\n", raga.Name, raga.Arohana)
	}
}
