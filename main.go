package main

import (
	"bufio"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/agent"
	"othello/arena"
	"othello/config"
	"othello/console"
	"othello/game"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "match":
		err = runMatch(os.Args[2:])
	case "tournament":
		err = runTournament(os.Args[2:])
	case "benchmark":
		err = runBenchmark(os.Args[2:])
	case "selfplay":
		err = runSelfplay(os.Args[2:])
	case "expert":
		err = runExpert(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: othello <command> [flags]

Commands:
  match       play one game between two agents (or 'human')
  tournament  head-to-head series with alternating colors
  benchmark   round-robin over a set of agents, JSON report
  selfplay    watch agents play with per-move rendering
  expert      generate (planes, action) samples by expert self-play

Run 'othello <command> -h' for flags.
`)
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// agentFlags carries the search knobs shared by every subcommand.
type agentFlags struct {
	depth        *int
	iterations   *int
	rolloutLimit *int
	seed         *int64
}

func registerAgentFlags(flags *flag.FlagSet, iterations int) agentFlags {
	return agentFlags{
		depth:        flags.Int("depth", 0, "Search depth for tree agents (0 keeps per-agent defaults)"),
		iterations:   flags.Int("iterations", iterations, "Iterations for MCTS"),
		rolloutLimit: flags.Int("rollout-limit", 150, "Rollout cap for MCTS"),
		seed:         flags.Int64("seed", -1, "RNG seed for stochastic agents (-1 for random)"),
	}
}

func (f agentFlags) build(name string) (agent.Agent, error) {
	if name == "" {
		return nil, fmt.Errorf("missing agent name, choose one of: %s",
			strings.Join(agent.Names(), ", "))
	}

	options := []agent.Option{
		agent.WithIterations(*f.iterations),
		agent.WithRolloutLimit(*f.rolloutLimit),
	}
	if *f.depth > 0 {
		options = append(options, agent.WithDepth(*f.depth))
	}
	if *f.seed >= 0 {
		options = append(options, agent.WithSeed(uint64(*f.seed)))
	}
	return agent.New(name, options...)
}

func (f agentFlags) buildPlayer(name string, renderer *console.Renderer) (agent.Agent, error) {
	if strings.EqualFold(name, "human") {
		return newHumanPlayer(renderer), nil
	}
	return f.build(name)
}

func runMatch(args []string) error {
	flags := flag.NewFlagSet("match", flag.ExitOnError)
	agent1 := flags.String("agent1", "", "Black agent name, or 'human'")
	agent2 := flags.String("agent2", "", "White agent name, or 'human'")
	search := registerAgentFlags(flags, 400)
	verbose := flags.Bool("verbose", true, "Render the board after every move")
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	renderer := console.NewRenderer(os.Stdout)
	black, err := search.buildPlayer(*agent1, renderer)
	if err != nil {
		return err
	}
	white, err := search.buildPlayer(*agent2, renderer)
	if err != nil {
		return err
	}

	var options []arena.MatchOption
	if *verbose {
		options = append(options, arena.WithObserver(func(state game.State, action game.Action) {
			gs := state.(game.GameState)
			fmt.Printf("%s played %s\n", gs.CurrentPlayer().Opponent(), action)
			fmt.Print(renderer.Render(gs))
		}))
	}

	result := arena.PlayMatch(black, white, options...)

	final := result.FinalState.(game.GameState)
	if !*verbose {
		fmt.Print(renderer.Render(final))
	}
	fmt.Println(renderer.Verdict(final))
	printAgentStats(result.Stats)
	return nil
}

func runTournament(args []string) error {
	flags := flag.NewFlagSet("tournament", flag.ExitOnError)
	agent1 := flags.String("agent1", "", "First agent name")
	agent2 := flags.String("agent2", "", "Second agent name")
	games := flags.Int("games", 2, "Number of games to play")
	search := registerAgentFlags(flags, 400)
	out := flags.String("out", "", "Directory for CSV results (optional)")
	verbose := flags.Bool("verbose", true, "Log per-game progress")
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	a, err := search.build(*agent1)
	if err != nil {
		return err
	}
	b, err := search.build(*agent2)
	if err != nil {
		return err
	}

	result := arena.RunTournament(a, b, *games)

	fmt.Println("=== Tournament Summary ===")
	fmt.Printf("Wins: %s | Draws: %d | Games: %d\n", formatWins(result.Wins), result.Draws, result.Games)
	fmt.Println("Timing (s):")
	for _, name := range slices.Sorted(maps.Keys(result.Timing)) {
		data := result.Timing[name]
		fmt.Printf("  %s: total=%.4f, avg/move=%.6f\n", name, data["total_time"], data["avg_time"])
	}
	fmt.Println("Nodes expanded:")
	for _, name := range slices.Sorted(maps.Keys(result.Nodes)) {
		fmt.Printf("  %s: %d\n", name, result.Nodes[name])
	}

	if *out != "" {
		writer, err := arena.NewWriter(*out, "tournament")
		if err != nil {
			return err
		}
		if err := writer.WriteTournament(result); err != nil {
			return err
		}
		if err := writer.WriteMatches(result.Matches); err != nil {
			return err
		}
		fmt.Printf("Wrote results to %s\n", writer.Dir())
	}
	return nil
}

func runBenchmark(args []string) error {
	flags := flag.NewFlagSet("benchmark", flag.ExitOnError)
	list := flags.String("agents", "reflex,minimax,alphabeta,mcts", "Comma-separated agent names")
	games := flags.Int("games", 2, "Games per pairing")
	search := registerAgentFlags(flags, 50)
	out := flags.String("out", "", "JSON report path (optional, defaults to stdout)")
	verbose := flags.Bool("verbose", true, "Log per-game progress")
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	var agents []agent.Agent
	for _, name := range strings.Split(*list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		built, err := search.build(name)
		if err != nil {
			return err
		}
		agents = append(agents, built)
	}
	if len(agents) < 2 {
		return fmt.Errorf("benchmark needs at least two agents, got %d", len(agents))
	}

	report := arena.RunBenchmark(agents, *games)
	payload, err := report.JSON()
	if err != nil {
		return err
	}

	if *out != "" {
		if err := os.WriteFile(*out, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write benchmark report: %w", err)
		}
		fmt.Printf("Wrote benchmark report to %s\n", *out)
	} else {
		fmt.Println(string(payload))
	}
	return nil
}

func runSelfplay(args []string) error {
	flags := flag.NewFlagSet("selfplay", flag.ExitOnError)
	agent1 := flags.String("agent1", "mcts", "Black agent name, or 'human'")
	agent2 := flags.String("agent2", "", "White agent name (defaults to agent1)")
	games := flags.Int("games", 1, "Number of games to play")
	search := registerAgentFlags(flags, 400)
	verbose := flags.Bool("verbose", true, "Log per-game progress")
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)
	if *agent2 == "" {
		*agent2 = *agent1
	}

	renderer := console.NewRenderer(os.Stdout)
	black, err := search.buildPlayer(*agent1, renderer)
	if err != nil {
		return err
	}
	white, err := search.buildPlayer(*agent2, renderer)
	if err != nil {
		return err
	}

	for i := 0; i < *games; i++ {
		fmt.Printf("Game %d of %d: %s (black) vs %s (white)\n", i+1, *games, black.Name(), white.Name())
		fmt.Print(renderer.Render(game.NewGameState()))

		result := arena.PlayMatch(black, white, arena.WithObserver(func(state game.State, action game.Action) {
			gs := state.(game.GameState)
			fmt.Printf("%s played %s\n", gs.CurrentPlayer().Opponent(), action)
			fmt.Print(renderer.Render(gs))
		}))

		fmt.Println(renderer.Verdict(result.FinalState.(game.GameState)))
		printAgentStats(result.Stats)
	}
	return nil
}

func runExpert(args []string) error {
	flags := flag.NewFlagSet("expert", flag.ExitOnError)
	games := flags.Int("games", 100, "Expert games to sample")
	name := flags.String("expert", "", "Expert agent name override")
	depth := flags.Int("depth", 0, "Expert search depth override")
	seed := flags.Int64("seed", -1, "Expert RNG seed (-1 for random)")
	out := flags.String("out", "expert_samples.gob", "Sample file path")
	verbose := flags.Bool("verbose", true, "Log per-game progress")
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	cfg, err := config.Discover()
	if err != nil {
		return err
	}
	if *name != "" {
		cfg.Set("expert.name", *name)
	}
	if *depth > 0 {
		cfg.Set("expert.depth", *depth)
	}
	if *seed >= 0 {
		cfg.Set("expert.seed", int(*seed))
	}

	generator, err := arena.NewExpertGenerator(cfg)
	if err != nil {
		return err
	}
	samples := generator.GenerateGames(*games)

	buffer := arena.NewReplayBuffer(cfg.GetInt("training.buffer_size", arena.DefaultBufferCapacity))
	for _, sample := range samples {
		buffer.Add(sample)
	}
	if err := buffer.Save(*out); err != nil {
		return err
	}
	fmt.Printf("Generated %d samples from %d games with %s\n",
		len(samples), *games, generator.Expert().Name())
	return nil
}

func printAgentStats(stats map[string]map[string]float64) {
	names := slices.Sorted(maps.Keys(stats))
	fmt.Println("Timing (s):")
	for _, name := range names {
		data := stats[name]
		fmt.Printf("  %s: total=%.4f, avg/move=%.6f\n", name, data["total_time"], data["avg_time"])
	}
	fmt.Println("Nodes expanded:")
	for _, name := range names {
		fmt.Printf("  %s: %.0f\n", name, stats[name]["nodes_expanded"])
	}
}

func formatWins(wins map[string]int) string {
	parts := make([]string, 0, len(wins))
	for _, name := range slices.Sorted(maps.Keys(wins)) {
		parts = append(parts, fmt.Sprintf("%s=%d", name, wins[name]))
	}
	return strings.Join(parts, " ")
}

// humanPlayer reads moves from stdin in algebraic notation. It satisfies
// the agent contract so matches can seat it on either color.
type humanPlayer struct {
	info     *agent.Info
	reader   *bufio.Reader
	renderer *console.Renderer
}

func newHumanPlayer(renderer *console.Renderer) *humanPlayer {
	return &humanPlayer{
		info:     agent.NewInfo(),
		reader:   bufio.NewReader(os.Stdin),
		renderer: renderer,
	}
}

func (h *humanPlayer) SelectAction(state game.State) game.Action {
	start := time.Now()
	defer func() { h.info.Timing.Record(time.Since(start)) }()

	gs := state.(game.GameState)
	fmt.Print(h.renderer.RenderWithHints(gs))

	legal := gs.LegalActions()
	if len(legal) == 1 && legal[0] == game.Pass {
		fmt.Println("No legal moves, passing.")
		return game.Pass
	}

	for {
		fmt.Printf("%s to move (e.g. d3): ", gs.CurrentPlayer())
		input, err := h.reader.ReadString('\n')
		if err != nil {
			// Stdin is gone, fall back to the first legal move.
			return legal[0]
		}
		action, err := game.ParseAction(strings.TrimSpace(input))
		if err != nil {
			fmt.Println("Invalid input. Use algebraic notation like d3.")
			continue
		}
		if slices.Contains(legal, action) {
			return action
		}
		fmt.Println("Illegal move. Legal squares are starred.")
	}
}

func (h *humanPlayer) Info() *agent.Info { return h.info }

func (h *humanPlayer) Reset() { h.info = agent.NewInfo() }

func (h *humanPlayer) Name() string { return "Human" }
