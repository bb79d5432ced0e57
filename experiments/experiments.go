package experiments

import (
	"adversarial/agent"
	"adversarial/engine"
	"adversarial/experiments/metrics"
	"adversarial/game"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Report points at the stored records and summarizes every agent.
type Report struct {
	Dir       string
	Summaries []Summary
}

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every configured agent for the configured number of games and
// stores the game and move records. Games run concurrently; each search runs
// on a single goroutine.
func Run(config Config) (Report, error) {
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return Report{}, err
	}
	maze, err := game.LoadLayout(config.Layout)
	if err != nil {
		return Report{}, err
	}
	if config.Ghosts != nil {
		maze = maze.WithGhosts(*config.Ghosts)
	}

	initial := game.NewMazeState(maze)
	for _, agentConfig := range config.Agents {
		if err := checkEvaluation(agentConfig, initial); err != nil {
			return Report{}, err
		}
	}

	log.Info().Msgf("starting %s experiment on %s with %d adversaries...", config.Name, config.Layout, maze.NumAgents()-1)

	results := make([]result, len(config.Agents)*config.Games)
	var g errgroup.Group
	g.SetLimit(config.Goroutines)
	for ai, agentConfig := range config.Agents {
		agentConfig.Metrics = true
		for i := 0; i < config.Games; i++ {
			id := ai*config.Games + i + 1
			seed := config.Seed + uint64(id)
			agentConfig, i := agentConfig, i
			g.Go(func() error {
				gameMetric, moveMetrics, err := runGame(maze, agentConfig, seed, config.MaxMoves)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}

				r := result{game: metrics.GameRecord{ID: id, Agent: agentConfig.ID, Seed: seed, GameMetric: gameMetric}}
				for _, mm := range moveMetrics {
					r.moves = append(r.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
				}
				results[id-1] = r

				log.Info().Msgf("completed agent %d game %d of %d: won=%t score=%.0f moves=%d", agentConfig.ID, i+1, config.Games, gameMetric.Won, gameMetric.Score, gameMetric.TotalMoves)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.game)
		moveRecords = append(moveRecords, r.moves...)
	}

	dir, err := store(config, gameRecords, moveRecords)
	if err != nil {
		return Report{}, err
	}

	summaries := Summarize(config.Agents, gameRecords, moveRecords)
	for _, s := range summaries {
		log.Info().Msgf("agent %d (%s depth %d): win rate %.2f, score %.1f ± %.1f, %.0f nodes per move",
			s.Agent, s.Kind, s.Depth, s.WinRate, s.MeanScore, s.StdScore, s.MeanNodes)
	}
	return Report{Dir: dir, Summaries: summaries}, nil
}

// checkEvaluation runs the agent's evaluation once so that an unusable one
// fails the experiment before any game starts.
func checkEvaluation(agentConfig agent.Config, state game.State) (err error) {
	if agentConfig.Kind == agent.RandomName {
		return nil
	}
	evaluate, err := game.LookupEvaluation(agentConfig.Evaluation)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("agent %d evaluation: %w", agentConfig.ID, e)
				return
			}
			err = fmt.Errorf("agent %d evaluation: %v", agentConfig.ID, r)
		}
	}()
	evaluate(state)
	return nil
}

// runGame plays one game between the configured agent and random adversaries.
func runGame(maze *game.Maze, agentConfig agent.Config, seed uint64, maxMoves int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	player, err := agent.New(agentConfig, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	// Adversaries share one source; a game runs on a single goroutine
	adversaryRand := rand.New(rand.NewSource(seed ^ 0x9e3779b97f4a7c15))
	agents := []agent.Agent{player}
	for i := 1; i < maze.NumAgents(); i++ {
		agents = append(agents, agent.NewRandomAgent(adversaryRand))
	}

	e := engine.LocalEngine(game.NewMazeState(maze), agents, maxMoves)
	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

func store(config Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	agentRecords := make([]metrics.AgentRecord, 0, len(config.Agents))
	for _, a := range config.Agents {
		agentRecords = append(agentRecords, metrics.AgentRecord{ID: a.ID, Kind: a.Kind, Depth: a.SearchDepth(), Evaluation: a.Evaluation})
	}
	if err := writer.WriteAgentConfigs(agentRecords); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
