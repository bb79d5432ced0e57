package main

import (
	"adversarial/agent"
	"adversarial/experiments"
	"adversarial/meta"
	"adversarial/searcher"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Experiment config (YAML)")
	preset := flag.String("preset", "", "Preset experiment: comparison or depth")
	layout := flag.String("layout", "layouts/small.lay", "Maze layout")
	kind := flag.String("searcher", searcher.AlphaBetaName, "Agent kind: minimax, alphabeta, expectimax, reflex or random")
	depth := flag.Int("depth", meta.DEFAULT_DEPTH, "Search depth in rounds")
	evaluation := flag.String("evaluation", "score", "Evaluation function at the depth cutoff")
	games := flag.Int("games", meta.NUM_GAMES, "Games per agent")
	ghosts := flag.Int("ghosts", -1, "Number of adversaries to keep from the layout (-1 keeps all)")
	seed := flag.Uint64("seed", 1, "Random seed")
	output := flag.String("output", experiments.DefaultOutput, "Directory for experiment records")
	verbose := flag.Bool("verbose", false, "Log every search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var config experiments.Config
	switch {
	case *configPath != "":
		var err error
		config, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment config")
		}
	case *preset == "comparison":
		config = experiments.SearcherComparison(*layout, *depth)
	case *preset == "depth":
		config = experiments.DepthSweep(*layout, *kind, *depth)
	case *preset != "":
		log.Fatal().Msgf("unknown preset %q", *preset)
	default:
		config = experiments.Config{
			Name:   *kind,
			Layout: *layout,
			Agents: []agent.Config{{ID: 1, Kind: *kind, Depth: *depth, Evaluation: *evaluation}},
		}
	}

	if *configPath == "" {
		config.Games = *games
		config.Seed = *seed
		config.Output = *output
		if *ghosts >= 0 {
			config.Ghosts = ghosts
		}
	}

	report, err := experiments.Run(config)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("stored records in %s", report.Dir)
}
