// meta/meta.go
package meta

// DEFAULT_DEPTH defines the number of full rounds a searcher looks ahead.
const DEFAULT_DEPTH = 2

// MAX_MOVES defines the number of moves after which a game is stopped.
const MAX_MOVES = 500

// NUM_GAMES defines the number of games played per agent config.
const NUM_GAMES = 10

// GO_ROUTINES defines the number of games played concurrently.
const GO_ROUTINES = 8
