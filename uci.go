package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"minimax-chess/engine"
	gm "minimax-chess/gridmg"
)

var errIllegalMove = errors.New("illegal move")

func main() {
	depth := flag.Int("depth", engine.DefaultDepth, "Search depth in plies, root move included")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	noSelfCapture := flag.Bool("no-self-capture", false, "Forbid pawns, knights and kings from landing on their own pieces")
	slidingCaptures := flag.Bool("sliding-captures", false, "Let bishops, rooks and queens capture on the first blocking square")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level: %v\n", err)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	rules := gm.Rules{NoSelfCapture: *noSelfCapture, SlidingCaptures: *slidingCaptures}
	if rules != (gm.Rules{}) {
		logger.Warn().
			Bool("no_self_capture", rules.NoSelfCapture).
			Bool("sliding_captures", rules.SlidingCaptures).
			Msg("move generation differs from the reference rules")
	}

	s := newSession(os.Stdout, logger, engine.Options{Depth: *depth, Logger: logger}, rules)
	if err := s.run(os.Stdin); err != nil {
		logger.Error().Err(err).Msg("reading input")
		os.Exit(1)
	}
}

// session is one interactive game: a board, the side to move and a searcher.
type session struct {
	out      io.Writer
	log      zerolog.Logger
	opts     engine.Options
	rules    gm.Rules
	board    *gm.Board
	side     gm.Color
	searcher *engine.Searcher
}

func newSession(out io.Writer, log zerolog.Logger, opts engine.Options, rules gm.Rules) *session {
	s := &session{out: out, log: log, opts: opts, rules: rules}
	s.newGame()
	return s
}

func (s *session) newGame() {
	s.board = gm.NewBoard()
	s.board.SetRules(s.rules)
	s.side = gm.White
	s.searcher = engine.NewSearcher(s.opts)
}

func (s *session) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *session) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }

func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !s.handle(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// handle executes one command line. It returns false on quit.
func (s *session) handle(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 { // ignore blank lines
		return true
	}
	switch strings.ToLower(tokens[0]) {
	case "uci":
		s.println("id name GridMinimax")
		s.println("id author minimax-chess")
		s.println("uciok")
	case "isready":
		s.println("readyok")
	case "ucinewgame":
		s.newGame()
	case "quit":
		return false
	case "position":
		s.position(tokens[1:])
	case "move":
		if len(tokens) != 2 {
			s.println("info string Malformed move command")
			break
		}
		s.userMove(tokens[1])
	case "go":
		s.goSearch(tokens[1:], false)
	case "play":
		s.goSearch(tokens[1:], true)
	case "d":
		s.printf("%s", s.board.String())
		s.println("Fen:", s.board.ToFEN(s.side))
		s.println("Side:", s.side)
	case "eval":
		s.println("info string eval", engine.Evaluate(s.board))
	case "perft":
		s.perft(tokens[1:])
	default:
		s.println("info string Unknown command:", line)
	}
	return true
}

func (s *session) position(args []string) {
	if len(args) == 0 {
		s.println("info string Malformed position command")
		return
	}
	var rest []string
	switch strings.ToLower(args[0]) {
	case "startpos":
		s.newGame()
		rest = args[1:]
	case "fen":
		i := slices.Index(args, "moves")
		if i < 0 {
			i = len(args)
		}
		board, side, err := gm.ParseFEN(strings.Join(args[1:i], " "))
		if err != nil {
			s.println("info string", err)
			return
		}
		s.newGame()
		s.board = board
		s.board.SetRules(s.rules)
		s.side = side
		rest = args[i:]
	default:
		s.println("info string Invalid position subcommand")
		return
	}
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, mv := range rest[1:] {
		if !s.userMove(mv) {
			return
		}
	}
}

// userMove applies text for the side to move, rejecting malformed text and
// moves the generator would not produce.
func (s *session) userMove(text string) bool {
	m, err := s.checkMove(text)
	if err != nil {
		if errors.Is(err, gm.ErrMalformedMove) {
			s.println("info string invalid move:", err)
		} else {
			s.println("info string", err)
		}
		s.log.Debug().Err(err).Str("side", s.side.String()).Msg("move rejected")
		return false
	}
	s.board.MakeMove(m)
	s.side = s.side.Other()
	return true
}

func (s *session) checkMove(text string) (gm.Move, error) {
	m, err := gm.ParseMove(text)
	if err != nil {
		return gm.NoMove, err
	}
	if !s.board.IsPseudoLegal(s.side, m) {
		return gm.NoMove, fmt.Errorf("%w %s for %s", errIllegalMove, m, s.side)
	}
	return m, nil
}

func (s *session) goSearch(args []string, apply bool) {
	searcher := s.searcher
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			if i+1 >= len(args) {
				s.println("info string Malformed go command option depth")
				return
			}
			d, err := strconv.Atoi(args[i+1])
			if err != nil || d < 1 {
				s.println("info string Malformed go command option; could not convert depth")
				return
			}
			opts := s.opts
			opts.Depth = d
			searcher = engine.NewSearcher(opts)
			i++
		default:
			s.println("info string Unknown go subcommand", args[i])
		}
	}

	res := searcher.Search(s.board, s.side)
	s.printf("info depth %d score cp %d nodes %d time %d\n",
		searcher.Depth(), res.Score, res.Nodes, res.Elapsed.Milliseconds())
	if !res.Found {
		s.println("bestmove (none)")
		return
	}
	if !s.board.LegalUnderChessRules(s.side, res.Move) {
		s.println("info string", res.Move, "is not legal under standard chess rules")
	}
	s.println("bestmove", res.Move)
	if apply {
		s.board.MakeMove(res.Move)
		s.side = s.side.Other()
	}
}

func (s *session) perft(args []string) {
	if len(args) != 1 {
		s.println("info string Malformed perft command")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		s.println("info string perft depth must be > 0")
		return
	}
	div := gm.PerftDivide(s.board, s.side, depth)
	counts := make(map[string]uint64, len(div))
	for m, n := range div {
		counts[m.String()] = n
	}
	names := maps.Keys(counts)
	slices.Sort(names)
	var total uint64
	for _, name := range names {
		s.printf("%s: %d\n", name, counts[name])
		total += counts[name]
	}
	s.printf("Nodes searched: %d\n", total)
}
